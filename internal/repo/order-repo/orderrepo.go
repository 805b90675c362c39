package orderrepo

import (
	"context"

	"github.com/agrofount/agrofount-credit/internal/domain"
	"github.com/agrofount/agrofount-credit/internal/pg"
	"go.uber.org/zap"
)

// Repository is the read-only boundary to the marketplace order history.
// Only the eligibility scorer consumes it.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
        SELECT id, user_id, status, total_price, created_at
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.UserID, &order.Status, &order.TotalPrice, &order.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}
