package assessmentrepo

import (
	"context"

	"github.com/agrofount/agrofount-credit/internal/domain"
	"github.com/agrofount/agrofount-credit/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, a *domain.CreditAssessment) (*domain.CreditAssessment, error) {
	query := `
        INSERT INTO credit_assessments (user_id, total_spending, repayment_rate, is_eligible, comments, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, a.UserID, a.TotalSpending, a.RepaymentRate, a.IsEligible, a.Comments, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		zap.L().Error("can't save credit assessment", zap.Error(err))
		return nil, err
	}
	return a, nil
}
