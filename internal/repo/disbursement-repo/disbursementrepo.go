package disbursementrepo

import (
	"context"
	"time"

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

func (r *Repository) Create(ctx context.Context, d *domain.Disbursement) error {
	query := `
        INSERT INTO disbursements (credit_facility_id, user_id, amount, phase, scheduled_at, completed)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, d.FacilityID, d.UserID, d.Amount, d.Phase, d.ScheduledAt, d.Completed).Scan(&d.ID)
	if err != nil {
		zap.L().Error("can't save disbursement", zap.Error(err))
		return err
	}
	return nil
}

// FindDueForProcessing selects due uncompleted rows and locks them.
// SKIP LOCKED lets concurrent scheduler instances partition the work
// instead of crediting the same row twice.
func (r *Repository) FindDueForProcessing(ctx context.Context, now time.Time, limit uint32) ([]domain.Disbursement, error) {
	query := `
        SELECT id, credit_facility_id, user_id, amount, phase, scheduled_at, completed
        FROM disbursements
        WHERE completed = FALSE AND scheduled_at <= $1
        ORDER BY scheduled_at
        LIMIT $2
        FOR UPDATE SKIP LOCKED
    `
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("can't fetch due disbursements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var disbursements []domain.Disbursement
	for rows.Next() {
		var d domain.Disbursement
		err := rows.Scan(&d.ID, &d.FacilityID, &d.UserID, &d.Amount, &d.Phase, &d.ScheduledAt, &d.Completed)
		if err != nil {
			zap.L().Error("failed to scan disbursement row", zap.Error(err))
			return nil, err
		}
		disbursements = append(disbursements, d)
	}

	return disbursements, nil
}

// MarkCompleted flips the terminal flag. The WHERE guard on completed
// makes a second attempt a no-op rather than a double credit.
func (r *Repository) MarkCompleted(ctx context.Context, id int) (bool, error) {
	query := `
        UPDATE disbursements
        SET completed = TRUE
        WHERE id = $1 AND completed = FALSE
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark disbursement completed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindByFacilityID(ctx context.Context, facilityID int) ([]domain.Disbursement, error) {
	query := `
        SELECT id, credit_facility_id, user_id, amount, phase, scheduled_at, completed
        FROM disbursements
        WHERE credit_facility_id = $1
        ORDER BY phase
    `
	rows, err := r.db.Query(ctx, query, facilityID)
	if err != nil {
		zap.L().Error("can't fetch disbursements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var disbursements []domain.Disbursement
	for rows.Next() {
		var d domain.Disbursement
		err := rows.Scan(&d.ID, &d.FacilityID, &d.UserID, &d.Amount, &d.Phase, &d.ScheduledAt, &d.Completed)
		if err != nil {
			zap.L().Error("failed to scan disbursement row", zap.Error(err))
			return nil, err
		}
		disbursements = append(disbursements, d)
	}

	return disbursements, nil
}
