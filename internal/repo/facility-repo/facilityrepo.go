package facilityrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/agrofount/agrofount-credit/internal/domain"
	"github.com/agrofount/agrofount-credit/internal/pg"
	"go.uber.org/zap"
)

const facilityColumns = `id, public_id, user_id, requested_amount, purpose, repayment_weeks, accept_terms,
        status, approved_amount, approved_at, credit_start_date, credit_end_date, approved_by_admin_id, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, req *domain.CreditFacilityRequest) (*domain.CreditFacilityRequest, error) {
	query := `
        INSERT INTO credit_facility_requests
            (public_id, user_id, requested_amount, purpose, repayment_weeks, accept_terms, status, approved_amount, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		req.PublicID, req.UserID, req.RequestedAmount, req.Purpose, req.RepaymentWeeks,
		req.AcceptTerms, req.Status, req.ApprovedAmount, req.CreatedAt,
	).Scan(&req.ID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, pg.ErrUniqueViolation
		}
		zap.L().Error("can't save credit facility request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) FindPendingByUserID(ctx context.Context, userID int) (*domain.CreditFacilityRequest, error) {
	query := `
        SELECT ` + facilityColumns + `
        FROM credit_facility_requests
        WHERE user_id = $1 AND status = 'pending'
    `
	return r.scanFacility(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.CreditFacilityRequest, error) {
	query := `
        SELECT ` + facilityColumns + `
        FROM credit_facility_requests
        WHERE id = $1
    `
	return r.scanFacility(r.db.QueryRow(ctx, query, id))
}

// GetByIDForUpdate locks the request row so two admins cannot decide the
// same request concurrently.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int) (*domain.CreditFacilityRequest, error) {
	query := `
        SELECT ` + facilityColumns + `
        FROM credit_facility_requests
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanFacility(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) Update(ctx context.Context, req *domain.CreditFacilityRequest) error {
	query := `
        UPDATE credit_facility_requests
        SET status = $1, approved_amount = $2, approved_at = $3,
            credit_start_date = $4, credit_end_date = $5, approved_by_admin_id = $6
        WHERE id = $7
    `
	_, err := r.db.Exec(ctx, query,
		req.Status, req.ApprovedAmount, req.ApprovedAt,
		req.CreditStartDate, req.CreditEndDate, req.ApprovedByAdminID, req.ID,
	)
	if err != nil {
		zap.L().Error("can't update credit facility request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID, limit, offset int) ([]domain.CreditFacilityRequest, error) {
	query := `
        SELECT ` + facilityColumns + `
        FROM credit_facility_requests
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("can't fetch credit facility requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return r.scanFacilities(rows)
}

func (r *Repository) FindAll(ctx context.Context, limit, offset int) ([]domain.CreditFacilityRequest, error) {
	query := `
        SELECT ` + facilityColumns + `
        FROM credit_facility_requests
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't fetch credit facility requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return r.scanFacilities(rows)
}

// FindLatestApprovedByUserID returns the most recent approved facility,
// the one the spend-window guard measures draw-down against.
func (r *Repository) FindLatestApprovedByUserID(ctx context.Context, userID int) (*domain.CreditFacilityRequest, error) {
	query := `
        SELECT ` + facilityColumns + `
        FROM credit_facility_requests
        WHERE user_id = $1 AND status = 'approved'
        ORDER BY approved_at DESC
        LIMIT 1
    `
	return r.scanFacility(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) scanFacility(row pgx.Row) (*domain.CreditFacilityRequest, error) {
	var req domain.CreditFacilityRequest
	err := row.Scan(
		&req.ID, &req.PublicID, &req.UserID, &req.RequestedAmount, &req.Purpose,
		&req.RepaymentWeeks, &req.AcceptTerms, &req.Status, &req.ApprovedAmount,
		&req.ApprovedAt, &req.CreditStartDate, &req.CreditEndDate, &req.ApprovedByAdminID, &req.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to scan credit facility request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

func (r *Repository) scanFacilities(rows pgx.Rows) ([]domain.CreditFacilityRequest, error) {
	var requests []domain.CreditFacilityRequest
	for rows.Next() {
		var req domain.CreditFacilityRequest
		err := rows.Scan(
			&req.ID, &req.PublicID, &req.UserID, &req.RequestedAmount, &req.Purpose,
			&req.RepaymentWeeks, &req.AcceptTerms, &req.Status, &req.ApprovedAmount,
			&req.ApprovedAt, &req.CreditStartDate, &req.CreditEndDate, &req.ApprovedByAdminID, &req.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan credit facility request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}
