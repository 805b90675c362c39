package facilityservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrofount/agrofount-credit/internal/domain"
	"github.com/agrofount/agrofount-credit/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=facilityservice.go -destination=facilityservice_mock.go -package=facilityservice

type FacilityRepo interface {
	Create(ctx context.Context, req *domain.CreditFacilityRequest) (*domain.CreditFacilityRequest, error)
	FindPendingByUserID(ctx context.Context, userID int) (*domain.CreditFacilityRequest, error)
	GetByID(ctx context.Context, id int) (*domain.CreditFacilityRequest, error)
	GetByIDForUpdate(ctx context.Context, id int) (*domain.CreditFacilityRequest, error)
	Update(ctx context.Context, req *domain.CreditFacilityRequest) error
	FindByUserID(ctx context.Context, userID, limit, offset int) ([]domain.CreditFacilityRequest, error)
	FindAll(ctx context.Context, limit, offset int) ([]domain.CreditFacilityRequest, error)
	FindLatestApprovedByUserID(ctx context.Context, userID int) (*domain.CreditFacilityRequest, error)
}

type DisbursementRepo interface {
	Create(ctx context.Context, d *domain.Disbursement) error
	FindByFacilityID(ctx context.Context, facilityID int) ([]domain.Disbursement, error)
}

// Ledger is the slice of the wallet ledger the facility manager and the
// spend-window guard need.
type Ledger interface {
	GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error)
	ApplyApprovedCredit(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error)
	SumDebitsInWindow(ctx context.Context, userID int, from, to time.Time) (decimal.Decimal, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID int, event string, params map[string]string)
}

type Service struct {
	facilityRepo     FacilityRepo
	disbursementRepo DisbursementRepo
	ledger           Ledger
	notifier         Notifier
	txManager        pg.TXManager
}

func New(facilityRepo FacilityRepo, disbursementRepo DisbursementRepo, ledger Ledger, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		facilityRepo:     facilityRepo,
		disbursementRepo: disbursementRepo,
		ledger:           ledger,
		notifier:         notifier,
		txManager:        txManager,
	}
}

var (
	ErrPendingRequestExists = errors.New("user already has a pending credit request")
	ErrRequestNotFound      = errors.New("credit request not found")
	ErrAlreadyDecided       = errors.New("credit request already decided")
	ErrInvalidAmount        = errors.New("requested amount must be positive")
	ErrInvalidPeriod        = errors.New("repayment period must be between 3 and 6 weeks")
	ErrTermsNotAccepted     = errors.New("terms must be accepted")
)

const (
	week        = 7 * 24 * time.Hour
	spendWindow = 2 * week
	phaseCount  = 3

	// decideTimeout bounds the decision unit of work; past it the
	// transaction rolls back entirely.
	decideTimeout = 15 * time.Second
)

// DecideInput is an admin's verdict on a pending request. A nil
// ApprovedAmount approves the amount originally requested.
type DecideInput struct {
	Approve        bool
	ApprovedAmount *decimal.Decimal
	AdminID        int
}

func (s *Service) Request(ctx context.Context, userID int, amount decimal.Decimal, purpose string, repaymentWeeks int, acceptTerms bool) (*domain.CreditFacilityRequest, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if repaymentWeeks < 3 || repaymentWeeks > 6 {
		return nil, ErrInvalidPeriod
	}
	if !acceptTerms {
		return nil, ErrTermsNotAccepted
	}

	pending, err := s.facilityRepo.FindPendingByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to check pending requests", zap.Error(err))
		return nil, err
	}
	if pending != nil {
		return nil, ErrPendingRequestExists
	}

	req := &domain.CreditFacilityRequest{
		PublicID:        uuid.NewString(),
		UserID:          userID,
		RequestedAmount: amount,
		Purpose:         purpose,
		RepaymentWeeks:  repaymentWeeks,
		AcceptTerms:     acceptTerms,
		Status:          domain.FacilityStatusPending,
		ApprovedAmount:  decimal.Zero,
		CreatedAt:       time.Now(),
	}
	if _, err := s.facilityRepo.Create(ctx, req); err != nil {
		// The partial unique index on pending requests closes the gap
		// between the check above and the insert.
		if errors.Is(err, pg.ErrUniqueViolation) {
			return nil, ErrPendingRequestExists
		}
		zap.L().Error("failed to create credit request", zap.Error(err))
		return nil, err
	}

	zap.L().Info("credit request created", zap.Int("userID", userID), zap.String("amount", amount.String()))
	return req, nil
}

// Decide applies an admin verdict as one unit of work. An approval
// persists the decision, creates the 3-phase disbursement plan and
// credits phase 1 through the ledger; all of it commits or none does.
func (s *Service) Decide(ctx context.Context, requestID int, input DecideInput) (*domain.CreditFacilityRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, decideTimeout)
	defer cancel()

	var decided *domain.CreditFacilityRequest
	var phaseOne decimal.Decimal

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.facilityRepo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrRequestNotFound
		}
		if req.Status != domain.FacilityStatusPending {
			return ErrAlreadyDecided
		}

		if !input.Approve {
			req.Status = domain.FacilityStatusRejected
			if err := s.facilityRepo.Update(ctx, req); err != nil {
				return err
			}
			decided = req
			return nil
		}

		approved := req.RequestedAmount
		if input.ApprovedAmount != nil {
			approved = *input.ApprovedAmount
		}
		if !approved.IsPositive() {
			return ErrInvalidAmount
		}

		now := time.Now()
		end := now.Add(time.Duration(req.RepaymentWeeks) * week)
		req.Status = domain.FacilityStatusApproved
		req.ApprovedAmount = approved
		req.ApprovedAt = &now
		req.CreditStartDate = &now
		req.CreditEndDate = &end
		req.ApprovedByAdminID = &input.AdminID

		wallet, err := s.ledger.GetOrCreate(ctx, req.UserID)
		if err != nil {
			return err
		}

		phases := PhaseAmounts(approved)
		phaseOne = phases[0]
		interval := intervalWeeks(req.RepaymentWeeks)

		for i, amount := range phases {
			d := &domain.Disbursement{
				FacilityID:  req.ID,
				UserID:      req.UserID,
				Amount:      amount,
				Phase:       i + 1,
				ScheduledAt: now.Add(time.Duration(i) * time.Duration(interval) * week),
				Completed:   i == 0,
			}
			if err := s.disbursementRepo.Create(ctx, d); err != nil {
				return err
			}
		}

		if _, err := s.ledger.ApplyApprovedCredit(ctx, wallet.ID, phaseOne); err != nil {
			return err
		}

		if err := s.facilityRepo.Update(ctx, req); err != nil {
			return err
		}
		decided = req
		return nil
	})
	if err != nil {
		zap.L().Error("failed to decide credit request", zap.Int("requestID", requestID), zap.Error(err))
		return nil, err
	}

	if decided.Status == domain.FacilityStatusRejected {
		s.notifier.Notify(ctx, decided.UserID, "credit_rejected", map[string]string{
			"request_id": decided.PublicID,
		})
	} else {
		s.notifier.Notify(ctx, decided.UserID, "credit_approved", map[string]string{
			"request_id":      decided.PublicID,
			"approved_amount": decided.ApprovedAmount.StringFixed(2),
			"first_phase":     phaseOne.StringFixed(2),
			"credit_end_date": decided.CreditEndDate.Format(time.RFC3339),
		})
	}
	return decided, nil
}

func (s *Service) ListForUser(ctx context.Context, userID, limit, offset int) ([]domain.CreditFacilityRequest, error) {
	requests, err := s.facilityRepo.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch credit requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) ListAll(ctx context.Context, limit, offset int) ([]domain.CreditFacilityRequest, error) {
	requests, err := s.facilityRepo.FindAll(ctx, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch credit requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// GetDisbursements returns the disbursement plan of one of the user's
// own facilities. Facilities belonging to other users read as not found.
func (s *Service) GetDisbursements(ctx context.Context, userID, facilityID int) ([]domain.Disbursement, error) {
	facility, err := s.facilityRepo.GetByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if facility == nil || facility.UserID != userID {
		return nil, ErrRequestNotFound
	}

	disbursements, err := s.disbursementRepo.FindByFacilityID(ctx, facilityID)
	if err != nil {
		zap.L().Error("failed to fetch disbursement plan", zap.Int("facilityID", facilityID), zap.Error(err))
		return nil, err
	}
	return disbursements, nil
}

// CanSpend answers whether a debit of amount fits inside the current
// 2-week spend window of the user's active facility. The cap per window
// is one phase's worth (approvedAmount / 3) regardless of how many
// phases have actually landed in the wallet.
func (s *Service) CanSpend(ctx context.Context, userID int, amount decimal.Decimal) (bool, error) {
	facility, err := s.facilityRepo.FindLatestApprovedByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if facility == nil || facility.CreditStartDate == nil || facility.CreditEndDate == nil {
		return false, nil
	}

	now := time.Now()
	if now.Before(*facility.CreditStartDate) || now.After(*facility.CreditEndDate) {
		return false, nil
	}

	windowIdx := now.Sub(*facility.CreditStartDate) / spendWindow
	windowStart := facility.CreditStartDate.Add(windowIdx * spendWindow)
	windowEnd := windowStart.Add(spendWindow)
	allowed := facility.ApprovedAmount.Div(decimal.NewFromInt(phaseCount))

	spent, err := s.ledger.SumDebitsInWindow(ctx, userID, windowStart, windowEnd)
	if err != nil {
		return false, err
	}

	return spent.Add(amount).LessThanOrEqual(allowed), nil
}

// PhaseAmounts splits an approved amount into three phases. Each phase
// is the amount divided by three floored to the cent; the sub-cent
// remainder goes to phase 2 so the three rows sum to the amount exactly.
func PhaseAmounts(approved decimal.Decimal) [phaseCount]decimal.Decimal {
	phase := approved.Div(decimal.NewFromInt(phaseCount)).RoundFloor(2)
	remainder := approved.Sub(phase.Mul(decimal.NewFromInt(phaseCount)))
	return [phaseCount]decimal.Decimal{phase, phase.Add(remainder), phase}
}

func intervalWeeks(repaymentWeeks int) int {
	interval := repaymentWeeks / phaseCount
	if interval == 0 {
		interval = 2
	}
	return interval
}
