package eligibilityservice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrofount/agrofount-credit/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=eligibilityservice.go -destination=eligibilityservice_mock.go -package=eligibilityservice

type OrderRepo interface {
	FindOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error)
}

type AssessmentRepo interface {
	Create(ctx context.Context, a *domain.CreditAssessment) (*domain.CreditAssessment, error)
}

type Service struct {
	orderRepo      OrderRepo
	assessmentRepo AssessmentRepo
}

func New(orderRepo OrderRepo, assessmentRepo AssessmentRepo) *Service {
	return &Service{
		orderRepo:      orderRepo,
		assessmentRepo: assessmentRepo,
	}
}

const (
	scoreCompletedOrders = 400
	scoreSpendTierOne    = 300
	scoreSpendTierTwo    = 300
	eligibleScore        = 650

	minCompletedOrders = 3
)

var (
	spendTierOne   = decimal.NewFromInt(50000)
	spendTierTwo   = decimal.NewFromInt(100000)
	maxCreditLimit = decimal.NewFromInt(100000)
	creditFraction = decimal.NewFromFloat(0.5)
	interestRate   = decimal.NewFromInt(8)
)

// Assessment is the scorer's verdict. MaxAmount and InterestRate are
// only meaningful when Eligible is true.
type Assessment struct {
	Eligible      bool
	Score         int
	MaxAmount     decimal.Decimal
	InterestRate  decimal.Decimal
	RepaymentRate decimal.Decimal
	Reason        string
}

// Assess scores the user's completed order history and always persists
// an audit row, eligible or not. The scoring itself is pure; the only
// side effect is the assessment record.
func (s *Service) Assess(ctx context.Context, userID int) (*Assessment, error) {
	orders, err := s.orderRepo.FindOrdersByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch order history", zap.Error(err))
		return nil, err
	}

	result := score(orders)

	assessment := &domain.CreditAssessment{
		UserID:        userID,
		TotalSpending: totalSpend(orders),
		RepaymentRate: result.RepaymentRate,
		IsEligible:    result.Eligible,
		Comments:      result.Reason,
		CreatedAt:     time.Now(),
	}
	if _, err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		zap.L().Error("failed to persist credit assessment", zap.Error(err))
		return nil, err
	}

	zap.L().Info("credit assessment completed",
		zap.Int("userID", userID),
		zap.Int("score", result.Score),
		zap.Bool("eligible", result.Eligible),
	)
	return result, nil
}

// isCompleted counts an order unless it is still open or was undone.
// The order history belongs to the catalog service, so statuses this
// service has never seen count as completed rather than vanishing from
// the score.
func isCompleted(status string) bool {
	switch status {
	case domain.OrderStatusPending, domain.OrderStatusCancelled, domain.OrderStatusReturned:
		return false
	}
	return true
}

func score(orders []domain.Order) *Assessment {
	completed := 0
	spend := decimal.Zero
	for _, order := range orders {
		if isCompleted(order.Status) {
			completed++
			spend = spend.Add(order.TotalPrice)
		}
	}

	points := 0
	if completed >= minCompletedOrders {
		points += scoreCompletedOrders
	}
	if spend.GreaterThanOrEqual(spendTierOne) {
		points += scoreSpendTierOne
	}
	if spend.GreaterThanOrEqual(spendTierTwo) {
		points += scoreSpendTierTwo
	}

	rate := decimal.Zero
	if len(orders) > 0 {
		rate = decimal.NewFromInt(int64(completed)).
			Div(decimal.NewFromInt(int64(len(orders)))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	result := &Assessment{
		Score:         points,
		RepaymentRate: rate,
	}

	if points >= eligibleScore {
		result.Eligible = true
		result.MaxAmount = decimal.Min(maxCreditLimit, spend.Mul(creditFraction))
		result.InterestRate = interestRate
		result.Reason = fmt.Sprintf("eligible with score %d from %d completed orders", points, completed)
		return result
	}

	result.Reason = fmt.Sprintf("score %d below threshold %d", points, eligibleScore)
	return result
}

func totalSpend(orders []domain.Order) decimal.Decimal {
	spend := decimal.Zero
	for _, order := range orders {
		if isCompleted(order.Status) {
			spend = spend.Add(order.TotalPrice)
		}
	}
	return spend
}
