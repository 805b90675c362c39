package repo

import (
	"github.com/agrofount/agrofount-credit/internal/disbursement"
	"github.com/agrofount/agrofount-credit/internal/pg"
	assessmentrepo "github.com/agrofount/agrofount-credit/internal/repo/assessment-repo"
	disbursementrepo "github.com/agrofount/agrofount-credit/internal/repo/disbursement-repo"
	facilityrepo "github.com/agrofount/agrofount-credit/internal/repo/facility-repo"
	orderrepo "github.com/agrofount/agrofount-credit/internal/repo/order-repo"
	userrepo "github.com/agrofount/agrofount-credit/internal/repo/user-repo"
	walletrepo "github.com/agrofount/agrofount-credit/internal/repo/wallet-repo"
	"github.com/agrofount/agrofount-credit/internal/service/authservice"
	"github.com/agrofount/agrofount-credit/internal/service/eligibilityservice"
	"github.com/agrofount/agrofount-credit/internal/service/facilityservice"
	"github.com/agrofount/agrofount-credit/internal/service/walletservice"
)

type Repositories struct {
	UserRepo         authservice.Repo
	WalletRepo       walletservice.WalletRepo
	FacilityRepo     facilityservice.FacilityRepo
	DisbursementRepo DisbursementRepo
	AssessmentRepo   eligibilityservice.AssessmentRepo
	OrderRepo        eligibilityservice.OrderRepo
}

// DisbursementRepo joins the slices needed by the facility manager and
// the scheduler; one concrete repository serves both.
type DisbursementRepo interface {
	facilityservice.DisbursementRepo
	disbursement.Repo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	walletRepo := walletrepo.New(conn)
	facilityRepo := facilityrepo.New(conn)
	disbursementRepo := disbursementrepo.New(conn)
	assessmentRepo := assessmentrepo.New(conn)
	orderRepo := orderrepo.New(conn)

	return &Repositories{
		UserRepo:         userRepo,
		WalletRepo:       walletRepo,
		FacilityRepo:     facilityRepo,
		DisbursementRepo: disbursementRepo,
		AssessmentRepo:   assessmentRepo,
		OrderRepo:        orderRepo,
	}
}
