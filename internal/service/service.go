package service

import (
	"github.com/agrofount/agrofount-credit/internal/handlers/auth"
	"github.com/agrofount/agrofount-credit/internal/handlers/credit"
	"github.com/agrofount/agrofount-credit/internal/handlers/wallet"

	pkgauth "github.com/agrofount/agrofount-credit/pkg/auth"

	"github.com/agrofount/agrofount-credit/internal/pg"
	"github.com/agrofount/agrofount-credit/internal/repo"
	authservice "github.com/agrofount/agrofount-credit/internal/service/authservice"
	eligibilityservice "github.com/agrofount/agrofount-credit/internal/service/eligibilityservice"
	facilityservice "github.com/agrofount/agrofount-credit/internal/service/facilityservice"
	walletservice "github.com/agrofount/agrofount-credit/internal/service/walletservice"
)

type Services struct {
	AuthService        auth.Service
	WalletService      wallet.Service
	FacilityService    credit.Service
	EligibilityService credit.EligibilityService

	Ledger *walletservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier facilityservice.Notifier) *Services {
	ledger := walletservice.New(repo.WalletRepo, txManager)
	facilityService := facilityservice.New(repo.FacilityRepo, repo.DisbursementRepo, ledger, notifier, txManager)
	eligibilityService := eligibilityservice.New(repo.OrderRepo, repo.AssessmentRepo)
	authService := authservice.New(repo.UserRepo, ledger, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:        authService,
		WalletService:      ledger,
		FacilityService:    facilityService,
		EligibilityService: eligibilityService,
		Ledger:             ledger,
	}
}
