package service

import (
	"testing"

	"github.com/agrofount/agrofount-credit/internal/pg"
	"github.com/agrofount/agrofount-credit/internal/repo"
	"github.com/agrofount/agrofount-credit/internal/service/authservice"
	"github.com/agrofount/agrofount-credit/internal/service/eligibilityservice"
	"github.com/agrofount/agrofount-credit/internal/service/facilityservice"
	"github.com/agrofount/agrofount-credit/internal/service/walletservice"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	mockUserRepo := authservice.NewMockRepo(ctrl)
	mockWalletRepo := walletservice.NewMockWalletRepo(ctrl)
	mockFacilityRepo := facilityservice.NewMockFacilityRepo(ctrl)
	mockAssessmentRepo := eligibilityservice.NewMockAssessmentRepo(ctrl)
	mockOrderRepo := eligibilityservice.NewMockOrderRepo(ctrl)
	mockTxManager := pg.NewMockTXManager(ctrl)
	mockNotifier := facilityservice.NewMockNotifier(ctrl)

	repos := repo.New(mockDB)
	repos.UserRepo = mockUserRepo
	repos.WalletRepo = mockWalletRepo
	repos.FacilityRepo = mockFacilityRepo
	repos.AssessmentRepo = mockAssessmentRepo
	repos.OrderRepo = mockOrderRepo

	services := New(repos, mockTxManager, mockNotifier)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.FacilityService)
	assert.NotNil(t, services.EligibilityService)
	assert.NotNil(t, services.Ledger)
	assert.Same(t, services.Ledger, services.WalletService)
}
