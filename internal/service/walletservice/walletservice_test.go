package walletservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/agrofount/agrofount-credit/internal/domain"
	"github.com/agrofount/agrofount-credit/internal/pg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockWalletRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockWalletRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	).AnyTimes()

	service := New(repo, txManager)
	defer ctrl.Finish()
	return service, repo
}

func TestGetOrCreate(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name           string
		prepareMock    func()
		expectedWallet *domain.Wallet
		expectedError  error
	}{
		{
			name: "Existing wallet returned",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(ctx, 1).Return(&domain.Wallet{ID: 7, UserID: 1}, nil)
			},
			expectedWallet: &domain.Wallet{ID: 7, UserID: 1},
		},
		{
			name: "Wallet created on first access",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(ctx, 1).Return(nil, nil)
				repo.EXPECT().CreateWallet(ctx, 1).Return(&domain.Wallet{ID: 8, UserID: 1}, nil)
			},
			expectedWallet: &domain.Wallet{ID: 8, UserID: 1},
		},
		{
			name: "Lookup error",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(ctx, 1).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wallet, err := service.GetOrCreate(ctx, 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedWallet, wallet)
			}
		})
	}
}

func TestCredit(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	t.Run("Balance grows and a CREDIT row is appended", func(t *testing.T) {
		wallet := &domain.Wallet{ID: 1, UserID: 1, Balance: decimal.NewFromInt(50)}
		repo.EXPECT().GetByUserIDForUpdate(ctx, 1).Return(wallet, nil)
		repo.EXPECT().UpdateBalances(ctx, 1, gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, walletID int, balance, borrowedTotal decimal.Decimal) (*domain.Wallet, error) {
				assert.True(t, balance.Equal(decimal.NewFromInt(150)))
				assert.True(t, borrowedTotal.IsZero())
				return &domain.Wallet{ID: 1, UserID: 1, Balance: balance}, nil
			},
		)
		repo.EXPECT().CreateTransaction(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx *domain.WalletTransaction) error {
				assert.Equal(t, domain.TxTypeCredit, tx.Type)
				assert.Equal(t, domain.TxStatusCompleted, tx.Status)
				assert.True(t, tx.Amount.Equal(decimal.NewFromInt(100)))
				return nil
			},
		)

		updated, err := service.Credit(ctx, 1, decimal.NewFromInt(100))
		assert.NoError(t, err)
		assert.True(t, updated.Balance.Equal(decimal.NewFromInt(150)))
	})

	t.Run("Wallet created on first top-up", func(t *testing.T) {
		repo.EXPECT().GetByUserIDForUpdate(ctx, 2).Return(nil, nil)
		repo.EXPECT().CreateWallet(ctx, 2).Return(&domain.Wallet{ID: 9, UserID: 2}, nil)
		repo.EXPECT().UpdateBalances(ctx, 9, gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, walletID int, balance, borrowedTotal decimal.Decimal) (*domain.Wallet, error) {
				assert.True(t, balance.Equal(decimal.NewFromInt(100)))
				return &domain.Wallet{ID: 9, UserID: 2, Balance: balance}, nil
			},
		)
		repo.EXPECT().CreateTransaction(ctx, gomock.Any()).Return(nil)

		updated, err := service.Credit(ctx, 2, decimal.NewFromInt(100))
		assert.NoError(t, err)
		assert.Equal(t, 9, updated.ID)
	})

	t.Run("Non-positive amount rejected", func(t *testing.T) {
		_, err := service.Credit(ctx, 1, decimal.Zero)
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = service.Credit(ctx, 1, decimal.NewFromInt(-5))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("Failed transaction append fails the credit", func(t *testing.T) {
		wallet := &domain.Wallet{ID: 1, UserID: 1, Balance: decimal.NewFromInt(50)}
		repo.EXPECT().GetByUserIDForUpdate(ctx, 1).Return(wallet, nil)
		repo.EXPECT().UpdateBalances(ctx, 1, gomock.Any(), gomock.Any()).Return(wallet, nil)
		repo.EXPECT().CreateTransaction(ctx, gomock.Any()).Return(errors.New("insert failed"))

		_, err := service.Credit(ctx, 1, decimal.NewFromInt(100))
		assert.Error(t, err)
	})
}

func TestDebit(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	t.Run("Balance shrinks and a DEBIT row is appended", func(t *testing.T) {
		wallet := &domain.Wallet{ID: 1, UserID: 1, Balance: decimal.NewFromInt(200)}
		repo.EXPECT().GetByUserIDForUpdate(ctx, 1).Return(wallet, nil)
		repo.EXPECT().UpdateBalances(ctx, 1, gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, walletID int, balance, borrowedTotal decimal.Decimal) (*domain.Wallet, error) {
				assert.True(t, balance.Equal(decimal.NewFromInt(120)))
				return &domain.Wallet{ID: 1, UserID: 1, Balance: balance}, nil
			},
		)
		repo.EXPECT().CreateTransaction(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx *domain.WalletTransaction) error {
				assert.Equal(t, domain.TxTypeDebit, tx.Type)
				assert.True(t, tx.Amount.Equal(decimal.NewFromInt(80)))
				return nil
			},
		)

		updated, err := service.Debit(ctx, 1, decimal.NewFromInt(80))
		assert.NoError(t, err)
		assert.True(t, updated.Balance.Equal(decimal.NewFromInt(120)))
	})

	t.Run("Missing wallet", func(t *testing.T) {
		repo.EXPECT().GetByUserIDForUpdate(ctx, 1).Return(nil, nil)

		_, err := service.Debit(ctx, 1, decimal.NewFromInt(10))
		assert.ErrorIs(t, err, ErrWalletNotFound)
	})

	t.Run("Frozen wallet blocks debit", func(t *testing.T) {
		wallet := &domain.Wallet{ID: 1, UserID: 1, Balance: decimal.NewFromInt(200), IsFrozen: true}
		repo.EXPECT().GetByUserIDForUpdate(ctx, 1).Return(wallet, nil)

		_, err := service.Debit(ctx, 1, decimal.NewFromInt(10))
		assert.ErrorIs(t, err, ErrWalletFrozen)
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		wallet := &domain.Wallet{ID: 1, UserID: 1, Balance: decimal.NewFromInt(5)}
		repo.EXPECT().GetByUserIDForUpdate(ctx, 1).Return(wallet, nil)

		_, err := service.Debit(ctx, 1, decimal.NewFromInt(10))
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("Non-positive amount rejected", func(t *testing.T) {
		_, err := service.Debit(ctx, 1, decimal.Zero)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestApplyApprovedCredit(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	t.Run("Balance and borrowed total both grow", func(t *testing.T) {
		wallet := &domain.Wallet{
			ID:            3,
			UserID:        1,
			Balance:       decimal.NewFromInt(10),
			BorrowedTotal: decimal.NewFromInt(100),
		}
		repo.EXPECT().GetByIDForUpdate(ctx, 3).Return(wallet, nil)
		repo.EXPECT().UpdateBalances(ctx, 3, gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, walletID int, balance, borrowedTotal decimal.Decimal) (*domain.Wallet, error) {
				assert.True(t, balance.Equal(decimal.NewFromInt(110)))
				assert.True(t, borrowedTotal.Equal(decimal.NewFromInt(200)))
				return &domain.Wallet{ID: 3, UserID: 1, Balance: balance, BorrowedTotal: borrowedTotal}, nil
			},
		)
		repo.EXPECT().CreateTransaction(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx *domain.WalletTransaction) error {
				assert.Equal(t, domain.TxTypeFacilityCredit, tx.Type)
				assert.True(t, tx.Amount.Equal(decimal.NewFromInt(100)))
				return nil
			},
		)

		updated, err := service.ApplyApprovedCredit(ctx, 3, decimal.NewFromInt(100))
		assert.NoError(t, err)
		assert.True(t, updated.BorrowedTotal.Equal(decimal.NewFromInt(200)))
	})

	t.Run("Missing wallet", func(t *testing.T) {
		repo.EXPECT().GetByIDForUpdate(ctx, 3).Return(nil, nil)

		_, err := service.ApplyApprovedCredit(ctx, 3, decimal.NewFromInt(100))
		assert.ErrorIs(t, err, ErrWalletNotFound)
	})

	t.Run("Non-positive amount rejected", func(t *testing.T) {
		_, err := service.ApplyApprovedCredit(ctx, 3, decimal.Zero)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestFreeze(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	t.Run("Wallet frozen", func(t *testing.T) {
		repo.EXPECT().SetFrozen(ctx, 1, true).Return(&domain.Wallet{ID: 1, UserID: 1, IsFrozen: true}, nil)

		wallet, err := service.Freeze(ctx, 1)
		assert.NoError(t, err)
		assert.True(t, wallet.IsFrozen)
	})

	t.Run("Missing wallet", func(t *testing.T) {
		repo.EXPECT().SetFrozen(ctx, 1, true).Return(nil, nil)

		_, err := service.Freeze(ctx, 1)
		assert.ErrorIs(t, err, ErrWalletNotFound)
	})
}

func TestGetTransactions(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	transactions := []domain.WalletTransaction{
		{ID: 2, UserID: 1, Amount: decimal.NewFromInt(50), Type: domain.TxTypeDebit, CreatedAt: time.Now()},
		{ID: 1, UserID: 1, Amount: decimal.NewFromInt(100), Type: domain.TxTypeCredit, CreatedAt: time.Now().Add(-time.Hour)},
	}
	repo.EXPECT().GetTransactionsByUserID(ctx, 1, 20, 0).Return(transactions, nil)

	got, err := service.GetTransactions(ctx, 1, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	repo.EXPECT().GetTransactionsByUserID(ctx, 1, 20, 0).Return(nil, errors.New("database error"))
	_, err = service.GetTransactions(ctx, 1, 20, 0)
	assert.Error(t, err)
}
