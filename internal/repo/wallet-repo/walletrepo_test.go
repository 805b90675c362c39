package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/agrofount/agrofount-credit/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const walletColumns = "SELECT id, user_id, balance, credit_limit, borrowed_total, is_frozen"

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func walletRow() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "balance", "credit_limit", "borrowed_total", "is_frozen"}).
		AddRow(1, 1, decimal.NewFromInt(100), decimal.Zero, decimal.NewFromInt(50), false)
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name: "Wallet found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(walletColumns)).
					WithArgs(1).
					WillReturnRows(walletRow())
			},
			result: &domain.Wallet{
				ID:            1,
				UserID:        1,
				Balance:       decimal.NewFromInt(100),
				CreditLimit:   decimal.Zero,
				BorrowedTotal: decimal.NewFromInt(50),
			},
		},
		{
			name: "Wallet missing returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(walletColumns)).
					WithArgs(1).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(walletColumns)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_CreateWallet(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "user_id", "balance", "credit_limit", "borrowed_total", "is_frozen"}).
		AddRow(3, 2, decimal.Zero, decimal.Zero, decimal.Zero, false)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallets")).
		WithArgs(2).
		WillReturnRows(rows)

	wallet, err := repo.CreateWallet(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, 3, wallet.ID)
	assert.True(t, wallet.Balance.IsZero())
	assert.True(t, wallet.BorrowedTotal.IsZero())
}

func TestRepository_UpdateBalances(t *testing.T) {
	repo, mock := NewMock(t)

	balance := decimal.NewFromInt(150)
	borrowed := decimal.NewFromInt(50)
	rows := pgxmock.NewRows([]string{"id", "user_id", "balance", "credit_limit", "borrowed_total", "is_frozen"}).
		AddRow(1, 1, balance, decimal.Zero, borrowed, false)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE wallets")).
		WithArgs(balance, borrowed, 1).
		WillReturnRows(rows)

	wallet, err := repo.UpdateBalances(context.Background(), 1, balance, borrowed)
	assert.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(balance))
	assert.True(t, wallet.BorrowedTotal.Equal(borrowed))

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE wallets")).
		WithArgs(balance, borrowed, 1).
		WillReturnError(errors.New("database error"))

	_, err = repo.UpdateBalances(context.Background(), 1, balance, borrowed)
	assert.Error(t, err)
}

func TestRepository_SetFrozen(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "user_id", "balance", "credit_limit", "borrowed_total", "is_frozen"}).
		AddRow(1, 1, decimal.NewFromInt(100), decimal.Zero, decimal.Zero, true)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE wallets")).
		WithArgs(true, 1).
		WillReturnRows(rows)

	wallet, err := repo.SetFrozen(context.Background(), 1, true)
	assert.NoError(t, err)
	assert.True(t, wallet.IsFrozen)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE wallets")).
		WithArgs(true, 1).
		WillReturnError(pgx.ErrNoRows)

	wallet, err = repo.SetFrozen(context.Background(), 1, true)
	assert.NoError(t, err)
	assert.Nil(t, wallet)
}

func TestRepository_CreateTransaction(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	tx := &domain.WalletTransaction{
		UserID:    1,
		WalletID:  1,
		Amount:    decimal.NewFromInt(100),
		Type:      domain.TxTypeCredit,
		Status:    domain.TxStatusCompleted,
		CreatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallet_transactions")).
		WithArgs(1, 1, tx.Amount, domain.TxTypeCredit, domain.TxStatusCompleted, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

	err := repo.CreateTransaction(context.Background(), tx)
	assert.NoError(t, err)
	assert.Equal(t, 7, tx.ID)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallet_transactions")).
		WithArgs(1, 1, tx.Amount, domain.TxTypeCredit, domain.TxStatusCompleted, now).
		WillReturnError(errors.New("database error"))

	err = repo.CreateTransaction(context.Background(), tx)
	assert.Error(t, err)
}

func TestRepository_GetTransactionsByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "user_id", "wallet_id", "amount", "transaction_type", "status", "created_at"}).
		AddRow(2, 1, 1, decimal.NewFromInt(50), domain.TxTypeDebit, domain.TxStatusCompleted, now).
		AddRow(1, 1, 1, decimal.NewFromInt(100), domain.TxTypeCredit, domain.TxStatusCompleted, now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions")).
		WithArgs(1, 20, 0).
		WillReturnRows(rows)

	transactions, err := repo.GetTransactionsByUserID(context.Background(), 1, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, domain.TxTypeDebit, transactions[0].Type)

	mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions")).
		WithArgs(1, 20, 0).
		WillReturnError(errors.New("database error"))

	_, err = repo.GetTransactionsByUserID(context.Background(), 1, 20, 0)
	assert.Error(t, err)
}

func TestRepository_SumDebitsInWindow(t *testing.T) {
	repo, mock := NewMock(t)

	from := time.Now().Add(-14 * 24 * time.Hour)
	to := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(amount), 0)")).
		WithArgs(1, from, to).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(decimal.NewFromInt(60000)))

	sum, err := repo.SumDebitsInWindow(context.Background(), 1, from, to)
	assert.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(60000)))

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(amount), 0)")).
		WithArgs(1, from, to).
		WillReturnError(errors.New("database error"))

	_, err = repo.SumDebitsInWindow(context.Background(), 1, from, to)
	assert.Error(t, err)
}
