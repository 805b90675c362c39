package walletrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

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

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, credit_limit, borrowed_total, is_frozen
        FROM wallets
        WHERE user_id = $1
    `
	return r.scanWallet(r.db.QueryRow(ctx, query, userID))
}

// GetByUserIDForUpdate locks the wallet row for the duration of the
// enclosing transaction so no concurrent mutation can interleave
// between the balance check and the write.
func (r *Repository) GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, credit_limit, borrowed_total, is_frozen
        FROM wallets
        WHERE user_id = $1
        FOR UPDATE
    `
	return r.scanWallet(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, walletID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, credit_limit, borrowed_total, is_frozen
        FROM wallets
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanWallet(r.db.QueryRow(ctx, query, walletID))
}

func (r *Repository) CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, balance, credit_limit, borrowed_total, is_frozen)
        VALUES ($1, 0, 0, 0, FALSE)
        RETURNING id, user_id, balance, credit_limit, borrowed_total, is_frozen
    `
	wallet, err := r.scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) UpdateBalances(ctx context.Context, walletID int, balance, borrowedTotal decimal.Decimal) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = $1, borrowed_total = $2
        WHERE id = $3
        RETURNING id, user_id, balance, credit_limit, borrowed_total, is_frozen
    `
	wallet, err := r.scanWallet(r.db.QueryRow(ctx, query, balance, borrowedTotal, walletID))
	if err != nil {
		zap.L().Error("failed to update wallet balances", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) SetFrozen(ctx context.Context, userID int, frozen bool) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET is_frozen = $1
        WHERE user_id = $2
        RETURNING id, user_id, balance, credit_limit, borrowed_total, is_frozen
    `
	return r.scanWallet(r.db.QueryRow(ctx, query, frozen, userID))
}

func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) error {
	query := `
        INSERT INTO wallet_transactions (user_id, wallet_id, amount, transaction_type, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, tx.UserID, tx.WalletID, tx.Amount, tx.Type, tx.Status, tx.CreatedAt).Scan(&tx.ID)
	if err != nil {
		zap.L().Error("failed to append wallet transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetTransactionsByUserID(ctx context.Context, userID, limit, offset int) ([]domain.WalletTransaction, error) {
	query := `
        SELECT id, user_id, wallet_id, amount, transaction_type, status, created_at
        FROM wallet_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.WalletTransaction
	for rows.Next() {
		var tx domain.WalletTransaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.WalletID, &tx.Amount, &tx.Type, &tx.Status, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan wallet transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// SumDebitsInWindow aggregates completed DEBIT amounts with created_at
// in [from, to). The spend-window guard reads this against the active
// facility's per-phase allowance.
func (r *Repository) SumDebitsInWindow(ctx context.Context, userID int, from, to time.Time) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM wallet_transactions
        WHERE user_id = $1
          AND transaction_type = 'DEBIT'
          AND status = 'COMPLETED'
          AND created_at >= $2
          AND created_at < $3
    `
	var sum decimal.Decimal
	err := r.db.QueryRow(ctx, query, userID, from, to).Scan(&sum)
	if err != nil {
		zap.L().Error("failed to sum debits in window", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.CreditLimit, &wallet.BorrowedTotal, &wallet.IsFrozen)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to scan wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}
