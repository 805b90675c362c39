package walletservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrofount/agrofount-credit/internal/domain"
	"github.com/agrofount/agrofount-credit/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=walletservice.go -destination=walletservice_mock.go -package=walletservice

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, walletID int) (*domain.Wallet, error)
	CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	UpdateBalances(ctx context.Context, walletID int, balance, borrowedTotal decimal.Decimal) (*domain.Wallet, error)
	SetFrozen(ctx context.Context, userID int, frozen bool) (*domain.Wallet, error)
	CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) error
	GetTransactionsByUserID(ctx context.Context, userID, limit, offset int) ([]domain.WalletTransaction, error)
	SumDebitsInWindow(ctx context.Context, userID int, from, to time.Time) (decimal.Decimal, error)
}

// Service is the ledger store. It is the only component that mutates
// wallet balances, and every mutation appends exactly one transaction
// row inside the same unit of work.
type Service struct {
	repo      WalletRepo
	txManager pg.TXManager
}

func New(repo WalletRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrWalletFrozen        = errors.New("wallet is frozen")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

func (s *Service) GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}
	return s.repo.CreateWallet(ctx, userID)
}

// Credit adds spendable funds, creating the wallet on first top-up.
func (s *Service) Credit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var updated *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.repo.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if wallet == nil {
			wallet, err = s.repo.CreateWallet(ctx, userID)
			if err != nil {
				return err
			}
		}

		updated, err = s.repo.UpdateBalances(ctx, wallet.ID, wallet.Balance.Add(amount), wallet.BorrowedTotal)
		if err != nil {
			return err
		}
		return s.appendTransaction(ctx, updated, amount, domain.TxTypeCredit)
	})
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Debit withdraws funds. The frozen check, balance check and write all
// happen under a row lock so concurrent mutations cannot interleave.
func (s *Service) Debit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var updated *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.repo.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}
		if wallet.IsFrozen {
			return ErrWalletFrozen
		}
		if wallet.Balance.LessThan(amount) {
			return ErrInsufficientBalance
		}

		updated, err = s.repo.UpdateBalances(ctx, wallet.ID, wallet.Balance.Sub(amount), wallet.BorrowedTotal)
		if err != nil {
			return err
		}
		return s.appendTransaction(ctx, updated, amount, domain.TxTypeDebit)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ApplyApprovedCredit lands one disbursement phase: balance and
// borrowed total both grow by amount. Callers run it inside their own
// unit of work, so a failed sibling write rolls the credit back too.
func (s *Service) ApplyApprovedCredit(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var updated *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.repo.GetByIDForUpdate(ctx, walletID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}

		updated, err = s.repo.UpdateBalances(ctx, wallet.ID, wallet.Balance.Add(amount), wallet.BorrowedTotal.Add(amount))
		if err != nil {
			return err
		}
		return s.appendTransaction(ctx, updated, amount, domain.TxTypeFacilityCredit)
	})
	if err != nil {
		zap.L().Error("failed to apply approved credit", zap.Int("walletID", walletID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Freeze(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.repo.SetFrozen(ctx, userID, true)
	if err != nil {
		zap.L().Error("failed to freeze wallet", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	zap.L().Info("wallet frozen", zap.Int("userID", userID))
	return wallet, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID, limit, offset int) ([]domain.WalletTransaction, error) {
	transactions, err := s.repo.GetTransactionsByUserID(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) SumDebitsInWindow(ctx context.Context, userID int, from, to time.Time) (decimal.Decimal, error) {
	return s.repo.SumDebitsInWindow(ctx, userID, from, to)
}

func (s *Service) appendTransaction(ctx context.Context, wallet *domain.Wallet, amount decimal.Decimal, txType string) error {
	return s.repo.CreateTransaction(ctx, &domain.WalletTransaction{
		UserID:    wallet.UserID,
		WalletID:  wallet.ID,
		Amount:    amount,
		Type:      txType,
		Status:    domain.TxStatusCompleted,
		CreatedAt: time.Now(),
	})
}
