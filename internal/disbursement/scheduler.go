package disbursement

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/agrofount/agrofount-credit/internal/config"
	"github.com/agrofount/agrofount-credit/internal/domain"
	"github.com/agrofount/agrofount-credit/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=scheduler.go -destination=scheduler_mock.go -package=disbursement

const runTimeout = 5 * time.Minute

var processingDisbursements sync.Map

type Repo interface {
	FindDueForProcessing(ctx context.Context, now time.Time, limit uint32) ([]domain.Disbursement, error)
	MarkCompleted(ctx context.Context, id int) (bool, error)
}

type Ledger interface {
	GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error)
	ApplyApprovedCredit(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error)
}

// Detail records the outcome of one disbursement row in a run.
type Detail struct {
	DisbursementID int             `json:"disbursement_id"`
	FacilityID     int             `json:"facility_id"`
	Phase          int             `json:"phase"`
	Amount         decimal.Decimal `json:"amount"`
	Error          string          `json:"error,omitempty"`
}

// RunSummary is returned by every scheduler pass.
type RunSummary struct {
	RunID          uuid.UUID `json:"run_id"`
	ProcessedCount int       `json:"processed_count"`
	Details        []Detail  `json:"details"`
}

// Scheduler periodically applies due disbursement phases to wallets.
// Each row is processed in its own transaction: the completed-flag flip
// and the wallet credit commit together, and one row's failure leaves
// its siblings untouched for the next run.
type Scheduler struct {
	repo        Repo
	ledger      Ledger
	txManager   pg.TXManager
	workerPool  WorkerPoolI
	limit       uint32
	runInterval time.Duration
}

func New(cfg *config.Config, repo Repo, ledger Ledger, txManager pg.TXManager) *Scheduler {
	return &Scheduler{
		repo:        repo,
		ledger:      ledger,
		txManager:   txManager,
		workerPool:  NewWorkerPool(10),
		limit:       1000,
		runInterval: cfg.DisbursementInterval,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	zap.L().Info("Disbursement scheduler started", zap.Duration("interval", s.runInterval))
	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.runInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping disbursement scheduler")
			return
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(ctx, runTimeout)
			s.ProcessDue(runCtx)
			cancel()
		}
	}
}

// ProcessDue finds due, not-yet-completed disbursements and applies each
// exactly once. Rows not yet due stay untouched for the next pass.
func (s *Scheduler) ProcessDue(ctx context.Context) *RunSummary {
	summary := &RunSummary{RunID: uuid.New()}

	due, err := s.repo.FindDueForProcessing(ctx, time.Now(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch due disbursements", zap.Error(err))
		return summary
	}

	var mu sync.Mutex
	var g errgroup.Group
	for _, d := range due {
		d := d

		if _, loaded := processingDisbursements.LoadOrStore(d.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			done := make(chan error, 1)
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingDisbursements.Delete(d.ID)

				detail := Detail{
					DisbursementID: d.ID,
					FacilityID:     d.FacilityID,
					Phase:          d.Phase,
					Amount:         d.Amount,
				}
				processed, err := s.applyDisbursement(ctx, d)
				if err != nil {
					detail.Error = err.Error()
					zap.L().Error("Failed to process disbursement",
						zap.Int("disbursementID", d.ID), zap.Error(err))
				}

				mu.Lock()
				if processed {
					summary.ProcessedCount++
				}
				summary.Details = append(summary.Details, detail)
				mu.Unlock()
				done <- err
				return err
			})
			if err != nil {
				processingDisbursements.Delete(d.ID)
				return err
			}
			return <-done
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing disbursements", zap.Error(err))
	}

	zap.L().Info("Disbursement run finished",
		zap.String("runID", summary.RunID.String()),
		zap.Int("processed", summary.ProcessedCount),
	)
	return summary
}

// applyDisbursement credits one phase and marks it completed in a
// single transaction. The completed-flag guard makes re-runs and
// overlapping workers skip rows another pass already handled.
func (s *Scheduler) applyDisbursement(ctx context.Context, d domain.Disbursement) (bool, error) {
	var processed bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.MarkCompleted(ctx, d.ID)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		wallet, err := s.ledger.GetOrCreate(ctx, d.UserID)
		if err != nil {
			return err
		}
		if _, err := s.ledger.ApplyApprovedCredit(ctx, wallet.ID, d.Amount); err != nil {
			return err
		}
		processed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return processed, nil
}
