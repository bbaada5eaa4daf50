package depositservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/internal/pg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DepositRepo interface {
	Save(ctx context.Context, deposit *domain.Deposit) error
	FindDepositsByUserID(ctx context.Context, userID int) ([]domain.Deposit, error)
	GetDepositStats(ctx context.Context, userID int) (*domain.StatusStats, error)
}

type ProgressRepo interface {
	Upsert(ctx context.Context, userID int, planAmount int) (*domain.PlanProgress, error)
	LastRoundDate(ctx context.Context, userID int) (*time.Time, error)
}

var (
	ErrInvalidAmount               = errors.New("amount must be a positive number")
	ErrMissingTransactionReference = errors.New("transaction hash is required")
	ErrUnsupportedCurrency         = errors.New("unsupported currency")
)

// DepositLockedError rejects a re-deposit within the rolling lock window
// measured from the user's most recent completed round.
type DepositLockedError struct {
	DaysRemaining int
}

func (e *DepositLockedError) Error() string {
	return fmt.Sprintf("deposits are locked for %d more days", e.DaysRemaining)
}

type History struct {
	Deposits []domain.Deposit
	Stats    domain.StatusStats
}

type Service struct {
	depositRepo  DepositRepo
	progressRepo ProgressRepo
	txManager    pg.TXManager
	lockDuration time.Duration
	now          func() time.Time
}

func New(depositRepo DepositRepo, progressRepo ProgressRepo, txManager pg.TXManager, lockDuration time.Duration) *Service {
	return &Service{
		depositRepo:  depositRepo,
		progressRepo: progressRepo,
		txManager:    txManager,
		lockDuration: lockDuration,
		now:          time.Now,
	}
}

// SubmitDeposit records a pending deposit and materializes the progress row
// for tier floor(amount). An existing row at that tier is left untouched, so
// re-depositing never resets earned profit. Note the tier is keyed off the
// raw amount: a 75.90 deposit keys to tier 75, which no plan defines, and
// such a row can never accrue.
func (s *Service) SubmitDeposit(ctx context.Context, userID int, amount decimal.Decimal, currency, transactionHash, paymentProofURL string) (*domain.Deposit, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if transactionHash == "" {
		return nil, ErrMissingTransactionReference
	}
	if !domain.RecognizedCurrency(currency) {
		return nil, ErrUnsupportedCurrency
	}

	lastRound, err := s.progressRepo.LastRoundDate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if lastRound != nil {
		unlockAt := lastRound.Add(s.lockDuration)
		if now := s.now(); now.Before(unlockAt) {
			days := int(unlockAt.Sub(now).Hours()/24) + 1
			zap.L().Info("deposit rejected, lock active", zap.Int("user_id", userID), zap.Int("days_remaining", days))
			return nil, &DepositLockedError{DaysRemaining: days}
		}
	}

	deposit := &domain.Deposit{
		UserID:          userID,
		Amount:          amount,
		Currency:        currency,
		TransactionHash: transactionHash,
		PaymentProofURL: paymentProofURL,
		Status:          domain.DepositStatusPending,
	}

	planAmount := int(amount.Floor().IntPart())
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.depositRepo.Save(ctx, deposit); err != nil {
			return err
		}
		_, err := s.progressRepo.Upsert(ctx, userID, planAmount)
		return err
	})
	if err != nil {
		zap.L().Error("can't submit deposit", zap.Error(err))
		return nil, err
	}

	zap.L().Info("deposit submitted",
		zap.Int("user_id", userID),
		zap.String("amount", amount.String()),
		zap.Int("plan_amount", planAmount),
	)
	return deposit, nil
}

// GetHistory fetches the user's deposits and their per-status stats.
func (s *Service) GetHistory(ctx context.Context, userID int) (*History, error) {
	var (
		deposits []domain.Deposit
		stats    *domain.StatusStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deposits, err = s.depositRepo.FindDepositsByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.depositRepo.GetDepositStats(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to fetch deposit history", zap.Error(err))
		return nil, err
	}

	return &History{Deposits: deposits, Stats: *stats}, nil
}
