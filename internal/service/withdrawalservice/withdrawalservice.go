package withdrawalservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/internal/pg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ProgressRepo interface {
	ListByUserIDForUpdate(ctx context.Context, userID int) ([]domain.PlanProgress, error)
	DeductProfit(ctx context.Context, progressID int, amount decimal.Decimal) error
}

type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	GetWithdrawalStats(ctx context.Context, userID int) (*domain.StatusStats, error)
}

var (
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrMissingRecipient    = errors.New("recipient address is required")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

// InsufficientBalanceError carries the available total so the caller can
// render a precise message.
type InsufficientBalanceError struct {
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance, available profit is %s", e.Available.String())
}

type History struct {
	Withdrawals []domain.Withdrawal
	Stats       domain.StatusStats
}

type Service struct {
	progressRepo   ProgressRepo
	withdrawalRepo WithdrawalRepo
	txManager      pg.TXManager
}

func New(progressRepo ProgressRepo, withdrawalRepo WithdrawalRepo, txManager pg.TXManager) *Service {
	return &Service{
		progressRepo:   progressRepo,
		withdrawalRepo: withdrawalRepo,
		txManager:      txManager,
	}
}

// RequestWithdrawal deducts amount from the user's plans, most recently
// active first, and records a pending withdrawal. The progress rows stay
// locked from the balance check through the deductions, so concurrent
// requests cannot both spend the same profit; everything commits or nothing
// does.
func (s *Service) RequestWithdrawal(ctx context.Context, userID int, amount decimal.Decimal, currency, recipientAddress string) (*domain.Withdrawal, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if recipientAddress == "" {
		return nil, ErrMissingRecipient
	}
	if !domain.RecognizedCurrency(currency) {
		return nil, ErrUnsupportedCurrency
	}

	var withdrawal *domain.Withdrawal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		progresses, err := s.progressRepo.ListByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		available := decimal.Zero
		for _, p := range progresses {
			available = available.Add(p.Profit)
		}
		if amount.GreaterThan(available) {
			zap.L().Info("withdrawal rejected, insufficient balance",
				zap.Int("user_id", userID),
				zap.String("requested", amount.String()),
				zap.String("available", available.String()),
			)
			return &InsufficientBalanceError{Available: available}
		}

		remaining := amount
		for _, p := range progresses {
			if !remaining.IsPositive() {
				break
			}
			deduct := decimal.Min(p.Profit, remaining)
			if !deduct.IsPositive() {
				continue
			}
			if err := s.progressRepo.DeductProfit(ctx, p.ID, deduct); err != nil {
				return err
			}
			remaining = remaining.Sub(deduct)
		}

		withdrawal, err = s.withdrawalRepo.CreateWithdrawal(ctx, &domain.Withdrawal{
			UserID:           userID,
			Amount:           amount,
			Currency:         currency,
			RecipientAddress: recipientAddress,
			Status:           domain.WithdrawalStatusPending,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("withdrawal requested",
		zap.Int("user_id", userID),
		zap.String("amount", amount.String()),
	)
	return withdrawal, nil
}

// GetHistory fetches the user's withdrawals and their per-status stats.
func (s *Service) GetHistory(ctx context.Context, userID int) (*History, error) {
	var (
		withdrawals []domain.Withdrawal
		stats       *domain.StatusStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		withdrawals, err = s.withdrawalRepo.GetWithdrawalsByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.withdrawalRepo.GetWithdrawalStats(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to fetch withdrawal history", zap.Error(err))
		return nil, err
	}

	return &History{Withdrawals: withdrawals, Stats: *stats}, nil
}
