package planservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/internal/pg"
	"github.com/watchearn/watchearn/internal/plans"
	"go.uber.org/zap"
)

type ProgressRepo interface {
	Upsert(ctx context.Context, userID int, planAmount int) (*domain.PlanProgress, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.PlanProgress, error)
	CompleteRound(ctx context.Context, userID int, planAmount int, profit decimal.Decimal, now time.Time, dayStart time.Time) (*domain.PlanProgress, error)
	SumProfit(ctx context.Context, userID int) (decimal.Decimal, error)
}

type DepositRepo interface {
	FindActiveDeposit(ctx context.Context, userID int, tierAmount int) (*domain.Deposit, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, userID int) (*domain.User, error)
	UpdateStreak(ctx context.Context, userID int, streak int, streakDate time.Time) error
}

var (
	ErrNoActiveDeposit = errors.New("no active deposit found for this plan")
	ErrUserNotFound    = errors.New("user not found")
)

// RoundCooldownError rejects a second round for the same (user, plan) pair
// within one UTC calendar day.
type RoundCooldownError struct {
	NextEligibleAt time.Time
}

func (e *RoundCooldownError) Error() string {
	return fmt.Sprintf("round already completed today, next round available at %s", e.NextEligibleAt.Format(time.RFC3339))
}

type RoundResult struct {
	Progress     domain.PlanProgress
	ProfitEarned decimal.Decimal
	TotalProfit  decimal.Decimal
}

type ProgressSummary struct {
	Progresses  []domain.PlanProgress
	TotalProfit decimal.Decimal
	CanWithdraw bool
	DailyStreak int
}

type Service struct {
	progressRepo ProgressRepo
	depositRepo  DepositRepo
	userRepo     UserRepo
	txManager    pg.TXManager
	now          func() time.Time
}

func New(progressRepo ProgressRepo, depositRepo DepositRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		progressRepo: progressRepo,
		depositRepo:  depositRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		now:          time.Now,
	}
}

// CompleteRound credits one daily round for the (user, tier) pair. Profit,
// round count and streak move in a single transaction; the calendar-day
// cooldown guard sits in the progress UPDATE itself, so concurrent same-day
// calls cannot double-credit.
func (s *Service) CompleteRound(ctx context.Context, userID int, tierAmount int) (*RoundResult, error) {
	plan, err := plans.Lookup(tierAmount)
	if err != nil {
		zap.L().Info("unknown plan tier", zap.Int("tier", tierAmount))
		return nil, err
	}

	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var result RoundResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		deposit, err := s.depositRepo.FindActiveDeposit(ctx, userID, tierAmount)
		if err != nil {
			return err
		}
		if deposit == nil {
			zap.L().Info("round rejected, no backing deposit", zap.Int("user_id", userID), zap.Int("tier", tierAmount))
			return ErrNoActiveDeposit
		}

		if _, err := s.progressRepo.Upsert(ctx, userID, tierAmount); err != nil {
			return err
		}

		updated, err := s.progressRepo.CompleteRound(ctx, userID, tierAmount, plan.DailyProfit, now, dayStart)
		if err != nil {
			return err
		}
		if updated == nil {
			return &RoundCooldownError{NextEligibleAt: dayStart.Add(24 * time.Hour)}
		}

		if err := s.updateStreak(ctx, userID, dayStart); err != nil {
			return err
		}

		total, err := s.progressRepo.SumProfit(ctx, userID)
		if err != nil {
			return err
		}

		result = RoundResult{
			Progress:     *updated,
			ProfitEarned: plan.DailyProfit,
			TotalProfit:  total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("round completed",
		zap.Int("user_id", userID),
		zap.Int("tier", tierAmount),
		zap.String("profit_earned", result.ProfitEarned.String()),
	)
	return &result, nil
}

func (s *Service) updateStreak(ctx context.Context, userID int, today time.Time) error {
	user, err := s.userRepo.FindByIDForUpdate(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	streak := nextStreak(user.DailyStreak, user.LastStreakDate, today)
	if streak == user.DailyStreak && sameDay(user.LastStreakDate, today) {
		return nil
	}
	return s.userRepo.UpdateStreak(ctx, userID, streak, today)
}

// GetAllProgress returns every progress row plus the aggregate view the
// dashboard renders: total profit, withdrawal eligibility and streak.
// Eligibility is derived from profit rather than the stored flag.
func (s *Service) GetAllProgress(ctx context.Context, userID int) (*ProgressSummary, error) {
	progresses, err := s.progressRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list plan progress", zap.Error(err))
		return nil, err
	}

	total := decimal.Zero
	canWithdraw := false
	for _, p := range progresses {
		total = total.Add(p.Profit)
		if p.Profit.IsPositive() {
			canWithdraw = true
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &ProgressSummary{
		Progresses:  progresses,
		TotalProfit: total,
		CanWithdraw: canWithdraw,
		DailyStreak: user.DailyStreak,
	}, nil
}
