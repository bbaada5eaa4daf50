package progressrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Upsert creates the (user, tier) progress row with zeroed counters, or
// returns the existing one untouched. Re-deposits at the same tier must not
// reset accumulated progress.
func (r *Repository) Upsert(ctx context.Context, userID int, planAmount int) (*domain.PlanProgress, error) {
	query := `
        INSERT INTO plan_progress (user_id, plan_amount)
        VALUES ($1, $2)
        ON CONFLICT (user_id, plan_amount) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, plan_amount, profit, round_count, last_round_date, can_withdraw
    `
	var progress domain.PlanProgress
	err := r.db.QueryRow(ctx, query, userID, planAmount).
		Scan(&progress.ID, &progress.UserID, &progress.PlanAmount, &progress.Profit, &progress.RoundCount, &progress.LastRoundDate, &progress.CanWithdraw)
	if err != nil {
		zap.L().Error("can't upsert plan progress", zap.Error(err))
		return nil, err
	}
	return &progress, nil
}

// ListByUserID returns the user's progress rows, most recently active first.
func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.PlanProgress, error) {
	query := `
        SELECT id, user_id, plan_amount, profit, round_count, last_round_date, can_withdraw
        FROM plan_progress
        WHERE user_id = $1
        ORDER BY last_round_date DESC NULLS LAST
    `
	return r.list(ctx, query, userID)
}

// ListByUserIDForUpdate locks all of the user's progress rows so the
// balance-check-then-deduct sequence cannot race another withdrawal or a
// round completion.
func (r *Repository) ListByUserIDForUpdate(ctx context.Context, userID int) ([]domain.PlanProgress, error) {
	query := `
        SELECT id, user_id, plan_amount, profit, round_count, last_round_date, can_withdraw
        FROM plan_progress
        WHERE user_id = $1
        ORDER BY last_round_date DESC NULLS LAST
        FOR UPDATE
    `
	return r.list(ctx, query, userID)
}

func (r *Repository) list(ctx context.Context, query string, userID int) ([]domain.PlanProgress, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get plan progress rows", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var progresses []domain.PlanProgress
	for rows.Next() {
		var progress domain.PlanProgress
		err := rows.Scan(&progress.ID, &progress.UserID, &progress.PlanAmount, &progress.Profit, &progress.RoundCount, &progress.LastRoundDate, &progress.CanWithdraw)
		if err != nil {
			zap.L().Error("can't scan plan progress row", zap.Error(err))
			return nil, err
		}
		progresses = append(progresses, progress)
	}
	return progresses, nil
}

// CompleteRound applies the daily credit if and only if no round has been
// completed on or after dayStart. The guard lives in the WHERE clause, so two
// concurrent same-day calls resolve to exactly one update; the loser gets
// (nil, nil).
func (r *Repository) CompleteRound(ctx context.Context, userID int, planAmount int, profit decimal.Decimal, now time.Time, dayStart time.Time) (*domain.PlanProgress, error) {
	query := `
        UPDATE plan_progress
        SET profit = profit + $1, round_count = round_count + 1, last_round_date = $2, can_withdraw = TRUE
        WHERE user_id = $3 AND plan_amount = $4 AND (last_round_date IS NULL OR last_round_date < $5)
        RETURNING id, user_id, plan_amount, profit, round_count, last_round_date, can_withdraw
    `
	var progress domain.PlanProgress
	err := r.db.QueryRow(ctx, query, profit, now, userID, planAmount, dayStart).
		Scan(&progress.ID, &progress.UserID, &progress.PlanAmount, &progress.Profit, &progress.RoundCount, &progress.LastRoundDate, &progress.CanWithdraw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't complete round", zap.Error(err))
		return nil, err
	}
	return &progress, nil
}

func (r *Repository) SumProfit(ctx context.Context, userID int) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(profit), 0)
        FROM plan_progress
        WHERE user_id = $1
    `
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, query, userID).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum profit", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

// LastRoundDate returns the most recent round completion across all of the
// user's plans, or nil when no round was ever completed.
func (r *Repository) LastRoundDate(ctx context.Context, userID int) (*time.Time, error) {
	query := `
        SELECT MAX(last_round_date)
        FROM plan_progress
        WHERE user_id = $1
    `
	var last *time.Time
	err := r.db.QueryRow(ctx, query, userID).Scan(&last)
	if err != nil {
		zap.L().Error("can't get last round date", zap.Error(err))
		return nil, err
	}
	return last, nil
}

// DeductProfit subtracts amount from a single progress row. The profit >= $1
// guard keeps the row from ever going negative regardless of caller bugs.
func (r *Repository) DeductProfit(ctx context.Context, progressID int, amount decimal.Decimal) error {
	query := `
        UPDATE plan_progress
        SET profit = profit - $1
        WHERE id = $2 AND profit >= $1
    `
	tag, err := r.db.Exec(ctx, query, amount, progressID)
	if err != nil {
		zap.L().Error("can't deduct profit", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("profit deduction would go negative")
	}
	return nil
}
