package withdrawalrepo

import (
	"context"

	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/internal/pg"
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

func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (user_id, amount, currency, recipient_address, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, withdrawal.UserID, withdrawal.Amount, withdrawal.Currency, withdrawal.RecipientAddress, withdrawal.Status).
		Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	query := `
        SELECT id, user_id, amount, currency, recipient_address, status, created_at
        FROM withdrawals
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		err := rows.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.Currency, &wd.RecipientAddress, &wd.Status, &wd.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, nil
}

func (r *Repository) GetWithdrawalStats(ctx context.Context, userID int) (*domain.StatusStats, error) {
	query := `
        SELECT
            COUNT(*) AS total,
            COUNT(*) FILTER (WHERE status = 'pending') AS pending,
            COUNT(*) FILTER (WHERE status = 'confirm') AS completed,
            COUNT(*) FILTER (WHERE status = 'reject') AS rejected,
            COALESCE(SUM(amount), 0) AS total_amount
        FROM withdrawals
        WHERE user_id = $1
    `
	var stats domain.StatusStats
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&stats.Total, &stats.Pending, &stats.Completed, &stats.Rejected, &stats.TotalAmount)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
