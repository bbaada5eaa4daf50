package depositrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) Save(ctx context.Context, deposit *domain.Deposit) error {
	query := `
        INSERT INTO deposits (user_id, amount, currency, transaction_hash, payment_proof_url, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, deposit.UserID, deposit.Amount, deposit.Currency, deposit.TransactionHash, deposit.PaymentProofURL, deposit.Status).
			Scan(&deposit.ID, &deposit.CreatedAt)
		if err != nil {
			zap.L().Error("can't save deposit", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// FindActiveDeposit returns the newest pending or confirmed deposit whose
// amount covers the given tier, or nil when the user has none.
func (r *Repository) FindActiveDeposit(ctx context.Context, userID int, tierAmount int) (*domain.Deposit, error) {
	query := `
        SELECT id, user_id, amount, currency, transaction_hash, payment_proof_url, status, created_at
        FROM deposits
        WHERE user_id = $1 AND status IN ('pending', 'confirmed') AND amount >= $2
        ORDER BY created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, userID, tierAmount)

	var deposit domain.Deposit
	err := row.Scan(&deposit.ID, &deposit.UserID, &deposit.Amount, &deposit.Currency, &deposit.TransactionHash, &deposit.PaymentProofURL, &deposit.Status, &deposit.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find active deposit", zap.Error(err))
		return nil, err
	}
	return &deposit, nil
}

func (r *Repository) FindDepositsByUserID(ctx context.Context, userID int) ([]domain.Deposit, error) {
	query := `
        SELECT id, user_id, amount, currency, transaction_hash, payment_proof_url, status, created_at
        FROM deposits
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		var deposit domain.Deposit
		err := rows.Scan(&deposit.ID, &deposit.UserID, &deposit.Amount, &deposit.Currency, &deposit.TransactionHash, &deposit.PaymentProofURL, &deposit.Status, &deposit.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, deposit)
	}
	return deposits, nil
}

func (r *Repository) GetDepositStats(ctx context.Context, userID int) (*domain.StatusStats, error) {
	query := `
        SELECT
            COUNT(*) AS total,
            COUNT(*) FILTER (WHERE status = 'pending') AS pending,
            COUNT(*) FILTER (WHERE status = 'confirmed') AS completed,
            COUNT(*) FILTER (WHERE status = 'rejected') AS rejected,
            COALESCE(SUM(amount), 0) AS total_amount
        FROM deposits
        WHERE user_id = $1
    `
	var stats domain.StatusStats
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&stats.Total, &stats.Pending, &stats.Completed, &stats.Rejected, &stats.TotalAmount)
	if err != nil {
		zap.L().Error("can't get deposit stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
