package sessionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	query := `
        INSERT INTO sessions (user_id, token, expires_at)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, session.UserID, session.Token, session.ExpiresAt).
		Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		zap.L().Error("can't save session", zap.Error(err))
		return nil, err
	}
	return session, nil
}

// FindActive returns the session for token if it has not expired yet.
func (r *Repository) FindActive(ctx context.Context, token string) (*domain.Session, error) {
	query := `
        SELECT id, user_id, token, expires_at, created_at
        FROM sessions
        WHERE token = $1 AND expires_at > now()
    `
	var session domain.Session
	err := r.db.QueryRow(ctx, query, token).
		Scan(&session.ID, &session.UserID, &session.Token, &session.ExpiresAt, &session.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find session", zap.Error(err))
		return nil, err
	}
	return &session, nil
}

// DeleteExpired purges sessions past their expiry and reports how many rows
// were removed.
func (r *Repository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		zap.L().Error("can't delete expired sessions", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
