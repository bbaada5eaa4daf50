package userrepo

import (
	"context"
	"time"

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

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, name, email, password_hash, daily_streak, last_streak_date FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.DailyStreak, &user.LastStreakDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, name, email, password_hash, daily_streak, last_streak_date FROM users WHERE id = $1", userID).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.DailyStreak, &user.LastStreakDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// FindByIDForUpdate locks the user row for the duration of the surrounding
// transaction, serializing streak updates across concurrent rounds.
func (repo *Repository) FindByIDForUpdate(ctx context.Context, userID int) (*domain.User, error) {
	var user domain.User
	query := `
        SELECT id, name, email, password_hash, daily_streak, last_streak_date
        FROM users
        WHERE id = $1
        FOR UPDATE
    `
	err := repo.db.QueryRow(ctx, query, userID).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.DailyStreak, &user.LastStreakDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock user row", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) UpdateStreak(ctx context.Context, userID int, streak int, streakDate time.Time) error {
	query := `
        UPDATE users
        SET daily_streak = $1, last_streak_date = $2
        WHERE id = $3
    `
	_, err := repo.db.Exec(ctx, query, streak, streakDate, userID)
	if err != nil {
		zap.L().Error("can't update streak", zap.Error(err))
		return err
	}
	return nil
}
