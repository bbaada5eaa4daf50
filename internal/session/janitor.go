package session

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type SessionRepo interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// Janitor periodically purges expired session rows so the sessions table
// does not grow without bound.
type Janitor struct {
	sessionRepo SessionRepo
	interval    time.Duration
}

func NewJanitor(sessionRepo SessionRepo, interval time.Duration) *Janitor {
	return &Janitor{
		sessionRepo: sessionRepo,
		interval:    interval,
	}
}

func (j *Janitor) Start(ctx context.Context) {
	zap.L().Info("Session janitor started")
	go j.run(ctx)
}

func (j *Janitor) run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping session janitor")
			return
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

func (j *Janitor) purge(ctx context.Context) {
	deleted, err := j.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		zap.L().Error("Failed to purge expired sessions", zap.Error(err))
		return
	}
	if deleted > 0 {
		zap.L().Info("Purged expired sessions", zap.Int64("count", deleted))
	}
}
