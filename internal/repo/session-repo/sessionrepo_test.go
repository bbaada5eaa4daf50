package sessionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/watchearn/watchearn/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()
	expiresAt := timeNow.Add(168 * time.Hour)

	t.Run("Session created", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sessions (user_id, token, expires_at)`)).
			WithArgs(1, "token-abc", expiresAt).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, timeNow))

		result, err := repo.Create(context.Background(), &domain.Session{
			UserID:    1,
			Token:     "token-abc",
			ExpiresAt: expiresAt,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, result.ID)
		assert.Equal(t, timeNow, result.CreatedAt)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sessions (user_id, token, expires_at)`)).
			WithArgs(1, "token-abc", expiresAt).
			WillReturnError(errors.New("database error"))

		result, err := repo.Create(context.Background(), &domain.Session{
			UserID:    1,
			Token:     "token-abc",
			ExpiresAt: expiresAt,
		})
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		token     string
		mockSetup func()
		expectErr bool
		result    *domain.Session
	}{
		{
			name:  "Active session found",
			token: "token-abc",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "token", "expires_at", "created_at"}).
					AddRow(1, 1, "token-abc", timeNow.Add(time.Hour), timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE token = $1 AND expires_at > now()`)).
					WithArgs("token-abc").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Session{
				ID:        1,
				UserID:    1,
				Token:     "token-abc",
				ExpiresAt: timeNow.Add(time.Hour),
				CreatedAt: timeNow,
			},
		},
		{
			name:  "Session expired or unknown",
			token: "token-dead",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE token = $1 AND expires_at > now()`)).
					WithArgs("token-dead").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			token: "token-abc",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE token = $1 AND expires_at > now()`)).
					WithArgs("token-abc").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindActive(context.Background(), tt.token)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_DeleteExpired(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Expired sessions purged", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM sessions WHERE expires_at <= now()`)).
			WillReturnResult(pgxmock.NewResult("DELETE", 4))

		deleted, err := repo.DeleteExpired(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(4), deleted)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM sessions WHERE expires_at <= now()`)).
			WillReturnError(errors.New("database error"))

		deleted, err := repo.DeleteExpired(context.Background())
		assert.Error(t, err)
		assert.Zero(t, deleted)
	})
}
