package depositrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/internal/pg"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		deposit   *domain.Deposit
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Deposit saved successfully",
			deposit: &domain.Deposit{
				UserID:          1,
				Amount:          decimal.NewFromInt(100),
				Currency:        domain.CurrencyUSDT,
				TransactionHash: "0xdeadbeef",
				Status:          domain.DepositStatusPending,
			},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO deposits (user_id, amount, currency, transaction_hash, payment_proof_url, status)`)).
						WithArgs(1, decimal.NewFromInt(100), domain.CurrencyUSDT, "0xdeadbeef", "", domain.DepositStatusPending).
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, timeNow))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Database error",
			deposit: &domain.Deposit{
				UserID:          1,
				Amount:          decimal.NewFromInt(100),
				Currency:        domain.CurrencyUSDT,
				TransactionHash: "0xdeadbeef",
				Status:          domain.DepositStatusPending,
			},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO deposits (user_id, amount, currency, transaction_hash, payment_proof_url, status)`)).
						WithArgs(1, decimal.NewFromInt(100), domain.CurrencyUSDT, "0xdeadbeef", "", domain.DepositStatusPending).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), tt.deposit)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, tt.deposit.ID)
				assert.Equal(t, timeNow, tt.deposit.CreatedAt)
			}
		})
	}
}

func TestRepository_FindActiveDeposit(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name       string
		userID     int
		tierAmount int
		mockSetup  func()
		expectErr  bool
		result     *domain.Deposit
	}{
		{
			name:       "Active deposit covers the tier",
			userID:     1,
			tierAmount: 100,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "currency", "transaction_hash", "payment_proof_url", "status", "created_at"}).
					AddRow(1, 1, decimal.NewFromInt(150), domain.CurrencyUSDT, "0xdeadbeef", "", domain.DepositStatusConfirmed, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`status IN ('pending', 'confirmed') AND amount >= $2`)).
					WithArgs(1, 100).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Deposit{
				ID:              1,
				UserID:          1,
				Amount:          decimal.NewFromInt(150),
				Currency:        domain.CurrencyUSDT,
				TransactionHash: "0xdeadbeef",
				Status:          domain.DepositStatusConfirmed,
				CreatedAt:       timeNow,
			},
		},
		{
			name:       "No active deposit",
			userID:     1,
			tierAmount: 500,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`status IN ('pending', 'confirmed') AND amount >= $2`)).
					WithArgs(1, 500).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:       "Database error",
			userID:     1,
			tierAmount: 100,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`status IN ('pending', 'confirmed') AND amount >= $2`)).
					WithArgs(1, 100).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindActiveDeposit(context.Background(), tt.userID, tt.tierAmount)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindDepositsByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	t.Run("Deposits found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "currency", "transaction_hash", "payment_proof_url", "status", "created_at"}).
			AddRow(2, 1, decimal.NewFromInt(250), domain.CurrencyUSDT, "0xbeef", "/api/files/7", domain.DepositStatusPending, timeNow).
			AddRow(1, 1, decimal.NewFromInt(100), domain.CurrencyUSDT, "0xdead", "", domain.DepositStatusConfirmed, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM deposits`)).
			WithArgs(1).
			WillReturnRows(rows)

		result, err := repo.FindDepositsByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, 2, result[0].ID)
		assert.Equal(t, "/api/files/7", result[0].PaymentProofURL)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM deposits`)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		result, err := repo.FindDepositsByUserID(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_GetDepositStats(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Stats aggregated", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"total", "pending", "completed", "rejected", "total_amount"}).
			AddRow(3, 1, 1, 1, decimal.NewFromInt(450))
		mock.ExpectQuery(regexp.QuoteMeta(`COUNT(*) FILTER (WHERE status = 'confirmed')`)).
			WithArgs(1).
			WillReturnRows(rows)

		result, err := repo.GetDepositStats(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, &domain.StatusStats{
			Total:       3,
			Pending:     1,
			Completed:   1,
			Rejected:    1,
			TotalAmount: decimal.NewFromInt(450),
		}, result)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`COUNT(*) FILTER (WHERE status = 'confirmed')`)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		result, err := repo.GetDepositStats(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
