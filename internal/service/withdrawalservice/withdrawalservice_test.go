package withdrawalservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/internal/pg"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	progressRepo   *MockProgressRepo
	withdrawalRepo *MockWithdrawalRepo
	txManager      *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		progressRepo:   NewMockProgressRepo(ctrl),
		withdrawalRepo: NewMockWithdrawalRepo(ctrl),
		txManager:      pg.NewMockTXManager(ctrl),
	}
	service := New(m.progressRepo, m.withdrawalRepo, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestRequestWithdrawal(t *testing.T) {
	recent := time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC)
	older := recent.Add(-48 * time.Hour)

	tests := []struct {
		name          string
		amount        decimal.Decimal
		currency      string
		recipient     string
		prepareMock   func(m *mocks)
		expectedError error
		check         func(t *testing.T, withdrawal *domain.Withdrawal)
	}{
		{
			name:      "Deduction spans plans most recently active first",
			amount:    decimal.NewFromInt(12),
			currency:  domain.CurrencyUSDT,
			recipient: "TWd2yzw5yvKkQ9HvabM1",
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				// rows arrive ordered by last_round_date DESC NULLS LAST
				m.progressRepo.EXPECT().ListByUserIDForUpdate(gomock.Any(), 1).Return([]domain.PlanProgress{
					{ID: 2, PlanAmount: 250, Profit: decimal.NewFromInt(10), LastRoundDate: &recent},
					{ID: 1, PlanAmount: 100, Profit: decimal.NewFromInt(8), LastRoundDate: &older},
				}, nil)
				m.progressRepo.EXPECT().DeductProfit(gomock.Any(), 2, decimal.NewFromInt(10)).Return(nil)
				m.progressRepo.EXPECT().DeductProfit(gomock.Any(), 1, decimal.NewFromInt(2)).Return(nil)
				m.withdrawalRepo.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
						w.ID = 1
						return w, nil
					})
			},
			check: func(t *testing.T, withdrawal *domain.Withdrawal) {
				assert.Equal(t, 1, withdrawal.ID)
				assert.Equal(t, domain.WithdrawalStatusPending, withdrawal.Status)
				assert.True(t, decimal.NewFromInt(12).Equal(withdrawal.Amount))
			},
		},
		{
			name:      "Single plan covers the full amount",
			amount:    decimal.NewFromInt(4),
			currency:  domain.CurrencyUSDT,
			recipient: "TWd2yzw5yvKkQ9HvabM1",
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.progressRepo.EXPECT().ListByUserIDForUpdate(gomock.Any(), 1).Return([]domain.PlanProgress{
					{ID: 2, PlanAmount: 250, Profit: decimal.NewFromInt(10), LastRoundDate: &recent},
					{ID: 1, PlanAmount: 100, Profit: decimal.NewFromInt(8), LastRoundDate: &older},
				}, nil)
				m.progressRepo.EXPECT().DeductProfit(gomock.Any(), 2, decimal.NewFromInt(4)).Return(nil)
				m.withdrawalRepo.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
						w.ID = 2
						return w, nil
					})
			},
			check: func(t *testing.T, withdrawal *domain.Withdrawal) {
				assert.Equal(t, 2, withdrawal.ID)
			},
		},
		{
			name:      "Zero-profit rows are skipped",
			amount:    decimal.NewFromInt(8),
			currency:  domain.CurrencyUSDT,
			recipient: "TWd2yzw5yvKkQ9HvabM1",
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.progressRepo.EXPECT().ListByUserIDForUpdate(gomock.Any(), 1).Return([]domain.PlanProgress{
					{ID: 3, PlanAmount: 500, Profit: decimal.Zero, LastRoundDate: &recent},
					{ID: 1, PlanAmount: 100, Profit: decimal.NewFromInt(8), LastRoundDate: &older},
				}, nil)
				m.progressRepo.EXPECT().DeductProfit(gomock.Any(), 1, decimal.NewFromInt(8)).Return(nil)
				m.withdrawalRepo.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
						return w, nil
					})
			},
			check: func(t *testing.T, withdrawal *domain.Withdrawal) {
				assert.NotNil(t, withdrawal)
			},
		},
		{
			name:      "Insufficient balance",
			amount:    decimal.NewFromInt(100),
			currency:  domain.CurrencyUSDT,
			recipient: "TWd2yzw5yvKkQ9HvabM1",
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.progressRepo.EXPECT().ListByUserIDForUpdate(gomock.Any(), 1).Return([]domain.PlanProgress{
					{ID: 1, PlanAmount: 100, Profit: decimal.NewFromInt(8)},
				}, nil)
			},
			expectedError: &InsufficientBalanceError{Available: decimal.NewFromInt(8)},
		},
		{
			name:          "Zero amount rejected",
			amount:        decimal.Zero,
			currency:      domain.CurrencyUSDT,
			recipient:     "TWd2yzw5yvKkQ9HvabM1",
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Missing recipient rejected",
			amount:        decimal.NewFromInt(5),
			currency:      domain.CurrencyUSDT,
			recipient:     "",
			prepareMock:   func(m *mocks) {},
			expectedError: ErrMissingRecipient,
		},
		{
			name:          "Unknown currency rejected",
			amount:        decimal.NewFromInt(5),
			currency:      "ETH",
			recipient:     "TWd2yzw5yvKkQ9HvabM1",
			prepareMock:   func(m *mocks) {},
			expectedError: ErrUnsupportedCurrency,
		},
		{
			name:      "Deduction failure aborts the transaction",
			amount:    decimal.NewFromInt(5),
			currency:  domain.CurrencyUSDT,
			recipient: "TWd2yzw5yvKkQ9HvabM1",
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.progressRepo.EXPECT().ListByUserIDForUpdate(gomock.Any(), 1).Return([]domain.PlanProgress{
					{ID: 1, PlanAmount: 100, Profit: decimal.NewFromInt(8)},
				}, nil)
				m.progressRepo.EXPECT().DeductProfit(gomock.Any(), 1, decimal.NewFromInt(5)).Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)
			withdrawal, err := service.RequestWithdrawal(context.Background(), 1, tt.amount, tt.currency, tt.recipient)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, withdrawal)
			} else {
				assert.NoError(t, err)
				tt.check(t, withdrawal)
			}
		})
	}
}

func TestRequestWithdrawal_ExactBalance(t *testing.T) {
	service, m := NewMock(t)

	passthroughTx(m)
	m.progressRepo.EXPECT().ListByUserIDForUpdate(gomock.Any(), 1).Return([]domain.PlanProgress{
		{ID: 1, PlanAmount: 100, Profit: decimal.NewFromInt(8)},
	}, nil)
	m.progressRepo.EXPECT().DeductProfit(gomock.Any(), 1, decimal.NewFromInt(8)).Return(nil)
	m.withdrawalRepo.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
			return w, nil
		})

	withdrawal, err := service.RequestWithdrawal(context.Background(), 1, decimal.NewFromInt(8), domain.CurrencyUSDT, "TWd2yzw5yvKkQ9HvabM1")
	assert.NoError(t, err)
	assert.NotNil(t, withdrawal)
}

func TestWithdrawalGetHistory(t *testing.T) {
	service, m := NewMock(t)

	t.Run("History with stats", func(t *testing.T) {
		m.withdrawalRepo.EXPECT().GetWithdrawalsByUserID(gomock.Any(), 1).Return([]domain.Withdrawal{
			{ID: 1, Amount: decimal.NewFromInt(6), Status: domain.WithdrawalStatusPending},
		}, nil)
		m.withdrawalRepo.EXPECT().GetWithdrawalStats(gomock.Any(), 1).Return(&domain.StatusStats{
			Total: 1, Pending: 1, TotalAmount: decimal.NewFromInt(6),
		}, nil)

		history, err := service.GetHistory(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, history.Withdrawals, 1)
		assert.Equal(t, 1, history.Stats.Pending)
	})

	t.Run("Stats fail", func(t *testing.T) {
		m.withdrawalRepo.EXPECT().GetWithdrawalsByUserID(gomock.Any(), 1).Return(nil, nil).AnyTimes()
		m.withdrawalRepo.EXPECT().GetWithdrawalStats(gomock.Any(), 1).Return(nil, errors.New("some error"))

		history, err := service.GetHistory(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, history)
	})
}
