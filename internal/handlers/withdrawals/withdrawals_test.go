package withdrawals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/internal/dto"
	"github.com/watchearn/watchearn/internal/service/withdrawalservice"
	"github.com/watchearn/watchearn/pkg/auth"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WithdrawalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	return r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
}

func TestSubmitHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Withdrawal submitted",
			body: `{"amount":12,"currency":"USDT","recipientAddress":"TAddr1"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(gomock.Any(), 1, decimal.NewFromFloat(12), "USDT", "TAddr1").
					Return(&domain.Withdrawal{
						ID:               7,
						UserID:           1,
						Amount:           decimal.NewFromFloat(12),
						Currency:         "USDT",
						RecipientAddress: "TAddr1",
						Status:           "pending",
						CreatedAt:        now,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Non-positive amount",
			body: `{"amount":0,"currency":"USDT","recipientAddress":"TAddr1"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(gomock.Any(), 1, decimal.NewFromFloat(0), "USDT", "TAddr1").
					Return(nil, withdrawalservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "amount must be a positive number",
		},
		{
			name: "Missing recipient",
			body: `{"amount":12,"currency":"USDT"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(gomock.Any(), 1, decimal.NewFromFloat(12), "USDT", "").
					Return(nil, withdrawalservice.ErrMissingRecipient)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "recipient address is required",
		},
		{
			name: "Unsupported currency",
			body: `{"amount":12,"currency":"DOGE","recipientAddress":"TAddr1"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(gomock.Any(), 1, decimal.NewFromFloat(12), "DOGE", "TAddr1").
					Return(nil, withdrawalservice.ErrUnsupportedCurrency)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "unsupported currency",
		},
		{
			name: "Insufficient balance",
			body: `{"amount":12,"currency":"USDT","recipientAddress":"TAddr1"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(gomock.Any(), 1, decimal.NewFromFloat(12), "USDT", "TAddr1").
					Return(nil, &withdrawalservice.InsufficientBalanceError{Available: decimal.NewFromInt(8)})
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient balance, available profit is 8",
		},
		{
			name: "Internal server error",
			body: `{"amount":12,"currency":"USDT","recipientAddress":"TAddr1"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(gomock.Any(), 1, decimal.NewFromFloat(12), "USDT", "TAddr1").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodPost, "/api/withdrawals", tt.body)
			w := httptest.NewRecorder()

			handler.Submit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.SubmitWithdrawalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Contains(t, body.Message, "processed within 24 hours")
				assert.Equal(t, 7, body.Withdrawal.ID)
				assert.Equal(t, 12.0, body.Withdrawal.Amount)
				assert.Equal(t, "pending", body.Withdrawal.Status)
			}
		})
	}
}

func TestHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Date(2025, 8, 30, 9, 0, 0, 0, time.UTC)

	t.Run("History returned", func(t *testing.T) {
		service.EXPECT().
			GetHistory(gomock.Any(), 1).
			Return(&withdrawalservice.History{
				Withdrawals: []domain.Withdrawal{
					{ID: 1, Amount: decimal.NewFromInt(12), Currency: "USDT", RecipientAddress: "TAddr1", Status: "completed", CreatedAt: now},
					{ID: 2, Amount: decimal.NewFromInt(5), Currency: "USDT", RecipientAddress: "TAddr1", Status: "pending", CreatedAt: now},
				},
				Stats: domain.StatusStats{
					Total:       2,
					Pending:     1,
					Completed:   1,
					TotalAmount: decimal.NewFromInt(17),
				},
			}, nil)

		r := authedRequest(http.MethodGet, "/api/withdrawals/history", "")
		w := httptest.NewRecorder()

		handler.History(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.WithdrawalHistoryResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body.Withdrawals, 2)
		assert.Equal(t, 1, body.Stats.Pending)
		assert.Equal(t, 17.0, body.Stats.TotalAmount)
	})

	t.Run("Service error", func(t *testing.T) {
		service.EXPECT().
			GetHistory(gomock.Any(), 1).
			Return(nil, errors.New("error"))

		r := authedRequest(http.MethodGet, "/api/withdrawals/history", "")
		w := httptest.NewRecorder()

		handler.History(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
