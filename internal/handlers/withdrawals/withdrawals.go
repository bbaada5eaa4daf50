package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/internal/dto"
	"github.com/watchearn/watchearn/internal/service/withdrawalservice"
	"github.com/watchearn/watchearn/pkg/auth"
	"github.com/watchearn/watchearn/pkg/utils"
)

type Service interface {
	RequestWithdrawal(ctx context.Context, userID int, amount decimal.Decimal, currency, recipientAddress string) (*domain.Withdrawal, error)
	GetHistory(ctx context.Context, userID int) (*withdrawalservice.History, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// Submit godoc
//
//	@Summary		Request a withdrawal
//	@Description	Deduct the requested amount from accrued profit and record a pending withdrawal
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitWithdrawalRequestDTO	true	"Withdrawal payload"
//	@Success		201		{object}	dto.SubmitWithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals [post]
func (h *WithdrawalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SubmitWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	amount := decimal.NewFromFloat(req.Amount)
	withdrawal, err := h.withdrawalService.RequestWithdrawal(r.Context(), userID, amount, req.Currency, req.RecipientAddress)
	if err != nil {
		var insufficient *withdrawalservice.InsufficientBalanceError
		switch {
		case errors.Is(err, withdrawalservice.ErrInvalidAmount),
			errors.Is(err, withdrawalservice.ErrMissingRecipient),
			errors.Is(err, withdrawalservice.ErrUnsupportedCurrency):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &insufficient):
			utils.RespondWithError(w, http.StatusPaymentRequired, insufficient.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.SubmitWithdrawalResponseDTO{
		Message:    "Withdrawal request submitted successfully. It will be processed within 24 hours.",
		Withdrawal: toDTO(*withdrawal),
	})
}

// History godoc
//
//	@Summary		Get withdrawal history
//	@Description	List the authenticated user's withdrawals with per-status counts and summed amount
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WithdrawalHistoryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals/history [get]
func (h *WithdrawalHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	history, err := h.withdrawalService.GetHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	resp := dto.WithdrawalHistoryResponseDTO{
		Withdrawals: make([]dto.WithdrawalDTO, len(history.Withdrawals)),
		Stats: dto.StatusStatsDTO{
			Total:       history.Stats.Total,
			Pending:     history.Stats.Pending,
			Completed:   history.Stats.Completed,
			Rejected:    history.Stats.Rejected,
			TotalAmount: history.Stats.TotalAmount.InexactFloat64(),
		},
	}
	for i, wd := range history.Withdrawals {
		resp.Withdrawals[i] = toDTO(wd)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func toDTO(wd domain.Withdrawal) dto.WithdrawalDTO {
	return dto.WithdrawalDTO{
		ID:               wd.ID,
		Amount:           wd.Amount.InexactFloat64(),
		Currency:         wd.Currency,
		RecipientAddress: wd.RecipientAddress,
		Status:           wd.Status,
		CreatedAt:        wd.CreatedAt,
	}
}
