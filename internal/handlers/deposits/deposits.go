package deposits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/internal/dto"
	"github.com/watchearn/watchearn/internal/service/depositservice"
	"github.com/watchearn/watchearn/pkg/auth"
	"github.com/watchearn/watchearn/pkg/utils"
)

type Service interface {
	SubmitDeposit(ctx context.Context, userID int, amount decimal.Decimal, currency, transactionHash, paymentProofURL string) (*domain.Deposit, error)
	GetHistory(ctx context.Context, userID int) (*depositservice.History, error)
}

type DepositHandler struct {
	depositService Service
}

func New(depositService Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

// Submit godoc
//
//	@Summary		Submit a deposit
//	@Description	Record a pending deposit and open the matching plan tier for the authenticated user
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitDepositRequestDTO	true	"Deposit payload"
//	@Success		201		{object}	dto.SubmitDepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		423		{object}	utils.Response	"Deposit lock active"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/deposits [post]
func (h *DepositHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SubmitDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	amount := decimal.NewFromFloat(req.Amount)
	deposit, err := h.depositService.SubmitDeposit(r.Context(), userID, amount, req.Currency, req.TransactionHash, req.PaymentProofURL)
	if err != nil {
		var locked *depositservice.DepositLockedError
		switch {
		case errors.Is(err, depositservice.ErrInvalidAmount),
			errors.Is(err, depositservice.ErrMissingTransactionReference),
			errors.Is(err, depositservice.ErrUnsupportedCurrency):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &locked):
			utils.RespondWithError(w, http.StatusLocked, locked.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.SubmitDepositResponseDTO{
		Message: "Deposit confirmation submitted successfully",
		Deposit: toDTO(*deposit),
	})
}

// History godoc
//
//	@Summary		Get deposit history
//	@Description	List the authenticated user's deposits with per-status counts and summed amount
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DepositHistoryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/deposits/history [get]
func (h *DepositHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	history, err := h.depositService.GetHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deposits")
		return
	}

	resp := dto.DepositHistoryResponseDTO{
		Deposits: make([]dto.DepositDTO, len(history.Deposits)),
		Stats: dto.StatusStatsDTO{
			Total:       history.Stats.Total,
			Pending:     history.Stats.Pending,
			Completed:   history.Stats.Completed,
			Rejected:    history.Stats.Rejected,
			TotalAmount: history.Stats.TotalAmount.InexactFloat64(),
		},
	}
	for i, d := range history.Deposits {
		resp.Deposits[i] = toDTO(d)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func toDTO(d domain.Deposit) dto.DepositDTO {
	return dto.DepositDTO{
		ID:              d.ID,
		Amount:          d.Amount.InexactFloat64(),
		Currency:        d.Currency,
		TransactionHash: d.TransactionHash,
		PaymentProofURL: d.PaymentProofURL,
		Status:          d.Status,
		CreatedAt:       d.CreatedAt,
	}
}
