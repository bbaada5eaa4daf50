package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/internal/dto"
	planscatalog "github.com/watchearn/watchearn/internal/plans"
	"github.com/watchearn/watchearn/internal/service/planservice"
	"github.com/watchearn/watchearn/pkg/auth"
	"github.com/watchearn/watchearn/pkg/utils"
)

type Service interface {
	CompleteRound(ctx context.Context, userID int, tierAmount int) (*planservice.RoundResult, error)
	GetAllProgress(ctx context.Context, userID int) (*planservice.ProgressSummary, error)
}

type PlanHandler struct {
	planService Service
}

func New(planService Service) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// CompleteRound godoc
//
//	@Summary		Complete a daily round
//	@Description	Credit the plan's daily profit for the authenticated user, once per UTC calendar day per plan
//	@Tags			Plans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CompleteRoundRequestDTO	true	"Plan tier"
//	@Success		200		{object}	dto.CompleteRoundResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown plan or no active deposit"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Round already completed today"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/plans/complete-round [post]
func (h *PlanHandler) CompleteRound(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CompleteRoundRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PlanAmount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "planAmount is required")
		return
	}

	result, err := h.planService.CompleteRound(r.Context(), userID, req.PlanAmount)
	if err != nil {
		var cooldown *planservice.RoundCooldownError
		switch {
		case errors.Is(err, planscatalog.ErrPlanNotFound):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid plan")
		case errors.Is(err, planservice.ErrNoActiveDeposit):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &cooldown):
			utils.RespondWithError(w, http.StatusConflict, cooldown.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CompleteRoundResponseDTO{
		Success:      true,
		Progress:     toDTO(result.Progress),
		ProfitEarned: result.ProfitEarned.InexactFloat64(),
		TotalProfit:  result.TotalProfit.InexactFloat64(),
	})
}

// AllProgress godoc
//
//	@Summary		Get plan progress
//	@Description	List all plan progress rows with aggregate profit, withdrawal eligibility and daily streak
//	@Tags			Plans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AllProgressResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/plans/progress [get]
func (h *PlanHandler) AllProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.planService.GetAllProgress(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.AllProgressResponseDTO{
		Success:     true,
		Progresses:  make([]dto.ProgressDTO, len(summary.Progresses)),
		TotalProfit: summary.TotalProfit.InexactFloat64(),
		CanWithdraw: summary.CanWithdraw,
		DailyStreak: summary.DailyStreak,
	}
	for i, p := range summary.Progresses {
		resp.Progresses[i] = toDTO(p)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func toDTO(p domain.PlanProgress) dto.ProgressDTO {
	return dto.ProgressDTO{
		ID:            p.ID,
		PlanAmount:    p.PlanAmount,
		Profit:        p.Profit.InexactFloat64(),
		RoundCount:    p.RoundCount,
		CanWithdraw:   p.CanWithdraw,
		LastRoundDate: p.LastRoundDate,
	}
}
