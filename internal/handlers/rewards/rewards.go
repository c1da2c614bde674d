package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/salonhq/loyalty/internal/domain"
	"github.com/salonhq/loyalty/internal/dto"
	redemptionservice "github.com/salonhq/loyalty/internal/service/redemptionservice"
	"github.com/salonhq/loyalty/pkg/auth"
	"github.com/salonhq/loyalty/pkg/utils"
)

//go:generate mockgen -source=rewards.go -destination=rewards_mock.go -package=rewards

type Service interface {
	Redeem(ctx context.Context, p redemptionservice.RedeemParams) (*domain.Reward, error)
	ApplyReward(ctx context.Context, code string, businessID, customerID uuid.UUID, refKind domain.ReferenceKind, refID string) (*domain.Reward, error)
	GetRewards(ctx context.Context, businessID, customerID uuid.UUID) ([]domain.Reward, error)
}

type RewardHandler struct {
	redemptionService Service
}

func New(redemptionService Service) *RewardHandler {
	return &RewardHandler{
		redemptionService: redemptionService,
	}
}

// Redeem godoc
//
//	@Summary		Redeem points for a reward
//	@Description	Debits the customer's balance and issues an ACTIVE reward instrument in one transaction.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemRequestDTO	true	"Redemption request"
//	@Success		200		{object}	dto.RewardResponseDTO	"Issued reward"
//	@Failure		401		{object}	utils.Response			"Business not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient points"
//	@Failure		409		{object}	utils.Response			"Loyalty program not enabled"
//	@Failure		422		{object}	utils.Response			"Below minimum or invalid kind"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/loyalty/redemptions [post]
func (h *RewardHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(uuid.UUID)

	var req dto.RedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reward, err := h.redemptionService.Redeem(r.Context(), redemptionservice.RedeemParams{
		BusinessID:  businessID,
		CustomerID:  req.CustomerID,
		Points:      req.Points,
		Kind:        domain.RewardKind(req.Kind),
		Value:       req.Value,
		Description: req.Description,
		Conditions:  req.Conditions,
		IssuedBy:    req.IssuedBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, redemptionservice.ErrInsufficientPoints):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, redemptionservice.ErrBelowMinimum),
			errors.Is(err, redemptionservice.ErrInvalidRewardKind):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, redemptionservice.ErrProgramDisabled):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRewardDTO(reward))
}

// ApplyReward godoc
//
//	@Summary		Apply an issued reward
//	@Description	Consumes an ACTIVE reward against a target object. Expired rewards are transitioned and rejected.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplyRewardRequestDTO	true	"Apply request"
//	@Success		200		{object}	dto.RewardResponseDTO		"Used reward"
//	@Failure		401		{object}	utils.Response				"Business not authorized"
//	@Failure		404		{object}	utils.Response				"Reward not found"
//	@Failure		409		{object}	utils.Response				"Reward not active"
//	@Failure		410		{object}	utils.Response				"Reward expired"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/rewards/apply [post]
func (h *RewardHandler) ApplyReward(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(uuid.UUID)

	var req dto.ApplyRewardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reward, err := h.redemptionService.ApplyReward(r.Context(), req.Code, businessID, req.CustomerID,
		domain.ReferenceKind(req.ReferenceKind), req.ReferenceID)
	if err != nil {
		switch {
		case errors.Is(err, redemptionservice.ErrRewardNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, redemptionservice.ErrRewardNotActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, redemptionservice.ErrRewardExpired):
			utils.RespondWithError(w, http.StatusGone, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRewardDTO(reward))
}

// GetRewards godoc
//
//	@Summary		List customer rewards
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			customerID	path		string					true	"Customer ID"
//	@Success		200			{array}		dto.RewardResponseDTO	"Rewards"
//	@Success		204			{object}	utils.Response			"No rewards"
//	@Failure		401			{object}	utils.Response			"Business not authorized"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/loyalty/customers/{customerID}/rewards [get]
func (h *RewardHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(uuid.UUID)

	customerID, err := uuid.Parse(chi.URLParam(r, "customerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid customer id")
		return
	}

	rewards, err := h.redemptionService.GetRewards(r.Context(), businessID, customerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(rewards) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "rewards not found")
		return
	}

	response := make([]dto.RewardResponseDTO, len(rewards))
	for i := range rewards {
		response[i] = *toRewardDTO(&rewards[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toRewardDTO(reward *domain.Reward) *dto.RewardResponseDTO {
	return &dto.RewardResponseDTO{
		ID:          reward.ID,
		Code:        reward.Code,
		PointsSpent: reward.PointsSpent,
		Kind:        string(reward.Kind),
		Value:       reward.Value,
		Status:      string(reward.Status),
		IssuedAt:    reward.IssuedAt,
		ExpiresAt:   reward.ExpiresAt,
		UsedAt:      reward.UsedAt,
	}
}
