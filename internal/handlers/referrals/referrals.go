package referrals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/salonhq/loyalty/internal/domain"
	"github.com/salonhq/loyalty/internal/dto"
	referralservice "github.com/salonhq/loyalty/internal/service/referralservice"
	"github.com/salonhq/loyalty/pkg/auth"
	"github.com/salonhq/loyalty/pkg/utils"
)

//go:generate mockgen -source=referrals.go -destination=referrals_mock.go -package=referrals

type Service interface {
	ProcessReferral(ctx context.Context, businessID, referrerID, referredID uuid.UUID) (*domain.PointTransaction, error)
	ProcessFirstVisitBonus(ctx context.Context, businessID, referrerID, referredID, bookingID uuid.UUID) (*domain.PointTransaction, error)
}

type ReferralHandler struct {
	referralService Service
}

func New(referralService Service) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// ProcessReferral godoc
//
//	@Summary		Credit a confirmed referral
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ReferralRequestDTO	true	"Referral event"
//	@Success		200		{object}	dto.TransactionResponseDTO	"Referral credit"
//	@Failure		401		{object}	utils.Response				"Business not authorized"
//	@Failure		409		{object}	utils.Response				"Referral program not enabled"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/referrals [post]
func (h *ReferralHandler) ProcessReferral(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(uuid.UUID)

	var req dto.ReferralRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.referralService.ProcessReferral(r.Context(), businessID, req.ReferrerID, req.ReferredID)
	if err != nil {
		respondReferralError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(tx))
}

// ProcessFirstVisitBonus godoc
//
//	@Summary		Credit the referred customer's first paid visit
//	@Description	Grants the second referral bonus once. Duplicate reports of the same first visit are rejected.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.FirstVisitBonusRequestDTO	true	"First visit event"
//	@Success		200		{object}	dto.TransactionResponseDTO		"First visit credit"
//	@Failure		401		{object}	utils.Response					"Business not authorized"
//	@Failure		409		{object}	utils.Response					"Not enabled or already credited"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/loyalty/referrals/first-visit [post]
func (h *ReferralHandler) ProcessFirstVisitBonus(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(uuid.UUID)

	var req dto.FirstVisitBonusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.referralService.ProcessFirstVisitBonus(r.Context(), businessID, req.ReferrerID, req.ReferredID, req.BookingID)
	if err != nil {
		respondReferralError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(tx))
}

func respondReferralError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, referralservice.ErrReferralDisabled),
		errors.Is(err, referralservice.ErrBonusGranted):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toTransactionDTO(tx *domain.PointTransaction) *dto.TransactionResponseDTO {
	resp := &dto.TransactionResponseDTO{
		ID:          tx.ID,
		Points:      tx.Points,
		Kind:        string(tx.Kind),
		Status:      string(tx.Status),
		ReferenceID: tx.ReferenceID,
		Description: tx.Description,
		ExpiresAt:   tx.ExpiresAt,
		CreatedAt:   tx.CreatedAt,
	}
	if tx.ReferenceKind != nil {
		kind := string(*tx.ReferenceKind)
		resp.ReferenceKind = &kind
	}
	return resp
}
