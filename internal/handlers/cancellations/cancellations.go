package cancellations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/salonhq/loyalty/internal/domain"
	"github.com/salonhq/loyalty/internal/dto"
	cancellationservice "github.com/salonhq/loyalty/internal/service/cancellationservice"
	"github.com/salonhq/loyalty/pkg/auth"
	"github.com/salonhq/loyalty/pkg/utils"
)

//go:generate mockgen -source=cancellations.go -destination=cancellations_mock.go -package=cancellations

type Service interface {
	ProcessCancellation(ctx context.Context, p cancellationservice.CancellationParams) (*cancellationservice.CancellationResult, error)
	IsBlocked(ctx context.Context, businessID, customerID uuid.UUID) (bool, error)
	LiftBlock(ctx context.Context, blockID int, businessID uuid.UUID, actor, notes string) (*domain.BookingBlock, error)
	ApplyVoucherToBooking(ctx context.Context, code string, businessID, customerID, bookingID uuid.UUID) (*domain.Voucher, error)
}

type CancellationHandler struct {
	cancellationService Service
}

func New(cancellationService Service) *CancellationHandler {
	return &CancellationHandler{
		cancellationService: cancellationService,
	}
}

// ProcessCancellation godoc
//
//	@Summary		Process a booking cancellation
//	@Description	Evaluates voucher eligibility, records the cancellation, and escalates to a booking block past the threshold. Each booking is processed at most once.
//	@Tags			Cancellations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CancellationRequestDTO	true	"Cancellation event"
//	@Success		200		{object}	dto.CancellationResponseDTO	"Outcome"
//	@Failure		401		{object}	utils.Response				"Business not authorized"
//	@Failure		409		{object}	utils.Response				"Cancellation already processed"
//	@Failure		422		{object}	utils.Response				"Invalid cancelling party"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/cancellations [post]
func (h *CancellationHandler) ProcessCancellation(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(uuid.UUID)

	var req dto.CancellationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cancelledBy := domain.CancelledBy(req.CancelledBy)
	switch cancelledBy {
	case domain.CancelledByCustomer, domain.CancelledByBusiness, domain.CancelledBySystem:
	default:
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid cancelling party")
		return
	}

	result, err := h.cancellationService.ProcessCancellation(r.Context(), cancellationservice.CancellationParams{
		BusinessID:    businessID,
		CustomerID:    req.CustomerID,
		BookingID:     req.BookingID,
		BookingAt:     req.BookingAt,
		BookingAmount: req.BookingAmount,
		Currency:      req.Currency,
		Reason:        req.Reason,
		CancelledBy:   cancelledBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancellationservice.ErrCancellationProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	resp := dto.CancellationResponseDTO{
		VoucherGenerated: result.VoucherGenerated,
		Blocked:          result.Blocked,
		LeadHours:        result.Record.LeadHours,
		RecordID:         result.Record.ID,
	}
	if result.Voucher != nil {
		resp.Voucher = toVoucherDTO(result.Voucher)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// IsBlocked godoc
//
//	@Summary		Check whether a customer is blocked from booking
//	@Tags			Cancellations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			customerID	path		string					true	"Customer ID"
//	@Success		200			{object}	dto.BlockedResponseDTO	"Block state"
//	@Failure		401			{object}	utils.Response			"Business not authorized"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/loyalty/customers/{customerID}/blocked [get]
func (h *CancellationHandler) IsBlocked(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(uuid.UUID)

	customerID, err := uuid.Parse(chi.URLParam(r, "customerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid customer id")
		return
	}

	blocked, err := h.cancellationService.IsBlocked(r.Context(), businessID, customerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BlockedResponseDTO{Blocked: blocked})
}

// LiftBlock godoc
//
//	@Summary		Lift an active booking block
//	@Tags			Cancellations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			blockID	path		int						true	"Block ID"
//	@Param			request	body		dto.LiftBlockRequestDTO	true	"Lift request"
//	@Success		200		{string}	string					"Block lifted"
//	@Failure		401		{object}	utils.Response			"Business not authorized"
//	@Failure		404		{object}	utils.Response			"Block not found"
//	@Failure		409		{object}	utils.Response			"Block not active"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/loyalty/blocks/{blockID}/lift [post]
func (h *CancellationHandler) LiftBlock(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(uuid.UUID)

	blockID, err := strconv.Atoi(chi.URLParam(r, "blockID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid block id")
		return
	}

	var req dto.LiftBlockRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Actor == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "actor is required")
		return
	}

	if _, err := h.cancellationService.LiftBlock(r.Context(), blockID, businessID, req.Actor, req.Notes); err != nil {
		switch {
		case errors.Is(err, cancellationservice.ErrBlockNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, cancellationservice.ErrBlockNotActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "block lifted")
}

// ApplyVoucher godoc
//
//	@Summary		Apply a cancellation voucher to a booking
//	@Tags			Cancellations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplyVoucherRequestDTO	true	"Apply request"
//	@Success		200		{object}	dto.VoucherResponseDTO		"Used voucher"
//	@Failure		401		{object}	utils.Response				"Business not authorized"
//	@Failure		404		{object}	utils.Response				"Voucher not found"
//	@Failure		409		{object}	utils.Response				"Voucher not active"
//	@Failure		410		{object}	utils.Response				"Voucher expired"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/vouchers/apply [post]
func (h *CancellationHandler) ApplyVoucher(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(uuid.UUID)

	var req dto.ApplyVoucherRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	voucher, err := h.cancellationService.ApplyVoucherToBooking(r.Context(), req.Code, businessID, req.CustomerID, req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, cancellationservice.ErrVoucherNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, cancellationservice.ErrVoucherNotActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, cancellationservice.ErrVoucherExpired):
			utils.RespondWithError(w, http.StatusGone, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toVoucherDTO(voucher))
}

func toVoucherDTO(voucher *domain.Voucher) *dto.VoucherResponseDTO {
	return &dto.VoucherResponseDTO{
		ID:        voucher.ID,
		Code:      voucher.Code,
		BookingID: voucher.BookingID,
		Amount:    voucher.Amount,
		Currency:  voucher.Currency,
		Status:    string(voucher.Status),
		IssuedAt:  voucher.IssuedAt,
		ExpiresAt: voucher.ExpiresAt,
		UsedAt:    voucher.UsedAt,
	}
}
