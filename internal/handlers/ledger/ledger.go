package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salonhq/loyalty/internal/domain"
	"github.com/salonhq/loyalty/internal/dto"
	ledgerservice "github.com/salonhq/loyalty/internal/service/ledgerservice"
	"github.com/salonhq/loyalty/pkg/auth"
	"github.com/salonhq/loyalty/pkg/utils"
)

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=ledger

type Service interface {
	CreditForAppointmentPayment(ctx context.Context, businessID, customerID, appointmentID uuid.UUID, amount decimal.Decimal, branchID *uuid.UUID) (*domain.PointTransaction, error)
	CreditForProductPurchase(ctx context.Context, businessID, customerID, productID uuid.UUID, amount decimal.Decimal, branchID *uuid.UUID) (*domain.PointTransaction, error)
	CheckMilestone(ctx context.Context, businessID, customerID uuid.UUID, branchID *uuid.UUID) (*domain.PointTransaction, error)
	GetBalance(ctx context.Context, businessID, customerID uuid.UUID) (*ledgerservice.BalanceInfo, error)
	GetTransactions(ctx context.Context, businessID, customerID uuid.UUID, filter ledgerservice.TransactionFilter) ([]domain.PointTransaction, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// CreditAppointment godoc
//
//	@Summary		Credit points for a paid appointment
//	@Description	Convert a completed appointment payment into loyalty points at the configured rate.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreditAppointmentRequestDTO	true	"Payment event"
//	@Success		200		{object}	dto.TransactionResponseDTO		"Created transaction"
//	@Failure		401		{object}	utils.Response					"Business not authorized"
//	@Failure		409		{object}	utils.Response					"Loyalty program not enabled"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/loyalty/credits/appointment [post]
func (h *LedgerHandler) CreditAppointment(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(uuid.UUID)

	var req dto.CreditAppointmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.ledgerService.CreditForAppointmentPayment(r.Context(), businessID, req.CustomerID, req.AppointmentID, req.Amount, req.BranchID)
	if err != nil {
		respondCreditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(tx))
}

// CreditPurchase godoc
//
//	@Summary		Credit points for a product purchase
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreditPurchaseRequestDTO	true	"Purchase event"
//	@Success		200		{object}	dto.TransactionResponseDTO		"Created transaction"
//	@Failure		401		{object}	utils.Response					"Business not authorized"
//	@Failure		409		{object}	utils.Response					"Loyalty program not enabled"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/loyalty/credits/purchase [post]
func (h *LedgerHandler) CreditPurchase(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(uuid.UUID)

	var req dto.CreditPurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.ledgerService.CreditForProductPurchase(r.Context(), businessID, req.CustomerID, req.ProductID, req.Amount, req.BranchID)
	if err != nil {
		respondCreditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(tx))
}

// CheckMilestone godoc
//
//	@Summary		Check and grant a visit milestone bonus
//	@Description	Grants the configured bonus when the customer's completed visit count reaches a multiple of the milestone size. Safe to call repeatedly.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MilestoneCheckRequestDTO	true	"Milestone check"
//	@Success		200		{object}	dto.TransactionResponseDTO		"Granted bonus transaction"
//	@Success		204		{object}	utils.Response					"No milestone due"
//	@Failure		401		{object}	utils.Response					"Business not authorized"
//	@Failure		409		{object}	utils.Response					"Milestone disabled or already granted"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/loyalty/milestones/check [post]
func (h *LedgerHandler) CheckMilestone(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(uuid.UUID)

	var req dto.MilestoneCheckRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.ledgerService.CheckMilestone(r.Context(), businessID, req.CustomerID, req.BranchID)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrProgramDisabled),
			errors.Is(err, ledgerservice.ErrMilestoneDisabled),
			errors.Is(err, ledgerservice.ErrMilestoneGranted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	if tx == nil {
		utils.RespondWithError(w, http.StatusNoContent, "no milestone due")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(tx))
}

// GetBalance godoc
//
//	@Summary		Get customer point balance
//	@Description	Current cached balance, spendable points, and referral stats for one customer.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			customerID	path		string					true	"Customer ID"
//	@Success		200			{object}	dto.BalanceResponseDTO	"Balance"
//	@Failure		401			{object}	utils.Response			"Business not authorized"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/loyalty/customers/{customerID}/balance [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(uuid.UUID)

	customerID, err := uuid.Parse(chi.URLParam(r, "customerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid customer id")
		return
	}

	info, err := h.ledgerService.GetBalance(r.Context(), businessID, customerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:         info.Balance,
		AvailablePoints: info.AvailablePoints,
		ReferralCode:    info.ReferralCode,
		ReferralCount:   info.ReferralCount,
	})
}

// GetTransactions godoc
//
//	@Summary		Get customer point transactions
//	@Description	Reverse-chronological page of the customer's point movements, optionally filtered by kind.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			customerID	path		string	true	"Customer ID"
//	@Param			kind		query		string	false	"Transaction kind filter"
//	@Param			limit		query		int		false	"Page size"
//	@Param			offset		query		int		false	"Page offset"
//	@Success		200			{array}		dto.TransactionResponseDTO	"Transactions"
//	@Success		204			{object}	utils.Response				"No transactions"
//	@Failure		401			{object}	utils.Response				"Business not authorized"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/customers/{customerID}/transactions [get]
func (h *LedgerHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(uuid.UUID)

	customerID, err := uuid.Parse(chi.URLParam(r, "customerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid customer id")
		return
	}

	filter := ledgerservice.TransactionFilter{}
	if raw := r.URL.Query().Get("kind"); raw != "" {
		kind := domain.TransactionKind(raw)
		if !kind.Valid() {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid transaction kind")
			return
		}
		filter.Kind = &kind
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		filter.Limit, _ = strconv.Atoi(raw)
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		filter.Offset, _ = strconv.Atoi(raw)
	}

	txs, err := h.ledgerService.GetTransactions(r.Context(), businessID, customerID, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(txs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txs))
	for i := range txs {
		response[i] = *toTransactionDTO(&txs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondCreditError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgerservice.ErrProgramDisabled):
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
