package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreditAppointmentRequestDTO struct {
	CustomerID    uuid.UUID       `json:"customer_id" example:"7d9f12c4-90a3-4a6f-9f44-2a2c1f8b5a10"`
	AppointmentID uuid.UUID       `json:"appointment_id" example:"b2f9e0cb-4c24-4d0c-9f6e-8348e9f7c3e1"`
	Amount        decimal.Decimal `json:"amount" example:"25000"`
	BranchID      *uuid.UUID      `json:"branch_id,omitempty"`
}

type CreditPurchaseRequestDTO struct {
	CustomerID uuid.UUID       `json:"customer_id" example:"7d9f12c4-90a3-4a6f-9f44-2a2c1f8b5a10"`
	ProductID  uuid.UUID       `json:"product_id" example:"0cf67a1e-02e9-4f4b-9d3e-6f1a9b2c3d4e"`
	Amount     decimal.Decimal `json:"amount" example:"5000"`
	BranchID   *uuid.UUID      `json:"branch_id,omitempty"`
}

type MilestoneCheckRequestDTO struct {
	CustomerID uuid.UUID  `json:"customer_id" example:"7d9f12c4-90a3-4a6f-9f44-2a2c1f8b5a10"`
	BranchID   *uuid.UUID `json:"branch_id,omitempty"`
}

type ReferralRequestDTO struct {
	ReferrerID uuid.UUID `json:"referrer_id" example:"7d9f12c4-90a3-4a6f-9f44-2a2c1f8b5a10"`
	ReferredID uuid.UUID `json:"referred_id" example:"e7a3f8d1-55b0-4b7c-a111-93d2f5a6c7b8"`
}

type FirstVisitBonusRequestDTO struct {
	ReferrerID uuid.UUID `json:"referrer_id" example:"7d9f12c4-90a3-4a6f-9f44-2a2c1f8b5a10"`
	ReferredID uuid.UUID `json:"referred_id" example:"e7a3f8d1-55b0-4b7c-a111-93d2f5a6c7b8"`
	BookingID  uuid.UUID `json:"booking_id" example:"1f2e3d4c-5b6a-4798-8899-aabbccddeeff"`
}

type BalanceResponseDTO struct {
	Balance         int    `json:"balance" example:"250"`
	AvailablePoints int    `json:"available_points" example:"225"`
	ReferralCode    string `json:"referral_code" example:"REF-7HK2M9QT"`
	ReferralCount   int    `json:"referral_count" example:"3"`
}

type TransactionResponseDTO struct {
	ID            int        `json:"id" example:"42"`
	Points        int        `json:"points" example:"25"`
	Kind          string     `json:"kind" example:"appointment_payment"`
	Status        string     `json:"status" example:"COMPLETED"`
	ReferenceKind *string    `json:"reference_kind,omitempty" example:"appointment"`
	ReferenceID   *string    `json:"reference_id,omitempty"`
	Description   string     `json:"description,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
