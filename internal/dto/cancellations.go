package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CancellationRequestDTO struct {
	CustomerID    uuid.UUID       `json:"customer_id" example:"7d9f12c4-90a3-4a6f-9f44-2a2c1f8b5a10"`
	BookingID     uuid.UUID       `json:"booking_id" example:"1f2e3d4c-5b6a-4798-8899-aabbccddeeff"`
	BookingAt     time.Time       `json:"booking_at" example:"2025-06-01T14:00:00Z"`
	BookingAmount decimal.Decimal `json:"booking_amount" example:"30000"`
	Currency      string          `json:"currency,omitempty" example:"USD"`
	Reason        string          `json:"reason,omitempty"`
	CancelledBy   string          `json:"cancelled_by" example:"customer"`
}

type CancellationResponseDTO struct {
	VoucherGenerated bool                `json:"voucher_generated"`
	Voucher          *VoucherResponseDTO `json:"voucher,omitempty"`
	Blocked          bool                `json:"blocked"`
	LeadHours        float64             `json:"lead_hours" example:"26.5"`
	RecordID         int                 `json:"record_id" example:"13"`
}

type VoucherResponseDTO struct {
	ID        int             `json:"id" example:"3"`
	Code      string          `json:"code" example:"VCH-7HK2M9QT"`
	BookingID uuid.UUID       `json:"booking_id"`
	Amount    decimal.Decimal `json:"amount" example:"30000"`
	Currency  string          `json:"currency" example:"USD"`
	Status    string          `json:"status" example:"ACTIVE"`
	IssuedAt  time.Time       `json:"issued_at"`
	ExpiresAt time.Time       `json:"expires_at"`
	UsedAt    *time.Time      `json:"used_at,omitempty"`
}

type ApplyVoucherRequestDTO struct {
	CustomerID uuid.UUID `json:"customer_id" example:"7d9f12c4-90a3-4a6f-9f44-2a2c1f8b5a10"`
	Code       string    `json:"code" example:"VCH-7HK2M9QT"`
	BookingID  uuid.UUID `json:"booking_id"`
}

type LiftBlockRequestDTO struct {
	Actor string `json:"actor" example:"manager@salon.example"`
	Notes string `json:"notes,omitempty"`
}

type BlockedResponseDTO struct {
	Blocked bool `json:"blocked"`
}
