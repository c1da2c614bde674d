package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RedeemRequestDTO struct {
	CustomerID  uuid.UUID       `json:"customer_id" example:"7d9f12c4-90a3-4a6f-9f44-2a2c1f8b5a10"`
	Points      int             `json:"points" example:"1000"`
	Kind        string          `json:"kind" example:"fixed_discount"`
	Value       decimal.Decimal `json:"value" example:"5000"`
	Description string          `json:"description,omitempty"`
	Conditions  string          `json:"conditions,omitempty"`
	IssuedBy    string          `json:"issued_by,omitempty"`
}

type ApplyRewardRequestDTO struct {
	CustomerID    uuid.UUID `json:"customer_id" example:"7d9f12c4-90a3-4a6f-9f44-2a2c1f8b5a10"`
	Code          string    `json:"code" example:"RWD-7HK2M9QT"`
	ReferenceKind string    `json:"reference_kind" example:"appointment"`
	ReferenceID   string    `json:"reference_id"`
}

type RewardResponseDTO struct {
	ID          int             `json:"id" example:"7"`
	Code        string          `json:"code" example:"RWD-7HK2M9QT"`
	PointsSpent int             `json:"points_spent" example:"1000"`
	Kind        string          `json:"kind" example:"fixed_discount"`
	Value       decimal.Decimal `json:"value" example:"5000"`
	Status      string          `json:"status" example:"ACTIVE"`
	IssuedAt    time.Time       `json:"issued_at"`
	ExpiresAt   time.Time       `json:"expires_at"`
	UsedAt      *time.Time      `json:"used_at,omitempty"`
}
