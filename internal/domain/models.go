package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindAppointmentPayment TransactionKind = "appointment_payment"
	KindProductPurchase    TransactionKind = "product_purchase"
	KindReferral           TransactionKind = "referral"
	KindReferralFirstVisit TransactionKind = "referral_first_visit"
	KindRedemption         TransactionKind = "redemption"
	KindExpiration         TransactionKind = "expiration"
	KindManualAdjustment   TransactionKind = "manual_adjustment"
	KindBonus              TransactionKind = "bonus"
	KindRefund             TransactionKind = "refund"
)

func (k TransactionKind) Valid() bool {
	switch k {
	case KindAppointmentPayment, KindProductPurchase, KindReferral,
		KindReferralFirstVisit, KindRedemption, KindExpiration,
		KindManualAdjustment, KindBonus, KindRefund:
		return true
	}
	return false
}

type TransactionStatus string

const (
	TxPending   TransactionStatus = "PENDING"
	TxCompleted TransactionStatus = "COMPLETED"
	TxReversed  TransactionStatus = "REVERSED"
	TxExpired   TransactionStatus = "EXPIRED"
)

type ReferenceKind string

const (
	RefAppointment ReferenceKind = "appointment"
	RefProduct     ReferenceKind = "product"
	RefCustomer    ReferenceKind = "customer"
	RefReward      ReferenceKind = "reward"
	RefMilestone   ReferenceKind = "milestone"
	RefTransaction ReferenceKind = "transaction"
	RefBooking     ReferenceKind = "booking"
)

type RewardKind string

const (
	RewardPercentDiscount RewardKind = "percent_discount"
	RewardFixedDiscount   RewardKind = "fixed_discount"
	RewardFreeService     RewardKind = "free_service"
	RewardVoucher         RewardKind = "voucher"
	RewardProduct         RewardKind = "product"
	RewardUpgrade         RewardKind = "upgrade"
	RewardCustom          RewardKind = "custom"
)

func (k RewardKind) Valid() bool {
	switch k {
	case RewardPercentDiscount, RewardFixedDiscount, RewardFreeService,
		RewardVoucher, RewardProduct, RewardUpgrade, RewardCustom:
		return true
	}
	return false
}

// InstrumentStatus is shared by Reward and Voucher; USED, EXPIRED and
// CANCELLED are terminal.
type InstrumentStatus string

const (
	InstrumentActive    InstrumentStatus = "ACTIVE"
	InstrumentUsed      InstrumentStatus = "USED"
	InstrumentExpired   InstrumentStatus = "EXPIRED"
	InstrumentCancelled InstrumentStatus = "CANCELLED"
)

type CancelledBy string

const (
	CancelledByCustomer CancelledBy = "customer"
	CancelledByBusiness CancelledBy = "business"
	CancelledBySystem   CancelledBy = "system"
)

type BlockStatus string

const (
	BlockActive  BlockStatus = "ACTIVE"
	BlockLifted  BlockStatus = "LIFTED"
	BlockExpired BlockStatus = "EXPIRED"
)

type BlockReason string

const (
	BlockExcessiveCancellations BlockReason = "excessive_cancellations"
	BlockManual                 BlockReason = "manual"
	BlockNoShow                 BlockReason = "no_show"
	BlockOther                  BlockReason = "other"
)

// LoyaltyAccount is the per (business, customer) balance row. Balance is a
// cache over the transaction log: it must equal the sum of COMPLETED
// transaction points at all times.
type LoyaltyAccount struct {
	ID             int        `db:"id"`
	BusinessID     uuid.UUID  `db:"business_id"`
	CustomerID     uuid.UUID  `db:"customer_id"`
	Balance        int        `db:"balance"`
	ReferralCode   string     `db:"referral_code"`
	ReferralCount  int        `db:"referral_count"`
	LastReferralAt *time.Time `db:"last_referral_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

// PointTransaction is one immutable signed point movement. The only mutation
// permitted after creation is a status transition to REVERSED or EXPIRED.
type PointTransaction struct {
	ID            int                 `db:"id"`
	BusinessID    uuid.UUID           `db:"business_id"`
	CustomerID    uuid.UUID           `db:"customer_id"`
	Points        int                 `db:"points"`
	Kind          TransactionKind     `db:"kind"`
	Status        TransactionStatus   `db:"status"`
	ReferenceKind *ReferenceKind      `db:"reference_kind"`
	ReferenceID   *string             `db:"reference_id"`
	BranchID      *uuid.UUID          `db:"branch_id"`
	MoneyAmount   decimal.NullDecimal `db:"money_amount"`
	Multiplier    float64             `db:"multiplier"`
	Description   string              `db:"description"`
	ExpiresAt     *time.Time          `db:"expires_at"`
	CreatedAt     time.Time           `db:"created_at"`
}

type Reward struct {
	ID             int              `db:"id"`
	Code           string           `db:"code"`
	BusinessID     uuid.UUID        `db:"business_id"`
	CustomerID     uuid.UUID        `db:"customer_id"`
	PointsSpent    int              `db:"points_spent"`
	Kind           RewardKind       `db:"kind"`
	Value          decimal.Decimal  `db:"value"`
	Status         InstrumentStatus `db:"status"`
	Conditions     string           `db:"conditions"`
	IssuedBy       string           `db:"issued_by"`
	IssuedAt       time.Time        `db:"issued_at"`
	ExpiresAt      time.Time        `db:"expires_at"`
	UsedAt         *time.Time       `db:"used_at"`
	AppliedRefKind *ReferenceKind   `db:"applied_ref_kind"`
	AppliedRefID   *string          `db:"applied_ref_id"`
}

// Voucher compensates a qualifying cancellation. Unlike a Reward it is funded
// by the cancelled booking's value, not by points.
type Voucher struct {
	ID               int              `db:"id"`
	Code             string           `db:"code"`
	BusinessID       uuid.UUID        `db:"business_id"`
	CustomerID       uuid.UUID        `db:"customer_id"`
	BookingID        uuid.UUID        `db:"booking_id"`
	Amount           decimal.Decimal  `db:"amount"`
	Currency         string           `db:"currency"`
	Status           InstrumentStatus `db:"status"`
	IssuedAt         time.Time        `db:"issued_at"`
	ExpiresAt        time.Time        `db:"expires_at"`
	UsedAt           *time.Time       `db:"used_at"`
	AppliedBookingID *uuid.UUID       `db:"applied_booking_id"`
}

type CancellationRecord struct {
	ID               int             `db:"id"`
	BusinessID       uuid.UUID       `db:"business_id"`
	CustomerID       uuid.UUID       `db:"customer_id"`
	BookingID        uuid.UUID       `db:"booking_id"`
	CancelledAt      time.Time       `db:"cancelled_at"`
	BookingAt        time.Time       `db:"booking_at"`
	LeadHours        float64         `db:"lead_hours"`
	BookingAmount    decimal.Decimal `db:"booking_amount"`
	VoucherGenerated bool            `db:"voucher_generated"`
	VoucherID        *int            `db:"voucher_id"`
	CancelledBy      CancelledBy     `db:"cancelled_by"`
	Reason           string          `db:"reason"`
}

type BookingBlock struct {
	ID                int         `db:"id"`
	BusinessID        uuid.UUID   `db:"business_id"`
	CustomerID        uuid.UUID   `db:"customer_id"`
	Status            BlockStatus `db:"status"`
	Reason            BlockReason `db:"reason"`
	BlockedAt         time.Time   `db:"blocked_at"`
	ExpiresAt         time.Time   `db:"expires_at"`
	LiftedAt          *time.Time  `db:"lifted_at"`
	LiftedBy          string      `db:"lifted_by"`
	LiftNotes         string      `db:"lift_notes"`
	CancellationCount int         `db:"cancellation_count"`
}
