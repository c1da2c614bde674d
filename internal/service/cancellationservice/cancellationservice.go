package cancellationservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/salonhq/loyalty/internal/domain"
	"github.com/salonhq/loyalty/internal/pg"
	"github.com/salonhq/loyalty/internal/rules"
	"github.com/salonhq/loyalty/pkg/codes"
	"github.com/salonhq/loyalty/pkg/metrics"
)

//go:generate mockgen -source=cancellationservice.go -destination=cancellationservice_mock.go -package=cancellationservice

type VoucherRepo interface {
	Create(ctx context.Context, voucher *domain.Voucher) (*domain.Voucher, error)
	GetByCode(ctx context.Context, code string, businessID, customerID uuid.UUID) (*domain.Voucher, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	MarkUsed(ctx context.Context, id int, usedAt time.Time, bookingID uuid.UUID) (*domain.Voucher, error)
	MarkExpired(ctx context.Context, id int) error
}

type CancellationRepo interface {
	Create(ctx context.Context, rec *domain.CancellationRecord) (*domain.CancellationRecord, error)
	ExistsForBooking(ctx context.Context, businessID, bookingID uuid.UUID) (bool, error)
	CountCustomerCancellations(ctx context.Context, businessID, customerID uuid.UUID, since time.Time) (int, error)
}

type BlockRepo interface {
	Create(ctx context.Context, block *domain.BookingBlock) (*domain.BookingBlock, error)
	FindActive(ctx context.Context, businessID, customerID uuid.UUID, now time.Time) (*domain.BookingBlock, error)
	GetByID(ctx context.Context, id int, businessID uuid.UUID) (*domain.BookingBlock, error)
	Lift(ctx context.Context, id int, businessID uuid.UUID, at time.Time, actor, notes string) (*domain.BookingBlock, error)
}

var (
	ErrCancellationProcessed = errors.New("cancellation already processed for booking")
	ErrVoucherNotFound       = errors.New("voucher not found")
	ErrVoucherNotActive      = errors.New("voucher is not active")
	ErrVoucherExpired        = errors.New("voucher expired")
	ErrBlockNotFound         = errors.New("booking block not found")
	ErrBlockNotActive        = errors.New("booking block is not active")
)

const voucherCodePrefix = "VCH-"

type Service struct {
	voucherRepo      VoucherRepo
	cancellationRepo CancellationRepo
	blockRepo        BlockRepo
	rules            rules.Provider
	txManager        pg.TXManager
	now              func() time.Time
}

func New(voucherRepo VoucherRepo, cancellationRepo CancellationRepo, blockRepo BlockRepo, rulesProvider rules.Provider, txManager pg.TXManager) *Service {
	return &Service{
		voucherRepo:      voucherRepo,
		cancellationRepo: cancellationRepo,
		blockRepo:        blockRepo,
		rules:            rulesProvider,
		txManager:        txManager,
		now:              time.Now,
	}
}

type CancellationParams struct {
	BusinessID    uuid.UUID
	CustomerID    uuid.UUID
	BookingID     uuid.UUID
	BookingAt     time.Time
	BookingAmount decimal.Decimal
	Currency      string
	Reason        string
	CancelledBy   domain.CancelledBy
}

type CancellationResult struct {
	Voucher          *domain.Voucher
	VoucherGenerated bool
	Record           *domain.CancellationRecord
	Blocked          bool
	Block            *domain.BookingBlock
}

// ProcessCancellation evaluates one cancellation event: it may issue a
// compensating voucher, always appends an audit record, and escalates to a
// booking block when the rolling-window cancellation count crosses the
// configured threshold. A booking already on record is rejected up front so
// a replayed event can't double-refund.
func (s *Service) ProcessCancellation(ctx context.Context, p CancellationParams) (*CancellationResult, error) {
	policy, err := s.rules.CancellationPolicy(ctx, p.BusinessID)
	if err != nil {
		return nil, err
	}

	processed, err := s.cancellationRepo.ExistsForBooking(ctx, p.BusinessID, p.BookingID)
	if err != nil {
		return nil, err
	}
	if processed {
		return nil, ErrCancellationProcessed
	}

	now := s.now()
	leadHours := p.BookingAt.Sub(now).Hours()

	result := &CancellationResult{}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		eligible := p.CancelledBy == domain.CancelledByCustomer &&
			leadHours >= policy.HoursForVoucher &&
			p.BookingAmount.IsPositive()
		if eligible {
			voucher, err := s.issueVoucher(ctx, p, policy, now)
			if err != nil {
				return err
			}
			result.Voucher = voucher
			result.VoucherGenerated = true
		}

		rec := &domain.CancellationRecord{
			BusinessID:       p.BusinessID,
			CustomerID:       p.CustomerID,
			BookingID:        p.BookingID,
			CancelledAt:      now,
			BookingAt:        p.BookingAt,
			LeadHours:        leadHours,
			BookingAmount:    p.BookingAmount,
			VoucherGenerated: result.VoucherGenerated,
			CancelledBy:      p.CancelledBy,
			Reason:           p.Reason,
		}
		if result.Voucher != nil {
			rec.VoucherID = &result.Voucher.ID
		}
		record, err := s.cancellationRepo.Create(ctx, rec)
		if err != nil {
			return err
		}
		result.Record = record

		block, err := s.evaluatePenalty(ctx, p.BusinessID, p.CustomerID, policy, now)
		if err != nil {
			return err
		}
		if block != nil {
			result.Blocked = true
			result.Block = block
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.VoucherGenerated {
		metrics.VouchersIssued.Inc()
	}
	if result.Blocked {
		metrics.BlocksCreated.Inc()
	}
	zap.L().Info("cancellation processed",
		zap.String("business_id", p.BusinessID.String()),
		zap.String("customer_id", p.CustomerID.String()),
		zap.String("booking_id", p.BookingID.String()),
		zap.Float64("lead_hours", leadHours),
		zap.Bool("voucher_generated", result.VoucherGenerated),
		zap.Bool("blocked", result.Blocked))
	return result, nil
}

func (s *Service) issueVoucher(ctx context.Context, p CancellationParams, policy rules.CancellationPolicy, now time.Time) (*domain.Voucher, error) {
	code, err := codes.Unique(ctx, voucherCodePrefix, s.voucherRepo.CodeExists)
	if err != nil {
		return nil, fmt.Errorf("can't generate voucher code: %w", err)
	}

	amount := p.BookingAmount.
		Mul(decimal.NewFromFloat(policy.VoucherPercentage)).
		Div(decimal.NewFromInt(100)).
		Round(2)

	currency := p.Currency
	if currency == "" {
		currency = "USD"
	}
	return s.voucherRepo.Create(ctx, &domain.Voucher{
		Code:       code,
		BusinessID: p.BusinessID,
		CustomerID: p.CustomerID,
		BookingID:  p.BookingID,
		Amount:     amount,
		Currency:   currency,
		Status:     domain.InstrumentActive,
		IssuedAt:   now,
		ExpiresAt:  now.AddDate(0, 0, policy.VoucherValidityDays),
	})
}

// evaluatePenalty creates a block once the rolling-window count reaches the
// threshold. An existing ACTIVE unexpired block suppresses a second one; a
// block that expired earlier may legitimately be superseded.
func (s *Service) evaluatePenalty(ctx context.Context, businessID, customerID uuid.UUID, policy rules.CancellationPolicy, now time.Time) (*domain.BookingBlock, error) {
	if policy.MaxCancellations <= 0 {
		return nil, nil
	}

	since := now.AddDate(0, 0, -policy.ResetPeriodDays)
	count, err := s.cancellationRepo.CountCustomerCancellations(ctx, businessID, customerID, since)
	if err != nil {
		return nil, err
	}
	if count < policy.MaxCancellations {
		return nil, nil
	}

	existing, err := s.blockRepo.FindActive(ctx, businessID, customerID, now)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nil
	}

	return s.blockRepo.Create(ctx, &domain.BookingBlock{
		BusinessID:        businessID,
		CustomerID:        customerID,
		Status:            domain.BlockActive,
		Reason:            domain.BlockExcessiveCancellations,
		BlockedAt:         now,
		ExpiresAt:         now.AddDate(0, 0, policy.BlockDurationDays),
		CancellationCount: count,
	})
}

func (s *Service) IsBlocked(ctx context.Context, businessID, customerID uuid.UUID) (bool, error) {
	block, err := s.blockRepo.FindActive(ctx, businessID, customerID, s.now())
	if err != nil {
		return false, err
	}
	return block != nil, nil
}

func (s *Service) LiftBlock(ctx context.Context, blockID int, businessID uuid.UUID, actor, notes string) (*domain.BookingBlock, error) {
	block, err := s.blockRepo.GetByID(ctx, blockID, businessID)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, ErrBlockNotFound
	}
	if block.Status != domain.BlockActive {
		return nil, ErrBlockNotActive
	}

	lifted, err := s.blockRepo.Lift(ctx, blockID, businessID, s.now(), actor, notes)
	if err != nil {
		return nil, err
	}
	if lifted == nil {
		return nil, ErrBlockNotActive
	}
	return lifted, nil
}

// ApplyVoucherToBooking consumes an ACTIVE voucher against a new booking,
// with the same lazy-expiry discipline as reward application.
func (s *Service) ApplyVoucherToBooking(ctx context.Context, code string, businessID, customerID, bookingID uuid.UUID) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.GetByCode(ctx, code, businessID, customerID)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, ErrVoucherNotFound
	}
	if voucher.Status != domain.InstrumentActive {
		return nil, ErrVoucherNotActive
	}
	if !voucher.ExpiresAt.After(s.now()) {
		if err := s.voucherRepo.MarkExpired(ctx, voucher.ID); err != nil {
			return nil, err
		}
		return nil, ErrVoucherExpired
	}

	used, err := s.voucherRepo.MarkUsed(ctx, voucher.ID, s.now(), bookingID)
	if err != nil {
		return nil, err
	}
	if used == nil {
		return nil, ErrVoucherNotActive
	}
	return used, nil
}
