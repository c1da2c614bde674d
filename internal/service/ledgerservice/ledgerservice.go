package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
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

//go:generate mockgen -source=ledgerservice.go -destination=ledgerservice_mock.go -package=ledgerservice

type AccountRepo interface {
	GetByPair(ctx context.Context, businessID, customerID uuid.UUID) (*domain.LoyaltyAccount, error)
	GetByPairForUpdate(ctx context.Context, businessID, customerID uuid.UUID) (*domain.LoyaltyAccount, error)
	Create(ctx context.Context, businessID, customerID uuid.UUID, referralCode string) (*domain.LoyaltyAccount, error)
	AddToBalance(ctx context.Context, accountID, delta int) (*domain.LoyaltyAccount, error)
	RecordReferral(ctx context.Context, accountID int, at time.Time) error
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.PointTransaction) (*domain.PointTransaction, error)
	ListByCustomer(ctx context.Context, businessID, customerID uuid.UUID, kind *domain.TransactionKind, limit, offset int) ([]domain.PointTransaction, error)
	SumExpiredUnswept(ctx context.Context, businessID, customerID uuid.UUID, now time.Time) (int, error)
	FindByKindAndReference(ctx context.Context, businessID, customerID uuid.UUID, kind domain.TransactionKind, refKind domain.ReferenceKind, refID string) (*domain.PointTransaction, error)
	CountByKind(ctx context.Context, businessID, customerID uuid.UUID, kind domain.TransactionKind) (int, error)
}

var (
	ErrProgramDisabled   = errors.New("loyalty program not enabled")
	ErrMilestoneDisabled = errors.New("milestone bonuses not enabled")
	ErrMilestoneGranted  = errors.New("milestone bonus already granted")
)

const referralCodePrefix = "REF-"

type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	rules           rules.Provider
	txManager       pg.TXManager
	now             func() time.Time
}

func New(accountRepo AccountRepo, transactionRepo TransactionRepo, rulesProvider rules.Provider, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		rules:           rulesProvider,
		txManager:       txManager,
		now:             time.Now,
	}
}

type CreditParams struct {
	BusinessID    uuid.UUID
	CustomerID    uuid.UUID
	Points        int
	Kind          domain.TransactionKind
	ReferenceKind *domain.ReferenceKind
	ReferenceID   *string
	BranchID      *uuid.UUID
	MoneyAmount   decimal.NullDecimal
	Multiplier    float64
	Description   string
	ExpiryDays    int
}

// Credit appends a COMPLETED transaction and moves the cached balance by the
// same amount in one database transaction. The account row is locked for its
// duration, so concurrent credits for one customer serialize while different
// customers proceed in parallel.
func (s *Service) Credit(ctx context.Context, p CreditParams) (*domain.PointTransaction, error) {
	settings, err := s.rules.LoyaltySettings(ctx, p.BusinessID)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return nil, ErrProgramDisabled
	}

	multiplier := p.Multiplier
	if multiplier == 0 {
		multiplier = 1
	}
	points := int(math.Floor(float64(p.Points) * multiplier))

	var created *domain.PointTransaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.lockOrCreateAccount(ctx, p.BusinessID, p.CustomerID)
		if err != nil {
			return err
		}

		var expiresAt *time.Time
		if p.ExpiryDays > 0 {
			t := s.now().AddDate(0, 0, p.ExpiryDays)
			expiresAt = &t
		}

		created, err = s.transactionRepo.Create(ctx, &domain.PointTransaction{
			BusinessID:    p.BusinessID,
			CustomerID:    p.CustomerID,
			Points:        points,
			Kind:          p.Kind,
			Status:        domain.TxCompleted,
			ReferenceKind: p.ReferenceKind,
			ReferenceID:   p.ReferenceID,
			BranchID:      p.BranchID,
			MoneyAmount:   p.MoneyAmount,
			Multiplier:    multiplier,
			Description:   p.Description,
			ExpiresAt:     expiresAt,
		})
		if err != nil {
			return err
		}

		if _, err := s.accountRepo.AddToBalance(ctx, account.ID, points); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if points > 0 {
		metrics.PointsCredited.Add(float64(points))
	}
	zap.L().Info("points credited",
		zap.String("business_id", p.BusinessID.String()),
		zap.String("customer_id", p.CustomerID.String()),
		zap.Int("points", points),
		zap.String("kind", string(p.Kind)))
	return created, nil
}

// lockOrCreateAccount must run inside a transaction: the returned account row
// stays locked until commit.
func (s *Service) lockOrCreateAccount(ctx context.Context, businessID, customerID uuid.UUID) (*domain.LoyaltyAccount, error) {
	account, err := s.accountRepo.GetByPairForUpdate(ctx, businessID, customerID)
	if err != nil {
		return nil, err
	}
	if account != nil {
		return account, nil
	}

	code, err := codes.Unique(ctx, referralCodePrefix, s.accountRepo.ReferralCodeExists)
	if err != nil {
		return nil, fmt.Errorf("can't generate referral code: %w", err)
	}
	return s.accountRepo.Create(ctx, businessID, customerID, code)
}

type BalanceInfo struct {
	Balance         int
	AvailablePoints int
	ReferralCode    string
	ReferralCount   int
}

// GetBalance reports the cached balance corrected down by points that are
// past expiry but not yet swept, so a lagging sweeper can't let a customer
// over-redeem.
func (s *Service) GetBalance(ctx context.Context, businessID, customerID uuid.UUID) (*BalanceInfo, error) {
	account, err := s.accountRepo.GetByPair(ctx, businessID, customerID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		account, err = s.createAccount(ctx, businessID, customerID)
		if err != nil {
			return nil, err
		}
	}

	pendingExpiry, err := s.transactionRepo.SumExpiredUnswept(ctx, businessID, customerID, s.now())
	if err != nil {
		return nil, err
	}

	available := account.Balance - pendingExpiry
	if available < 0 {
		available = 0
	}
	return &BalanceInfo{
		Balance:         account.Balance,
		AvailablePoints: available,
		ReferralCode:    account.ReferralCode,
		ReferralCount:   account.ReferralCount,
	}, nil
}

func (s *Service) createAccount(ctx context.Context, businessID, customerID uuid.UUID) (*domain.LoyaltyAccount, error) {
	code, err := codes.Unique(ctx, referralCodePrefix, s.accountRepo.ReferralCodeExists)
	if err != nil {
		return nil, fmt.Errorf("can't generate referral code: %w", err)
	}
	return s.accountRepo.Create(ctx, businessID, customerID, code)
}

type TransactionFilter struct {
	Kind   *domain.TransactionKind
	Limit  int
	Offset int
}

func (s *Service) GetTransactions(ctx context.Context, businessID, customerID uuid.UUID, filter TransactionFilter) ([]domain.PointTransaction, error) {
	limit := filter.Limit
	switch {
	case limit <= 0:
		limit = 50
	case limit > 100:
		limit = 100
	}
	return s.transactionRepo.ListByCustomer(ctx, businessID, customerID, filter.Kind, limit, filter.Offset)
}

// CreditForAppointmentPayment converts a completed appointment payment into
// points at the configured per-currency rate.
func (s *Service) CreditForAppointmentPayment(ctx context.Context, businessID, customerID, appointmentID uuid.UUID, amount decimal.Decimal, branchID *uuid.UUID) (*domain.PointTransaction, error) {
	return s.creditForPayment(ctx, businessID, customerID, appointmentID, amount, branchID, domain.KindAppointmentPayment, domain.RefAppointment)
}

func (s *Service) CreditForProductPurchase(ctx context.Context, businessID, customerID, productID uuid.UUID, amount decimal.Decimal, branchID *uuid.UUID) (*domain.PointTransaction, error) {
	return s.creditForPayment(ctx, businessID, customerID, productID, amount, branchID, domain.KindProductPurchase, domain.RefProduct)
}

func (s *Service) creditForPayment(ctx context.Context, businessID, customerID, refID uuid.UUID, amount decimal.Decimal, branchID *uuid.UUID, kind domain.TransactionKind, refKind domain.ReferenceKind) (*domain.PointTransaction, error) {
	settings, err := s.rules.LoyaltySettings(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return nil, ErrProgramDisabled
	}

	points := int(amount.Mul(decimal.NewFromFloat(settings.PointsPerCurrencyUnit)).IntPart())
	ref := refID.String()
	return s.Credit(ctx, CreditParams{
		BusinessID:    businessID,
		CustomerID:    customerID,
		Points:        points,
		Kind:          kind,
		ReferenceKind: &refKind,
		ReferenceID:   &ref,
		BranchID:      branchID,
		MoneyAmount:   decimal.NewNullDecimal(amount),
		ExpiryDays:    settings.PointsExpiryDays,
	})
}

// CheckMilestone grants the configured bonus when the customer's count of
// completed appointment payments hits a multiple of the milestone size. The
// bonus transaction references the milestone ordinal, which makes repeated
// calls at the same count idempotent.
func (s *Service) CheckMilestone(ctx context.Context, businessID, customerID uuid.UUID, branchID *uuid.UUID) (*domain.PointTransaction, error) {
	settings, err := s.rules.LoyaltySettings(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return nil, ErrProgramDisabled
	}
	if !settings.MilestoneEnabled || settings.MilestoneCount <= 0 {
		return nil, ErrMilestoneDisabled
	}

	count, err := s.transactionRepo.CountByKind(ctx, businessID, customerID, domain.KindAppointmentPayment)
	if err != nil {
		return nil, err
	}
	if count == 0 || count%settings.MilestoneCount != 0 {
		return nil, nil
	}

	ordinal := strconv.Itoa(count)
	existing, err := s.transactionRepo.FindByKindAndReference(ctx, businessID, customerID,
		domain.KindBonus, domain.RefMilestone, ordinal)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMilestoneGranted
	}

	refKind := domain.RefMilestone
	return s.Credit(ctx, CreditParams{
		BusinessID:    businessID,
		CustomerID:    customerID,
		Points:        settings.MilestonePoints,
		Kind:          domain.KindBonus,
		ReferenceKind: &refKind,
		ReferenceID:   &ordinal,
		BranchID:      branchID,
		Description:   fmt.Sprintf("milestone bonus for %s completed visits", ordinal),
		ExpiryDays:    settings.PointsExpiryDays,
	})
}
