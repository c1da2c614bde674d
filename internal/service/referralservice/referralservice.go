package referralservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salonhq/loyalty/internal/domain"
	"github.com/salonhq/loyalty/internal/rules"
	"github.com/salonhq/loyalty/internal/service/ledgerservice"
)

//go:generate mockgen -source=referralservice.go -destination=referralservice_mock.go -package=referralservice

type Ledger interface {
	Credit(ctx context.Context, p ledgerservice.CreditParams) (*domain.PointTransaction, error)
}

type AccountRepo interface {
	GetByPair(ctx context.Context, businessID, customerID uuid.UUID) (*domain.LoyaltyAccount, error)
	RecordReferral(ctx context.Context, accountID int, at time.Time) error
}

type TransactionRepo interface {
	FindByKindAndReference(ctx context.Context, businessID, customerID uuid.UUID, kind domain.TransactionKind, refKind domain.ReferenceKind, refID string) (*domain.PointTransaction, error)
}

var (
	ErrReferralDisabled = errors.New("referral program not enabled")
	ErrBonusGranted     = errors.New("first visit bonus already granted")
)

type Service struct {
	ledger          Ledger
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	rules           rules.Provider
	now             func() time.Time
}

func New(ledger Ledger, accountRepo AccountRepo, transactionRepo TransactionRepo, rulesProvider rules.Provider) *Service {
	return &Service{
		ledger:          ledger,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		rules:           rulesProvider,
		now:             time.Now,
	}
}

// ProcessReferral credits the referrer for bringing in a new customer and
// bumps their referral counter. Deduplicating referral events is the
// caller's job; the engine records whatever it is told.
func (s *Service) ProcessReferral(ctx context.Context, businessID, referrerID, referredID uuid.UUID) (*domain.PointTransaction, error) {
	settings, err := s.rules.LoyaltySettings(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled || !settings.ReferralEnabled {
		return nil, ErrReferralDisabled
	}

	refKind := domain.RefCustomer
	refID := referredID.String()
	tx, err := s.ledger.Credit(ctx, ledgerservice.CreditParams{
		BusinessID:    businessID,
		CustomerID:    referrerID,
		Points:        settings.ReferralPoints,
		Kind:          domain.KindReferral,
		ReferenceKind: &refKind,
		ReferenceID:   &refID,
		Description:   "referral bonus",
		ExpiryDays:    settings.PointsExpiryDays,
	})
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByPair(ctx, businessID, referrerID)
	if err != nil {
		return nil, err
	}
	if account != nil {
		if err := s.accountRepo.RecordReferral(ctx, account.ID, s.now()); err != nil {
			return nil, err
		}
	}

	zap.L().Info("referral processed",
		zap.String("business_id", businessID.String()),
		zap.String("referrer_id", referrerID.String()),
		zap.String("referred_id", referredID.String()))
	return tx, nil
}

// ProcessFirstVisitBonus credits the referrer once the referred customer
// completes a first paid visit. The triggering event can be reported more
// than once, so an existing bonus entry for the referred customer short
// circuits the credit.
func (s *Service) ProcessFirstVisitBonus(ctx context.Context, businessID, referrerID, referredID, bookingID uuid.UUID) (*domain.PointTransaction, error) {
	settings, err := s.rules.LoyaltySettings(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled || !settings.ReferralEnabled {
		return nil, ErrReferralDisabled
	}

	refID := referredID.String()
	existing, err := s.transactionRepo.FindByKindAndReference(ctx, businessID, referrerID,
		domain.KindReferralFirstVisit, domain.RefCustomer, refID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrBonusGranted
	}

	refKind := domain.RefCustomer
	return s.ledger.Credit(ctx, ledgerservice.CreditParams{
		BusinessID:    businessID,
		CustomerID:    referrerID,
		Points:        settings.ReferralFirstVisitBonus,
		Kind:          domain.KindReferralFirstVisit,
		ReferenceKind: &refKind,
		ReferenceID:   &refID,
		Description:   "referred customer completed first visit, booking " + bookingID.String(),
		ExpiryDays:    settings.PointsExpiryDays,
	})
}
