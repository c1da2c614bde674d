package redemptionservice

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

//go:generate mockgen -source=redemptionservice.go -destination=redemptionservice_mock.go -package=redemptionservice

type AccountRepo interface {
	GetByPairForUpdate(ctx context.Context, businessID, customerID uuid.UUID) (*domain.LoyaltyAccount, error)
	AddToBalance(ctx context.Context, accountID, delta int) (*domain.LoyaltyAccount, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.PointTransaction) (*domain.PointTransaction, error)
	SumExpiredUnswept(ctx context.Context, businessID, customerID uuid.UUID, now time.Time) (int, error)
}

type RewardRepo interface {
	Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	GetByCode(ctx context.Context, code string, businessID, customerID uuid.UUID) (*domain.Reward, error)
	ListByCustomer(ctx context.Context, businessID, customerID uuid.UUID) ([]domain.Reward, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	MarkUsed(ctx context.Context, id int, usedAt time.Time, refKind domain.ReferenceKind, refID string) (*domain.Reward, error)
	MarkExpired(ctx context.Context, id int) error
}

var (
	ErrProgramDisabled    = errors.New("loyalty program not enabled")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrBelowMinimum       = errors.New("requested points below redeemable minimum")
	ErrInvalidRewardKind  = errors.New("invalid reward kind")
	ErrRewardNotFound     = errors.New("reward not found")
	ErrRewardNotActive    = errors.New("reward is not active")
	ErrRewardExpired      = errors.New("reward expired")
)

const rewardCodePrefix = "RWD-"

type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	rewardRepo      RewardRepo
	rules           rules.Provider
	txManager       pg.TXManager
	now             func() time.Time
}

func New(accountRepo AccountRepo, transactionRepo TransactionRepo, rewardRepo RewardRepo, rulesProvider rules.Provider, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		rewardRepo:      rewardRepo,
		rules:           rulesProvider,
		txManager:       txManager,
		now:             time.Now,
	}
}

type RedeemParams struct {
	BusinessID  uuid.UUID
	CustomerID  uuid.UUID
	Points      int
	Kind        domain.RewardKind
	Value       decimal.Decimal
	Description string
	Conditions  string
	IssuedBy    string
}

// Redeem converts a point debit into an issued Reward. The reward row, the
// redemption transaction and the balance decrement commit together or not at
// all; the account row stays locked so the available-points check and the
// debit are one serialized unit.
func (s *Service) Redeem(ctx context.Context, p RedeemParams) (*domain.Reward, error) {
	if !p.Kind.Valid() {
		return nil, ErrInvalidRewardKind
	}

	settings, err := s.rules.LoyaltySettings(ctx, p.BusinessID)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return nil, ErrProgramDisabled
	}

	var reward *domain.Reward
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetByPairForUpdate(ctx, p.BusinessID, p.CustomerID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrInsufficientPoints
		}

		pendingExpiry, err := s.transactionRepo.SumExpiredUnswept(ctx, p.BusinessID, p.CustomerID, s.now())
		if err != nil {
			return err
		}
		available := account.Balance - pendingExpiry
		if available < p.Points {
			return ErrInsufficientPoints
		}
		if p.Points < settings.MinPointsToRedeem {
			return ErrBelowMinimum
		}

		code, err := codes.Unique(ctx, rewardCodePrefix, s.rewardRepo.CodeExists)
		if err != nil {
			return fmt.Errorf("can't generate reward code: %w", err)
		}

		now := s.now()
		reward, err = s.rewardRepo.Create(ctx, &domain.Reward{
			Code:        code,
			BusinessID:  p.BusinessID,
			CustomerID:  p.CustomerID,
			PointsSpent: p.Points,
			Kind:        p.Kind,
			Value:       p.Value,
			Status:      domain.InstrumentActive,
			Conditions:  p.Conditions,
			IssuedBy:    p.IssuedBy,
			IssuedAt:    now,
			ExpiresAt:   now.AddDate(0, 0, settings.RewardExpiryDays),
		})
		if err != nil {
			return err
		}

		refKind := domain.RefReward
		refID := reward.Code
		if _, err := s.transactionRepo.Create(ctx, &domain.PointTransaction{
			BusinessID:    p.BusinessID,
			CustomerID:    p.CustomerID,
			Points:        -p.Points,
			Kind:          domain.KindRedemption,
			Status:        domain.TxCompleted,
			ReferenceKind: &refKind,
			ReferenceID:   &refID,
			Multiplier:    1,
			Description:   p.Description,
		}); err != nil {
			return err
		}

		if _, err := s.accountRepo.AddToBalance(ctx, account.ID, -p.Points); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.PointsRedeemed.Add(float64(p.Points))
	zap.L().Info("points redeemed",
		zap.String("business_id", p.BusinessID.String()),
		zap.String("customer_id", p.CustomerID.String()),
		zap.Int("points", p.Points),
		zap.String("reward_code", reward.Code))
	return reward, nil
}

// ApplyReward consumes an ACTIVE reward against a target object. A reward
// found past its expiry is transitioned to EXPIRED and rejected rather than
// applied.
func (s *Service) ApplyReward(ctx context.Context, code string, businessID, customerID uuid.UUID, refKind domain.ReferenceKind, refID string) (*domain.Reward, error) {
	reward, err := s.rewardRepo.GetByCode(ctx, code, businessID, customerID)
	if err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, ErrRewardNotFound
	}
	if reward.Status != domain.InstrumentActive {
		return nil, ErrRewardNotActive
	}
	if !reward.ExpiresAt.After(s.now()) {
		if err := s.rewardRepo.MarkExpired(ctx, reward.ID); err != nil {
			return nil, err
		}
		return nil, ErrRewardExpired
	}

	used, err := s.rewardRepo.MarkUsed(ctx, reward.ID, s.now(), refKind, refID)
	if err != nil {
		return nil, err
	}
	if used == nil {
		// Lost the race to another apply call.
		return nil, ErrRewardNotActive
	}
	return used, nil
}

func (s *Service) GetRewards(ctx context.Context, businessID, customerID uuid.UUID) ([]domain.Reward, error) {
	return s.rewardRepo.ListByCustomer(ctx, businessID, customerID)
}
