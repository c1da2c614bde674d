package rules

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Setting keys stored per business in business_settings. The engine only
// reads effective values; policy is configured elsewhere.
const (
	KeyLoyaltyEnabled          = "loyalty.enabled"
	KeyPointsPerCurrencyUnit   = "loyalty.points_per_currency_unit"
	KeyPointsExpiryDays        = "loyalty.points_expiry_days"
	KeyMinPointsToRedeem       = "loyalty.min_points_to_redeem"
	KeyRewardExpiryDays        = "loyalty.reward_expiry_days"
	KeyReferralEnabled         = "loyalty.referral_enabled"
	KeyReferralPoints          = "loyalty.referral_points"
	KeyReferralFirstVisitBonus = "loyalty.referral_first_visit_bonus"
	KeyMilestoneEnabled        = "loyalty.milestone_enabled"
	KeyMilestoneCount          = "loyalty.milestone_count"
	KeyMilestonePoints         = "loyalty.milestone_points"

	KeyHoursForVoucher     = "cancellation.hours_for_voucher"
	KeyVoucherValidityDays = "cancellation.voucher_validity_days"
	KeyVoucherPercentage   = "cancellation.voucher_percentage"
	KeyMaxCancellations    = "cancellation.max_cancellations"
	KeyResetPeriodDays     = "cancellation.reset_period_days"
	KeyBlockDurationDays   = "cancellation.block_duration_days"
)

type LoyaltySettings struct {
	Enabled                 bool
	PointsPerCurrencyUnit   float64
	PointsExpiryDays        int
	MinPointsToRedeem       int
	RewardExpiryDays        int
	ReferralEnabled         bool
	ReferralPoints          int
	ReferralFirstVisitBonus int
	MilestoneEnabled        bool
	MilestoneCount          int
	MilestonePoints         int
}

type CancellationPolicy struct {
	HoursForVoucher     float64
	VoucherValidityDays int
	VoucherPercentage   float64
	MaxCancellations    int
	ResetPeriodDays     int
	BlockDurationDays   int
}

//go:generate mockgen -source=rules.go -destination=rules_mock.go -package=rules

type Provider interface {
	LoyaltySettings(ctx context.Context, businessID uuid.UUID) (LoyaltySettings, error)
	CancellationPolicy(ctx context.Context, businessID uuid.UUID) (CancellationPolicy, error)
}

type SettingsRepo interface {
	GetAll(ctx context.Context, businessID uuid.UUID) (map[string]string, error)
}

type Service struct {
	repo SettingsRepo
}

func New(repo SettingsRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) LoyaltySettings(ctx context.Context, businessID uuid.UUID) (LoyaltySettings, error) {
	values, err := s.repo.GetAll(ctx, businessID)
	if err != nil {
		zap.L().Error("can't load loyalty settings", zap.Error(err))
		return LoyaltySettings{}, err
	}
	return LoyaltySettings{
		Enabled:                 parseBool(values, KeyLoyaltyEnabled, false),
		PointsPerCurrencyUnit:   parseFloat(values, KeyPointsPerCurrencyUnit, 0.001),
		PointsExpiryDays:        parseInt(values, KeyPointsExpiryDays, 365),
		MinPointsToRedeem:       parseInt(values, KeyMinPointsToRedeem, 100),
		RewardExpiryDays:        parseInt(values, KeyRewardExpiryDays, 90),
		ReferralEnabled:         parseBool(values, KeyReferralEnabled, false),
		ReferralPoints:          parseInt(values, KeyReferralPoints, 100),
		ReferralFirstVisitBonus: parseInt(values, KeyReferralFirstVisitBonus, 200),
		MilestoneEnabled:        parseBool(values, KeyMilestoneEnabled, false),
		MilestoneCount:          parseInt(values, KeyMilestoneCount, 10),
		MilestonePoints:         parseInt(values, KeyMilestonePoints, 500),
	}, nil
}

func (s *Service) CancellationPolicy(ctx context.Context, businessID uuid.UUID) (CancellationPolicy, error) {
	values, err := s.repo.GetAll(ctx, businessID)
	if err != nil {
		zap.L().Error("can't load cancellation policy", zap.Error(err))
		return CancellationPolicy{}, err
	}
	return CancellationPolicy{
		HoursForVoucher:     parseFloat(values, KeyHoursForVoucher, 24),
		VoucherValidityDays: parseInt(values, KeyVoucherValidityDays, 30),
		VoucherPercentage:   parseFloat(values, KeyVoucherPercentage, 100),
		MaxCancellations:    parseInt(values, KeyMaxCancellations, 3),
		ResetPeriodDays:     parseInt(values, KeyResetPeriodDays, 30),
		BlockDurationDays:   parseInt(values, KeyBlockDurationDays, 14),
	}, nil
}

func parseBool(values map[string]string, key string, def bool) bool {
	raw, ok := values[key]
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		zap.L().Warn("invalid bool setting", zap.String("key", key), zap.String("value", raw))
		return def
	}
	return v
}

func parseInt(values map[string]string, key string, def int) int {
	raw, ok := values[key]
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		zap.L().Warn("invalid int setting", zap.String("key", key), zap.String("value", raw))
		return def
	}
	return v
}

func parseFloat(values map[string]string, key string, def float64) float64 {
	raw, ok := values[key]
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		zap.L().Warn("invalid float setting", zap.String("key", key), zap.String("value", raw))
		return def
	}
	return v
}
