package accountrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/salonhq/loyalty/internal/domain"
	"github.com/salonhq/loyalty/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const accountColumns = "id, business_id, customer_id, balance, referral_code, referral_count, last_referral_at, created_at"

func scanAccount(row pgx.Row) (*domain.LoyaltyAccount, error) {
	var acc domain.LoyaltyAccount
	err := row.Scan(&acc.ID, &acc.BusinessID, &acc.CustomerID, &acc.Balance,
		&acc.ReferralCode, &acc.ReferralCount, &acc.LastReferralAt, &acc.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *Repository) GetByPair(ctx context.Context, businessID, customerID uuid.UUID) (*domain.LoyaltyAccount, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM loyalty_accounts
        WHERE business_id = $1 AND customer_id = $2
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, businessID, customerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get loyalty account", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

// GetByPairForUpdate locks the account row for the rest of the surrounding
// transaction so concurrent balance writers for the same customer serialize.
func (r *Repository) GetByPairForUpdate(ctx context.Context, businessID, customerID uuid.UUID) (*domain.LoyaltyAccount, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM loyalty_accounts
        WHERE business_id = $1 AND customer_id = $2
        FOR UPDATE
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, businessID, customerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock loyalty account", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) Create(ctx context.Context, businessID, customerID uuid.UUID, referralCode string) (*domain.LoyaltyAccount, error) {
	query := `
        INSERT INTO loyalty_accounts (business_id, customer_id, balance, referral_code)
        VALUES ($1, $2, 0, $3)
        RETURNING ` + accountColumns + `
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, businessID, customerID, referralCode))
	if err != nil {
		zap.L().Error("can't create loyalty account", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

// AddToBalance applies a signed delta atomically in SQL.
func (r *Repository) AddToBalance(ctx context.Context, accountID, delta int) (*domain.LoyaltyAccount, error) {
	query := `
        UPDATE loyalty_accounts
        SET balance = balance + $2
        WHERE id = $1
        RETURNING ` + accountColumns + `
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, accountID, delta))
	if err != nil {
		zap.L().Error("can't update account balance", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

// DeductExpired removes swept points but never drives the balance negative.
func (r *Repository) DeductExpired(ctx context.Context, accountID, points int) error {
	query := `
        UPDATE loyalty_accounts
        SET balance = GREATEST(balance - $2, 0)
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, accountID, points); err != nil {
		zap.L().Error("can't deduct expired points", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) RecordReferral(ctx context.Context, accountID int, at time.Time) error {
	query := `
        UPDATE loyalty_accounts
        SET referral_count = referral_count + 1, last_referral_at = $2
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, accountID, at); err != nil {
		zap.L().Error("can't record referral", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	query := `
        SELECT EXISTS (SELECT 1 FROM loyalty_accounts WHERE referral_code = $1)
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		zap.L().Error("can't check referral code", zap.Error(err))
		return false, err
	}
	return exists, nil
}
