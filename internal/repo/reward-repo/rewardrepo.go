package rewardrepo

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

const rewardColumns = "id, code, business_id, customer_id, points_spent, kind, value, status, conditions, issued_by, issued_at, expires_at, used_at, applied_ref_kind, applied_ref_id"

func scanReward(row pgx.Row) (*domain.Reward, error) {
	var rw domain.Reward
	err := row.Scan(&rw.ID, &rw.Code, &rw.BusinessID, &rw.CustomerID, &rw.PointsSpent,
		&rw.Kind, &rw.Value, &rw.Status, &rw.Conditions, &rw.IssuedBy,
		&rw.IssuedAt, &rw.ExpiresAt, &rw.UsedAt, &rw.AppliedRefKind, &rw.AppliedRefID)
	if err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *Repository) Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	query := `
        INSERT INTO rewards
            (code, business_id, customer_id, points_spent, kind, value, status, conditions, issued_by, issued_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING ` + rewardColumns + `
    `
	created, err := scanReward(r.db.QueryRow(ctx, query,
		reward.Code, reward.BusinessID, reward.CustomerID, reward.PointsSpent,
		reward.Kind, reward.Value, reward.Status, reward.Conditions,
		reward.IssuedBy, reward.IssuedAt, reward.ExpiresAt))
	if err != nil {
		zap.L().Error("can't create reward", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByCode(ctx context.Context, code string, businessID, customerID uuid.UUID) (*domain.Reward, error) {
	query := `
        SELECT ` + rewardColumns + `
        FROM rewards
        WHERE code = $1 AND business_id = $2 AND customer_id = $3
    `
	reward, err := scanReward(r.db.QueryRow(ctx, query, code, businessID, customerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get reward by code", zap.Error(err))
		return nil, err
	}
	return reward, nil
}

func (r *Repository) ListByCustomer(ctx context.Context, businessID, customerID uuid.UUID) ([]domain.Reward, error) {
	query := `
        SELECT ` + rewardColumns + `
        FROM rewards
        WHERE business_id = $1 AND customer_id = $2
        ORDER BY issued_at DESC
    `
	rows, err := r.db.Query(ctx, query, businessID, customerID)
	if err != nil {
		zap.L().Error("can't list rewards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			zap.L().Error("can't scan reward row", zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, *reward)
	}
	return rewards, nil
}

func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	query := `
        SELECT EXISTS (SELECT 1 FROM rewards WHERE code = $1)
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		zap.L().Error("can't check reward code", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) MarkUsed(ctx context.Context, id int, usedAt time.Time, refKind domain.ReferenceKind, refID string) (*domain.Reward, error) {
	query := `
        UPDATE rewards
        SET status = 'USED', used_at = $2, applied_ref_kind = $3, applied_ref_id = $4
        WHERE id = $1 AND status = 'ACTIVE'
        RETURNING ` + rewardColumns + `
    `
	reward, err := scanReward(r.db.QueryRow(ctx, query, id, usedAt, refKind, refID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't mark reward used", zap.Error(err))
		return nil, err
	}
	return reward, nil
}

func (r *Repository) MarkExpired(ctx context.Context, id int) error {
	query := `
        UPDATE rewards
        SET status = 'EXPIRED'
        WHERE id = $1 AND status = 'ACTIVE'
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't mark reward expired", zap.Error(err))
		return err
	}
	return nil
}

// ExpireStale bulk-transitions ACTIVE rewards past their expiry.
func (r *Repository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE rewards
        SET status = 'EXPIRED'
        WHERE status = 'ACTIVE' AND expires_at <= $1
    `
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("can't expire stale rewards", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
