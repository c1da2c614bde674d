package transactionrepo

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

const txColumns = "id, business_id, customer_id, points, kind, status, reference_kind, reference_id, branch_id, money_amount, multiplier, description, expires_at, created_at"

func scanTransaction(row pgx.Row) (*domain.PointTransaction, error) {
	var tx domain.PointTransaction
	err := row.Scan(&tx.ID, &tx.BusinessID, &tx.CustomerID, &tx.Points, &tx.Kind,
		&tx.Status, &tx.ReferenceKind, &tx.ReferenceID, &tx.BranchID, &tx.MoneyAmount,
		&tx.Multiplier, &tx.Description, &tx.ExpiresAt, &tx.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) Create(ctx context.Context, tx *domain.PointTransaction) (*domain.PointTransaction, error) {
	query := `
        INSERT INTO point_transactions
            (business_id, customer_id, points, kind, status, reference_kind, reference_id, branch_id, money_amount, multiplier, description, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING ` + txColumns + `
    `
	created, err := scanTransaction(r.db.QueryRow(ctx, query,
		tx.BusinessID, tx.CustomerID, tx.Points, tx.Kind, tx.Status,
		tx.ReferenceKind, tx.ReferenceID, tx.BranchID, tx.MoneyAmount, tx.Multiplier,
		tx.Description, tx.ExpiresAt))
	if err != nil {
		zap.L().Error("can't create point transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) ListByCustomer(ctx context.Context, businessID, customerID uuid.UUID, kind *domain.TransactionKind, limit, offset int) ([]domain.PointTransaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM point_transactions
        WHERE business_id = $1 AND customer_id = $2
          AND ($3::text IS NULL OR kind = $3)
        ORDER BY created_at DESC
        LIMIT $4 OFFSET $5
    `
	rows, err := r.db.Query(ctx, query, businessID, customerID, kind, limit, offset)
	if err != nil {
		zap.L().Error("can't list point transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.PointTransaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan point transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, *tx)
	}
	return txs, nil
}

// SumExpiredUnswept totals positive COMPLETED points whose expiry has passed
// but which the sweeper has not yet processed. Read paths subtract this from
// the cached balance so a stale sweep cannot let a customer over-redeem.
func (r *Repository) SumExpiredUnswept(ctx context.Context, businessID, customerID uuid.UUID, now time.Time) (int, error) {
	query := `
        SELECT COALESCE(SUM(points), 0)
        FROM point_transactions
        WHERE business_id = $1 AND customer_id = $2
          AND status = 'COMPLETED' AND points > 0
          AND expires_at IS NOT NULL AND expires_at <= $3
    `
	var sum int
	if err := r.db.QueryRow(ctx, query, businessID, customerID, now).Scan(&sum); err != nil {
		zap.L().Error("can't sum expired points", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

// FindByKindAndReference is the idempotency lookup for one-shot credits
// (first-visit bonuses, milestone bonuses).
func (r *Repository) FindByKindAndReference(ctx context.Context, businessID, customerID uuid.UUID, kind domain.TransactionKind, refKind domain.ReferenceKind, refID string) (*domain.PointTransaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM point_transactions
        WHERE business_id = $1 AND customer_id = $2
          AND kind = $3 AND reference_kind = $4 AND reference_id = $5
        LIMIT 1
    `
	tx, err := scanTransaction(r.db.QueryRow(ctx, query, businessID, customerID, kind, refKind, refID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction by reference", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// CountByKind counts the customer's entries of one kind. EXPIRED entries
// still count: the sweeper only retires their points, not the visit or
// purchase they record, so milestone ordinals never regress.
func (r *Repository) CountByKind(ctx context.Context, businessID, customerID uuid.UUID, kind domain.TransactionKind) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM point_transactions
        WHERE business_id = $1 AND customer_id = $2 AND kind = $3
          AND status IN ('COMPLETED', 'EXPIRED')
    `
	var count int
	if err := r.db.QueryRow(ctx, query, businessID, customerID, kind).Scan(&count); err != nil {
		zap.L().Error("can't count transactions", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// FindExpired returns sweep candidates: COMPLETED positive entries past their
// expiry. Already-swept entries carry status EXPIRED and are not returned, so
// repeated sweeps are no-ops.
func (r *Repository) FindExpired(ctx context.Context, now time.Time, limit int) ([]domain.PointTransaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM point_transactions
        WHERE status = 'COMPLETED' AND points > 0
          AND expires_at IS NOT NULL AND expires_at <= $1
        ORDER BY expires_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("can't find expired transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.PointTransaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan expired transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, *tx)
	}
	return txs, nil
}

func (r *Repository) MarkExpired(ctx context.Context, id int) error {
	query := `
        UPDATE point_transactions
        SET status = 'EXPIRED'
        WHERE id = $1 AND status = 'COMPLETED'
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't mark transaction expired", zap.Error(err))
		return err
	}
	return nil
}
