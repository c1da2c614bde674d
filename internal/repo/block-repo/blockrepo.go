package blockrepo

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

const blockColumns = "id, business_id, customer_id, status, reason, blocked_at, expires_at, lifted_at, lifted_by, lift_notes, cancellation_count"

func scanBlock(row pgx.Row) (*domain.BookingBlock, error) {
	var b domain.BookingBlock
	err := row.Scan(&b.ID, &b.BusinessID, &b.CustomerID, &b.Status, &b.Reason,
		&b.BlockedAt, &b.ExpiresAt, &b.LiftedAt, &b.LiftedBy, &b.LiftNotes, &b.CancellationCount)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Create(ctx context.Context, block *domain.BookingBlock) (*domain.BookingBlock, error) {
	query := `
        INSERT INTO booking_blocks
            (business_id, customer_id, status, reason, blocked_at, expires_at, cancellation_count)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + blockColumns + `
    `
	created, err := scanBlock(r.db.QueryRow(ctx, query,
		block.BusinessID, block.CustomerID, block.Status, block.Reason,
		block.BlockedAt, block.ExpiresAt, block.CancellationCount))
	if err != nil {
		zap.L().Error("can't create booking block", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// FindActive returns the single ACTIVE unexpired block for the pair, if any.
func (r *Repository) FindActive(ctx context.Context, businessID, customerID uuid.UUID, now time.Time) (*domain.BookingBlock, error) {
	query := `
        SELECT ` + blockColumns + `
        FROM booking_blocks
        WHERE business_id = $1 AND customer_id = $2
          AND status = 'ACTIVE' AND expires_at > $3
        ORDER BY blocked_at DESC
        LIMIT 1
    `
	block, err := scanBlock(r.db.QueryRow(ctx, query, businessID, customerID, now))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find active booking block", zap.Error(err))
		return nil, err
	}
	return block, nil
}

func (r *Repository) GetByID(ctx context.Context, id int, businessID uuid.UUID) (*domain.BookingBlock, error) {
	query := `
        SELECT ` + blockColumns + `
        FROM booking_blocks
        WHERE id = $1 AND business_id = $2
    `
	block, err := scanBlock(r.db.QueryRow(ctx, query, id, businessID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get booking block", zap.Error(err))
		return nil, err
	}
	return block, nil
}

// Lift transitions an ACTIVE block to LIFTED. Returns nil if the block was
// not ACTIVE anymore.
func (r *Repository) Lift(ctx context.Context, id int, businessID uuid.UUID, at time.Time, actor, notes string) (*domain.BookingBlock, error) {
	query := `
        UPDATE booking_blocks
        SET status = 'LIFTED', lifted_at = $3, lifted_by = $4, lift_notes = $5
        WHERE id = $1 AND business_id = $2 AND status = 'ACTIVE'
        RETURNING ` + blockColumns + `
    `
	block, err := scanBlock(r.db.QueryRow(ctx, query, id, businessID, at, actor, notes))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lift booking block", zap.Error(err))
		return nil, err
	}
	return block, nil
}

func (r *Repository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE booking_blocks
        SET status = 'EXPIRED'
        WHERE status = 'ACTIVE' AND expires_at <= $1
    `
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("can't expire stale booking blocks", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
