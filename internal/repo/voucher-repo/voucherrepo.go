package voucherrepo

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

const voucherColumns = "id, code, business_id, customer_id, booking_id, amount, currency, status, issued_at, expires_at, used_at, applied_booking_id"

func scanVoucher(row pgx.Row) (*domain.Voucher, error) {
	var v domain.Voucher
	err := row.Scan(&v.ID, &v.Code, &v.BusinessID, &v.CustomerID, &v.BookingID,
		&v.Amount, &v.Currency, &v.Status, &v.IssuedAt, &v.ExpiresAt,
		&v.UsedAt, &v.AppliedBookingID)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) Create(ctx context.Context, voucher *domain.Voucher) (*domain.Voucher, error) {
	query := `
        INSERT INTO vouchers
            (code, business_id, customer_id, booking_id, amount, currency, status, issued_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + voucherColumns + `
    `
	created, err := scanVoucher(r.db.QueryRow(ctx, query,
		voucher.Code, voucher.BusinessID, voucher.CustomerID, voucher.BookingID,
		voucher.Amount, voucher.Currency, voucher.Status, voucher.IssuedAt, voucher.ExpiresAt))
	if err != nil {
		zap.L().Error("can't create voucher", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByCode(ctx context.Context, code string, businessID, customerID uuid.UUID) (*domain.Voucher, error) {
	query := `
        SELECT ` + voucherColumns + `
        FROM vouchers
        WHERE code = $1 AND business_id = $2 AND customer_id = $3
    `
	voucher, err := scanVoucher(r.db.QueryRow(ctx, query, code, businessID, customerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get voucher by code", zap.Error(err))
		return nil, err
	}
	return voucher, nil
}

func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	query := `
        SELECT EXISTS (SELECT 1 FROM vouchers WHERE code = $1)
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		zap.L().Error("can't check voucher code", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) MarkUsed(ctx context.Context, id int, usedAt time.Time, bookingID uuid.UUID) (*domain.Voucher, error) {
	query := `
        UPDATE vouchers
        SET status = 'USED', used_at = $2, applied_booking_id = $3
        WHERE id = $1 AND status = 'ACTIVE'
        RETURNING ` + voucherColumns + `
    `
	voucher, err := scanVoucher(r.db.QueryRow(ctx, query, id, usedAt, bookingID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't mark voucher used", zap.Error(err))
		return nil, err
	}
	return voucher, nil
}

func (r *Repository) MarkExpired(ctx context.Context, id int) error {
	query := `
        UPDATE vouchers
        SET status = 'EXPIRED'
        WHERE id = $1 AND status = 'ACTIVE'
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't mark voucher expired", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE vouchers
        SET status = 'EXPIRED'
        WHERE status = 'ACTIVE' AND expires_at <= $1
    `
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("can't expire stale vouchers", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
