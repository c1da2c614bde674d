package cancellationrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
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

func (r *Repository) Create(ctx context.Context, rec *domain.CancellationRecord) (*domain.CancellationRecord, error) {
	query := `
        INSERT INTO cancellation_records
            (business_id, customer_id, booking_id, cancelled_at, booking_at, lead_hours, booking_amount, voucher_generated, voucher_id, cancelled_by, reason)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		rec.BusinessID, rec.CustomerID, rec.BookingID, rec.CancelledAt,
		rec.BookingAt, rec.LeadHours, rec.BookingAmount, rec.VoucherGenerated,
		rec.VoucherID, rec.CancelledBy, rec.Reason).Scan(&rec.ID)
	if err != nil {
		zap.L().Error("can't create cancellation record", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// ExistsForBooking guards against the same booking cancellation being
// processed twice.
func (r *Repository) ExistsForBooking(ctx context.Context, businessID, bookingID uuid.UUID) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM cancellation_records
            WHERE business_id = $1 AND booking_id = $2
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, businessID, bookingID).Scan(&exists); err != nil {
		zap.L().Error("can't check cancellation record", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// CountCustomerCancellations counts customer-initiated cancellations in the
// rolling penalty window.
func (r *Repository) CountCustomerCancellations(ctx context.Context, businessID, customerID uuid.UUID, since time.Time) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM cancellation_records
        WHERE business_id = $1 AND customer_id = $2
          AND cancelled_by = 'customer' AND cancelled_at >= $3
    `
	var count int
	if err := r.db.QueryRow(ctx, query, businessID, customerID, since).Scan(&count); err != nil {
		zap.L().Error("can't count cancellations", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) ListByCustomer(ctx context.Context, businessID, customerID uuid.UUID, limit, offset int) ([]domain.CancellationRecord, error) {
	query := `
        SELECT id, business_id, customer_id, booking_id, cancelled_at, booking_at, lead_hours, booking_amount, voucher_generated, voucher_id, cancelled_by, reason
        FROM cancellation_records
        WHERE business_id = $1 AND customer_id = $2
        ORDER BY cancelled_at DESC
        LIMIT $3 OFFSET $4
    `
	rows, err := r.db.Query(ctx, query, businessID, customerID, limit, offset)
	if err != nil {
		zap.L().Error("can't list cancellation records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var recs []domain.CancellationRecord
	for rows.Next() {
		var rec domain.CancellationRecord
		err := rows.Scan(&rec.ID, &rec.BusinessID, &rec.CustomerID, &rec.BookingID,
			&rec.CancelledAt, &rec.BookingAt, &rec.LeadHours, &rec.BookingAmount,
			&rec.VoucherGenerated, &rec.VoucherID, &rec.CancelledBy, &rec.Reason)
		if err != nil {
			zap.L().Error("can't scan cancellation record row", zap.Error(err))
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
