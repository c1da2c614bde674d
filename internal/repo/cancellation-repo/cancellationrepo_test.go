package cancellationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/salonhq/loyalty/internal/domain"
)

var (
	businessID = uuid.MustParse("356a192b-7913-504c-9457-4d18c28d46e6")
	customerID = uuid.MustParse("da4b9237-bacc-4df4-9457-4d18c28d46e6")
	bookingID  = uuid.MustParse("fa35e192-1217-4df4-9457-4d18c28d46e6")
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	cancelledAt := time.Now()
	bookingAt := cancelledAt.Add(48 * time.Hour)
	voucherID := 7

	rec := &domain.CancellationRecord{
		BusinessID:       businessID,
		CustomerID:       customerID,
		BookingID:        bookingID,
		CancelledAt:      cancelledAt,
		BookingAt:        bookingAt,
		LeadHours:        48,
		BookingAmount:    decimal.NewFromFloat(120.00),
		VoucherGenerated: true,
		VoucherID:        &voucherID,
		CancelledBy:      domain.CancelledByCustomer,
		Reason:           "schedule conflict",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates record",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO cancellation_records`)).
					WithArgs(businessID, customerID, bookingID, cancelledAt, bookingAt,
						float64(48), decimal.NewFromFloat(120.00), true, &voucherID,
						domain.CancelledByCustomer, "schedule conflict").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO cancellation_records`)).
					WithArgs(businessID, customerID, bookingID, cancelledAt, bookingAt,
						float64(48), decimal.NewFromFloat(120.00), true, &voucherID,
						domain.CancelledByCustomer, "schedule conflict").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), rec)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 42, created.ID)
			}
		})
	}
}

func TestRepository_ExistsForBooking(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		want      bool
	}{
		{
			name: "Booking already recorded",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
					WithArgs(businessID, bookingID).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			want: true,
		},
		{
			name: "Unknown booking",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
					WithArgs(businessID, bookingID).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			exists, err := repo.ExistsForBooking(context.Background(), businessID, bookingID)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, exists)
		})
	}
}

func TestRepository_CountCustomerCancellations(t *testing.T) {
	repo, mock := NewMock(t)
	since := time.Now().AddDate(0, 0, -30)

	mock.ExpectQuery(regexp.QuoteMeta(`AND cancelled_by = 'customer' AND cancelled_at >= $3`)).
		WithArgs(businessID, customerID, since).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountCustomerCancellations(context.Background(), businessID, customerID, since)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRepository_ListByCustomer(t *testing.T) {
	repo, mock := NewMock(t)
	cancelledAt := time.Now()

	columns := []string{"id", "business_id", "customer_id", "booking_id", "cancelled_at", "booking_at", "lead_hours", "booking_amount", "voucher_generated", "voucher_id", "cancelled_by", "reason"}

	tests := []struct {
		name      string
		mockSetup func()
		wantLen   int
		expectErr bool
	}{
		{
			name: "Returns records",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(1, businessID, customerID, bookingID, cancelledAt,
						cancelledAt.Add(48*time.Hour), float64(48),
						decimal.NewFromFloat(120.00), false, nil,
						domain.CancelledByCustomer, "")
				mock.ExpectQuery(regexp.QuoteMeta(`FROM cancellation_records`)).
					WithArgs(businessID, customerID, 20, 0).
					WillReturnRows(rows)
			},
			wantLen: 1,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM cancellation_records`)).
					WithArgs(businessID, customerID, 20, 0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			recs, err := repo.ListByCustomer(context.Background(), businessID, customerID, 20, 0)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, recs, tt.wantLen)
			}
		})
	}
}
