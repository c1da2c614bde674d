package voucherrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

var voucherColumnNames = []string{"id", "code", "business_id", "customer_id", "booking_id", "amount", "currency", "status", "issued_at", "expires_at", "used_at", "applied_booking_id"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func activeVoucherRow(issuedAt, expiresAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(voucherColumnNames).
		AddRow(1, "VCH-4R8T2WX7", businessID, customerID, bookingID,
			decimal.NewFromFloat(50.00), "USD", domain.InstrumentActive, issuedAt, expiresAt, nil, nil)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	issuedAt := time.Now()
	expiresAt := issuedAt.AddDate(0, 0, 30)

	input := &domain.Voucher{
		Code:       "VCH-4R8T2WX7",
		BusinessID: businessID,
		CustomerID: customerID,
		BookingID:  bookingID,
		Amount:     decimal.NewFromFloat(50.00),
		Currency:   "USD",
		Status:     domain.InstrumentActive,
		IssuedAt:   issuedAt,
		ExpiresAt:  expiresAt,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates voucher",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO vouchers`)).
					WithArgs("VCH-4R8T2WX7", businessID, customerID, bookingID,
						decimal.NewFromFloat(50.00), "USD", domain.InstrumentActive, issuedAt, expiresAt).
					WillReturnRows(activeVoucherRow(issuedAt, expiresAt))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO vouchers`)).
					WithArgs("VCH-4R8T2WX7", businessID, customerID, bookingID,
						decimal.NewFromFloat(50.00), "USD", domain.InstrumentActive, issuedAt, expiresAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), input)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "VCH-4R8T2WX7", created.Code)
				assert.True(t, created.Amount.Equal(decimal.NewFromFloat(50.00)))
			}
		})
	}
}

func TestRepository_GetByCode(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		found     bool
	}{
		{
			name: "Existing code",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE code = $1 AND business_id = $2 AND customer_id = $3`)).
					WithArgs("VCH-4R8T2WX7", businessID, customerID).
					WillReturnRows(activeVoucherRow(now, now.AddDate(0, 0, 30)))
			},
			found: true,
		},
		{
			name: "Unknown code returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE code = $1 AND business_id = $2 AND customer_id = $3`)).
					WithArgs("VCH-4R8T2WX7", businessID, customerID).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			voucher, err := repo.GetByCode(context.Background(), "VCH-4R8T2WX7", businessID, customerID)

			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, voucher)
			} else {
				assert.Nil(t, voucher)
			}
		})
	}
}

func TestRepository_MarkUsed(t *testing.T) {
	repo, mock := NewMock(t)
	usedAt := time.Now()
	newBookingID := uuid.MustParse("45c48cce-2e2d-4fbd-9457-4d18c28d46e6")

	tests := []struct {
		name      string
		mockSetup func()
		found     bool
	}{
		{
			name: "Active voucher is consumed",
			mockSetup: func() {
				rows := pgxmock.NewRows(voucherColumnNames).
					AddRow(1, "VCH-4R8T2WX7", businessID, customerID, bookingID,
						decimal.NewFromFloat(50.00), "USD", domain.InstrumentUsed,
						usedAt.AddDate(0, 0, -1), usedAt.AddDate(0, 0, 29), &usedAt, &newBookingID)
				mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'USED', used_at = $2, applied_booking_id = $3`)).
					WithArgs(1, usedAt, newBookingID).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Already consumed returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'USED', used_at = $2, applied_booking_id = $3`)).
					WithArgs(1, usedAt, newBookingID).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			used, err := repo.MarkUsed(context.Background(), 1, usedAt, newBookingID)

			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, used)
				assert.Equal(t, domain.InstrumentUsed, used.Status)
			} else {
				assert.Nil(t, used)
			}
		})
	}
}

func TestRepository_ExpireStale(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`WHERE status = 'ACTIVE' AND expires_at <= $1`)).
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	n, err := repo.ExpireStale(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
