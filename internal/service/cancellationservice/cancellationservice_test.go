package cancellationservice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/salonhq/loyalty/internal/domain"
	"github.com/salonhq/loyalty/internal/pg"
	"github.com/salonhq/loyalty/internal/rules"
)

var (
	businessID = uuid.MustParse("356a192b-7913-504c-9457-4d18c28d46e6")
	customerID = uuid.MustParse("da4b9237-bacc-4df4-9457-4d18c28d46e6")
	bookingID  = uuid.MustParse("fa35e192-1217-4df4-9457-4d18c28d46e6")
	fixedNow   = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
)

func NewMock(t *testing.T) (*Service, *MockVoucherRepo, *MockCancellationRepo, *MockBlockRepo, *rules.MockProvider, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	voucherRepo := NewMockVoucherRepo(ctrl)
	cancellationRepo := NewMockCancellationRepo(ctrl)
	blockRepo := NewMockBlockRepo(ctrl)
	rulesProvider := rules.NewMockProvider(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(voucherRepo, cancellationRepo, blockRepo, rulesProvider, txManager)
	service.now = func() time.Time { return fixedNow }
	defer ctrl.Finish()
	return service, voucherRepo, cancellationRepo, blockRepo, rulesProvider, txManager
}

func defaultPolicy() rules.CancellationPolicy {
	return rules.CancellationPolicy{
		HoursForVoucher:     24,
		VoucherValidityDays: 30,
		VoucherPercentage:   100,
		MaxCancellations:    3,
		ResetPeriodDays:     30,
		BlockDurationDays:   14,
	}
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestProcessCancellation(t *testing.T) {
	service, voucherRepo, cancellationRepo, blockRepo, rulesProvider, txManager := NewMock(t)

	params := func(leadHours float64) CancellationParams {
		return CancellationParams{
			BusinessID:    businessID,
			CustomerID:    customerID,
			BookingID:     bookingID,
			BookingAt:     fixedNow.Add(time.Duration(leadHours * float64(time.Hour))),
			BookingAmount: decimal.NewFromFloat(120.00),
			Currency:      "USD",
			CancelledBy:   domain.CancelledByCustomer,
		}
	}

	expectRecord := func(voucherGenerated bool) {
		cancellationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec *domain.CancellationRecord) (*domain.CancellationRecord, error) {
				assert.Equal(t, voucherGenerated, rec.VoucherGenerated)
				rec.ID = 42
				return rec, nil
			})
	}

	expectNoPenalty := func(count int) {
		cancellationRepo.EXPECT().CountCustomerCancellations(gomock.Any(), businessID, customerID,
			fixedNow.AddDate(0, 0, -30)).Return(count, nil)
	}

	tests := []struct {
		name          string
		params        CancellationParams
		prepareMock   func()
		wantVoucher   bool
		wantBlocked   bool
		expectedError error
	}{
		{
			name:   "Early cancellation earns full voucher",
			params: params(48),
			prepareMock: func() {
				rulesProvider.EXPECT().CancellationPolicy(gomock.Any(), businessID).Return(defaultPolicy(), nil)
				cancellationRepo.EXPECT().ExistsForBooking(gomock.Any(), businessID, bookingID).Return(false, nil)
				passthroughTx(txManager)
				voucherRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
				voucherRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, v *domain.Voucher) (*domain.Voucher, error) {
						assert.True(t, v.Amount.Equal(decimal.NewFromFloat(120.00)))
						assert.Equal(t, "USD", v.Currency)
						assert.Equal(t, fixedNow.AddDate(0, 0, 30), v.ExpiresAt)
						v.ID = 7
						return v, nil
					})
				expectRecord(true)
				expectNoPenalty(1)
			},
			wantVoucher: true,
		},
		{
			name:   "Late cancellation gets no voucher",
			params: params(23.9),
			prepareMock: func() {
				rulesProvider.EXPECT().CancellationPolicy(gomock.Any(), businessID).Return(defaultPolicy(), nil)
				cancellationRepo.EXPECT().ExistsForBooking(gomock.Any(), businessID, bookingID).Return(false, nil)
				passthroughTx(txManager)
				expectRecord(false)
				expectNoPenalty(1)
			},
		},
		{
			name: "Business-initiated cancellation gets no voucher",
			params: func() CancellationParams {
				p := params(48)
				p.CancelledBy = domain.CancelledByBusiness
				return p
			}(),
			prepareMock: func() {
				rulesProvider.EXPECT().CancellationPolicy(gomock.Any(), businessID).Return(defaultPolicy(), nil)
				cancellationRepo.EXPECT().ExistsForBooking(gomock.Any(), businessID, bookingID).Return(false, nil)
				passthroughTx(txManager)
				expectRecord(false)
				expectNoPenalty(0)
			},
		},
		{
			name: "Partial percentage rounds to cents",
			params: func() CancellationParams {
				p := params(48)
				p.BookingAmount = decimal.NewFromFloat(99.99)
				return p
			}(),
			prepareMock: func() {
				policy := defaultPolicy()
				policy.VoucherPercentage = 50
				rulesProvider.EXPECT().CancellationPolicy(gomock.Any(), businessID).Return(policy, nil)
				cancellationRepo.EXPECT().ExistsForBooking(gomock.Any(), businessID, bookingID).Return(false, nil)
				passthroughTx(txManager)
				voucherRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
				voucherRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, v *domain.Voucher) (*domain.Voucher, error) {
						assert.True(t, v.Amount.Equal(decimal.NewFromFloat(50.00)), "got %s", v.Amount)
						v.ID = 8
						return v, nil
					})
				expectRecord(true)
				expectNoPenalty(1)
			},
			wantVoucher: true,
		},
		{
			name:   "Third cancellation in window creates block",
			params: params(10),
			prepareMock: func() {
				rulesProvider.EXPECT().CancellationPolicy(gomock.Any(), businessID).Return(defaultPolicy(), nil)
				cancellationRepo.EXPECT().ExistsForBooking(gomock.Any(), businessID, bookingID).Return(false, nil)
				passthroughTx(txManager)
				expectRecord(false)
				expectNoPenalty(3)
				blockRepo.EXPECT().FindActive(gomock.Any(), businessID, customerID, fixedNow).Return(nil, nil)
				blockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.BookingBlock) (*domain.BookingBlock, error) {
						assert.Equal(t, domain.BlockExcessiveCancellations, b.Reason)
						assert.Equal(t, 3, b.CancellationCount)
						assert.Equal(t, fixedNow.AddDate(0, 0, 14), b.ExpiresAt)
						b.ID = 9
						return b, nil
					})
			},
			wantBlocked: true,
		},
		{
			name:   "Existing active block suppresses a second one",
			params: params(10),
			prepareMock: func() {
				rulesProvider.EXPECT().CancellationPolicy(gomock.Any(), businessID).Return(defaultPolicy(), nil)
				cancellationRepo.EXPECT().ExistsForBooking(gomock.Any(), businessID, bookingID).Return(false, nil)
				passthroughTx(txManager)
				expectRecord(false)
				expectNoPenalty(4)
				blockRepo.EXPECT().FindActive(gomock.Any(), businessID, customerID, fixedNow).
					Return(&domain.BookingBlock{ID: 9, Status: domain.BlockActive}, nil)
			},
		},
		{
			name:   "Replayed booking is rejected",
			params: params(48),
			prepareMock: func() {
				rulesProvider.EXPECT().CancellationPolicy(gomock.Any(), businessID).Return(defaultPolicy(), nil)
				cancellationRepo.EXPECT().ExistsForBooking(gomock.Any(), businessID, bookingID).Return(true, nil)
			},
			expectedError: ErrCancellationProcessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.ProcessCancellation(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, result.Record)
			assert.Equal(t, tt.wantVoucher, result.VoucherGenerated)
			assert.Equal(t, tt.wantBlocked, result.Blocked)
			if tt.wantVoucher {
				assert.NotNil(t, result.Voucher)
			}
			if tt.wantBlocked {
				assert.NotNil(t, result.Block)
			}
		})
	}
}

func TestIsBlocked(t *testing.T) {
	service, _, _, blockRepo, _, _ := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		want        bool
	}{
		{
			name: "Active block present",
			prepareMock: func() {
				blockRepo.EXPECT().FindActive(gomock.Any(), businessID, customerID, fixedNow).
					Return(&domain.BookingBlock{ID: 1, Status: domain.BlockActive}, nil)
			},
			want: true,
		},
		{
			name: "No active block",
			prepareMock: func() {
				blockRepo.EXPECT().FindActive(gomock.Any(), businessID, customerID, fixedNow).Return(nil, nil)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			blocked, err := service.IsBlocked(context.Background(), businessID, customerID)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, blocked)
		})
	}
}

func TestLiftBlock(t *testing.T) {
	service, _, _, blockRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Lifts active block",
			prepareMock: func() {
				blockRepo.EXPECT().GetByID(gomock.Any(), 1, businessID).
					Return(&domain.BookingBlock{ID: 1, Status: domain.BlockActive}, nil)
				blockRepo.EXPECT().Lift(gomock.Any(), 1, businessID, fixedNow, "admin", "customer apologized").
					Return(&domain.BookingBlock{ID: 1, Status: domain.BlockLifted, LiftedBy: "admin", LiftNotes: "customer apologized"}, nil)
			},
		},
		{
			name: "Unknown block",
			prepareMock: func() {
				blockRepo.EXPECT().GetByID(gomock.Any(), 1, businessID).Return(nil, nil)
			},
			expectedError: ErrBlockNotFound,
		},
		{
			name: "Block already lifted",
			prepareMock: func() {
				blockRepo.EXPECT().GetByID(gomock.Any(), 1, businessID).
					Return(&domain.BookingBlock{ID: 1, Status: domain.BlockLifted}, nil)
			},
			expectedError: ErrBlockNotActive,
		},
		{
			name: "Lost lift race",
			prepareMock: func() {
				blockRepo.EXPECT().GetByID(gomock.Any(), 1, businessID).
					Return(&domain.BookingBlock{ID: 1, Status: domain.BlockActive}, nil)
				blockRepo.EXPECT().Lift(gomock.Any(), 1, businessID, fixedNow, "admin", "customer apologized").Return(nil, nil)
			},
			expectedError: ErrBlockNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			lifted, err := service.LiftBlock(context.Background(), 1, businessID, "admin", "customer apologized")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, lifted)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.BlockLifted, lifted.Status)
				assert.Equal(t, "customer apologized", lifted.LiftNotes)
			}
		})
	}
}

func TestApplyVoucherToBooking(t *testing.T) {
	service, voucherRepo, _, _, _, _ := NewMock(t)
	code := "VCH-4R8T2WX7"
	newBookingID := uuid.MustParse("45c48cce-2e2d-4fbd-9457-4d18c28d46e6")

	activeVoucher := func() *domain.Voucher {
		return &domain.Voucher{
			ID:         7,
			Code:       code,
			BusinessID: businessID,
			CustomerID: customerID,
			Status:     domain.InstrumentActive,
			ExpiresAt:  fixedNow.AddDate(0, 0, 10),
		}
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Consumes active voucher",
			prepareMock: func() {
				voucherRepo.EXPECT().GetByCode(gomock.Any(), code, businessID, customerID).Return(activeVoucher(), nil)
				used := activeVoucher()
				used.Status = domain.InstrumentUsed
				voucherRepo.EXPECT().MarkUsed(gomock.Any(), 7, fixedNow, newBookingID).Return(used, nil)
			},
		},
		{
			name: "Unknown code",
			prepareMock: func() {
				voucherRepo.EXPECT().GetByCode(gomock.Any(), code, businessID, customerID).Return(nil, nil)
			},
			expectedError: ErrVoucherNotFound,
		},
		{
			name: "Already used",
			prepareMock: func() {
				used := activeVoucher()
				used.Status = domain.InstrumentUsed
				voucherRepo.EXPECT().GetByCode(gomock.Any(), code, businessID, customerID).Return(used, nil)
			},
			expectedError: ErrVoucherNotActive,
		},
		{
			name: "Expired voucher is swept lazily",
			prepareMock: func() {
				stale := activeVoucher()
				stale.ExpiresAt = fixedNow.AddDate(0, 0, -1)
				voucherRepo.EXPECT().GetByCode(gomock.Any(), code, businessID, customerID).Return(stale, nil)
				voucherRepo.EXPECT().MarkExpired(gomock.Any(), 7).Return(nil)
			},
			expectedError: ErrVoucherExpired,
		},
		{
			name: "Lost apply race",
			prepareMock: func() {
				voucherRepo.EXPECT().GetByCode(gomock.Any(), code, businessID, customerID).Return(activeVoucher(), nil)
				voucherRepo.EXPECT().MarkUsed(gomock.Any(), 7, fixedNow, newBookingID).Return(nil, nil)
			},
			expectedError: ErrVoucherNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			used, err := service.ApplyVoucherToBooking(context.Background(), code, businessID, customerID, newBookingID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, used)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.InstrumentUsed, used.Status)
			}
		})
	}
}
