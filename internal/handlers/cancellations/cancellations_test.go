package cancellations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/salonhq/loyalty/internal/domain"
	"github.com/salonhq/loyalty/internal/dto"
	cancellationservice "github.com/salonhq/loyalty/internal/service/cancellationservice"
	"github.com/salonhq/loyalty/pkg/auth"
)

var (
	businessID = uuid.MustParse("356a192b-7913-504c-9457-4d18c28d46e6")
	customerID = uuid.MustParse("da4b9237-bacc-4df4-9457-4d18c28d46e6")
	bookingID  = uuid.MustParse("fa35e192-1217-4df4-9457-4d18c28d46e6")
)

func NewMock(t *testing.T) (*CancellationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authCtx() context.Context {
	return context.WithValue(context.Background(), auth.BusinessIDKey, businessID)
}

func TestProcessCancellationHandler(t *testing.T) {
	handler, service := NewMock(t)
	bookingAt := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	body := fmt.Sprintf(`{"customer_id":%q,"booking_id":%q,"booking_at":"2025-06-01T14:00:00Z","booking_amount":120,"currency":"USD","cancelled_by":"customer"}`,
		customerID, bookingID)
	params := cancellationservice.CancellationParams{
		BusinessID:    businessID,
		CustomerID:    customerID,
		BookingID:     bookingID,
		BookingAt:     bookingAt,
		BookingAmount: decimal.NewFromInt(120),
		Currency:      "USD",
		CancelledBy:   domain.CancelledByCustomer,
	}

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		wantVoucher  bool
	}{
		{
			name: "Voucher issued",
			body: body,
			prepareMock: func() {
				service.EXPECT().ProcessCancellation(gomock.Any(), params).
					Return(&cancellationservice.CancellationResult{
						Voucher: &domain.Voucher{
							ID:     7,
							Code:   "VCH-4R8T2WX7",
							Amount: decimal.NewFromInt(120),
							Status: domain.InstrumentActive,
						},
						VoucherGenerated: true,
						Record:           &domain.CancellationRecord{ID: 42, LeadHours: 48},
					}, nil)
			},
			expectedCode: http.StatusOK,
			wantVoucher:  true,
		},
		{
			name: "Recorded without voucher",
			body: body,
			prepareMock: func() {
				service.EXPECT().ProcessCancellation(gomock.Any(), params).
					Return(&cancellationservice.CancellationResult{
						Record: &domain.CancellationRecord{ID: 43, LeadHours: 2},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid cancelling party",
			body:         fmt.Sprintf(`{"customer_id":%q,"booking_id":%q,"cancelled_by":"aliens"}`, customerID, bookingID),
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid request body",
			body:         `{broken`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Already processed",
			body: body,
			prepareMock: func() {
				service.EXPECT().ProcessCancellation(gomock.Any(), params).
					Return(nil, cancellationservice.ErrCancellationProcessed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: body,
			prepareMock: func() {
				service.EXPECT().ProcessCancellation(gomock.Any(), params).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/cancellations", bytes.NewBufferString(tt.body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.ProcessCancellation(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.CancellationResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&resp)
				assert.Equal(t, tt.wantVoucher, resp.VoucherGenerated)
				if tt.wantVoucher {
					assert.NotNil(t, resp.Voucher)
					assert.Equal(t, "VCH-4R8T2WX7", resp.Voucher.Code)
				}
			}
		})
	}
}

func TestIsBlockedHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		customerID   string
		prepareMock  func()
		expectedCode int
		wantBlocked  bool
	}{
		{
			name:       "Customer blocked",
			customerID: customerID.String(),
			prepareMock: func() {
				service.EXPECT().IsBlocked(gomock.Any(), businessID, customerID).Return(true, nil)
			},
			expectedCode: http.StatusOK,
			wantBlocked:  true,
		},
		{
			name:       "Customer not blocked",
			customerID: customerID.String(),
			prepareMock: func() {
				service.EXPECT().IsBlocked(gomock.Any(), businessID, customerID).Return(false, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid customer id",
			customerID:   "not-a-uuid",
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("customerID", tt.customerID)
			ctx := context.WithValue(authCtx(), chi.RouteCtxKey, rctx)

			r := httptest.NewRequest(http.MethodGet, "/customers/"+tt.customerID+"/blocked", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()
			handler.IsBlocked(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.BlockedResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&resp)
				assert.Equal(t, tt.wantBlocked, resp.Blocked)
			}
		})
	}
}

func TestLiftBlockHandler(t *testing.T) {
	handler, service := NewMock(t)
	body := `{"actor":"manager@salon.example","notes":"customer apologized"}`

	tests := []struct {
		name         string
		blockID      string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Successful lift",
			blockID: "9",
			body:    body,
			prepareMock: func() {
				service.EXPECT().LiftBlock(gomock.Any(), 9, businessID, "manager@salon.example", "customer apologized").
					Return(&domain.BookingBlock{ID: 9, Status: domain.BlockLifted}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid block id",
			blockID:      "abc",
			body:         body,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Missing actor",
			blockID:      "9",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "Block not found",
			blockID: "9",
			body:    body,
			prepareMock: func() {
				service.EXPECT().LiftBlock(gomock.Any(), 9, businessID, "manager@salon.example", "customer apologized").
					Return(nil, cancellationservice.ErrBlockNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "Block not active",
			blockID: "9",
			body:    body,
			prepareMock: func() {
				service.EXPECT().LiftBlock(gomock.Any(), 9, businessID, "manager@salon.example", "customer apologized").
					Return(nil, cancellationservice.ErrBlockNotActive)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("blockID", tt.blockID)
			ctx := context.WithValue(authCtx(), chi.RouteCtxKey, rctx)

			r := httptest.NewRequest(http.MethodPost, "/blocks/"+tt.blockID+"/lift", bytes.NewBufferString(tt.body))
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()
			handler.LiftBlock(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestApplyVoucherHandler(t *testing.T) {
	handler, service := NewMock(t)
	newBookingID := uuid.MustParse("45c48cce-2e2d-4fbd-9457-4d18c28d46e6")
	body := fmt.Sprintf(`{"customer_id":%q,"code":"VCH-4R8T2WX7","booking_id":%q}`, customerID, newBookingID)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful application",
			prepareMock: func() {
				service.EXPECT().
					ApplyVoucherToBooking(gomock.Any(), "VCH-4R8T2WX7", businessID, customerID, newBookingID).
					Return(&domain.Voucher{ID: 7, Code: "VCH-4R8T2WX7", Status: domain.InstrumentUsed}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Voucher not found",
			prepareMock: func() {
				service.EXPECT().
					ApplyVoucherToBooking(gomock.Any(), "VCH-4R8T2WX7", businessID, customerID, newBookingID).
					Return(nil, cancellationservice.ErrVoucherNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Voucher expired",
			prepareMock: func() {
				service.EXPECT().
					ApplyVoucherToBooking(gomock.Any(), "VCH-4R8T2WX7", businessID, customerID, newBookingID).
					Return(nil, cancellationservice.ErrVoucherExpired)
			},
			expectedCode: http.StatusGone,
		},
		{
			name: "Voucher not active",
			prepareMock: func() {
				service.EXPECT().
					ApplyVoucherToBooking(gomock.Any(), "VCH-4R8T2WX7", businessID, customerID, newBookingID).
					Return(nil, cancellationservice.ErrVoucherNotActive)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/vouchers/apply", bytes.NewBufferString(body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.ApplyVoucher(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
