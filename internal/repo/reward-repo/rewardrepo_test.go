package rewardrepo

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
)

var rewardColumnNames = []string{"id", "code", "business_id", "customer_id", "points_spent", "kind", "value", "status", "conditions", "issued_by", "issued_at", "expires_at", "used_at", "applied_ref_kind", "applied_ref_id"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func activeRewardRow(issuedAt, expiresAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(rewardColumnNames).
		AddRow(1, "RWD-7K2M9PQ4", businessID, customerID, 500, domain.RewardFreeService,
			decimal.NewFromInt(10), domain.InstrumentActive, "", "", issuedAt, expiresAt, nil, nil, nil)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	issuedAt := time.Now()
	expiresAt := issuedAt.AddDate(0, 0, 90)

	input := &domain.Reward{
		Code:        "RWD-7K2M9PQ4",
		BusinessID:  businessID,
		CustomerID:  customerID,
		PointsSpent: 500,
		Kind:        domain.RewardFreeService,
		Value:       decimal.NewFromInt(10),
		Status:      domain.InstrumentActive,
		IssuedAt:    issuedAt,
		ExpiresAt:   expiresAt,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates reward",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO rewards`)).
					WithArgs("RWD-7K2M9PQ4", businessID, customerID, 500, domain.RewardFreeService,
						decimal.NewFromInt(10), domain.InstrumentActive, "", "", issuedAt, expiresAt).
					WillReturnRows(activeRewardRow(issuedAt, expiresAt))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO rewards`)).
					WithArgs("RWD-7K2M9PQ4", businessID, customerID, 500, domain.RewardFreeService,
						decimal.NewFromInt(10), domain.InstrumentActive, "", "", issuedAt, expiresAt).
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
				assert.Equal(t, "RWD-7K2M9PQ4", created.Code)
				assert.Equal(t, domain.InstrumentActive, created.Status)
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
		expectErr bool
		found     bool
	}{
		{
			name: "Existing code",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE code = $1 AND business_id = $2 AND customer_id = $3`)).
					WithArgs("RWD-7K2M9PQ4", businessID, customerID).
					WillReturnRows(activeRewardRow(now, now.AddDate(0, 0, 90)))
			},
			found: true,
		},
		{
			name: "Unknown code returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE code = $1 AND business_id = $2 AND customer_id = $3`)).
					WithArgs("RWD-7K2M9PQ4", businessID, customerID).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE code = $1 AND business_id = $2 AND customer_id = $3`)).
					WithArgs("RWD-7K2M9PQ4", businessID, customerID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			reward, err := repo.GetByCode(context.Background(), "RWD-7K2M9PQ4", businessID, customerID)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, reward)
			} else {
				assert.Nil(t, reward)
			}
		})
	}
}

func TestRepository_CodeExists(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM rewards WHERE code = $1)`)).
		WithArgs("RWD-7K2M9PQ4").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.CodeExists(context.Background(), "RWD-7K2M9PQ4")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_MarkUsed(t *testing.T) {
	repo, mock := NewMock(t)
	usedAt := time.Now()
	refKind := domain.RefAppointment
	refID := "bd307a3e-c069-4df4-9457-4d18c28d46e6"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Active reward is consumed",
			mockSetup: func() {
				rows := pgxmock.NewRows(rewardColumnNames).
					AddRow(1, "RWD-7K2M9PQ4", businessID, customerID, 500, domain.RewardFreeService,
						decimal.NewFromInt(10), domain.InstrumentUsed, "", "", usedAt.AddDate(0, 0, -1), usedAt.AddDate(0, 0, 89), &usedAt, &refKind, &refID)
				mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'USED', used_at = $2, applied_ref_kind = $3, applied_ref_id = $4`)).
					WithArgs(1, usedAt, refKind, refID).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Already consumed returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'USED', used_at = $2, applied_ref_kind = $3, applied_ref_id = $4`)).
					WithArgs(1, usedAt, refKind, refID).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			used, err := repo.MarkUsed(context.Background(), 1, usedAt, refKind, refID)

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

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expired   int64
	}{
		{
			name: "Expires stale rewards",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE status = 'ACTIVE' AND expires_at <= $1`)).
					WithArgs(now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 3))
			},
			expired: 3,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE status = 'ACTIVE' AND expires_at <= $1`)).
					WithArgs(now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			n, err := repo.ExpireStale(context.Background(), now)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expired, n)
			}
		})
	}
}
