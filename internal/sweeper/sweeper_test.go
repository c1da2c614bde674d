package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/salonhq/loyalty/internal/config"
	"github.com/salonhq/loyalty/internal/domain"
	"github.com/salonhq/loyalty/internal/pg"
)

var (
	businessID = uuid.MustParse("356a192b-7913-504c-9457-4d18c28d46e6")
	customerID = uuid.MustParse("da4b9237-bacc-4df4-9457-4d18c28d46e6")
	fixedNow   = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
)

type mocks struct {
	transactionRepo *MockTransactionRepo
	accountRepo     *MockAccountRepo
	rewardRepo      *MockInstrumentRepo
	voucherRepo     *MockInstrumentRepo
	blockRepo       *MockInstrumentRepo
	txManager       *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		transactionRepo: NewMockTransactionRepo(ctrl),
		accountRepo:     NewMockAccountRepo(ctrl),
		rewardRepo:      NewMockInstrumentRepo(ctrl),
		voucherRepo:     NewMockInstrumentRepo(ctrl),
		blockRepo:       NewMockInstrumentRepo(ctrl),
		txManager:       pg.NewMockTXManager(ctrl),
	}
	cfg := &config.Config{SweepInterval: time.Hour}
	service := New(cfg, m.transactionRepo, m.accountRepo, m.rewardRepo, m.voucherRepo, m.blockRepo, m.txManager)
	service.now = func() time.Time { return fixedNow }
	defer ctrl.Finish()
	return service, m
}

func expiredEntry(id, points int) domain.PointTransaction {
	return domain.PointTransaction{
		ID:         id,
		BusinessID: businessID,
		CustomerID: customerID,
		Points:     points,
		Kind:       domain.KindAppointmentPayment,
		Status:     domain.TxCompleted,
	}
}

func TestExpirePoints(t *testing.T) {
	service, m := NewMock(t)
	account := &domain.LoyaltyAccount{ID: 1, BusinessID: businessID, CustomerID: customerID}

	t.Run("Compensates and marks each expired entry", func(t *testing.T) {
		entries := []domain.PointTransaction{expiredEntry(11, 100), expiredEntry(12, 50)}

		m.transactionRepo.EXPECT().FindExpired(gomock.Any(), fixedNow, batchSize).Return(entries, nil)
		m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn pg.TransactionalFn) error {
				return fn(ctx)
			}).Times(2)
		pointsByRef := map[string]int{"11": 100, "12": 50}
		m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *domain.PointTransaction) (*domain.PointTransaction, error) {
				assert.Equal(t, domain.KindExpiration, tx.Kind)
				if assert.NotNil(t, tx.ReferenceID) {
					assert.Equal(t, -pointsByRef[*tx.ReferenceID], tx.Points)
				}
				return tx, nil
			}).Times(2)
		m.transactionRepo.EXPECT().MarkExpired(gomock.Any(), 11).Return(nil)
		m.transactionRepo.EXPECT().MarkExpired(gomock.Any(), 12).Return(nil)
		m.accountRepo.EXPECT().GetByPair(gomock.Any(), businessID, customerID).Return(account, nil).Times(2)
		m.accountRepo.EXPECT().DeductExpired(gomock.Any(), 1, 100).Return(nil)
		m.accountRepo.EXPECT().DeductExpired(gomock.Any(), 1, 50).Return(nil)

		result, err := service.ExpirePoints(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 2, result.EntriesExpired)
		assert.Equal(t, 150, result.PointsExpired)
		assert.Equal(t, 1, result.CustomersAffected)
	})

	t.Run("Nothing eligible", func(t *testing.T) {
		m.transactionRepo.EXPECT().FindExpired(gomock.Any(), fixedNow, batchSize).Return(nil, nil)

		result, err := service.ExpirePoints(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0, result.EntriesExpired)
		assert.Equal(t, 0, result.PointsExpired)
	})

	t.Run("Lookup failure", func(t *testing.T) {
		m.transactionRepo.EXPECT().FindExpired(gomock.Any(), fixedNow, batchSize).
			Return(nil, errors.New("db error"))

		_, err := service.ExpirePoints(context.Background())
		assert.Error(t, err)
	})

	t.Run("Missing account still marks the entry", func(t *testing.T) {
		entries := []domain.PointTransaction{expiredEntry(13, 25)}

		m.transactionRepo.EXPECT().FindExpired(gomock.Any(), fixedNow, batchSize).Return(entries, nil)
		m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn pg.TransactionalFn) error {
				return fn(ctx)
			})
		m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *domain.PointTransaction) (*domain.PointTransaction, error) {
				return tx, nil
			})
		m.accountRepo.EXPECT().GetByPair(gomock.Any(), businessID, customerID).Return(nil, nil)
		m.transactionRepo.EXPECT().MarkExpired(gomock.Any(), 13).Return(nil)

		result, err := service.ExpirePoints(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, result.EntriesExpired)
	})
}

func TestExpireInstruments(t *testing.T) {
	service, m := NewMock(t)

	m.rewardRepo.EXPECT().ExpireStale(gomock.Any(), fixedNow).Return(int64(3), nil)
	n, err := service.ExpireRewards(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)

	m.voucherRepo.EXPECT().ExpireStale(gomock.Any(), fixedNow).Return(int64(2), nil)
	n, err = service.ExpireVouchers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	m.blockRepo.EXPECT().ExpireStale(gomock.Any(), fixedNow).Return(int64(1), nil)
	n, err = service.ExpireBlocks(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSweep(t *testing.T) {
	service, m := NewMock(t)

	m.transactionRepo.EXPECT().FindExpired(gomock.Any(), fixedNow, batchSize).Return(nil, nil)
	m.rewardRepo.EXPECT().ExpireStale(gomock.Any(), fixedNow).Return(int64(0), nil)
	m.voucherRepo.EXPECT().ExpireStale(gomock.Any(), fixedNow).Return(int64(0), nil)
	m.blockRepo.EXPECT().ExpireStale(gomock.Any(), fixedNow).Return(int64(0), nil)

	service.Sweep(context.Background())
}
