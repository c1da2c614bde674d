package sweeper

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/salonhq/loyalty/internal/config"
	"github.com/salonhq/loyalty/internal/domain"
	"github.com/salonhq/loyalty/internal/pg"
	"github.com/salonhq/loyalty/pkg/metrics"
)

//go:generate mockgen -source=sweeper.go -destination=sweeper_mock.go -package=sweeper

type TransactionRepo interface {
	FindExpired(ctx context.Context, now time.Time, limit int) ([]domain.PointTransaction, error)
	MarkExpired(ctx context.Context, id int) error
	Create(ctx context.Context, tx *domain.PointTransaction) (*domain.PointTransaction, error)
}

type AccountRepo interface {
	GetByPair(ctx context.Context, businessID, customerID uuid.UUID) (*domain.LoyaltyAccount, error)
	DeductExpired(ctx context.Context, accountID, points int) error
}

type InstrumentRepo interface {
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

const (
	batchSize   = 1000
	workerCount = 10
)

var processingEntries sync.Map

// PointsSweepResult aggregates one ExpirePoints pass.
type PointsSweepResult struct {
	EntriesExpired    int
	PointsExpired     int
	CustomersAffected int
}

type Service struct {
	transactionRepo TransactionRepo
	accountRepo     AccountRepo
	rewardRepo      InstrumentRepo
	voucherRepo     InstrumentRepo
	blockRepo       InstrumentRepo
	txManager       pg.TXManager
	workerPool      WorkerPoolI
	interval        time.Duration
	now             func() time.Time
}

func New(cfg *config.Config, transactionRepo TransactionRepo, accountRepo AccountRepo, rewardRepo, voucherRepo, blockRepo InstrumentRepo, txManager pg.TXManager) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		rewardRepo:      rewardRepo,
		voucherRepo:     voucherRepo,
		blockRepo:       blockRepo,
		txManager:       txManager,
		workerPool:      NewWorkerPool(workerCount),
		interval:        cfg.SweepInterval,
		now:             time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Expiry sweeper started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one full expiry pass over points, rewards, vouchers and blocks.
// Every step is idempotent: rows already transitioned are no longer eligible,
// so an interrupted or repeated pass never processes a row twice.
func (s *Service) Sweep(ctx context.Context) {
	started := s.now()

	points, err := s.ExpirePoints(ctx)
	if err != nil {
		zap.L().Error("points sweep failed", zap.Error(err))
	}

	// The instrument passes touch disjoint tables and can run together.
	var (
		g                         errgroup.Group
		rewards, vouchers, blocks int64
	)
	g.Go(func() error {
		var err error
		rewards, err = s.ExpireRewards(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		vouchers, err = s.ExpireVouchers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		blocks, err = s.ExpireBlocks(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("instrument sweep failed", zap.Error(err))
	}

	metrics.SweepDuration.Observe(time.Since(started).Seconds())
	zap.L().Info("sweep finished",
		zap.Int("points_expired", points.PointsExpired),
		zap.Int("customers_affected", points.CustomersAffected),
		zap.Int64("rewards_expired", rewards),
		zap.Int64("vouchers_expired", vouchers),
		zap.Int64("blocks_expired", blocks))
}

// ExpirePoints compensates every COMPLETED positive entry past its expiry
// with an equal-and-opposite expiration entry, then marks the original
// EXPIRED. The original is marked only after the compensating entry and
// balance deduction committed, so an interruption leaves the entry eligible
// for the next pass instead of half-expired.
func (s *Service) ExpirePoints(ctx context.Context) (PointsSweepResult, error) {
	var result PointsSweepResult

	entries, err := s.transactionRepo.FindExpired(ctx, s.now(), batchSize)
	if err != nil {
		return result, err
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		customers = make(map[uuid.UUID]struct{})
	)
	for _, entry := range entries {
		entry := entry

		if _, loaded := processingEntries.LoadOrStore(entry.ID, struct{}{}); loaded {
			continue
		}

		wg.Add(1)
		err := s.workerPool.AddTask(ctx, func() error {
			defer wg.Done()
			defer processingEntries.Delete(entry.ID)

			if err := s.expireEntry(ctx, entry); err != nil {
				return err
			}

			mu.Lock()
			result.EntriesExpired++
			result.PointsExpired += entry.Points
			customers[entry.CustomerID] = struct{}{}
			mu.Unlock()
			return nil
		})
		if err != nil {
			wg.Done()
			processingEntries.Delete(entry.ID)
			wg.Wait()
			return result, err
		}
	}
	wg.Wait()

	result.CustomersAffected = len(customers)
	metrics.PointsExpired.Add(float64(result.PointsExpired))
	return result, nil
}

func (s *Service) expireEntry(ctx context.Context, entry domain.PointTransaction) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		refKind := domain.RefTransaction
		refID := strconv.Itoa(entry.ID)
		if _, err := s.transactionRepo.Create(ctx, &domain.PointTransaction{
			BusinessID:    entry.BusinessID,
			CustomerID:    entry.CustomerID,
			Points:        -entry.Points,
			Kind:          domain.KindExpiration,
			Status:        domain.TxCompleted,
			ReferenceKind: &refKind,
			ReferenceID:   &refID,
			Multiplier:    1,
			Description:   "points expired",
		}); err != nil {
			return err
		}

		account, err := s.accountRepo.GetByPair(ctx, entry.BusinessID, entry.CustomerID)
		if err != nil {
			return err
		}
		if account != nil {
			if err := s.accountRepo.DeductExpired(ctx, account.ID, entry.Points); err != nil {
				return err
			}
		}

		return s.transactionRepo.MarkExpired(ctx, entry.ID)
	})
}

func (s *Service) ExpireRewards(ctx context.Context) (int64, error) {
	return s.rewardRepo.ExpireStale(ctx, s.now())
}

func (s *Service) ExpireVouchers(ctx context.Context) (int64, error) {
	return s.voucherRepo.ExpireStale(ctx, s.now())
}

func (s *Service) ExpireBlocks(ctx context.Context) (int64, error) {
	return s.blockRepo.ExpireStale(ctx, s.now())
}
