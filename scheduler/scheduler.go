package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/distromax/inventory-api/application/sweeper"
	redisrepo "github.com/distromax/inventory-api/repository/redis"
	"github.com/distromax/inventory-api/utils/logger"
)

const sweepLockKey = "sweep:reservation:lock"

// Scheduler runs the expiration sweep on a fixed interval, independent of
// request traffic. A Redis lock keeps overlapping instances from doing the
// same pass twice; the sweep itself is safe either way.
type Scheduler struct {
	interval   time.Duration
	lockTTL    time.Duration
	sweeperApp sweeper.SweeperApp
	redisRepo  redisrepo.Repository
}

func New(interval, lockTTL time.Duration, sweeperApp sweeper.SweeperApp, redisRepo redisrepo.Repository) *Scheduler {
	return &Scheduler{
		interval:   interval,
		lockTTL:    lockTTL,
		sweeperApp: sweeperApp,
		redisRepo:  redisRepo,
	}
}

// Start launches the ticker loop and returns immediately. The loop stops
// when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	log := logger.With(zap.Duration("interval", s.interval))
	log.Info("reservation sweep scheduler started")

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("reservation sweep scheduler stopped")
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()
}

func (s *Scheduler) runOnce(ctx context.Context) {
	acquired, err := s.redisRepo.AcquireLock(ctx, sweepLockKey, s.lockTTL)
	if err != nil {
		logger.Error("[runOnce] acquire sweep lock", zap.String("error", err.Error()))
		return
	}
	if !acquired {
		logger.Debug("[runOnce] sweep lock held elsewhere, skipping tick")
		return
	}
	defer func() {
		if err := s.redisRepo.ReleaseLock(ctx, sweepLockKey); err != nil {
			logger.Error("[runOnce] release sweep lock", zap.String("error", err.Error()))
		}
	}()

	if _, err := s.sweeperApp.Sweep(ctx); err != nil {
		// Fatal for this run only; the next tick retries.
		logger.Error("[runOnce] sweep failed", zap.String("error", err.Error()))
	}
}
