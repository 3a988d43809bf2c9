package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	sweepermocks "github.com/distromax/inventory-api/mocks/application/sweeper"
	redismocks "github.com/distromax/inventory-api/mocks/repository/redis"
	"github.com/distromax/inventory-api/model"
)

func TestScheduler_runOnce(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(sweeperApp *sweepermocks.SweeperApp, redisRepo *redismocks.Repository)
	}{
		{
			name: "lock acquired: sweep runs and the lock is released",
			mockCall: func(sweeperApp *sweepermocks.SweeperApp, redisRepo *redismocks.Repository) {
				redisRepo.
					On("AcquireLock", mock.Anything, sweepLockKey, 10*time.Minute).
					Return(true, nil).
					Once()
				sweeperApp.
					On("Sweep", mock.Anything).
					Return(&model.SweepResult{}, nil).
					Once()
				redisRepo.
					On("ReleaseLock", mock.Anything, sweepLockKey).
					Return(nil).
					Once()
			},
		},
		{
			name: "lock held elsewhere: tick is skipped",
			mockCall: func(sweeperApp *sweepermocks.SweeperApp, redisRepo *redismocks.Repository) {
				redisRepo.
					On("AcquireLock", mock.Anything, sweepLockKey, 10*time.Minute).
					Return(false, nil).
					Once()
			},
		},
		{
			name: "lock store unavailable: tick is skipped",
			mockCall: func(sweeperApp *sweepermocks.SweeperApp, redisRepo *redismocks.Repository) {
				redisRepo.
					On("AcquireLock", mock.Anything, sweepLockKey, 10*time.Minute).
					Return(false, errors.New("redis down")).
					Once()
			},
		},
		{
			name: "sweep failure still releases the lock",
			mockCall: func(sweeperApp *sweepermocks.SweeperApp, redisRepo *redismocks.Repository) {
				redisRepo.
					On("AcquireLock", mock.Anything, sweepLockKey, 10*time.Minute).
					Return(true, nil).
					Once()
				sweeperApp.
					On("Sweep", mock.Anything).
					Return(nil, errors.New("db down")).
					Once()
				redisRepo.
					On("ReleaseLock", mock.Anything, sweepLockKey).
					Return(nil).
					Once()
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			sweeperApp := sweepermocks.NewSweeperApp(t)
			redisRepo := redismocks.NewRepository(t)
			tt.mockCall(sweeperApp, redisRepo)

			s := New(time.Hour, 10*time.Minute, sweeperApp, redisRepo)
			s.runOnce(context.Background())
		})
	}
}
