package redis

import (
	"context"
	"time"

	redisclient "github.com/distromax/inventory-api/cmd/redis"
)

// Repository is the sweep mutex over Redis. The engine keeps no other
// state there.
type Repository interface {
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// AcquireLock takes a best-effort mutex via SETNX. When Redis is not
// configured the lock always succeeds: the sweep is idempotent, the lock
// only avoids duplicate work.
func (r *redis) AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return true, nil
	}
	return client.SetNX(ctx, key, "1", ttl).Result()
}

// ReleaseLock drops a previously acquired mutex
func (r *redis) ReleaseLock(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}
