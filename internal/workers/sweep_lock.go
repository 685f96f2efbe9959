package workers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const sweepLockKey = "menuhub:status-snapshot:lock"

// SweepLock lets one instance run a snapshot sweep per interval
type SweepLock interface {
	Acquire(ctx context.Context, owner string, ttl time.Duration) (bool, error)
}

// RedisSweepLock takes the lock with SET NX. The lock is never released
// early; it expires with its TTL.
type RedisSweepLock struct {
	client *redis.Client
	key    string
}

func NewRedisSweepLock(client *redis.Client) *RedisSweepLock {
	return &RedisSweepLock{client: client, key: sweepLockKey}
}

func (l *RedisSweepLock) Acquire(ctx context.Context, owner string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, l.key, owner, ttl).Result()
}

// localSweepLock always succeeds. Used when redis is not configured.
type localSweepLock struct{}

func (localSweepLock) Acquire(context.Context, string, time.Duration) (bool, error) {
	return true, nil
}
