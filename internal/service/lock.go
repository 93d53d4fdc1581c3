package service

import (
	"Commento/internal/pkg/redis"
	"context"
	"time"

	"github.com/google/uuid"
)

// Locker guards analysis runs so the same service is never analyzed twice at
// once. Release must only drop the lock if the token still matches.
type Locker interface {
	Acquire(ctx context.Context, key string) (string, bool, error)
	Release(ctx context.Context, key string, token string)
}

type redisLocker struct {
	ttl time.Duration
}

func NewRedisLocker(ttl time.Duration) Locker {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &redisLocker{ttl: ttl}
}

func (l *redisLocker) Acquire(ctx context.Context, key string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := redis.TryLock(ctx, key, token, l.ttl, 1)
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

func (l *redisLocker) Release(ctx context.Context, key string, token string) {
	redis.UnLock(ctx, key, token)
}
