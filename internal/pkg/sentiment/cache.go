package sentiment

import (
	"context"
	"strings"
	"sync"
	"time"

	"Commento/internal/pkg/consts"
	"Commento/internal/pkg/redis"
)

// Cache stores resolved labels keyed by normalized review text. Entries are
// immutable once written (the same key always maps to the same label), so
// first-write races are benign.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, label string)
}

// NormalizeKey trims and casefolds text into its cache key.
func NormalizeKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// MemoryCache is a process-lifetime, unbounded label cache.
type MemoryCache struct {
	m sync.Map
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (c *MemoryCache) Set(_ context.Context, key string, label string) {
	c.m.Store(key, label)
}

// RedisCache shares labels across instances. Misses and transport errors are
// both reported as a miss; the pipeline just classifies again.
type RedisCache struct {
	ttl time.Duration
}

func NewRedisCache(ttl time.Duration) *RedisCache {
	return &RedisCache{ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	v, err := redis.GetValue(ctx, consts.SentimentCacheKey+key)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (c *RedisCache) Set(ctx context.Context, key string, label string) {
	if c.ttl > 0 {
		_ = redis.SetWithExpiration(ctx, consts.SentimentCacheKey+key, label, c.ttl)
		return
	}
	_ = redis.SetValue(ctx, consts.SentimentCacheKey+key, label)
}
