package service

import (
	"context"
	"time"

	"github.com/motorlane/carstock/pkg/ctxutil"
	"github.com/motorlane/carstock/pkg/logger"
	"github.com/motorlane/carstock/pkg/redis"
)

// CacheService is a thin read-through cache over the Redis client. Cache
// failures are logged and swallowed: a broken cache must never break a
// read.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, ttl time.Duration) *CacheService {
	return &CacheService{client: client, ttl: ttl}
}

func (s *CacheService) Enabled() bool {
	return s.client.IsEnabled()
}

func (s *CacheService) Get(ctx context.Context, key string, dest any) (bool, error) {
	return s.client.GetJSON(ctx, key, dest)
}

func (s *CacheService) Set(ctx context.Context, key string, value any) {
	if err := s.client.SetJSON(ctx, key, value, s.ttl); err != nil {
		logger.WarnWithContext(ctxutil.WithScope(ctx, "service", "CacheSet"), "Cache write failed").
			String("key", key).
			Err(err).
			Log()
	}
}

func (s *CacheService) Invalidate(ctx context.Context, keys ...string) {
	if err := s.client.Delete(ctx, keys...); err != nil {
		logger.WarnWithContext(ctxutil.WithScope(ctx, "service", "CacheInvalidate"), "Cache invalidation failed").
			Err(err).
			Log()
	}
}

func (s *CacheService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
