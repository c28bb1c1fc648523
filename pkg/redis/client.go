package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/motorlane/carstock/config"
)

// Client wraps go-redis with an enabled switch so the service degrades to
// uncached reads when Redis is off or unreachable.
type Client struct {
	rdb     *redis.Client
	enabled bool
	log     *zap.Logger
}

// NewClient builds the Redis client. A failed initial ping disables caching
// rather than failing startup.
func NewClient(cfg *config.Config, log *zap.Logger) *Client {
	if !cfg.Redis.Enabled {
		log.Info("Redis caching disabled by configuration")
		return &Client{enabled: false, log: log}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddress(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.Database,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, continuing without cache",
			zap.String("address", cfg.RedisAddress()),
			zap.Error(err),
		)
		_ = rdb.Close()
		return &Client{enabled: false, log: log}
	}

	log.Info("Connected to Redis",
		zap.String("address", cfg.RedisAddress()),
		zap.Int("database", cfg.Redis.Database),
	)

	return &Client{rdb: rdb, enabled: true, log: log}
}

// IsEnabled reports whether caching is active.
func (c *Client) IsEnabled() bool {
	return c.enabled
}

func (c *Client) Ping(ctx context.Context) error {
	if !c.enabled {
		return fmt.Errorf("redis disabled")
	}
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

// SetJSON caches a value as JSON under key with the given TTL. A disabled
// client is a silent no-op.
func (c *Client) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !c.enabled {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		c.log.Error("Failed to set cache",
			zap.String("key", key),
			zap.Duration("ttl", ttl),
			zap.Error(err),
		)
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

// GetJSON reads a cached JSON value into dest. Returns false on miss or
// when caching is disabled.
func (c *Client) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !c.enabled {
		return false, nil
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		c.log.Error("Failed to get cache",
			zap.String("key", key),
			zap.Error(err),
		)
		return false, fmt.Errorf("failed to get cache: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// Stale or corrupt entry; drop it and treat as a miss.
		_ = c.rdb.Del(ctx, key).Err()
		return false, nil
	}

	return true, nil
}

// Delete removes cache entries.
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if !c.enabled || len(keys) == 0 {
		return nil
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Error("Failed to delete cache",
			zap.Strings("keys", keys),
			zap.Error(err),
		)
		return fmt.Errorf("failed to delete cache: %w", err)
	}

	return nil
}
