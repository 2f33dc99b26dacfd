package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// Cache is a thin Redis wrapper used to memoise read-heavy payloads
// (currently the revenue stats). When no Redis address is configured,
// every lookup misses and every write is a no-op; the API works without
// it.
type Cache struct {
	rdb    *redis.Client
	logger zerolog.Logger
}

func New(addr string, logger zerolog.Logger) *Cache {
	c := &Cache{
		logger: logger.With().Str("component", "cache").Logger(),
	}

	if addr == "" {
		c.logger.Info().Msg("redis not configured, caching disabled")
		return c
	}

	c.rdb = redis.NewClient(&redis.Options{Addr: addr})
	return c
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.rdb == nil {
		return nil, false
	}

	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Error().Err(err).Str("key", key).Msg("cache get failed")
		}
		return nil, false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if c.rdb == nil {
		return
	}

	if err := c.rdb.Set(ctx, key, val, ttl).Err(); err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, key)
}
