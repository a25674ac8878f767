package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no cached URL exists for an id.
var ErrCacheMiss = errors.New("url cache miss")

// URLCache accelerates image-URL lookups. It is a derived, regenerable
// projection of the images table; entries are evicted by TTL only.
type URLCache interface {
	Put(ctx context.Context, id, url string, ttl time.Duration) error
	Get(ctx context.Context, id string) (string, error)
}

// RedisURLCache implements URLCache on Redis.
type RedisURLCache struct {
	rdb *redis.Client
}

// NewRedisURLCache creates a RedisURLCache.
func NewRedisURLCache(rdb *redis.Client) *RedisURLCache {
	return &RedisURLCache{rdb: rdb}
}

// Put caches the public URL for id with the given TTL, refreshing any
// existing entry.
func (c *RedisURLCache) Put(ctx context.Context, id, url string, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, urlKey(id), url, ttl).Err(); err != nil {
		return fmt.Errorf("cache url: %w", err)
	}
	return nil
}

// Get returns the cached URL for id, or ErrCacheMiss.
func (c *RedisURLCache) Get(ctx context.Context, id string) (string, error) {
	v, err := c.rdb.Get(ctx, urlKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("get cached url: %w", err)
	}
	return v, nil
}

func urlKey(id string) string {
	return "i:" + id
}
