package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "catalog:"

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) GetCatalog(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, getCacheKey(key, false)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagCatalog(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, getCacheKey(key, true)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetCatalog(ctx context.Context, key string, data []byte, ttl time.Duration) {
	logger.Debugf(ctx, "caching catalog %q for %s", key, ttl)
	if err := c.client.Set(ctx, getCacheKey(key, false), data, ttl).Err(); err != nil {
		logger.Warnf(ctx, "⚠️  redis set failed for %q: %v", key, err)
	}
}

func (c *Cache) SetEtagCatalog(ctx context.Context, key string, etag string, ttl time.Duration) {
	if err := c.client.Set(ctx, getCacheKey(key, true), etag, ttl).Err(); err != nil {
		logger.Warnf(ctx, "⚠️  redis set failed for etag %q: %v", key, err)
	}
}

// InvalidateCatalog deletes every catalog entry and ETag.
func (c *Cache) InvalidateCatalog(ctx context.Context) error {
	var cursor uint64
	deleted := 0
	for {
		keys, next, err := c.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del failed: %w", err)
			}
			deleted += len(keys)
		}
		if next == 0 {
			break
		}
		cursor = next
	}
	logger.Debugf(ctx, "invalidated %d catalog cache entries", deleted)
	return nil
}

func getCacheKey(key string, etag bool) string {
	if etag {
		return keyPrefix + key + ":etag"
	}
	return keyPrefix + key
}
