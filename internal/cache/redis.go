package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is not found in the cache
var ErrCacheMiss = errors.New("cache miss")

// RedisCache implements the Cache interface using Redis. It holds the
// process's single Redis connection; other Redis-backed components share
// it via Client.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis at addr and verifies the connection
func NewRedisCache(ctx context.Context, addr string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	// Test the connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

// Client exposes the underlying connection for other Redis-backed
// components, so the process keeps a single pool
func (c *RedisCache) Client() *redis.Client {
	return c.client
}

// Get retrieves rendered output from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return val, nil
}

// Set stores rendered output in Redis with the specified TTL
// If ttl is 0, the value will not be cached
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		return nil // Skip caching if TTL is 0
	}
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Close releases the Redis client
func (c *RedisCache) Close() error {
	return c.client.Close()
}
