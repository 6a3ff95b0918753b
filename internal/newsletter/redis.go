package newsletter

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const subscribersKey = "newsletter:subscribers"

// RedisStore implements Store on a Redis set, so subscriptions survive
// restarts and are shared between instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store on an existing Redis connection. The
// caller owns the connection's lifecycle.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Add records a subscriber.
func (s *RedisStore) Add(ctx context.Context, email string) (bool, error) {
	added, err := s.client.SAdd(ctx, subscribersKey, email).Result()
	if err != nil {
		return false, err
	}
	return added > 0, nil
}

// Remove deletes a subscriber.
func (s *RedisStore) Remove(ctx context.Context, email string) (bool, error) {
	removed, err := s.client.SRem(ctx, subscribersKey, email).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

// Has reports whether the address is subscribed.
func (s *RedisStore) Has(ctx context.Context, email string) (bool, error) {
	return s.client.SIsMember(ctx, subscribersKey, email).Result()
}

// Count returns the number of subscribers.
func (s *RedisStore) Count(ctx context.Context) (int64, error) {
	return s.client.SCard(ctx, subscribersKey).Result()
}

// Close is a no-op; the shared Redis connection is closed by its owner.
func (s *RedisStore) Close() error {
	return nil
}
