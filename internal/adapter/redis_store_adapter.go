package adapter

import (
	"context"
	"errors"

	"careerpath/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStoreAdapter implements the domain.KeyValueStore interface using a Redis client.
type RedisStoreAdapter struct {
	client *redis.Client
}

// NewRedisStoreAdapter creates a new instance of RedisStoreAdapter.
// It expects a connected *redis.Client.
func NewRedisStoreAdapter(client *redis.Client) domain.KeyValueStore {
	return &RedisStoreAdapter{client: client}
}

// Get retrieves a value from Redis.
// It translates redis.Nil to domain.ErrKeyNotFound.
func (r *RedisStoreAdapter) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrKeyNotFound
		}
		return "", err
	}
	return val, nil
}

// Set stores a value in Redis without expiration.
func (r *RedisStoreAdapter) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Delete removes a key from Redis.
func (r *RedisStoreAdapter) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Ping checks the health of the Redis server.
func (r *RedisStoreAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
