package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "console:session:"

// RedisStore is the durable Store backend: the token survives console
// restarts for as long as its TTL allows.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, id string) (string, error) {
	val, err := s.client.Get(ctx, key(id)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session get: %w", err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, id, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("session set: ttl must be positive")
	}
	if err := s.client.Set(ctx, key(id), token, ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

func key(id string) string {
	return keyPrefix + id
}
