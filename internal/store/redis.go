package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey holds the best score when no key is configured.
const DefaultRedisKey = "guessnumber:best-score"

// NewRedisClient connects to addr and checks the connection.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return conn, nil
}

// RedisScores keeps the best score under a single Redis key.
type RedisScores struct {
	client *redis.Client
	key    string
}

// NewRedisScores wraps client; an empty key selects DefaultRedisKey.
func NewRedisScores(client *redis.Client, key string) *RedisScores {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisScores{client: client, key: key}
}

// Read returns the best score, or ok=false when the key is absent.
func (that *RedisScores) Read(ctx context.Context) (int, bool, error) {
	n, err := that.client.Get(ctx, that.key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get best score: %w", err)
	}
	return n, true, nil
}

// Write replaces the best score. The key never expires.
func (that *RedisScores) Write(ctx context.Context, attempts int) error {
	if err := that.client.Set(ctx, that.key, attempts, 0).Err(); err != nil {
		return fmt.Errorf("failed to set best score: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (that *RedisScores) Close() error { return that.client.Close() }
