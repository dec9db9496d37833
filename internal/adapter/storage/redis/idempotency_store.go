package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyStore implements ports.IdempotencyStore using Redis. Keys are
// only ever written after processing completed, so a crash mid-pipeline never
// blocks a retry.
type IdempotencyStore struct {
	client *goredis.Client
	prefix string
}

// NewIdempotencyStore creates a new Redis-backed idempotency store.
func NewIdempotencyStore(client *goredis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "webhook:idempotency:",
	}
}

// Seen reports whether the key has completed processing.
func (s *IdempotencyStore) Seen(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis idempotency exists: %w", err)
	}
	return n > 0, nil
}

// MarkProcessed records the key with a TTL.
func (s *IdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}
