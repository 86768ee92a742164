package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"money-transfer-api/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const idempotencyPrefix = "idempotency:transfer:"

// IdempotencyCache holds the stored transfer for each completed submission.
// The first result written for a key wins until it expires.
type IdempotencyCache struct {
	client goredis.UniversalClient
}

func NewIdempotencyCache(client goredis.UniversalClient) *IdempotencyCache {
	return &IdempotencyCache{client: client}
}

// Get returns the cached transfer JSON, or nil, nil when the key is unknown.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, idempotencyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("idempotency get: %w", err)
	}
	return val, nil
}

// Set records value unless a result is already cached for key.
func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.SetArgs(ctx, idempotencyPrefix+key, value, goredis.SetArgs{Mode: "NX", TTL: ttl}).Err()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("idempotency set: %w", err)
	}
	return nil
}

var _ ports.IdempotencyCache = (*IdempotencyCache)(nil)
