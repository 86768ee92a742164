package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"money-transfer-api/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// ClaimStore marks idempotency keys as in flight with SET NX.
type ClaimStore struct {
	client goredis.UniversalClient
	prefix string
}

func NewClaimStore(client goredis.UniversalClient) *ClaimStore {
	return &ClaimStore{
		client: client,
		prefix: "idempotency:claim:",
	}
}

// Claim returns true if the key was free. The claim lapses after ttl so a
// crashed request cannot hold it forever.
func (s *ClaimStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := s.client.SetArgs(ctx, s.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis claim: %w", err)
	}
	return result == "OK", nil
}

func (s *ClaimStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis claim release: %w", err)
	}
	return nil
}

var _ ports.ClaimStore = (*ClaimStore)(nil)
