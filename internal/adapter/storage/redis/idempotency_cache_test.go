package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyCache_SetAndGet(t *testing.T) {
	_, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	key := "7d3f0c2e-user:checkout-1"
	value := []byte(`{"id":"abc","status":"pending"}`)

	result, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, result)

	require.NoError(t, cache.Set(ctx, key, value, 24*time.Hour))

	result, err = cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, value, result)
}

func TestIdempotencyCache_FirstResultWins(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "u:k", []byte(`{"id":"first"}`), time.Hour))
	require.NoError(t, cache.Set(ctx, "u:k", []byte(`{"id":"second"}`), time.Hour))

	result, err := cache.Get(ctx, "u:k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"first"}`, string(result))
	assert.True(t, s.Exists(idempotencyPrefix+"u:k"))
}

func TestIdempotencyCache_TTLExpiry(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte(`{}`), time.Second))
	s.FastForward(2 * time.Second)

	result, err := cache.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, result, "expired key should return nil")
}

func TestIdempotencyCache_Unavailable(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	s.Close()

	_, err := cache.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), "k", []byte("v"), time.Minute))
}

func TestClaimStore(t *testing.T) {
	s, client := newTestClient(t)
	claims := NewClaimStore(client)
	ctx := context.Background()

	ok, err := claims.Claim(ctx, "user:key-1", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = claims.Claim(ctx, "user:key-1", 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok, "a held claim is refused")

	ok, err = claims.Claim(ctx, "user:key-2", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "claims are per key")

	require.NoError(t, claims.Release(ctx, "user:key-1"))
	ok, err = claims.Claim(ctx, "user:key-1", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "released claim can be taken again")

	s.FastForward(31 * time.Second)
	ok, err = claims.Claim(ctx, "user:key-2", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "claims lapse after their ttl")
}

func TestClaimStore_KeysDoNotCollideWithCache(t *testing.T) {
	_, client := newTestClient(t)
	ctx := context.Background()

	cache := NewIdempotencyCache(client)
	require.NoError(t, cache.Set(ctx, "user:key", []byte(`{}`), time.Hour))

	ok, err := NewClaimStore(client).Claim(ctx, "user:key", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
