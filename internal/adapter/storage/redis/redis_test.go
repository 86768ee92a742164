package redis

import (
	"context"
	"testing"
	"time"

	"money-transfer-api/config"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return s, client
}

func TestOptions(t *testing.T) {
	opts := options(config.RedisConfig{
		Host:         "redis.example.com",
		Port:         6380,
		DB:           3,
		PoolSize:     7,
		DialTimeout:  250 * time.Millisecond,
		ReadTimeout:  time.Second,
		WriteTimeout: 2 * time.Second,
	})

	assert.Equal(t, "redis.example.com:6380", opts.Addr)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, 7, opts.PoolSize)
	assert.Equal(t, 250*time.Millisecond, opts.DialTimeout)
	assert.Equal(t, time.Second, opts.ReadTimeout)
	assert.Equal(t, 2*time.Second, opts.WriteTimeout)
}

func TestOptions_ZeroTimeoutsKeepClientDefaults(t *testing.T) {
	opts := options(config.RedisConfig{Host: "localhost", Port: 6379})
	assert.Zero(t, opts.DialTimeout)
	assert.Zero(t, opts.ReadTimeout)
	assert.Equal(t, 5*time.Second, dialBudget(config.RedisConfig{}))
	assert.Equal(t, time.Second, dialBudget(config.RedisConfig{DialTimeout: 500 * time.Millisecond}))
}

func TestNewClient(t *testing.T) {
	s := miniredis.RunT(t)
	host, port := s.Host(), s.Server().Addr().Port

	client, err := NewClient(context.Background(), config.RedisConfig{Host: host, Port: port}, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, NewHealthCheck(client).Ping(context.Background()))
}

func TestNewClient_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	host, port := s.Host(), s.Server().Addr().Port
	s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewClient(ctx, config.RedisConfig{Host: host, Port: port}, zerolog.Nop())
	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	s, client := newTestClient(t)
	hc := NewHealthCheck(client)
	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))

	s.Close()
	assert.ErrorContains(t, hc.Ping(context.Background()), "redis ping")
}
