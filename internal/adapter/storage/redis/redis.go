package redis

import (
	"context"
	"fmt"
	"time"

	"money-transfer-api/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const healthTimeout = time.Second

// NewClient opens the client shared by the change feed, the idempotency
// stores and the rate limiter. It fails fast when the server does not answer.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(options(cfg))

	pingCtx, cancel := context.WithTimeout(ctx, dialBudget(cfg))
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Int("pool_size", cfg.PoolSize).
		Msg("redis client ready")

	return client, nil
}

func options(cfg config.RedisConfig) *goredis.Options {
	opts := &goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts
}

func dialBudget(cfg config.RedisConfig) time.Duration {
	if cfg.DialTimeout > 0 {
		return 2 * cfg.DialTimeout
	}
	return 5 * time.Second
}
