package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const healthTimeout = 2 * time.Second

var errSchemaMissing = errors.New("transfers table not found, run migrations")

// HealthCheck reports the store as healthy once it answers and carries the
// migrated schema.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var migrated bool
	if err := h.pool.QueryRow(ctx, `SELECT to_regclass('public.transfers') IS NOT NULL`).Scan(&migrated); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	if !migrated {
		return errSchemaMissing
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
