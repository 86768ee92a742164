package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"
	"money-transfer-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func requireAdmin(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return apperror.ErrAdminRequired()
	}
	return nil
}

// storeError wraps a repository failure as a transient error. A value the
// store cannot hold is a validation failure and is not retried.
func storeError(op string, err error) error {
	if errors.Is(err, ports.ErrValueOutOfRange) {
		return apperror.Validation("Value is out of range")
	}
	return apperror.Transient(fmt.Errorf("%s: %w", op, err))
}

func destinationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCLABE):
		return apperror.ErrInvalidCLABE()
	case errors.Is(err, domain.ErrInvalidCard):
		return apperror.ErrInvalidCard()
	default:
		return apperror.ErrInvalidDestination(err.Error())
	}
}

// publishChange sends a change hint. Failures are logged only.
func publishChange(ctx context.Context, pub ports.ChangePublisher, log zerolog.Logger, entity domain.ChangeEntity, id uuid.UUID, action string, owner *uuid.UUID) {
	if pub == nil {
		return
	}
	ev := domain.ChangeEvent{Entity: entity, ID: id, Action: action, UserID: owner, At: utcNow()}
	if err := pub.Publish(ctx, ev); err != nil {
		log.Warn().Err(err).
			Str("entity", string(entity)).
			Str("id", id.String()).
			Msg("failed to publish change event")
	}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func copyDetails(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
