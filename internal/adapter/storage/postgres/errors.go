package postgres

import (
	"errors"
	"fmt"

	"money-transfer-api/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation = "23505"
	numericOverflow = "22003"
)

// writeError wraps err for op, translating unique violations and numeric
// overflow to the matching ports sentinel.
func writeError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, ports.ErrUniqueViolation, pgErr.ConstraintName)
		case numericOverflow:
			return fmt.Errorf("%s: %w: %s", op, ports.ErrValueOutOfRange, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
