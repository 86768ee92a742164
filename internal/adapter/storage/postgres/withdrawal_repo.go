package postgres

import (
	"context"
	"errors"
	"fmt"

	"money-transfer-api/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WithdrawalRepo implements ports.CardlessWithdrawalRepository.
type WithdrawalRepo struct {
	pool Pool
}

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

// CreateForTransfer completes the transfer and inserts the withdrawal in one
// transaction. The unique index on transfer_id rejects a second code.
func (r *WithdrawalRepo) CreateForTransfer(ctx context.Context, w *domain.CardlessWithdrawal) (bool, error) {
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE transfers SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
			domain.TransferStatusCompleted, w.CreatedAt, w.TransferID, domain.TransferStatusPendingCardless,
		)
		if err != nil {
			return fmt.Errorf("complete cardless transfer: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return errGuardFailed
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO cardless_withdrawals (id, transfer_id, code, status, expires_at, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			w.ID, w.TransferID, w.Code, w.Status, w.ExpiresAt, w.CreatedAt,
		)
		if err != nil {
			return writeError("insert cardless withdrawal", err)
		}
		return nil
	})
	if errors.Is(err, errGuardFailed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetByTransferID fetches the withdrawal issued for a transfer.
func (r *WithdrawalRepo) GetByTransferID(ctx context.Context, transferID uuid.UUID) (*domain.CardlessWithdrawal, error) {
	query := `SELECT id, transfer_id, code, status, expires_at, created_at
		FROM cardless_withdrawals WHERE transfer_id = $1`

	w := &domain.CardlessWithdrawal{}
	err := r.pool.QueryRow(ctx, query, transferID).Scan(
		&w.ID, &w.TransferID, &w.Code, &w.Status, &w.ExpiresAt, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal by transfer id: %w", err)
	}
	return w, nil
}
