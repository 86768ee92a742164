package postgres

import (
	"context"
	"errors"
	"fmt"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const savedAccountColumns = `id, user_id, account_type, details, usdt_enabled, verified_at, verified_by, created_at, updated_at`

// SavedAccountRepo implements ports.SavedAccountRepository.
type SavedAccountRepo struct {
	pool Pool
}

// NewSavedAccountRepo creates a new SavedAccountRepo.
func NewSavedAccountRepo(pool Pool) *SavedAccountRepo {
	return &SavedAccountRepo{pool: pool}
}

func (r *SavedAccountRepo) Create(ctx context.Context, a *domain.SavedAccount) error {
	query := `INSERT INTO saved_accounts (` + savedAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.UserID, a.Type, a.Details, a.USDTEnabled,
		a.VerifiedAt, a.VerifiedBy, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return writeError("insert saved account", err)
	}
	return nil
}

func (r *SavedAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedAccount, error) {
	query := `SELECT ` + savedAccountColumns + ` FROM saved_accounts WHERE id = $1`

	a, err := scanSavedAccount(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get saved account by id: %w", err)
	}
	return a, nil
}

func (r *SavedAccountRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedAccount, error) {
	query := `SELECT ` + savedAccountColumns + ` FROM saved_accounts WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.SavedAccount
	for rows.Next() {
		a, err := scanSavedAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan saved account row: %w", err)
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved account rows: %w", err)
	}
	return accounts, nil
}

// SetVerification updates the verification fields and, when requested,
// promotes the owner's waiting transfers in the same transaction.
func (r *SavedAccountRepo) SetVerification(ctx context.Context, u ports.AccountVerificationUpdate) (*domain.SavedAccount, []uuid.UUID, error) {
	var account *domain.SavedAccount
	var promoted []uuid.UUID

	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		a, err := scanSavedAccount(tx.QueryRow(ctx,
			`UPDATE saved_accounts SET usdt_enabled = $1, verified_at = $2, verified_by = $3, updated_at = $4
			 WHERE id = $5 RETURNING `+savedAccountColumns,
			u.USDTEnabled, u.VerifiedAt, u.VerifiedBy, u.UpdatedAt, u.AccountID,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errGuardFailed
			}
			return fmt.Errorf("update saved account verification: %w", err)
		}
		account = a

		if u.Promote == nil {
			return nil
		}
		rows, err := tx.Query(ctx,
			`UPDATE transfers SET status = $1, updated_at = $2
			 WHERE user_id = $3 AND status = $4 AND destination_currency = $5
			 RETURNING id`,
			u.Promote.To, u.UpdatedAt, a.UserID, u.Promote.From, u.Promote.DestinationCurrency,
		)
		if err != nil {
			return fmt.Errorf("promote waiting transfers: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var id uuid.UUID
			if err := rows.Scan(&id); err != nil {
				return fmt.Errorf("scan promoted transfer id: %w", err)
			}
			promoted = append(promoted, id)
		}
		return rows.Err()
	})
	if errors.Is(err, errGuardFailed) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return account, promoted, nil
}

func scanSavedAccount(row pgx.Row) (*domain.SavedAccount, error) {
	a := &domain.SavedAccount{}
	err := row.Scan(
		&a.ID, &a.UserID, &a.Type, &a.Details, &a.USDTEnabled,
		&a.VerifiedAt, &a.VerifiedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
