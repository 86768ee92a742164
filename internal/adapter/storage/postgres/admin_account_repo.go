package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"money-transfer-api/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const adminAccountColumns = `id, currency, account_type, account_details, is_active, created_at, updated_at`

// AdminAccountRepo implements ports.AdminAccountRepository. The partial
// unique index admin_accounts_one_active enforces one active row per currency.
type AdminAccountRepo struct {
	pool Pool
}

// NewAdminAccountRepo creates a new AdminAccountRepo.
func NewAdminAccountRepo(pool Pool) *AdminAccountRepo {
	return &AdminAccountRepo{pool: pool}
}

func (r *AdminAccountRepo) Create(ctx context.Context, a *domain.AdminAccount) error {
	query := `INSERT INTO admin_accounts (` + adminAccountColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Currency, a.AccountType, a.Details, a.IsActive, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return writeError("insert admin account", err)
	}
	return nil
}

func (r *AdminAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminAccount, error) {
	return r.getOne(ctx, "get admin account by id",
		`SELECT `+adminAccountColumns+` FROM admin_accounts WHERE id = $1`, id)
}

func (r *AdminAccountRepo) GetActiveByCurrency(ctx context.Context, currency string) (*domain.AdminAccount, error) {
	return r.getOne(ctx, "get active admin account",
		`SELECT `+adminAccountColumns+` FROM admin_accounts WHERE currency = $1 AND is_active`, currency)
}

// List returns all receiving accounts, optionally for one currency.
func (r *AdminAccountRepo) List(ctx context.Context, currency string) ([]domain.AdminAccount, error) {
	query := `SELECT ` + adminAccountColumns + ` FROM admin_accounts
		WHERE ($1 = '' OR currency = $1) ORDER BY currency, created_at DESC`

	rows, err := r.pool.Query(ctx, query, currency)
	if err != nil {
		return nil, fmt.Errorf("list admin accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.AdminAccount
	for rows.Next() {
		a, err := scanAdminAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin account row: %w", err)
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate admin account rows: %w", err)
	}
	return accounts, nil
}

// SetActive flips is_active. Activating while another row of the currency
// is active fails with ports.ErrUniqueViolation.
func (r *AdminAccountRepo) SetActive(ctx context.Context, id uuid.UUID, active bool, updatedAt time.Time) (*domain.AdminAccount, error) {
	a, err := scanAdminAccount(r.pool.QueryRow(ctx,
		`UPDATE admin_accounts SET is_active = $1, updated_at = $2 WHERE id = $3 RETURNING `+adminAccountColumns,
		active, updatedAt, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, writeError("set admin account status", err)
	}
	return a, nil
}

func (r *AdminAccountRepo) getOne(ctx context.Context, op, query string, arg any) (*domain.AdminAccount, error) {
	a, err := scanAdminAccount(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

func scanAdminAccount(row pgx.Row) (*domain.AdminAccount, error) {
	a := &domain.AdminAccount{}
	err := row.Scan(&a.ID, &a.Currency, &a.AccountType, &a.Details, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}
