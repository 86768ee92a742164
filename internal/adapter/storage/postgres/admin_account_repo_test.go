package postgres

import (
	"context"
	"testing"
	"time"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminAccountColumnNames() []string {
	return []string{"id", "currency", "account_type", "account_details", "is_active", "created_at", "updated_at"}
}

func newTestAdminAccount(currency string, active bool) *domain.AdminAccount {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.AdminAccount{
		ID:          uuid.New(),
		Currency:    currency,
		AccountType: domain.AdminAccountTypeBank,
		Details:     map[string]string{"bank": "BCP", "account": "191-0001"},
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func adminAccountRow(a *domain.AdminAccount) *pgxmock.Rows {
	return pgxmock.NewRows(adminAccountColumnNames()).
		AddRow(a.ID, a.Currency, a.AccountType, a.Details, a.IsActive, a.CreatedAt, a.UpdatedAt)
}

func TestAdminAccountRepo_Create_SecondActiveRejected(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdminAccountRepo(mock)
	a := newTestAdminAccount("PEN", true)

	mock.ExpectExec("INSERT INTO admin_accounts").
		WithArgs(a.ID, a.Currency, a.AccountType, a.Details, a.IsActive, a.CreatedAt, a.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "admin_accounts_one_active"})

	err = repo.Create(context.Background(), a)
	assert.ErrorIs(t, err, ports.ErrUniqueViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminAccountRepo_GetActiveByCurrency(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdminAccountRepo(mock)
	a := newTestAdminAccount("MXN", true)

	mock.ExpectQuery("SELECT .+ FROM admin_accounts WHERE currency = .+ AND is_active").
		WithArgs("MXN").
		WillReturnRows(adminAccountRow(a))
	mock.ExpectQuery("SELECT .+ FROM admin_accounts WHERE currency = .+ AND is_active").
		WithArgs("VES").
		WillReturnRows(pgxmock.NewRows(adminAccountColumnNames()))

	got, err := repo.GetActiveByCurrency(context.Background(), "MXN")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, a.Details, got.Details)

	got, err = repo.GetActiveByCurrency(context.Background(), "VES")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminAccountRepo_SetActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdminAccountRepo(mock)
	a := newTestAdminAccount("COP", false)
	at := a.UpdatedAt.Add(time.Hour)
	activated := *a
	activated.IsActive = true
	activated.UpdatedAt = at

	mock.ExpectQuery("UPDATE admin_accounts SET is_active").
		WithArgs(true, at, a.ID).
		WillReturnRows(adminAccountRow(&activated))
	mock.ExpectQuery("UPDATE admin_accounts SET is_active").
		WithArgs(true, at, a.ID).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	got, err := repo.SetActive(context.Background(), a.ID, true, at)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	_, err = repo.SetActive(context.Background(), a.ID, true, at)
	assert.ErrorIs(t, err, ports.ErrUniqueViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminAccountRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdminAccountRepo(mock)
	a := newTestAdminAccount("USDT", true)

	mock.ExpectQuery("SELECT .+ FROM admin_accounts").
		WithArgs("").
		WillReturnRows(adminAccountRow(a))

	list, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
