package postgres

import (
	"context"
	"testing"
	"time"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func savedAccountColumnNames() []string {
	return []string{"id", "user_id", "account_type", "details", "usdt_enabled", "verified_at", "verified_by", "created_at", "updated_at"}
}

func newTestSavedAccount() *domain.SavedAccount {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.SavedAccount{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Type:      domain.AccountTypeBinance,
		Details:   map[string]string{domain.DetailBinanceID: "4455"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func savedAccountRow(a *domain.SavedAccount) *pgxmock.Rows {
	return pgxmock.NewRows(savedAccountColumnNames()).AddRow(
		a.ID, a.UserID, a.Type, a.Details, a.USDTEnabled,
		a.VerifiedAt, a.VerifiedBy, a.CreatedAt, a.UpdatedAt,
	)
}

func TestSavedAccountRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSavedAccountRepo(mock)
	a := newTestSavedAccount()

	mock.ExpectExec("INSERT INTO saved_accounts").
		WithArgs(a.ID, a.UserID, a.Type, a.Details, a.USDTEnabled, a.VerifiedAt, a.VerifiedBy, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedAccountRepo_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSavedAccountRepo(mock)
	a := newTestSavedAccount()

	mock.ExpectQuery("SELECT .+ FROM saved_accounts WHERE user_id").
		WithArgs(a.UserID).
		WillReturnRows(savedAccountRow(a))

	list, err := repo.ListByUser(context.Background(), a.UserID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.Details, list[0].Details)
	assert.False(t, list[0].CanReceiveStablecoin())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedAccountRepo_SetVerification_Promotes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSavedAccountRepo(mock)
	a := newTestSavedAccount()
	now := a.UpdatedAt.Add(time.Minute)
	admin := uuid.New()
	verified := *a
	verified.USDTEnabled = true
	verified.VerifiedAt = &now
	verified.VerifiedBy = &admin
	verified.UpdatedAt = now

	update := ports.AccountVerificationUpdate{
		AccountID:   a.ID,
		USDTEnabled: true,
		VerifiedAt:  &now,
		VerifiedBy:  &admin,
		UpdatedAt:   now,
		Promote: &ports.StatusPromotion{
			From:                domain.TransferStatusPendingUSDApproval,
			To:                  domain.TransferStatusPending,
			DestinationCurrency: domain.CurrencyUSDT,
		},
	}
	t1, t2 := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE saved_accounts SET usdt_enabled").
		WithArgs(true, &now, &admin, now, a.ID).
		WillReturnRows(savedAccountRow(&verified))
	mock.ExpectQuery("UPDATE transfers SET status .+ RETURNING id").
		WithArgs(domain.TransferStatusPending, now, a.UserID, domain.TransferStatusPendingUSDApproval, domain.CurrencyUSDT).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(t1).AddRow(t2))
	mock.ExpectCommit()

	got, promoted, err := repo.SetVerification(context.Background(), update)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.CanReceiveStablecoin())
	assert.Equal(t, []uuid.UUID{t1, t2}, promoted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedAccountRepo_SetVerification_RevokeOnlyTouchesAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSavedAccountRepo(mock)
	a := newTestSavedAccount()
	now := a.UpdatedAt.Add(time.Minute)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE saved_accounts SET usdt_enabled").
		WithArgs(false, (*time.Time)(nil), (*uuid.UUID)(nil), now, a.ID).
		WillReturnRows(savedAccountRow(a))
	mock.ExpectCommit()

	got, promoted, err := repo.SetVerification(context.Background(), ports.AccountVerificationUpdate{
		AccountID: a.ID,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, promoted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedAccountRepo_SetVerification_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSavedAccountRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE saved_accounts SET usdt_enabled").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(savedAccountColumnNames()))
	mock.ExpectRollback()

	got, promoted, err := repo.SetVerification(context.Background(), ports.AccountVerificationUpdate{
		AccountID: uuid.New(),
		UpdatedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Nil(t, promoted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
