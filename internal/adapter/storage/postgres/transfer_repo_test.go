package postgres

import (
	"context"
	"testing"
	"time"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransfer() *domain.Transfer {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Transfer{
		ID:                  uuid.New(),
		UserID:              uuid.New(),
		Kind:                domain.TransferKindBankOrCard,
		Status:              domain.TransferStatusPending,
		Amount:              decimal.RequireFromString("1500"),
		OriginCurrency:      domain.CurrencyMXN,
		DestinationCurrency: domain.CurrencyPEN,
		ExchangeRate:        decimal.RequireFromString("0.2"),
		DestinationAmount:   decimal.RequireFromString("300"),
		DestinationType:     domain.AccountTypeCLABE,
		DestinationDetails:  map[string]string{domain.DetailCLABE: "012345678901234567"},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func transferColumnNames() []string {
	return []string{"id", "user_id", "kind", "status", "amount", "origin_currency", "destination_currency",
		"exchange_rate", "destination_amount", "destination_type", "destination_details", "saved_account_id",
		"created_at", "updated_at"}
}

func transferRow(t *domain.Transfer) *pgxmock.Rows {
	return pgxmock.NewRows(transferColumnNames()).AddRow(
		t.ID, t.UserID, t.Kind, t.Status, t.Amount,
		t.OriginCurrency, t.DestinationCurrency, t.ExchangeRate, t.DestinationAmount,
		t.DestinationType, t.DestinationDetails, t.SavedAccountID,
		t.CreatedAt, t.UpdatedAt,
	)
}

func TestTransferRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	tr := newTestTransfer()

	mock.ExpectExec("INSERT INTO transfers").
		WithArgs(
			tr.ID, tr.UserID, tr.Kind, tr.Status, tr.Amount,
			tr.OriginCurrency, tr.DestinationCurrency, tr.ExchangeRate, tr.DestinationAmount,
			tr.DestinationType, tr.DestinationDetails, tr.SavedAccountID,
			tr.CreatedAt, tr.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), tr))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	tr := newTestTransfer()

	mock.ExpectQuery("SELECT .+ FROM transfers WHERE id").
		WithArgs(tr.ID).
		WillReturnRows(transferRow(tr))

	result, err := repo.GetByID(context.Background(), tr.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, tr.ID, result.ID)
	assert.Equal(t, tr.Status, result.Status)
	assert.True(t, tr.DestinationAmount.Equal(result.DestinationAmount))
	assert.Equal(t, tr.DestinationDetails, result.DestinationDetails)
	assert.Nil(t, result.SavedAccountID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM transfers WHERE id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(transferColumnNames()))

	result, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_UpdateStatusIf(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE transfers SET status").
		WithArgs(domain.TransferStatusCompleted, id, domain.TransferStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE transfers SET status").
		WithArgs(domain.TransferStatusCompleted, id, domain.TransferStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.UpdateStatusIf(context.Background(), id, domain.TransferStatusPending, domain.TransferStatusCompleted)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateStatusIf(context.Background(), id, domain.TransferStatusPending, domain.TransferStatusCompleted)
	require.NoError(t, err)
	assert.False(t, ok, "second writer must lose the compare-and-swap")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	tr := newTestTransfer()
	status := domain.TransferStatusPending

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(tr.UserID, status).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT .+ FROM transfers WHERE user_id = .+ AND status = .+ ORDER BY created_at DESC").
		WithArgs(tr.UserID, status, 20, 0).
		WillReturnRows(transferRow(tr))

	list, total, err := repo.List(context.Background(), ports.TransferListParams{
		UserID:   &tr.UserID,
		Status:   &status,
		Page:     1,
		PageSize: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, tr.ID, list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_List_NoFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery("SELECT .+ FROM transfers +ORDER BY").
		WithArgs(10, 10).
		WillReturnRows(pgxmock.NewRows(transferColumnNames()))

	list, total, err := repo.List(context.Background(), ports.TransferListParams{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_GetStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)

	mock.ExpectQuery("SELECT status, COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"status", "count"}).
			AddRow(domain.TransferStatusPending, int64(4)).
			AddRow(domain.TransferStatusCompleted, int64(6)))

	stats, err := repo.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(4), stats.ByStatus[domain.TransferStatusPending])
	assert.Equal(t, int64(6), stats.ByStatus[domain.TransferStatusCompleted])
	assert.Equal(t, int64(0), stats.ByStatus[domain.TransferStatusFailed])
	assert.NoError(t, mock.ExpectationsWereMet())
}
