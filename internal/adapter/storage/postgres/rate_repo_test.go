package postgres

import (
	"context"
	"testing"
	"time"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateColumnNames() []string {
	return []string{"id", "currency_pair", "provider_rate", "profit_margin", "our_rate", "created_at", "updated_at"}
}

func newTestRate(t *testing.T) *domain.ExchangeRate {
	rate, err := domain.NewExchangeRate("MXN/USDT",
		decimal.RequireFromString("0.05"), decimal.RequireFromString("0.02"),
		time.Now().UTC().Truncate(time.Microsecond))
	require.NoError(t, err)
	return rate
}

func TestRateRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRateRepo(mock)
	r := newTestRate(t)

	mock.ExpectQuery("SELECT .+ FROM exchange_rates ORDER BY currency_pair").
		WillReturnRows(pgxmock.NewRows(rateColumnNames()).
			AddRow(r.ID, r.CurrencyPair, r.ProviderRate, r.ProfitMargin, r.OurRate, r.CreatedAt, r.UpdatedAt))

	rates, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.True(t, rates[0].OurRate.Equal(decimal.RequireFromString("0.051")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateRepo_Create_DuplicatePair(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRateRepo(mock)
	r := newTestRate(t)

	mock.ExpectExec("INSERT INTO exchange_rates").
		WithArgs(r.ID, r.CurrencyPair, r.ProviderRate, r.ProfitMargin, r.OurRate, r.CreatedAt, r.UpdatedAt).
		WillReturnError(uniqueErr())

	assert.ErrorIs(t, repo.Create(context.Background(), r), ports.ErrUniqueViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateRepo_UpdateIf(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRateRepo(mock)
	r := newTestRate(t)
	prev := r.UpdatedAt
	require.NoError(t, r.Apply(domain.RateFieldProfitMargin, decimal.RequireFromString("0.1")))
	r.UpdatedAt = prev.Add(time.Second)

	mock.ExpectExec("UPDATE exchange_rates SET").
		WithArgs(r.ProviderRate, r.ProfitMargin, r.OurRate, r.UpdatedAt, r.CurrencyPair, prev).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE exchange_rates SET").
		WithArgs(r.ProviderRate, r.ProfitMargin, r.OurRate, r.UpdatedAt, r.CurrencyPair, prev).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.UpdateIf(context.Background(), r, prev)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateIf(context.Background(), r, prev)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateRepo_GetByPair_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRateRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM exchange_rates WHERE currency_pair").
		WithArgs("PEN/VES").
		WillReturnRows(pgxmock.NewRows(rateColumnNames()))

	got, err := repo.GetByPair(context.Background(), "PEN/VES")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
