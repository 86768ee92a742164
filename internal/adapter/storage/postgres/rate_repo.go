package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"money-transfer-api/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const rateColumns = `id, currency_pair, provider_rate, profit_margin, our_rate, created_at, updated_at`

// RateRepo implements ports.ExchangeRateRepository.
type RateRepo struct {
	pool Pool
}

// NewRateRepo creates a new RateRepo.
func NewRateRepo(pool Pool) *RateRepo {
	return &RateRepo{pool: pool}
}

func (r *RateRepo) List(ctx context.Context) ([]domain.ExchangeRate, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+rateColumns+` FROM exchange_rates ORDER BY currency_pair`)
	if err != nil {
		return nil, fmt.Errorf("list exchange rates: %w", err)
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exchange rate row: %w", err)
		}
		rates = append(rates, *rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exchange rate rows: %w", err)
	}
	return rates, nil
}

func (r *RateRepo) GetByPair(ctx context.Context, pair string) (*domain.ExchangeRate, error) {
	rate, err := scanRate(r.pool.QueryRow(ctx,
		`SELECT `+rateColumns+` FROM exchange_rates WHERE currency_pair = $1`, pair))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exchange rate by pair: %w", err)
	}
	return rate, nil
}

func (r *RateRepo) Create(ctx context.Context, rate *domain.ExchangeRate) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO exchange_rates (`+rateColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rate.ID, rate.CurrencyPair, rate.ProviderRate, rate.ProfitMargin, rate.OurRate,
		rate.CreatedAt, rate.UpdatedAt,
	)
	if err != nil {
		return writeError("insert exchange rate", err)
	}
	return nil
}

// UpdateIf writes the editable fields only while updated_at is unchanged.
func (r *RateRepo) UpdateIf(ctx context.Context, rate *domain.ExchangeRate, prevUpdatedAt time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE exchange_rates SET provider_rate = $1, profit_margin = $2, our_rate = $3, updated_at = $4
		 WHERE currency_pair = $5 AND updated_at = $6`,
		rate.ProviderRate, rate.ProfitMargin, rate.OurRate, rate.UpdatedAt,
		rate.CurrencyPair, prevUpdatedAt,
	)
	if err != nil {
		return false, writeError("update exchange rate", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanRate(row pgx.Row) (*domain.ExchangeRate, error) {
	rate := &domain.ExchangeRate{}
	err := row.Scan(
		&rate.ID, &rate.CurrencyPair, &rate.ProviderRate, &rate.ProfitMargin, &rate.OurRate,
		&rate.CreatedAt, &rate.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rate, nil
}
