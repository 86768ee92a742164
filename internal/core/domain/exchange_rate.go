package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeRate is a quote for one ordered currency pair.
// OurRate is kept equal to ProviderRate * (1 + ProfitMargin).
type ExchangeRate struct {
	ID           uuid.UUID       `json:"id"`
	CurrencyPair string          `json:"currency_pair"`
	ProviderRate decimal.Decimal `json:"provider_rate"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
	OurRate      decimal.Decimal `json:"our_rate"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RateField names the field an administrator edited on a rate row.
type RateField string

const (
	RateFieldProviderRate RateField = "provider_rate"
	RateFieldProfitMargin RateField = "profit_margin"
	RateFieldOurRate      RateField = "our_rate"
)

var (
	ErrUnknownRateField    = errors.New("unknown rate field")
	ErrNonPositiveRate     = errors.New("rate must be greater than zero")
	ErrMarginOutOfRange    = errors.New("profit margin must be greater than -1")
	ErrZeroProviderRate    = errors.New("provider rate is zero")
	ErrInvalidCurrencyPair = errors.New("currency pair must be FROM/TO with two different supported currencies")
)

func ComputeOurRate(provider, margin decimal.Decimal) decimal.Decimal {
	return provider.Mul(decimal.NewFromInt(1).Add(margin))
}

// NewExchangeRate validates a pair and derives OurRate.
func NewExchangeRate(pair string, provider, margin decimal.Decimal, now time.Time) (*ExchangeRate, error) {
	from, to, ok := SplitPair(pair)
	if !ok || from == to || !IsSupportedCurrency(from) || !IsSupportedCurrency(to) {
		return nil, ErrInvalidCurrencyPair
	}
	if !provider.IsPositive() {
		return nil, ErrNonPositiveRate
	}
	if margin.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return nil, ErrMarginOutOfRange
	}
	return &ExchangeRate{
		ID:           uuid.New(),
		CurrencyPair: pair,
		ProviderRate: provider,
		ProfitMargin: margin,
		OurRate:      ComputeOurRate(provider, margin),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Apply sets field to value and recomputes the dependent field.
// Editing OurRate keeps ProviderRate fixed and derives the margin.
// The receiver is left untouched when an error is returned.
func (r *ExchangeRate) Apply(field RateField, value decimal.Decimal) error {
	switch field {
	case RateFieldProviderRate:
		if !value.IsPositive() {
			return ErrNonPositiveRate
		}
		r.ProviderRate = value
		r.OurRate = ComputeOurRate(r.ProviderRate, r.ProfitMargin)
	case RateFieldProfitMargin:
		if value.LessThanOrEqual(decimal.NewFromInt(-1)) {
			return ErrMarginOutOfRange
		}
		r.ProfitMargin = value
		r.OurRate = ComputeOurRate(r.ProviderRate, r.ProfitMargin)
	case RateFieldOurRate:
		if !value.IsPositive() {
			return ErrNonPositiveRate
		}
		if r.ProviderRate.IsZero() {
			return ErrZeroProviderRate
		}
		r.OurRate = value
		r.ProfitMargin = value.Div(r.ProviderRate).Sub(decimal.NewFromInt(1))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRateField, field)
	}
	return nil
}

// RateTable is an immutable snapshot of rate rows keyed by pair.
type RateTable struct {
	rates map[string]decimal.Decimal
}

func NewRateTable(rows []ExchangeRate) RateTable {
	m := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		m[r.CurrencyPair] = r.OurRate
	}
	return RateTable{rates: m}
}

// Resolve returns the multiplier converting from into to. Lookup order is
// the direct row, then the inverse row, then one hop through HubCurrency
// when neither side is the hub. from == to is not resolvable here.
func (t RateTable) Resolve(from, to string) (decimal.Decimal, bool) {
	if from == to {
		return decimal.Zero, false
	}
	if rate, ok := t.direct(from, to); ok {
		return rate, true
	}
	if from == HubCurrency || to == HubCurrency {
		return decimal.Zero, false
	}
	toHub, ok := t.direct(from, HubCurrency)
	if !ok {
		return decimal.Zero, false
	}
	fromHub, ok := t.direct(HubCurrency, to)
	if !ok {
		return decimal.Zero, false
	}
	return toHub.Mul(fromHub), true
}

func (t RateTable) direct(from, to string) (decimal.Decimal, bool) {
	if rate, ok := t.rates[CurrencyPair(from, to)]; ok {
		return rate, true
	}
	if inv, ok := t.rates[CurrencyPair(to, from)]; ok && !inv.IsZero() {
		return decimal.NewFromInt(1).Div(inv), true
	}
	return decimal.Zero, false
}

// Conversion is the result of applying a resolved rate to an amount.
type Conversion struct {
	Amount decimal.Decimal `json:"amount"`
	Rate   decimal.Decimal `json:"rate"`
}

// Convert applies the table to amount. Same-currency conversions use rate 1.
func (t RateTable) Convert(amount decimal.Decimal, from, to string) (Conversion, bool) {
	if from == to {
		return Conversion{Amount: amount, Rate: decimal.NewFromInt(1)}, true
	}
	rate, ok := t.Resolve(from, to)
	if !ok {
		return Conversion{}, false
	}
	return Conversion{Amount: amount.Mul(rate), Rate: rate}, true
}
