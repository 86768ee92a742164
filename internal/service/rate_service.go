package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"
	"money-transfer-api/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RateServiceImpl implements ports.RateService.
// Every resolution reads the current rate set; nothing is cached between calls.
type RateServiceImpl struct {
	repo    ports.ExchangeRateRepository
	changes ports.ChangePublisher
	log     zerolog.Logger
	now     func() time.Time
}

// NewRateService creates a new RateServiceImpl.
func NewRateService(repo ports.ExchangeRateRepository, changes ports.ChangePublisher, log zerolog.Logger) *RateServiceImpl {
	return &RateServiceImpl{repo: repo, changes: changes, log: log, now: utcNow}
}

func (s *RateServiceImpl) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError("list rates", err)
	}
	return rates, nil
}

// ComputeConversion converts amount from one currency to another using the
// current rate set.
func (s *RateServiceImpl) ComputeConversion(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	for _, code := range []string{from, to} {
		if !domain.IsSupportedCurrency(code) {
			return nil, apperror.ErrUnsupportedCurrency(code)
		}
	}

	if from == to {
		return &domain.Conversion{Amount: amount, Rate: decimal.NewFromInt(1)}, nil
	}

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError("load rates", err)
	}

	conv, ok := domain.NewRateTable(rows).Convert(amount, from, to)
	if !ok {
		return nil, apperror.ErrRateUnavailable(from, to)
	}
	return &conv, nil
}

func (s *RateServiceImpl) CreateRate(ctx context.Context, actor domain.Actor, req ports.CreateRateRequest) (*domain.ExchangeRate, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	rate, err := domain.NewExchangeRate(req.CurrencyPair, req.ProviderRate, req.ProfitMargin, s.now())
	if err != nil {
		return nil, apperror.ErrInvalidRate(err.Error())
	}

	if err := s.repo.Create(ctx, rate); err != nil {
		if errors.Is(err, ports.ErrUniqueViolation) {
			return nil, apperror.ErrDuplicate(fmt.Sprintf("A rate for %s already exists", req.CurrencyPair))
		}
		return nil, storeError("create rate", err)
	}

	s.log.Info().
		Str("pair", rate.CurrencyPair).
		Str("our_rate", rate.OurRate.String()).
		Str("actor_id", actor.ID.String()).
		Msg("exchange rate created")
	publishChange(ctx, s.changes, s.log, domain.ChangeEntityExchangeRate, rate.ID, "created", nil)

	return rate, nil
}

// EditRate applies a tagged field edit and recomputes the dependent field.
// The write is conditioned on the row not having changed since it was read.
func (s *RateServiceImpl) EditRate(ctx context.Context, actor domain.Actor, req ports.EditRateRequest) (*domain.ExchangeRate, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	rate, err := s.repo.GetByPair(ctx, req.CurrencyPair)
	if err != nil {
		return nil, storeError("get rate", err)
	}
	if rate == nil {
		return nil, apperror.ErrNotFound("Exchange rate")
	}

	prev := rate.UpdatedAt
	if err := rate.Apply(req.Field, req.Value); err != nil {
		return nil, apperror.ErrInvalidRate(err.Error())
	}
	rate.UpdatedAt = s.now()
	if !rate.UpdatedAt.After(prev) {
		rate.UpdatedAt = prev.Add(time.Microsecond)
	}

	ok, err := s.repo.UpdateIf(ctx, rate, prev)
	if err != nil {
		return nil, storeError("update rate", err)
	}
	if !ok {
		return nil, apperror.ErrRateChanged()
	}

	s.log.Info().
		Str("pair", rate.CurrencyPair).
		Str("field", string(req.Field)).
		Str("provider_rate", rate.ProviderRate.String()).
		Str("profit_margin", rate.ProfitMargin.String()).
		Str("our_rate", rate.OurRate.String()).
		Str("actor_id", actor.ID.String()).
		Msg("exchange rate edited")
	publishChange(ctx, s.changes, s.log, domain.ChangeEntityExchangeRate, rate.ID, "updated", nil)

	return rate, nil
}

var _ ports.RateService = (*RateServiceImpl)(nil)
