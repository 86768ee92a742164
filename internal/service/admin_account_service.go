package service

import (
	"context"
	"errors"
	"time"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"
	"money-transfer-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AdminAccountServiceImpl keeps at most one active receiving account per
// currency. The pre-checks give a friendly error; the store's uniqueness
// constraint is what actually decides.
type AdminAccountServiceImpl struct {
	repo    ports.AdminAccountRepository
	changes ports.ChangePublisher
	log     zerolog.Logger
	now     func() time.Time
}

// NewAdminAccountService creates a new AdminAccountServiceImpl.
func NewAdminAccountService(repo ports.AdminAccountRepository, changes ports.ChangePublisher, log zerolog.Logger) *AdminAccountServiceImpl {
	return &AdminAccountServiceImpl{repo: repo, changes: changes, log: log, now: utcNow}
}

// CreateAdminAccount stores a new receiving account, active by default.
func (s *AdminAccountServiceImpl) CreateAdminAccount(ctx context.Context, actor domain.Actor, req ports.CreateAdminAccountRequest) (*domain.AdminAccount, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !domain.IsSupportedCurrency(req.Currency) {
		return nil, apperror.ErrUnsupportedCurrency(req.Currency)
	}
	if !req.AccountType.IsValid() {
		return nil, apperror.Validation("Account type must be bank or binance")
	}
	if len(req.Details) == 0 {
		return nil, apperror.Validation("Account details are required")
	}

	active, err := s.repo.GetActiveByCurrency(ctx, req.Currency)
	if err != nil {
		return nil, storeError("get active admin account", err)
	}
	if active != nil {
		return nil, apperror.ErrActiveAccountExists(req.Currency)
	}

	now := s.now()
	account := &domain.AdminAccount{
		ID:          uuid.New(),
		Currency:    req.Currency,
		AccountType: req.AccountType,
		Details:     copyDetails(req.Details),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, ports.ErrUniqueViolation) {
			return nil, apperror.ErrActiveAccountExists(req.Currency)
		}
		return nil, storeError("create admin account", err)
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Str("currency", account.Currency).
		Str("actor_id", actor.ID.String()).
		Msg("receiving account created")
	publishChange(ctx, s.changes, s.log, domain.ChangeEntityAdminAccount, account.ID, "created", nil)

	return account, nil
}

func (s *AdminAccountServiceImpl) ListAdminAccounts(ctx context.Context, actor domain.Actor, currency string) ([]domain.AdminAccount, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if currency != "" && !domain.IsSupportedCurrency(currency) {
		return nil, apperror.ErrUnsupportedCurrency(currency)
	}
	list, err := s.repo.List(ctx, currency)
	if err != nil {
		return nil, storeError("list admin accounts", err)
	}
	return list, nil
}

// SetAdminAccountActive activates or deactivates a receiving account.
// Deactivation is always permitted.
func (s *AdminAccountServiceImpl) SetAdminAccountActive(ctx context.Context, actor domain.Actor, id uuid.UUID, active bool) (*domain.AdminAccount, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get admin account", err)
	}
	if account == nil {
		return nil, apperror.ErrNotFound("Receiving account")
	}
	if account.IsActive == active {
		return account, nil
	}

	if active {
		current, err := s.repo.GetActiveByCurrency(ctx, account.Currency)
		if err != nil {
			return nil, storeError("get active admin account", err)
		}
		if current != nil && current.ID != account.ID {
			return nil, apperror.ErrActiveAccountExists(account.Currency)
		}
	}

	updated, err := s.repo.SetActive(ctx, id, active, s.now())
	if err != nil {
		if errors.Is(err, ports.ErrUniqueViolation) {
			return nil, apperror.ErrActiveAccountExists(account.Currency)
		}
		return nil, storeError("set admin account status", err)
	}
	if updated == nil {
		return nil, apperror.ErrNotFound("Receiving account")
	}

	s.log.Info().
		Str("account_id", id.String()).
		Str("currency", updated.Currency).
		Bool("active", active).
		Str("actor_id", actor.ID.String()).
		Msg("receiving account status changed")
	publishChange(ctx, s.changes, s.log, domain.ChangeEntityAdminAccount, id, "status", nil)

	return updated, nil
}

// GetDepositAccount returns the active receiving account users deposit
// into for currency.
func (s *AdminAccountServiceImpl) GetDepositAccount(ctx context.Context, currency string) (*domain.AdminAccount, error) {
	if !domain.IsSupportedCurrency(currency) {
		return nil, apperror.ErrUnsupportedCurrency(currency)
	}
	account, err := s.repo.GetActiveByCurrency(ctx, currency)
	if err != nil {
		return nil, storeError("get active admin account", err)
	}
	if account == nil {
		return nil, apperror.ErrNotFound("Receiving account")
	}
	return account, nil
}

var _ ports.AdminAccountService = (*AdminAccountServiceImpl)(nil)
