package service

import (
	"context"
	"fmt"
	"time"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"
	"money-transfer-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AccountServiceImpl implements ports.AccountService: saved payout accounts
// and the administrative side of the stablecoin verification gate.
type AccountServiceImpl struct {
	accounts ports.SavedAccountRepository
	notifier ports.Notifier
	changes  ports.ChangePublisher
	log      zerolog.Logger
	now      func() time.Time
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(
	accounts ports.SavedAccountRepository,
	notifier ports.Notifier,
	changes ports.ChangePublisher,
	log zerolog.Logger,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		accounts: accounts,
		notifier: notifier,
		changes:  changes,
		log:      log,
		now:      utcNow,
	}
}

// CreateSavedAccount stores a new payout account for the caller. Accounts
// start unverified.
func (s *AccountServiceImpl) CreateSavedAccount(ctx context.Context, actor domain.Actor, req ports.CreateSavedAccountRequest) (*domain.SavedAccount, error) {
	if err := domain.ValidateAccountDetails(req.Type, req.Details); err != nil {
		return nil, destinationError(err)
	}

	now := s.now()
	account := &domain.SavedAccount{
		ID:        uuid.New(),
		UserID:    actor.ID,
		Type:      req.Type,
		Details:   copyDetails(req.Details),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, storeError("create saved account", err)
	}

	publishChange(ctx, s.changes, s.log, domain.ChangeEntitySavedAccount, account.ID, "created", &account.UserID)
	return account, nil
}

func (s *AccountServiceImpl) ListSavedAccounts(ctx context.Context, actor domain.Actor, userID uuid.UUID) ([]domain.SavedAccount, error) {
	if !actor.CanAccess(userID) {
		return nil, apperror.ErrNotOwner()
	}
	list, err := s.accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError("list saved accounts", err)
	}
	return list, nil
}

// VerifyAccount sets or clears stablecoin verification. Verifying advances
// the owner's transfers waiting for USDT approval to pending in the same
// store operation. Revoking does not move any transfer.
func (s *AccountServiceImpl) VerifyAccount(ctx context.Context, actor domain.Actor, accountID uuid.UUID, verified bool) (*domain.SavedAccount, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, storeError("get saved account", err)
	}
	if account == nil {
		return nil, apperror.ErrNotFound("Saved account")
	}
	if verified && account.Type != domain.AccountTypeBinance {
		return nil, apperror.ErrInvalidDestination("Only Binance accounts can be verified for USDT")
	}

	now := s.now()
	update := ports.AccountVerificationUpdate{AccountID: accountID, UpdatedAt: now}
	if verified {
		adminID := actor.ID
		update.USDTEnabled = true
		update.VerifiedAt = &now
		update.VerifiedBy = &adminID
		update.Promote = &ports.StatusPromotion{
			From:                domain.TransferStatusPendingUSDApproval,
			To:                  domain.TransferStatusPending,
			DestinationCurrency: domain.HubCurrency,
		}
	}

	updated, promoted, err := s.accounts.SetVerification(ctx, update)
	if err != nil {
		return nil, storeError("set account verification", err)
	}
	if updated == nil {
		return nil, apperror.ErrNotFound("Saved account")
	}

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("user_id", updated.UserID.String()).
		Bool("verified", verified).
		Int("promoted_transfers", len(promoted)).
		Str("actor_id", actor.ID.String()).
		Msg("account verification changed")

	title, content := "Account verified", "Your Binance account was verified for USDT transfers."
	if !verified {
		title, content = "Account verification revoked", "Your Binance account can no longer receive USDT transfers. Contact support."
	}
	if err := s.notifier.Notify(ctx, updated.UserID, title, content); err != nil {
		s.log.Warn().Err(err).Str("user_id", updated.UserID.String()).Msg("failed to notify account owner")
	}
	publishChange(ctx, s.changes, s.log, domain.ChangeEntitySavedAccount, updated.ID, "verification", &updated.UserID)

	for _, transferID := range promoted {
		content := fmt.Sprintf("Transfer %s was approved after account verification. Proceed with the deposit.", transferID)
		if err := s.notifier.Notify(ctx, updated.UserID, "Transfer approved", content); err != nil {
			s.log.Warn().Err(err).Str("transfer_id", transferID.String()).Msg("failed to notify transfer owner")
		}
		if err := s.notifier.PostSystemMessage(ctx, transferID, content); err != nil {
			s.log.Warn().Err(err).Str("transfer_id", transferID.String()).Msg("failed to post system message")
		}
		publishChange(ctx, s.changes, s.log, domain.ChangeEntityTransfer, transferID, string(domain.TransferStatusPending), &updated.UserID)
	}

	return updated, nil
}

var _ ports.AccountService = (*AccountServiceImpl)(nil)
