package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"
	"money-transfer-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultIdempotencyTTL = 24 * time.Hour
	defaultClaimTTL       = 30 * time.Second
)

// TransferServiceDeps groups the collaborators of the transfer lifecycle.
// IdempotencyCache, Claims and Changes may be nil.
type TransferServiceDeps struct {
	Transfers        ports.TransferRepository
	Withdrawals      ports.CardlessWithdrawalRepository
	Accounts         ports.SavedAccountRepository
	Messages         ports.MessageRepository
	Profiles         ports.ProfileRepository
	Rates            ports.RateService
	Notifier         ports.Notifier
	Changes          ports.ChangePublisher
	IdempotencyCache ports.IdempotencyCache
	Claims           ports.ClaimStore
	IdempotencyTTL   time.Duration
	ClaimTTL         time.Duration
}

// TransferServiceImpl implements ports.TransferService. It owns every
// status rule; each status write is a compare-and-swap on the stored status.
type TransferServiceImpl struct {
	transfers   ports.TransferRepository
	withdrawals ports.CardlessWithdrawalRepository
	accounts    ports.SavedAccountRepository
	messages    ports.MessageRepository
	profiles    ports.ProfileRepository
	rates       ports.RateService
	notifier    ports.Notifier
	changes     ports.ChangePublisher
	idempCache  ports.IdempotencyCache
	claims      ports.ClaimStore
	idempTTL    time.Duration
	claimTTL    time.Duration
	log         zerolog.Logger
	now         func() time.Time
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(deps TransferServiceDeps, log zerolog.Logger) *TransferServiceImpl {
	s := &TransferServiceImpl{
		transfers:   deps.Transfers,
		withdrawals: deps.Withdrawals,
		accounts:    deps.Accounts,
		messages:    deps.Messages,
		profiles:    deps.Profiles,
		rates:       deps.Rates,
		notifier:    deps.Notifier,
		changes:     deps.Changes,
		idempCache:  deps.IdempotencyCache,
		claims:      deps.Claims,
		idempTTL:    deps.IdempotencyTTL,
		claimTTL:    deps.ClaimTTL,
		log:         log,
		now:         utcNow,
	}
	if s.idempTTL <= 0 {
		s.idempTTL = defaultIdempotencyTTL
	}
	if s.claimTTL <= 0 {
		s.claimTTL = defaultClaimTTL
	}
	return s
}

// CreateTransfer validates the intent, resolves the destination, applies the
// verification gate, converts the amount and stores the transfer in its
// initial status. Nothing is notified unless the insert succeeded.
func (s *TransferServiceImpl) CreateTransfer(ctx context.Context, actor domain.Actor, req ports.CreateTransferRequest) (*domain.Transfer, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if !domain.AmountInRange(req.Amount) {
		return nil, apperror.ErrAmountTooLarge()
	}

	var idempKey string
	if req.IdempotencyKey != "" && s.idempCache != nil {
		idempKey = domain.BuildIdempotencyKey(actor.ID, req.IdempotencyKey)

		cached, err := s.idempCache.Get(ctx, idempKey)
		if err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("redis idempotency check failed, processing request")
		}
		if cached != nil {
			return s.unmarshalCachedTransfer(cached)
		}

		if s.claims != nil {
			claimed, err := s.claims.Claim(ctx, idempKey, s.claimTTL)
			if err != nil {
				s.log.Warn().Err(err).Str("key", idempKey).Msg("idempotency claim failed, processing request")
			} else if !claimed {
				return nil, apperror.ErrDuplicate("A transfer with this Idempotency-Key is already being processed")
			} else {
				defer func() {
					if err := s.claims.Release(context.WithoutCancel(ctx), idempKey); err != nil {
						s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to release idempotency claim")
					}
				}()
			}
		}
	}

	transfer, err := s.buildTransfer(ctx, actor, req)
	if err != nil {
		return nil, err
	}

	conv, err := s.rates.ComputeConversion(ctx, transfer.Amount, transfer.OriginCurrency, transfer.DestinationCurrency)
	if err != nil {
		return nil, err
	}
	if !domain.AmountInRange(conv.Amount) {
		return nil, apperror.ErrAmountTooLarge()
	}
	transfer.ExchangeRate = conv.Rate
	transfer.DestinationAmount = conv.Amount

	if err := s.transfers.Create(ctx, transfer); err != nil {
		if errors.Is(err, ports.ErrValueOutOfRange) {
			return nil, apperror.ErrAmountTooLarge()
		}
		return nil, storeError("create transfer", err)
	}

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("user_id", actor.ID.String()).
		Str("kind", string(transfer.Kind)).
		Str("status", string(transfer.Status)).
		Str("amount", transfer.Amount.String()).
		Str("pair", domain.CurrencyPair(transfer.OriginCurrency, transfer.DestinationCurrency)).
		Msg("transfer created")

	if idempKey != "" {
		if respJSON, err := json.Marshal(transfer); err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to marshal transfer for idempotency cache")
		} else if err := s.idempCache.Set(ctx, idempKey, respJSON, s.idempTTL); err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
		}
	}

	s.notifyAdmins(ctx, transfer)
	publishChange(ctx, s.changes, s.log, domain.ChangeEntityTransfer, transfer.ID, "created", &transfer.UserID)

	return transfer, nil
}

func (s *TransferServiceImpl) buildTransfer(ctx context.Context, actor domain.Actor, req ports.CreateTransferRequest) (*domain.Transfer, error) {
	if !req.Kind.IsValid() {
		return nil, apperror.Validation(fmt.Sprintf("Unknown transfer kind %q", req.Kind))
	}
	for _, code := range []string{req.OriginCurrency, req.DestinationCurrency} {
		if !domain.IsSupportedCurrency(code) {
			return nil, apperror.ErrUnsupportedCurrency(code)
		}
	}

	kind := req.Kind
	if kind != domain.TransferKindCardless && req.DestinationCurrency == domain.HubCurrency {
		kind = domain.TransferKindStablecoin
	}
	if kind == domain.TransferKindStablecoin && req.DestinationCurrency != domain.HubCurrency {
		return nil, apperror.ErrInvalidDestination("USDT transfers must pay out in USDT")
	}

	now := s.now()
	t := &domain.Transfer{
		ID:                  uuid.New(),
		UserID:              actor.ID,
		Kind:                kind,
		Status:              domain.InitialStatus(kind, req.DestinationCurrency),
		Amount:              req.Amount,
		OriginCurrency:      req.OriginCurrency,
		DestinationCurrency: req.DestinationCurrency,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	// Cardless transfers get their destination when the code is issued.
	if kind == domain.TransferKindCardless {
		return t, nil
	}

	if req.SavedAccountID != nil {
		account, err := s.accounts.GetByID(ctx, *req.SavedAccountID)
		if err != nil {
			return nil, storeError("get saved account", err)
		}
		if account == nil {
			return nil, apperror.ErrNotFound("Saved account")
		}
		if account.UserID != actor.ID {
			return nil, apperror.ErrNotOwner()
		}
		if req.DestinationType != "" && req.DestinationType != account.Type {
			return nil, apperror.ErrInvalidDestination("Destination type does not match the saved account")
		}
		if kind == domain.TransferKindStablecoin {
			if account.Type != domain.AccountTypeBinance {
				return nil, apperror.ErrInvalidDestination("USDT transfers pay out to a Binance account")
			}
			if !account.CanReceiveStablecoin() {
				return nil, apperror.ErrAccountNotVerified()
			}
		}
		id := account.ID
		t.SavedAccountID = &id
		t.DestinationType = account.Type
		t.DestinationDetails = copyDetails(account.Details)
	} else {
		if kind == domain.TransferKindStablecoin || req.DestinationType == domain.AccountTypeBinance {
			return nil, apperror.ErrInvalidDestination("USDT transfers require a saved Binance account")
		}
		if err := domain.ValidateAccountDetails(req.DestinationType, req.DestinationDetails); err != nil {
			return nil, destinationError(err)
		}
		t.DestinationType = req.DestinationType
		t.DestinationDetails = copyDetails(req.DestinationDetails)
	}

	if kind != domain.TransferKindStablecoin && t.DestinationType == domain.AccountTypeBinance {
		return nil, apperror.ErrInvalidDestination("Binance accounts only receive USDT")
	}

	return t, nil
}

func (s *TransferServiceImpl) GetTransfer(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Transfer, error) {
	t, err := s.transfers.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get transfer", err)
	}
	if t == nil {
		return nil, apperror.ErrNotFound("Transfer")
	}
	if !actor.CanAccess(t.UserID) {
		return nil, apperror.ErrNotOwner()
	}
	return t, nil
}

// ListTransfers returns the caller's transfers; admins may list everyone's.
func (s *TransferServiceImpl) ListTransfers(ctx context.Context, actor domain.Actor, params ports.TransferListParams) ([]domain.Transfer, int64, error) {
	if !actor.IsAdmin() {
		id := actor.ID
		params.UserID = &id
	}
	params.Page, params.PageSize = normalizePage(params.Page, params.PageSize)

	list, total, err := s.transfers.List(ctx, params)
	if err != nil {
		return nil, 0, storeError("list transfers", err)
	}
	return list, total, nil
}

// ApplyTransition runs an admin event through the state machine and commits
// it only if the stored status is still the one the guard was evaluated on.
func (s *TransferServiceImpl) ApplyTransition(ctx context.Context, actor domain.Actor, id uuid.UUID, event domain.TransferEvent) (*domain.Transfer, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !event.IsValid() {
		return nil, apperror.Validation(fmt.Sprintf("Unknown transfer event %q", event))
	}

	t, err := s.transfers.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get transfer", err)
	}
	if t == nil {
		return nil, apperror.ErrNotFound("Transfer")
	}

	to, err := domain.NextStatus(t.Status, event)
	if err != nil {
		return nil, transitionError(err)
	}

	if t.Kind == domain.TransferKindStablecoin && event != domain.TransferEventReject {
		if err := s.checkStablecoinGate(ctx, t); err != nil {
			return nil, err
		}
	}

	from := t.Status
	ok, err := s.transfers.UpdateStatusIf(ctx, t.ID, from, to)
	if err != nil {
		return nil, storeError("update transfer status", err)
	}
	if !ok {
		return nil, apperror.ErrStaleStatus()
	}
	t.Status = to
	t.UpdatedAt = s.now()

	s.log.Info().
		Str("transfer_id", t.ID.String()).
		Str("from", string(from)).
		Str("to", string(to)).
		Str("event", string(event)).
		Str("actor_id", actor.ID.String()).
		Msg("transfer transitioned")

	title, content := transitionMessage(t, event)
	s.sideEffects(ctx, t, title, content)

	return t, nil
}

// checkStablecoinGate re-evaluates verification of the referenced payout
// account. Revoked verification pauses the transfer.
func (s *TransferServiceImpl) checkStablecoinGate(ctx context.Context, t *domain.Transfer) error {
	if t.SavedAccountID == nil {
		return apperror.ErrAccountNotVerified()
	}
	account, err := s.accounts.GetByID(ctx, *t.SavedAccountID)
	if err != nil {
		return storeError("get saved account", err)
	}
	if !account.CanReceiveStablecoin() {
		return apperror.ErrAccountNotVerified()
	}
	return nil
}

// IssueCardlessCode creates the withdrawal for a pending_cardless transfer
// and completes it in one atomic store operation.
func (s *TransferServiceImpl) IssueCardlessCode(ctx context.Context, actor domain.Actor, id uuid.UUID, code string) (*domain.CardlessWithdrawal, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !domain.ValidateCardlessCode(code) {
		return nil, apperror.ErrInvalidCardlessCode()
	}

	t, err := s.transfers.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get transfer", err)
	}
	if t == nil {
		return nil, apperror.ErrNotFound("Transfer")
	}

	// A code that was already issued has also completed the transfer, so
	// the existing withdrawal is checked before the status.
	if err := s.ensureNoWithdrawal(ctx, t.ID); err != nil {
		return nil, err
	}

	to, err := domain.CardlessCodeTransition(t.Status)
	if err != nil {
		return nil, transitionError(err)
	}

	w := domain.NewCardlessWithdrawal(t.ID, code, s.now())
	ok, err := s.withdrawals.CreateForTransfer(ctx, w)
	if err != nil {
		if errors.Is(err, ports.ErrUniqueViolation) {
			return nil, apperror.ErrWithdrawalExists()
		}
		return nil, storeError("create withdrawal", err)
	}
	if !ok {
		// Lost a race: either another admin issued a code or the status moved.
		if err := s.ensureNoWithdrawal(ctx, t.ID); err != nil {
			return nil, err
		}
		return nil, apperror.ErrStaleStatus()
	}

	from := t.Status
	t.Status = to
	t.UpdatedAt = w.CreatedAt

	s.log.Info().
		Str("transfer_id", t.ID.String()).
		Str("from", string(from)).
		Str("to", string(to)).
		Str("withdrawal_id", w.ID.String()).
		Str("actor_id", actor.ID.String()).
		Msg("cardless code issued")

	s.sideEffects(ctx, t,
		"Withdrawal code ready",
		fmt.Sprintf("Your cardless withdrawal code is ready. It expires on %s.", w.ExpiresAt.Format(time.RFC3339)))

	return w, nil
}

func (s *TransferServiceImpl) ensureNoWithdrawal(ctx context.Context, transferID uuid.UUID) error {
	existing, err := s.withdrawals.GetByTransferID(ctx, transferID)
	if err != nil {
		return storeError("get withdrawal", err)
	}
	if existing != nil {
		return apperror.ErrWithdrawalExists()
	}
	return nil
}

// GetCardlessWithdrawal is available once the transfer is completed. The
// returned status is derived from the expiry at read time.
func (s *TransferServiceImpl) GetCardlessWithdrawal(ctx context.Context, actor domain.Actor, id uuid.UUID) (*ports.CardlessWithdrawalView, error) {
	t, err := s.GetTransfer(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if t.Kind != domain.TransferKindCardless {
		return nil, apperror.ErrNotFound("Withdrawal")
	}
	if t.Status != domain.TransferStatusCompleted {
		return nil, apperror.ErrWithdrawalNotReady()
	}

	w, err := s.withdrawals.GetByTransferID(ctx, t.ID)
	if err != nil {
		return nil, storeError("get withdrawal", err)
	}
	if w == nil {
		return nil, apperror.ErrNotFound("Withdrawal")
	}

	now := s.now()
	view := &ports.CardlessWithdrawalView{CardlessWithdrawal: *w, Active: w.IsActive(now)}
	view.Status = w.EffectiveStatus(now)
	return view, nil
}

func (s *TransferServiceImpl) ListMessages(ctx context.Context, actor domain.Actor, id uuid.UUID) ([]domain.TransferMessage, error) {
	if _, err := s.GetTransfer(ctx, actor, id); err != nil {
		return nil, err
	}
	msgs, err := s.messages.ListByTransfer(ctx, id)
	if err != nil {
		return nil, storeError("list messages", err)
	}
	return msgs, nil
}

func (s *TransferServiceImpl) GetStats(ctx context.Context, actor domain.Actor) (*ports.TransferStats, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	stats, err := s.transfers.GetStats(ctx)
	if err != nil {
		return nil, storeError("get transfer stats", err)
	}
	return stats, nil
}

// sideEffects notifies the owner, posts a system message and publishes the
// change. None of them can undo the committed transition.
func (s *TransferServiceImpl) sideEffects(ctx context.Context, t *domain.Transfer, title, content string) {
	if err := s.notifier.Notify(ctx, t.UserID, title, content); err != nil {
		s.log.Warn().Err(err).
			Str("transfer_id", t.ID.String()).
			Str("user_id", t.UserID.String()).
			Msg("failed to notify transfer owner")
	}
	if err := s.notifier.PostSystemMessage(ctx, t.ID, content); err != nil {
		s.log.Warn().Err(err).
			Str("transfer_id", t.ID.String()).
			Msg("failed to post system message")
	}
	publishChange(ctx, s.changes, s.log, domain.ChangeEntityTransfer, t.ID, string(t.Status), &t.UserID)
}

func (s *TransferServiceImpl) notifyAdmins(ctx context.Context, t *domain.Transfer) {
	admins, err := s.profiles.ListIDsByRole(ctx, domain.RoleAdmin)
	if err != nil {
		s.log.Warn().Err(err).Str("transfer_id", t.ID.String()).Msg("failed to load admins for notification")
		return
	}
	content := fmt.Sprintf("New %s transfer of %s %s to %s",
		t.Kind, t.Amount.String(), t.OriginCurrency, t.DestinationCurrency)
	for _, adminID := range admins {
		if err := s.notifier.Notify(ctx, adminID, "New transfer", content); err != nil {
			s.log.Warn().Err(err).
				Str("transfer_id", t.ID.String()).
				Str("user_id", adminID.String()).
				Msg("failed to notify admin")
		}
	}
}

func (s *TransferServiceImpl) unmarshalCachedTransfer(data []byte) (*domain.Transfer, error) {
	var t domain.Transfer
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached transfer: %w", err))
	}
	return &t, nil
}

func transitionError(err error) error {
	var te *domain.TransitionError
	if errors.As(err, &te) {
		return apperror.ErrInvalidTransition(te.Error())
	}
	return apperror.InternalError(err)
}

func transitionMessage(t *domain.Transfer, event domain.TransferEvent) (string, string) {
	switch event {
	case domain.TransferEventApprove:
		return "Transfer approved", "Your USDT transfer was approved. Proceed with the deposit."
	case domain.TransferEventComplete:
		return "Transfer completed", fmt.Sprintf("Your transfer of %s %s was completed.",
			t.DestinationAmount.String(), t.DestinationCurrency)
	default:
		return "Transfer rejected", "Your transfer was rejected. Contact support for details."
	}
}

var _ ports.TransferService = (*TransferServiceImpl)(nil)
