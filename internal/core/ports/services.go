package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"money-transfer-api/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokenService validates identity provider tokens.
type TokenService interface {
	Generate(userID uuid.UUID, role domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Role   domain.Role
}

// IdempotencyCache is the Redis-layer cache of completed transfer submissions.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ClaimStore marks an idempotency key as in flight.
type ClaimStore interface {
	// Claim returns true if the key was free and is now held by the caller.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// ChangePublisher announces committed mutations. Best-effort.
type ChangePublisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent) error
}

// ChangeSubscriber streams change events until ctx is done.
type ChangeSubscriber interface {
	Subscribe(ctx context.Context) (<-chan domain.ChangeEvent, error)
}

// Notifier is the notification dispatcher the lifecycle calls into.
// Failures never roll back the mutation that triggered them.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title, content string) error
	PostSystemMessage(ctx context.Context, transferID uuid.UUID, content string) error
}

// --- Service Ports (Business Logic) ---

// RateService covers rate resolution, conversion and rate administration.
type RateService interface {
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
	ComputeConversion(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error)
	CreateRate(ctx context.Context, actor domain.Actor, req CreateRateRequest) (*domain.ExchangeRate, error)
	EditRate(ctx context.Context, actor domain.Actor, req EditRateRequest) (*domain.ExchangeRate, error)
}

type CreateRateRequest struct {
	CurrencyPair string
	ProviderRate decimal.Decimal
	ProfitMargin decimal.Decimal
}

// EditRateRequest is a tagged edit of one field of a rate row.
type EditRateRequest struct {
	CurrencyPair string
	Field        domain.RateField
	Value        decimal.Decimal
}

// TransferService is the transfer lifecycle.
type TransferService interface {
	CreateTransfer(ctx context.Context, actor domain.Actor, req CreateTransferRequest) (*domain.Transfer, error)
	GetTransfer(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Transfer, error)
	ListTransfers(ctx context.Context, actor domain.Actor, params TransferListParams) ([]domain.Transfer, int64, error)
	ApplyTransition(ctx context.Context, actor domain.Actor, id uuid.UUID, event domain.TransferEvent) (*domain.Transfer, error)
	IssueCardlessCode(ctx context.Context, actor domain.Actor, id uuid.UUID, code string) (*domain.CardlessWithdrawal, error)
	GetCardlessWithdrawal(ctx context.Context, actor domain.Actor, id uuid.UUID) (*CardlessWithdrawalView, error)
	ListMessages(ctx context.Context, actor domain.Actor, id uuid.UUID) ([]domain.TransferMessage, error)
	GetStats(ctx context.Context, actor domain.Actor) (*TransferStats, error)
}

// CreateTransferRequest holds validated input for a new transfer.
// The destination is either inline details or a saved account reference.
type CreateTransferRequest struct {
	Kind                domain.TransferKind
	Amount              decimal.Decimal
	OriginCurrency      string
	DestinationCurrency string
	DestinationType     domain.AccountType
	DestinationDetails  map[string]string
	SavedAccountID      *uuid.UUID
	IdempotencyKey      string
}

// CardlessWithdrawalView is a withdrawal with its status derived at read time.
type CardlessWithdrawalView struct {
	domain.CardlessWithdrawal
	Active bool `json:"active"`
}

// AccountService covers saved accounts and the verification gate.
type AccountService interface {
	CreateSavedAccount(ctx context.Context, actor domain.Actor, req CreateSavedAccountRequest) (*domain.SavedAccount, error)
	ListSavedAccounts(ctx context.Context, actor domain.Actor, userID uuid.UUID) ([]domain.SavedAccount, error)
	VerifyAccount(ctx context.Context, actor domain.Actor, accountID uuid.UUID, verified bool) (*domain.SavedAccount, error)
}

type CreateSavedAccountRequest struct {
	Type    domain.AccountType
	Details map[string]string
}

// AdminAccountService covers receiving account rotation.
type AdminAccountService interface {
	CreateAdminAccount(ctx context.Context, actor domain.Actor, req CreateAdminAccountRequest) (*domain.AdminAccount, error)
	ListAdminAccounts(ctx context.Context, actor domain.Actor, currency string) ([]domain.AdminAccount, error)
	SetAdminAccountActive(ctx context.Context, actor domain.Actor, id uuid.UUID, active bool) (*domain.AdminAccount, error)
	GetDepositAccount(ctx context.Context, currency string) (*domain.AdminAccount, error)
}

type CreateAdminAccountRequest struct {
	Currency    string
	AccountType domain.AdminAccountType
	Details     map[string]string
}

// NotificationService is the read side of notifications.
type NotificationService interface {
	ListNotifications(ctx context.Context, actor domain.Actor, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

// AuditService writes audit entries asynchronously.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
