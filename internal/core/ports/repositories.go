package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"money-transfer-api/internal/core/domain"

	"github.com/google/uuid"
)

// ErrUniqueViolation is returned by repositories when the store rejects a
// write that would break a uniqueness constraint.
var ErrUniqueViolation = errors.New("unique constraint violation")

// ErrValueOutOfRange is returned when a number does not fit its column.
var ErrValueOutOfRange = errors.New("numeric value out of range")

// TransferRepository defines persistence operations for transfers.
type TransferRepository interface {
	Create(ctx context.Context, transfer *domain.Transfer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error)
	List(ctx context.Context, params TransferListParams) ([]domain.Transfer, int64, error)
	// UpdateStatusIf moves a transfer from one status to another only if the
	// stored status still equals from. False means the guard failed.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to domain.TransferStatus) (bool, error)
	GetStats(ctx context.Context) (*TransferStats, error)
}

// TransferListParams holds filter + pagination for listing transfers.
type TransferListParams struct {
	UserID   *uuid.UUID
	Status   *domain.TransferStatus
	Page     int
	PageSize int
}

// TransferStats holds per-status counts for the admin dashboard.
type TransferStats struct {
	Total    int64                           `json:"total"`
	ByStatus map[domain.TransferStatus]int64 `json:"by_status"`
}

// CardlessWithdrawalRepository persists withdrawal codes.
type CardlessWithdrawalRepository interface {
	// CreateForTransfer completes a pending_cardless transfer and inserts the
	// withdrawal as one atomic unit. False means the transfer was no longer
	// pending_cardless. ErrUniqueViolation means a withdrawal already exists.
	CreateForTransfer(ctx context.Context, withdrawal *domain.CardlessWithdrawal) (bool, error)
	GetByTransferID(ctx context.Context, transferID uuid.UUID) (*domain.CardlessWithdrawal, error)
}

// SavedAccountRepository defines persistence for user payout accounts.
type SavedAccountRepository interface {
	Create(ctx context.Context, account *domain.SavedAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedAccount, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedAccount, error)
	// SetVerification writes the verification fields and applies the optional
	// promotion in the same atomic unit. It returns the updated account (nil
	// when not found) and the IDs of promoted transfers.
	SetVerification(ctx context.Context, update AccountVerificationUpdate) (*domain.SavedAccount, []uuid.UUID, error)
}

// AccountVerificationUpdate describes a verify or unverify write.
type AccountVerificationUpdate struct {
	AccountID   uuid.UUID
	USDTEnabled bool
	VerifiedAt  *time.Time
	VerifiedBy  *uuid.UUID
	UpdatedAt   time.Time
	Promote     *StatusPromotion
}

// StatusPromotion bulk-moves the account owner's transfers that are in From
// and pay out in DestinationCurrency.
type StatusPromotion struct {
	From                domain.TransferStatus
	To                  domain.TransferStatus
	DestinationCurrency string
}

// AdminAccountRepository persists platform receiving accounts.
// Create and SetActive return ErrUniqueViolation when another account for the
// same currency is already active.
type AdminAccountRepository interface {
	Create(ctx context.Context, account *domain.AdminAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminAccount, error)
	List(ctx context.Context, currency string) ([]domain.AdminAccount, error)
	GetActiveByCurrency(ctx context.Context, currency string) (*domain.AdminAccount, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool, updatedAt time.Time) (*domain.AdminAccount, error)
}

// ExchangeRateRepository persists rate rows.
type ExchangeRateRepository interface {
	List(ctx context.Context) ([]domain.ExchangeRate, error)
	GetByPair(ctx context.Context, pair string) (*domain.ExchangeRate, error)
	Create(ctx context.Context, rate *domain.ExchangeRate) error
	// UpdateIf writes the row only if its stored updated_at still equals
	// prevUpdatedAt.
	UpdateIf(ctx context.Context, rate *domain.ExchangeRate, prevUpdatedAt time.Time) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message *domain.TransferMessage) error
	ListByTransfer(ctx context.Context, transferID uuid.UUID) ([]domain.TransferMessage, error)
}

// ProfileRepository reads user profiles maintained by the identity provider.
type ProfileRepository interface {
	ListIDsByRole(ctx context.Context, role domain.Role) ([]uuid.UUID, error)
}

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
