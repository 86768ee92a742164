package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	CardlessCodeLength = 8
	CardlessCodeTTL    = 48 * time.Hour
)

// WithdrawalStatus is the derived state of a cardless withdrawal.
type WithdrawalStatus string

const (
	WithdrawalStatusActive  WithdrawalStatus = "active"
	WithdrawalStatusExpired WithdrawalStatus = "expired"
)

// CardlessWithdrawal holds the one-time cash pickup code of a transfer.
type CardlessWithdrawal struct {
	ID         uuid.UUID        `json:"id"`
	TransferID uuid.UUID        `json:"transfer_id"`
	Code       string           `json:"code"`
	Status     WithdrawalStatus `json:"status"`
	ExpiresAt  time.Time        `json:"expires_at"`
	CreatedAt  time.Time        `json:"created_at"`
}

// ValidateCardlessCode reports whether code is exactly 8 ASCII digits.
func ValidateCardlessCode(code string) bool {
	if len(code) != CardlessCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

func NewCardlessWithdrawal(transferID uuid.UUID, code string, now time.Time) *CardlessWithdrawal {
	return &CardlessWithdrawal{
		ID:         uuid.New(),
		TransferID: transferID,
		Code:       code,
		Status:     WithdrawalStatusActive,
		ExpiresAt:  now.Add(CardlessCodeTTL),
		CreatedAt:  now,
	}
}

// IsActive is derived from ExpiresAt. A stored active flag past expiry
// does not count.
func (w *CardlessWithdrawal) IsActive(now time.Time) bool {
	return w.Status != WithdrawalStatusExpired && now.Before(w.ExpiresAt)
}

// EffectiveStatus is the status to show a reader at now.
func (w *CardlessWithdrawal) EffectiveStatus(now time.Time) WithdrawalStatus {
	if w.IsActive(now) {
		return WithdrawalStatusActive
	}
	return WithdrawalStatusExpired
}
