package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminAccountType is the kind of receiving account published to users.
type AdminAccountType string

const (
	AdminAccountTypeBank    AdminAccountType = "bank"
	AdminAccountTypeBinance AdminAccountType = "binance"
)

func (t AdminAccountType) IsValid() bool {
	return t == AdminAccountTypeBank || t == AdminAccountTypeBinance
}

// AdminAccount is a platform receiving account users deposit into.
// At most one account per currency is active.
type AdminAccount struct {
	ID          uuid.UUID         `json:"id"`
	Currency    string            `json:"currency"`
	AccountType AdminAccountType  `json:"account_type"`
	Details     map[string]string `json:"account_details"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
