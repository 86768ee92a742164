package domain

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountType is the kind of payout destination.
type AccountType string

const (
	AccountTypeCLABE   AccountType = "clabe"
	AccountTypeCard    AccountType = "card"
	AccountTypeBinance AccountType = "binance"
)

func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeCLABE, AccountTypeCard, AccountTypeBinance:
		return true
	}
	return false
}

// Detail keys used in destination and account detail maps.
const (
	DetailCLABE        = "clabe"
	DetailCardNumber   = "card_number"
	DetailCardHolder   = "card_holder"
	DetailBinanceID    = "binance_id"
	DetailBinanceEmail = "binance_email"
	DetailBankName     = "bank_name"
	DetailAccountOwner = "account_holder"
)

var (
	ErrInvalidCLABE           = errors.New("clabe must be exactly 18 digits")
	ErrInvalidCard            = errors.New("card number must be exactly 16 digits with a card holder")
	ErrInvalidBinance         = errors.New("binance destination needs a binance id or a valid email")
	ErrUnsupportedAccountType = errors.New("unsupported account type")
)

var (
	clabePattern = regexp.MustCompile(`^\d{18}$`)
	cardPattern  = regexp.MustCompile(`^\d{16}$`)
)

// SavedAccount is a payout account owned by a user.
type SavedAccount struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	Type        AccountType       `json:"type"`
	Details     map[string]string `json:"details"`
	USDTEnabled bool              `json:"usdt_enabled"`
	VerifiedAt  *time.Time        `json:"verified_at,omitempty"`
	VerifiedBy  *uuid.UUID        `json:"verified_by,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// CanReceiveStablecoin is the only condition under which the account may
// receive stablecoin payouts.
func (a *SavedAccount) CanReceiveStablecoin() bool {
	return a != nil && a.USDTEnabled && a.VerifiedAt != nil
}

// ValidateAccountDetails checks the type-specific fields of a destination.
func ValidateAccountDetails(t AccountType, details map[string]string) error {
	switch t {
	case AccountTypeCLABE:
		if !clabePattern.MatchString(details[DetailCLABE]) {
			return ErrInvalidCLABE
		}
	case AccountTypeCard:
		if !cardPattern.MatchString(details[DetailCardNumber]) ||
			strings.TrimSpace(details[DetailCardHolder]) == "" {
			return ErrInvalidCard
		}
	case AccountTypeBinance:
		id := strings.TrimSpace(details[DetailBinanceID])
		email := strings.TrimSpace(details[DetailBinanceEmail])
		if id == "" && email == "" {
			return ErrInvalidBinance
		}
		if email != "" {
			if _, err := mail.ParseAddress(email); err != nil {
				return ErrInvalidBinance
			}
		}
	default:
		return ErrUnsupportedAccountType
	}
	return nil
}
