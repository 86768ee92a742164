package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferKind is the fulfillment mode chosen by the user.
type TransferKind string

const (
	TransferKindBankOrCard TransferKind = "bank_or_card"
	TransferKindCardless   TransferKind = "cardless"
	TransferKindStablecoin TransferKind = "stablecoin"
)

func (k TransferKind) IsValid() bool {
	switch k {
	case TransferKindBankOrCard, TransferKindCardless, TransferKindStablecoin:
		return true
	}
	return false
}

// TransferStatus represents the lifecycle state of a transfer.
type TransferStatus string

const (
	TransferStatusPending            TransferStatus = "pending"
	TransferStatusPendingUSDApproval TransferStatus = "pending_usd_approval"
	TransferStatusPendingCardless    TransferStatus = "pending_cardless"
	TransferStatusCompleted          TransferStatus = "completed"
	TransferStatusFailed             TransferStatus = "failed"
)

func (s TransferStatus) IsValid() bool {
	switch s {
	case TransferStatusPending, TransferStatusPendingUSDApproval, TransferStatusPendingCardless,
		TransferStatusCompleted, TransferStatusFailed:
		return true
	}
	return false
}

// IsTerminal returns true for completed and failed.
func (s TransferStatus) IsTerminal() bool {
	return s == TransferStatusCompleted || s == TransferStatusFailed
}

// AllTransferStatuses lists every status in lifecycle order.
func AllTransferStatuses() []TransferStatus {
	return []TransferStatus{
		TransferStatusPendingUSDApproval,
		TransferStatusPendingCardless,
		TransferStatusPending,
		TransferStatusCompleted,
		TransferStatusFailed,
	}
}

// Transfer is a user's request to move money between currencies.
type Transfer struct {
	ID                  uuid.UUID         `json:"id"`
	UserID              uuid.UUID         `json:"user_id"`
	Kind                TransferKind      `json:"kind"`
	Status              TransferStatus    `json:"status"`
	Amount              decimal.Decimal   `json:"amount"`
	OriginCurrency      string            `json:"origin_currency"`
	DestinationCurrency string            `json:"destination_currency"`
	ExchangeRate        decimal.Decimal   `json:"exchange_rate"`
	DestinationAmount   decimal.Decimal   `json:"destination_amount"`
	DestinationType     AccountType       `json:"destination_type,omitempty"`
	DestinationDetails  map[string]string `json:"destination_details,omitempty"`
	SavedAccountID      *uuid.UUID        `json:"saved_account_id,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// IsTerminal returns true if the transfer is in a final state.
func (t *Transfer) IsTerminal() bool {
	return t.Status.IsTerminal()
}

// IsStablecoinDestined reports whether the payout is in the hub currency.
func (t *Transfer) IsStablecoinDestined() bool {
	return t.DestinationCurrency == HubCurrency
}

// InitialStatus picks the creation status. Evaluated once per transfer.
func InitialStatus(kind TransferKind, destinationCurrency string) TransferStatus {
	switch {
	case kind == TransferKindCardless:
		return TransferStatusPendingCardless
	case destinationCurrency == HubCurrency:
		return TransferStatusPendingUSDApproval
	default:
		return TransferStatusPending
	}
}

// maxAmount bounds amounts and rates: the store keeps 18 integer digits.
var maxAmount = decimal.New(1, 18)

// AmountInRange reports whether d fits the stored precision.
func AmountInRange(d decimal.Decimal) bool {
	return d.Abs().LessThan(maxAmount)
}

// TransferEvent is an administrator action on a transfer.
type TransferEvent string

const (
	TransferEventApprove  TransferEvent = "approve"
	TransferEventComplete TransferEvent = "complete"
	TransferEventReject   TransferEvent = "reject"

	// TransferEventIssueCode is not accepted by NextStatus; it names the
	// cardless code issue in TransitionError.
	TransferEventIssueCode TransferEvent = "issue_code"
)

func (e TransferEvent) IsValid() bool {
	switch e {
	case TransferEventApprove, TransferEventComplete, TransferEventReject:
		return true
	}
	return false
}

// TransitionError reports an event that is not allowed from a status.
type TransitionError struct {
	From   TransferStatus
	Event  TransferEvent
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s is not allowed for a transfer in status %s: %s", e.Event, e.From, e.Reason)
}

// NextStatus is the admin transition table. Issuing a withdrawal code goes
// through CardlessCodeTransition instead.
func NextStatus(from TransferStatus, event TransferEvent) (TransferStatus, error) {
	if from.IsTerminal() {
		return "", &TransitionError{From: from, Event: event, Reason: "the transfer is already final"}
	}

	switch event {
	case TransferEventReject:
		return TransferStatusFailed, nil
	case TransferEventApprove:
		if from == TransferStatusPendingUSDApproval {
			return TransferStatusPending, nil
		}
		return "", &TransitionError{From: from, Event: event, Reason: "only transfers awaiting USDT approval can be approved"}
	case TransferEventComplete:
		switch from {
		case TransferStatusPending:
			return TransferStatusCompleted, nil
		case TransferStatusPendingUSDApproval:
			return "", &TransitionError{From: from, Event: event, Reason: "approve the USDT transfer before completing it"}
		case TransferStatusPendingCardless:
			return "", &TransitionError{From: from, Event: event, Reason: "cardless transfers are completed by issuing a withdrawal code"}
		}
	}
	return "", &TransitionError{From: from, Event: event, Reason: "unknown event"}
}

// CardlessCodeTransition returns the status a transfer moves to when a
// withdrawal code is issued.
func CardlessCodeTransition(from TransferStatus) (TransferStatus, error) {
	if from != TransferStatusPendingCardless {
		return "", &TransitionError{From: from, Event: TransferEventIssueCode, Reason: "the transfer is not awaiting a withdrawal code"}
	}
	return TransferStatusCompleted, nil
}
