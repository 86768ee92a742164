package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChangeEntity names a record family on the change feed.
type ChangeEntity string

const (
	ChangeEntityTransfer     ChangeEntity = "transfer"
	ChangeEntitySavedAccount ChangeEntity = "saved_account"
	ChangeEntityExchangeRate ChangeEntity = "exchange_rate"
	ChangeEntityAdminAccount ChangeEntity = "admin_account"
	ChangeEntityNotification ChangeEntity = "notification"
	ChangeEntityMessage      ChangeEntity = "message"
)

// ChangeEvent is a hint that a record changed. Readers must re-fetch.
type ChangeEvent struct {
	Entity ChangeEntity `json:"entity"`
	ID     uuid.UUID    `json:"id"`
	Action string       `json:"action"`
	UserID *uuid.UUID   `json:"user_id,omitempty"`
	At     time.Time    `json:"at"`
}

// Visible reports whether a subscriber should receive the event. Rate and
// receiving account changes are public; other ownerless events are admin only.
func (e ChangeEvent) Visible(actor Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	if e.UserID == nil {
		return e.Entity == ChangeEntityExchangeRate || e.Entity == ChangeEntityAdminAccount
	}
	return *e.UserID == actor.ID
}
