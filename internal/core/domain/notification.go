package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message to one user.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// TransferMessage is one entry of a transfer's chat thread.
// System messages have no author.
type TransferMessage struct {
	ID         uuid.UUID  `json:"id"`
	TransferID uuid.UUID  `json:"transfer_id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	Content    string     `json:"content"`
	IsSystem   bool       `json:"is_system"`
	CreatedAt  time.Time  `json:"created_at"`
}
