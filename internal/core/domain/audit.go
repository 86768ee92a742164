package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionTransferCreate     AuditAction = "TRANSFER_CREATE"
	AuditActionTransferTransition AuditAction = "TRANSFER_TRANSITION"
	AuditActionCardlessCode       AuditAction = "CARDLESS_CODE_ISSUE"
	AuditActionAccountVerify      AuditAction = "ACCOUNT_VERIFY"
	AuditActionRateCreate         AuditAction = "RATE_CREATE"
	AuditActionRateEdit           AuditAction = "RATE_EDIT"
	AuditActionAdminAccountCreate AuditAction = "ADMIN_ACCOUNT_CREATE"
	AuditActionAdminAccountStatus AuditAction = "ADMIN_ACCOUNT_STATUS"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *uuid.UUID  `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
