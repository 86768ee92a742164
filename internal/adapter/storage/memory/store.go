// Package memory is an in-process store with the same conditional-write
// semantics as the postgres adapter. One mutex guards every table so that
// multi-row operations are atomic.
package memory

import (
	"sync"

	"money-transfer-api/internal/core/domain"

	"github.com/google/uuid"
)

// Store holds all tables. Use the accessor methods to obtain repositories.
type Store struct {
	mu sync.RWMutex

	transfers     map[uuid.UUID]*domain.Transfer
	withdrawals   map[uuid.UUID]*domain.CardlessWithdrawal // by transfer id
	savedAccounts map[uuid.UUID]*domain.SavedAccount
	adminAccounts map[uuid.UUID]*domain.AdminAccount
	rates         map[string]*domain.ExchangeRate // by currency pair
	notifications map[uuid.UUID]*domain.Notification
	messages      []domain.TransferMessage
	profiles      map[uuid.UUID]domain.Role
	audit         []domain.AuditLog
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		transfers:     make(map[uuid.UUID]*domain.Transfer),
		withdrawals:   make(map[uuid.UUID]*domain.CardlessWithdrawal),
		savedAccounts: make(map[uuid.UUID]*domain.SavedAccount),
		adminAccounts: make(map[uuid.UUID]*domain.AdminAccount),
		rates:         make(map[string]*domain.ExchangeRate),
		notifications: make(map[uuid.UUID]*domain.Notification),
		profiles:      make(map[uuid.UUID]domain.Role),
	}
}

// AddProfile registers a user profile. Profiles are owned by the identity
// provider; this is how the memory driver learns about them.
func (s *Store) AddProfile(id uuid.UUID, role domain.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[id] = role
}

// AuditEntries returns a copy of the audit trail.
func (s *Store) AuditEntries() []domain.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.AuditLog(nil), s.audit...)
}

func (s *Store) Transfers() *TransferRepo         { return &TransferRepo{s: s} }
func (s *Store) Withdrawals() *WithdrawalRepo     { return &WithdrawalRepo{s: s} }
func (s *Store) SavedAccounts() *SavedAccountRepo { return &SavedAccountRepo{s: s} }
func (s *Store) AdminAccounts() *AdminAccountRepo { return &AdminAccountRepo{s: s} }
func (s *Store) Rates() *RateRepo                 { return &RateRepo{s: s} }
func (s *Store) Notifications() *NotificationRepo { return &NotificationRepo{s: s} }
func (s *Store) Messages() *MessageRepo           { return &MessageRepo{s: s} }
func (s *Store) Profiles() *ProfileRepo           { return &ProfileRepo{s: s} }
func (s *Store) Audit() *AuditRepo                { return &AuditRepo{s: s} }

func copyMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneTransfer(t *domain.Transfer) *domain.Transfer {
	c := *t
	c.DestinationDetails = copyMap(t.DestinationDetails)
	if t.SavedAccountID != nil {
		id := *t.SavedAccountID
		c.SavedAccountID = &id
	}
	return &c
}

func cloneSavedAccount(a *domain.SavedAccount) *domain.SavedAccount {
	c := *a
	c.Details = copyMap(a.Details)
	if a.VerifiedAt != nil {
		at := *a.VerifiedAt
		c.VerifiedAt = &at
	}
	if a.VerifiedBy != nil {
		by := *a.VerifiedBy
		c.VerifiedBy = &by
	}
	return &c
}

func cloneAdminAccount(a *domain.AdminAccount) *domain.AdminAccount {
	c := *a
	c.Details = copyMap(a.Details)
	return &c
}
