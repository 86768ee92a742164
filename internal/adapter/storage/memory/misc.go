package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"

	"github.com/google/uuid"
)

// RateRepo implements ports.ExchangeRateRepository.
type RateRepo struct{ s *Store }

func (r *RateRepo) List(ctx context.Context) ([]domain.ExchangeRate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.ExchangeRate, 0, len(r.s.rates))
	for _, rate := range r.s.rates {
		out = append(out, *rate)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyPair < out[j].CurrencyPair })
	return out, nil
}

func (r *RateRepo) GetByPair(ctx context.Context, pair string) (*domain.ExchangeRate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rate, ok := r.s.rates[pair]
	if !ok {
		return nil, nil
	}
	c := *rate
	return &c, nil
}

func (r *RateRepo) Create(ctx context.Context, rate *domain.ExchangeRate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.rates[rate.CurrencyPair]; ok {
		return fmt.Errorf("insert exchange rate: %w", ports.ErrUniqueViolation)
	}
	c := *rate
	r.s.rates[rate.CurrencyPair] = &c
	return nil
}

func (r *RateRepo) UpdateIf(ctx context.Context, rate *domain.ExchangeRate, prevUpdatedAt time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.rates[rate.CurrencyPair]
	if !ok || !stored.UpdatedAt.Equal(prevUpdatedAt) {
		return false, nil
	}
	stored.ProviderRate = rate.ProviderRate
	stored.ProfitMargin = rate.ProfitMargin
	stored.OurRate = rate.OurRate
	stored.UpdatedAt = rate.UpdatedAt
	return true, nil
}

// NotificationRepo implements ports.NotificationRepository.
type NotificationRepo struct{ s *Store }

func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *n
	r.s.notifications[n.ID] = &c
	return nil
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.Notification
	for _, n := range r.s.notifications {
		if n.UserID != userID || (unreadOnly && n.Read) {
			continue
		}
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok || n.UserID != userID {
		return false, nil
	}
	n.Read = true
	return true, nil
}

// MessageRepo implements ports.MessageRepository.
type MessageRepo struct{ s *Store }

func (r *MessageRepo) Create(ctx context.Context, m *domain.TransferMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.messages = append(r.s.messages, *m)
	return nil
}

func (r *MessageRepo) ListByTransfer(ctx context.Context, transferID uuid.UUID) ([]domain.TransferMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.TransferMessage
	for _, m := range r.s.messages {
		if m.TransferID == transferID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// ProfileRepo implements ports.ProfileRepository.
type ProfileRepo struct{ s *Store }

func (r *ProfileRepo) ListIDsByRole(ctx context.Context, role domain.Role) ([]uuid.UUID, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var ids []uuid.UUID
	for id, rl := range r.s.profiles {
		if rl == role {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct{ s *Store }

func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.audit = append(r.s.audit, *log)
	return nil
}

var (
	_ ports.TransferRepository           = (*TransferRepo)(nil)
	_ ports.CardlessWithdrawalRepository = (*WithdrawalRepo)(nil)
	_ ports.SavedAccountRepository       = (*SavedAccountRepo)(nil)
	_ ports.AdminAccountRepository       = (*AdminAccountRepo)(nil)
	_ ports.ExchangeRateRepository       = (*RateRepo)(nil)
	_ ports.NotificationRepository       = (*NotificationRepo)(nil)
	_ ports.MessageRepository            = (*MessageRepo)(nil)
	_ ports.ProfileRepository            = (*ProfileRepo)(nil)
	_ ports.AuditRepository              = (*AuditRepo)(nil)
)
