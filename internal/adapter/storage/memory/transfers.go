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

// TransferRepo implements ports.TransferRepository.
type TransferRepo struct{ s *Store }

func (r *TransferRepo) Create(ctx context.Context, t *domain.Transfer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.transfers[t.ID]; ok {
		return fmt.Errorf("insert transfer: %w", ports.ErrUniqueViolation)
	}
	r.s.transfers[t.ID] = cloneTransfer(t)
	return nil
}

func (r *TransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.transfers[id]
	if !ok {
		return nil, nil
	}
	return cloneTransfer(t), nil
}

func (r *TransferRepo) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to domain.TransferStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.transfers[id]
	if !ok || t.Status != from {
		return false, nil
	}
	t.Status = to
	t.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *TransferRepo) List(ctx context.Context, params ports.TransferListParams) ([]domain.Transfer, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []*domain.Transfer
	for _, t := range r.s.transfers {
		if params.UserID != nil && t.UserID != *params.UserID {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		matched = append(matched, t)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start < 0 || start >= len(matched) {
		return nil, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	out := make([]domain.Transfer, 0, end-start)
	for _, t := range matched[start:end] {
		out = append(out, *cloneTransfer(t))
	}
	return out, total, nil
}

func (r *TransferRepo) GetStats(ctx context.Context) (*ports.TransferStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stats := &ports.TransferStats{ByStatus: make(map[domain.TransferStatus]int64)}
	for _, s := range domain.AllTransferStatuses() {
		stats.ByStatus[s] = 0
	}
	for _, t := range r.s.transfers {
		stats.ByStatus[t.Status]++
		stats.Total++
	}
	return stats, nil
}

// WithdrawalRepo implements ports.CardlessWithdrawalRepository.
type WithdrawalRepo struct{ s *Store }

func (r *WithdrawalRepo) CreateForTransfer(ctx context.Context, w *domain.CardlessWithdrawal) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.transfers[w.TransferID]
	if !ok || t.Status != domain.TransferStatusPendingCardless {
		return false, nil
	}
	if _, exists := r.s.withdrawals[w.TransferID]; exists {
		return false, fmt.Errorf("insert cardless withdrawal: %w", ports.ErrUniqueViolation)
	}
	t.Status = domain.TransferStatusCompleted
	t.UpdatedAt = w.CreatedAt
	c := *w
	r.s.withdrawals[w.TransferID] = &c
	return true, nil
}

func (r *WithdrawalRepo) GetByTransferID(ctx context.Context, transferID uuid.UUID) (*domain.CardlessWithdrawal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.withdrawals[transferID]
	if !ok {
		return nil, nil
	}
	c := *w
	return &c, nil
}
