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

// SavedAccountRepo implements ports.SavedAccountRepository.
type SavedAccountRepo struct{ s *Store }

func (r *SavedAccountRepo) Create(ctx context.Context, a *domain.SavedAccount) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.savedAccounts[a.ID]; ok {
		return fmt.Errorf("insert saved account: %w", ports.ErrUniqueViolation)
	}
	r.s.savedAccounts[a.ID] = cloneSavedAccount(a)
	return nil
}

func (r *SavedAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedAccount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.savedAccounts[id]
	if !ok {
		return nil, nil
	}
	return cloneSavedAccount(a), nil
}

func (r *SavedAccountRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedAccount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.SavedAccount
	for _, a := range r.s.savedAccounts {
		if a.UserID == userID {
			out = append(out, *cloneSavedAccount(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *SavedAccountRepo) SetVerification(ctx context.Context, u ports.AccountVerificationUpdate) (*domain.SavedAccount, []uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.savedAccounts[u.AccountID]
	if !ok {
		return nil, nil, nil
	}
	a.USDTEnabled = u.USDTEnabled
	a.VerifiedAt = u.VerifiedAt
	a.VerifiedBy = u.VerifiedBy
	a.UpdatedAt = u.UpdatedAt

	var promoted []uuid.UUID
	if p := u.Promote; p != nil {
		for _, t := range r.s.transfers {
			if t.UserID == a.UserID && t.Status == p.From && t.DestinationCurrency == p.DestinationCurrency {
				t.Status = p.To
				t.UpdatedAt = u.UpdatedAt
				promoted = append(promoted, t.ID)
			}
		}
	}
	return cloneSavedAccount(a), promoted, nil
}

// AdminAccountRepo implements ports.AdminAccountRepository.
type AdminAccountRepo struct{ s *Store }

// activeConflict reports whether an account other than id is active for currency.
func (r *AdminAccountRepo) activeConflict(currency string, id uuid.UUID) bool {
	for _, a := range r.s.adminAccounts {
		if a.Currency == currency && a.IsActive && a.ID != id {
			return true
		}
	}
	return false
}

func (r *AdminAccountRepo) Create(ctx context.Context, a *domain.AdminAccount) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.adminAccounts[a.ID]; ok {
		return fmt.Errorf("insert admin account: %w", ports.ErrUniqueViolation)
	}
	if a.IsActive && r.activeConflict(a.Currency, a.ID) {
		return fmt.Errorf("insert admin account: %w", ports.ErrUniqueViolation)
	}
	r.s.adminAccounts[a.ID] = cloneAdminAccount(a)
	return nil
}

func (r *AdminAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminAccount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.adminAccounts[id]
	if !ok {
		return nil, nil
	}
	return cloneAdminAccount(a), nil
}

func (r *AdminAccountRepo) List(ctx context.Context, currency string) ([]domain.AdminAccount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.AdminAccount
	for _, a := range r.s.adminAccounts {
		if currency == "" || a.Currency == currency {
			out = append(out, *cloneAdminAccount(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Currency != out[j].Currency {
			return out[i].Currency < out[j].Currency
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *AdminAccountRepo) GetActiveByCurrency(ctx context.Context, currency string) (*domain.AdminAccount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.adminAccounts {
		if a.Currency == currency && a.IsActive {
			return cloneAdminAccount(a), nil
		}
	}
	return nil, nil
}

func (r *AdminAccountRepo) SetActive(ctx context.Context, id uuid.UUID, active bool, updatedAt time.Time) (*domain.AdminAccount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.adminAccounts[id]
	if !ok {
		return nil, nil
	}
	if active && r.activeConflict(a.Currency, id) {
		return nil, fmt.Errorf("set admin account status: %w", ports.ErrUniqueViolation)
	}
	a.IsActive = active
	a.UpdatedAt = updatedAt
	return cloneAdminAccount(a), nil
}
