package postgres

import (
	"context"
	"fmt"

	"money-transfer-api/internal/core/domain"

	"github.com/google/uuid"
)

// ProfileRepo reads the profiles table kept in sync by the identity provider.
type ProfileRepo struct {
	pool Pool
}

func NewProfileRepo(pool Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) ListIDsByRole(ctx context.Context, role domain.Role) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM profiles WHERE role = $1`, role)
	if err != nil {
		return nil, fmt.Errorf("list profiles by role: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan profile id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profile rows: %w", err)
	}
	return ids, nil
}
