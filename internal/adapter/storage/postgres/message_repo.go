package postgres

import (
	"context"
	"fmt"

	"money-transfer-api/internal/core/domain"

	"github.com/google/uuid"
)

// MessageRepo implements ports.MessageRepository.
type MessageRepo struct {
	pool Pool
}

// NewMessageRepo creates a new MessageRepo.
func NewMessageRepo(pool Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

func (r *MessageRepo) Create(ctx context.Context, m *domain.TransferMessage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO transfer_messages (id, transfer_id, user_id, content, is_system, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.TransferID, m.UserID, m.Content, m.IsSystem, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer message: %w", err)
	}
	return nil
}

// ListByTransfer returns the thread oldest first.
func (r *MessageRepo) ListByTransfer(ctx context.Context, transferID uuid.UUID) ([]domain.TransferMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, transfer_id, user_id, content, is_system, created_at FROM transfer_messages
		 WHERE transfer_id = $1 ORDER BY created_at ASC`, transferID)
	if err != nil {
		return nil, fmt.Errorf("list transfer messages: %w", err)
	}
	defer rows.Close()

	var msgs []domain.TransferMessage
	for rows.Next() {
		var m domain.TransferMessage
		if err := rows.Scan(&m.ID, &m.TransferID, &m.UserID, &m.Content, &m.IsSystem, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer message row: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfer message rows: %w", err)
	}
	return msgs, nil
}
