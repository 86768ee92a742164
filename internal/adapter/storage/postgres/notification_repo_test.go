package postgres

import (
	"context"
	"testing"
	"time"

	"money-transfer-api/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniqueErr() error {
	return &pgconn.PgError{Code: "23505"}
}

func TestNotificationRepo_CreateAndList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNotificationRepo(mock)
	n := &domain.Notification{
		ID: uuid.New(), UserID: uuid.New(), Title: "Transfer completed", Content: "done",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectExec("INSERT INTO notifications").
		WithArgs(n.ID, n.UserID, n.Title, n.Content, false, n.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT .+ FROM notifications").
		WithArgs(n.UserID, true, 50).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "title", "content", "read", "created_at"}).
			AddRow(n.ID, n.UserID, n.Title, n.Content, false, n.CreatedAt))

	require.NoError(t, repo.Create(context.Background(), n))
	list, err := repo.ListByUser(context.Background(), n.UserID, true, 50)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Transfer completed", list[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepo_MarkRead(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNotificationRepo(mock)
	id, userID := uuid.New(), uuid.New()

	mock.ExpectExec("UPDATE notifications SET read").
		WithArgs(id, userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.MarkRead(context.Background(), id, userID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepo_ListByTransfer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMessageRepo(mock)
	transferID := uuid.New()
	author := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM transfer_messages WHERE transfer_id").
		WithArgs(transferID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "transfer_id", "user_id", "content", "is_system", "created_at"}).
			AddRow(uuid.New(), transferID, nil, "Transfer approved", true, now).
			AddRow(uuid.New(), transferID, &author, "thanks", false, now.Add(time.Minute)))

	msgs, err := repo.ListByTransfer(context.Background(), transferID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.True(t, msgs[0].IsSystem)
	assert.Nil(t, msgs[0].UserID)
	require.NotNil(t, msgs[1].UserID)
	assert.Equal(t, author, *msgs[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepo_ListIDsByRole(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepo(mock)
	a1, a2 := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT id FROM profiles WHERE role").
		WithArgs(domain.RoleAdmin).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(a1).AddRow(a2))

	ids, err := repo.ListIDsByRole(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a1, a2}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	actor := uuid.New()
	entry := &domain.AuditLog{
		ID: uuid.New(), ActorID: &actor, Action: domain.AuditActionAccountVerify,
		ResourceType: "saved_account", ResourceID: uuid.NewString(),
		IPAddress: "10.0.0.1", CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(entry.ID, entry.ActorID, "ACCOUNT_VERIFY", entry.ResourceType,
			entry.ResourceID, entry.Details, entry.IPAddress, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}
