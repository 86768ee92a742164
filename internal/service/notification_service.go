package service

import (
	"context"
	"fmt"
	"time"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"
	"money-transfer-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const notificationListLimit = 50

// NotificationServiceImpl dispatches in-app notifications and transfer chat
// system messages, and serves the notification read side.
type NotificationServiceImpl struct {
	notifications ports.NotificationRepository
	messages      ports.MessageRepository
	changes       ports.ChangePublisher
	log           zerolog.Logger
	now           func() time.Time
}

// NewNotificationService creates a new NotificationServiceImpl.
func NewNotificationService(
	notifications ports.NotificationRepository,
	messages ports.MessageRepository,
	changes ports.ChangePublisher,
	log zerolog.Logger,
) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		notifications: notifications,
		messages:      messages,
		changes:       changes,
		log:           log,
		now:           utcNow,
	}
}

// Notify stores a notification for userID.
func (s *NotificationServiceImpl) Notify(ctx context.Context, userID uuid.UUID, title, content string) error {
	n := &domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: s.now(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	publishChange(ctx, s.changes, s.log, domain.ChangeEntityNotification, n.ID, "created", &userID)
	return nil
}

// PostSystemMessage appends an authorless message to a transfer's thread.
func (s *NotificationServiceImpl) PostSystemMessage(ctx context.Context, transferID uuid.UUID, content string) error {
	m := &domain.TransferMessage{
		ID:         uuid.New(),
		TransferID: transferID,
		Content:    content,
		IsSystem:   true,
		CreatedAt:  s.now(),
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return fmt.Errorf("create system message: %w", err)
	}
	publishChange(ctx, s.changes, s.log, domain.ChangeEntityMessage, m.ID, "created", nil)
	return nil
}

func (s *NotificationServiceImpl) ListNotifications(ctx context.Context, actor domain.Actor, unreadOnly bool) ([]domain.Notification, error) {
	list, err := s.notifications.ListByUser(ctx, actor.ID, unreadOnly, notificationListLimit)
	if err != nil {
		return nil, storeError("list notifications", err)
	}
	return list, nil
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	ok, err := s.notifications.MarkRead(ctx, id, actor.ID)
	if err != nil {
		return storeError("mark notification read", err)
	}
	if !ok {
		return apperror.ErrNotFound("Notification")
	}
	return nil
}

var (
	_ ports.Notifier            = (*NotificationServiceImpl)(nil)
	_ ports.NotificationService = (*NotificationServiceImpl)(nil)
)
