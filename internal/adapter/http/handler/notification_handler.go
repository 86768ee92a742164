package handler

import (
	"strconv"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"
	"money-transfer-api/pkg/response"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc ports.NotificationService
}

func NewNotificationHandler(notificationSvc ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// List handles GET /api/v1/notifications?unread=true.
func (h *NotificationHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))

	list, err := h.notificationSvc.ListNotifications(c.Request.Context(), a, unreadOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	if list == nil {
		list = []domain.Notification{}
	}
	response.OK(c, list)
}

// MarkRead handles POST /api/v1/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.notificationSvc.MarkRead(c.Request.Context(), a, id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
