package handler

import (
	"net/http"
	"time"

	"money-transfer-api/internal/core/ports"
	"money-transfer-api/pkg/apperror"
	"money-transfer-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultHeartbeat = 25 * time.Second

// EventsHandler streams change hints as server-sent events. Clients re-fetch
// the named record through the regular read endpoints.
type EventsHandler struct {
	subscriber ports.ChangeSubscriber
	heartbeat  time.Duration
	log        zerolog.Logger
}

// NewEventsHandler creates an EventsHandler. A nil subscriber disables the feed.
func NewEventsHandler(subscriber ports.ChangeSubscriber, log zerolog.Logger) *EventsHandler {
	return &EventsHandler{subscriber: subscriber, heartbeat: defaultHeartbeat, log: log}
}

// Stream handles GET /api/v1/events. Each caller only sees events it may read.
func (h *EventsHandler) Stream(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	if h.subscriber == nil {
		response.Error(c, apperror.New(apperror.KindTransient, "SYS_001", "Live updates are not available", http.StatusServiceUnavailable))
		return
	}

	ctx := c.Request.Context()
	events, err := h.subscriber.Subscribe(ctx)
	if err != nil {
		h.log.Warn().Err(err).Str("user_id", a.ID.String()).Msg("change feed subscribe failed")
		response.Error(c, apperror.Transient(err))
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if !event.Visible(a) {
				continue
			}
			c.SSEvent("change", event)
		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
		}
		c.Writer.Flush()
	}
}
