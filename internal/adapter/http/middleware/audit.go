package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditRoute struct {
	action   domain.AuditAction
	resource string
}

// auditedRoutes maps "METHOD route-pattern" to the recorded action.
var auditedRoutes = map[string]auditRoute{
	"POST /api/v1/transfers":                          {domain.AuditActionTransferCreate, "transfer"},
	"POST /api/v1/admin/transfers/:id/transitions":    {domain.AuditActionTransferTransition, "transfer"},
	"POST /api/v1/admin/transfers/:id/cardless-code":  {domain.AuditActionCardlessCode, "transfer"},
	"PUT /api/v1/admin/accounts/:id/verification":     {domain.AuditActionAccountVerify, "saved_account"},
	"POST /api/v1/admin/rates":                        {domain.AuditActionRateCreate, "exchange_rate"},
	"PATCH /api/v1/admin/rates":                       {domain.AuditActionRateEdit, "exchange_rate"},
	"POST /api/v1/admin/receiving-accounts":           {domain.AuditActionAdminAccountCreate, "admin_account"},
	"PUT /api/v1/admin/receiving-accounts/:id/status": {domain.AuditActionAdminAccountStatus, "admin_account"},
}

// AuditLog records successful mutations on audited routes. The write is
// handed to the AuditService, which persists it asynchronously.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		route, ok := auditedRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		resourceID := c.Param("id")
		if resourceID == "" {
			resourceID = c.GetString(CtxResourceID)
		}

		var actorID *uuid.UUID
		if actor, ok := ActorFrom(c); ok {
			actorID = &actor.ID
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			ActorID:      actorID,
			Action:       route.action,
			ResourceType: route.resource,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}
