package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuditLog_AdminTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)

	admin := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	transferID := uuid.New()

	done := make(chan struct{})
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionTransferTransition, entry.Action)
			assert.Equal(t, "transfer", entry.ResourceType)
			assert.Equal(t, transferID.String(), entry.ResourceID)
			if assert.NotNil(t, entry.ActorID) {
				assert.Equal(t, admin.ID, *entry.ActorID)
			}
			assert.Contains(t, entry.Details, `"status":200`)
			close(done)
		},
	)

	r := gin.New()
	r.Use(withActor(admin), AuditLog(mockAudit))
	r.POST("/api/v1/admin/transfers/:id/transitions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/transfers/"+transferID.String()+"/transitions", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("audit not called")
	}
}

func TestAuditLog_CreatedResourceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)

	created := uuid.New().String()
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(ctx context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionTransferCreate, entry.Action)
		assert.Equal(t, created, entry.ResourceID)
	})

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.POST("/api/v1/transfers", func(c *gin.Context) {
		c.Set(CtxResourceID, created)
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/transfers", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAuditLog_SkipsReadsAndUnmappedRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)
	// No expectations: Log must not be called.

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.GET("/api/v1/admin/transfers", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	r.POST("/api/v1/notifications/:id/read", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/v1/admin/transfers", nil),
		httptest.NewRequest(http.MethodPost, "/api/v1/notifications/"+uuid.NewString()+"/read", nil),
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Less(t, w.Code, 300)
	}
}

func TestAuditLog_SkipsFailedRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.POST("/api/v1/admin/rates", func(c *gin.Context) {
		c.JSON(http.StatusConflict, gin.H{"error_code": "TRF_008"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/rates", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuditedRoutes(t *testing.T) {
	tests := []struct {
		key      string
		action   domain.AuditAction
		resource string
	}{
		{"PUT /api/v1/admin/accounts/:id/verification", domain.AuditActionAccountVerify, "saved_account"},
		{"POST /api/v1/admin/transfers/:id/cardless-code", domain.AuditActionCardlessCode, "transfer"},
		{"PATCH /api/v1/admin/rates", domain.AuditActionRateEdit, "exchange_rate"},
		{"PUT /api/v1/admin/receiving-accounts/:id/status", domain.AuditActionAdminAccountStatus, "admin_account"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			route, ok := auditedRoutes[tt.key]
			assert.True(t, ok)
			assert.Equal(t, tt.action, route.action)
			assert.Equal(t, tt.resource, route.resource)
		})
	}
}
