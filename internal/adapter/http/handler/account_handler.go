package handler

import (
	"money-transfer-api/internal/adapter/http/dto"
	"money-transfer-api/internal/adapter/http/middleware"
	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"
	"money-transfer-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler serves saved payout accounts and their verification.
type AccountHandler struct {
	accountSvc ports.AccountService
}

func NewAccountHandler(accountSvc ports.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// Create handles POST /api/v1/accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req dto.CreateSavedAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	account, err := h.accountSvc.CreateSavedAccount(c.Request.Context(), a, ports.CreateSavedAccountRequest{
		Type:    domain.AccountType(req.Type),
		Details: req.Details,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, account.ID.String())
	response.Created(c, account)
}

// ListMine handles GET /api/v1/accounts.
func (h *AccountHandler) ListMine(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	h.list(c, a, a.ID)
}

// ListForUser handles GET /api/v1/admin/users/:id/accounts.
func (h *AccountHandler) ListForUser(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.list(c, a, userID)
}

func (h *AccountHandler) list(c *gin.Context, a domain.Actor, userID uuid.UUID) {
	accounts, err := h.accountSvc.ListSavedAccounts(c.Request.Context(), a, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if accounts == nil {
		accounts = []domain.SavedAccount{}
	}
	response.OK(c, accounts)
}

// Verify handles PUT /api/v1/admin/accounts/:id/verification.
func (h *AccountHandler) Verify(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.VerifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	account, err := h.accountSvc.VerifyAccount(c.Request.Context(), a, id, *req.Verified)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, account)
}
