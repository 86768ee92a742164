package handler

import (
	"strings"

	"money-transfer-api/internal/adapter/http/dto"
	"money-transfer-api/internal/adapter/http/middleware"
	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"
	"money-transfer-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminAccountHandler serves receiving accounts and deposit instructions.
type AdminAccountHandler struct {
	adminAccountSvc ports.AdminAccountService
}

func NewAdminAccountHandler(adminAccountSvc ports.AdminAccountService) *AdminAccountHandler {
	return &AdminAccountHandler{adminAccountSvc: adminAccountSvc}
}

// DepositAccount handles GET /api/v1/deposit-accounts/:currency.
func (h *AdminAccountHandler) DepositAccount(c *gin.Context) {
	account, err := h.adminAccountSvc.GetDepositAccount(c.Request.Context(), strings.ToUpper(c.Param("currency")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, account)
}

// List handles GET /api/v1/admin/receiving-accounts?currency=.
func (h *AdminAccountHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	accounts, err := h.adminAccountSvc.ListAdminAccounts(c.Request.Context(), a, strings.ToUpper(c.Query("currency")))
	if err != nil {
		response.Error(c, err)
		return
	}
	if accounts == nil {
		accounts = []domain.AdminAccount{}
	}
	response.OK(c, accounts)
}

// Create handles POST /api/v1/admin/receiving-accounts.
func (h *AdminAccountHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req dto.CreateAdminAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	account, err := h.adminAccountSvc.CreateAdminAccount(c.Request.Context(), a, ports.CreateAdminAccountRequest{
		Currency:    req.Currency,
		AccountType: domain.AdminAccountType(req.AccountType),
		Details:     req.Details,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, account.ID.String())
	response.Created(c, account)
}

// SetStatus handles PUT /api/v1/admin/receiving-accounts/:id/status.
func (h *AdminAccountHandler) SetStatus(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	account, err := h.adminAccountSvc.SetAdminAccountActive(c.Request.Context(), a, id, *req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, account)
}
