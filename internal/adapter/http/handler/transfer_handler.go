package handler

import (
	"net/http"

	"money-transfer-api/internal/adapter/http/dto"
	"money-transfer-api/internal/adapter/http/middleware"
	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"
	"money-transfer-api/pkg/apperror"
	"money-transfer-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"

	maxIdempotencyKeyLen = 128
	qrImageSize          = 256
)

// TransferHandler serves the transfer lifecycle endpoints.
type TransferHandler struct {
	transferSvc ports.TransferService
}

func NewTransferHandler(transferSvc ports.TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

// Create handles POST /api/v1/transfers.
func (h *TransferHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	idempKey := c.GetHeader(HeaderIdempotencyKey)
	if len(idempKey) > maxIdempotencyKeyLen {
		response.Error(c, apperror.Validation("Idempotency-Key is too long"))
		return
	}

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	var savedAccountID *uuid.UUID
	if req.SavedAccountID != nil {
		id, err := uuid.Parse(*req.SavedAccountID)
		if err != nil {
			response.Error(c, apperror.Validation("Invalid saved_account_id"))
			return
		}
		savedAccountID = &id
	}

	transfer, err := h.transferSvc.CreateTransfer(c.Request.Context(), a, ports.CreateTransferRequest{
		Kind:                domain.TransferKind(req.Kind),
		Amount:              req.Amount,
		OriginCurrency:      req.OriginCurrency,
		DestinationCurrency: req.DestinationCurrency,
		DestinationType:     domain.AccountType(req.DestinationType),
		DestinationDetails:  req.DestinationDetails,
		SavedAccountID:      savedAccountID,
		IdempotencyKey:      idempKey,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, transfer.ID.String())
	response.Created(c, transfer)
}

// List handles GET /api/v1/transfers: the caller's own transfers.
func (h *TransferHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	h.list(c, a, &a.ID)
}

// AdminList handles GET /api/v1/admin/transfers with an optional user_id filter.
func (h *TransferHandler) AdminList(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var userID *uuid.UUID
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("Invalid user_id"))
			return
		}
		userID = &id
	}
	h.list(c, a, userID)
}

func (h *TransferHandler) list(c *gin.Context, a domain.Actor, userID *uuid.UUID) {
	var q dto.ListTransfersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	page, pageSize := pageBounds(q.Page, q.PageSize)
	params := ports.TransferListParams{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	}
	if q.Status != "" {
		status := domain.TransferStatus(q.Status)
		params.Status = &status
	}

	transfers, total, err := h.transferSvc.ListTransfers(c.Request.Context(), a, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	if transfers == nil {
		transfers = []domain.Transfer{}
	}

	response.OK(c, dto.TransferListResponse{
		Items:      transfers,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	})
}

// Get handles GET /api/v1/transfers/:id.
func (h *TransferHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	transfer, err := h.transferSvc.GetTransfer(c.Request.Context(), a, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, transfer)
}

// Messages handles GET /api/v1/transfers/:id/messages.
func (h *TransferHandler) Messages(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	msgs, err := h.transferSvc.ListMessages(c.Request.Context(), a, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if msgs == nil {
		msgs = []domain.TransferMessage{}
	}
	response.OK(c, msgs)
}

// Withdrawal handles GET /api/v1/transfers/:id/withdrawal.
func (h *TransferHandler) Withdrawal(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.transferSvc.GetCardlessWithdrawal(c.Request.Context(), a, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	response.OK(c, view)
}

// WithdrawalQR handles GET /api/v1/transfers/:id/withdrawal/qr. Only an
// active code is rendered.
func (h *TransferHandler) WithdrawalQR(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.transferSvc.GetCardlessWithdrawal(c.Request.Context(), a, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !view.Active {
		response.Error(c, apperror.ErrNotFound("Active withdrawal code"))
		return
	}

	png, err := qrcode.Encode(view.Code, qrcode.Medium, qrImageSize)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// Transition handles POST /api/v1/admin/transfers/:id/transitions.
func (h *TransferHandler) Transition(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	transfer, err := h.transferSvc.ApplyTransition(c.Request.Context(), a, id, domain.TransferEvent(req.Event))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, transfer)
}

// IssueCardlessCode handles POST /api/v1/admin/transfers/:id/cardless-code.
func (h *TransferHandler) IssueCardlessCode(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CardlessCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	withdrawal, err := h.transferSvc.IssueCardlessCode(c.Request.Context(), a, id, req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, withdrawal)
}

// Stats handles GET /api/v1/admin/stats.
func (h *TransferHandler) Stats(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	stats, err := h.transferSvc.GetStats(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}
