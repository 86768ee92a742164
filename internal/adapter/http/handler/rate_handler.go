package handler

import (
	"money-transfer-api/internal/adapter/http/dto"
	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"
	"money-transfer-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RateHandler serves currencies, rates and the conversion preview.
type RateHandler struct {
	rateSvc ports.RateService
}

func NewRateHandler(rateSvc ports.RateService) *RateHandler {
	return &RateHandler{rateSvc: rateSvc}
}

// ListCurrencies handles GET /api/v1/currencies.
func (h *RateHandler) ListCurrencies(c *gin.Context) {
	response.OK(c, domain.Currencies())
}

// ListRates handles GET /api/v1/rates.
func (h *RateHandler) ListRates(c *gin.Context) {
	rates, err := h.rateSvc.ListRates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rates)
}

// Convert handles GET /api/v1/rates/convert.
func (h *RateHandler) Convert(c *gin.Context) {
	var q dto.ConvertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	amount, _ := decimal.NewFromString(q.Amount) // validated by binding

	conv, err := h.rateSvc.ComputeConversion(c.Request.Context(), amount, q.From, q.To)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, conv)
}

// CreateRate handles POST /api/v1/admin/rates.
func (h *RateHandler) CreateRate(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req dto.CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	rate, err := h.rateSvc.CreateRate(c.Request.Context(), a, ports.CreateRateRequest{
		CurrencyPair: req.CurrencyPair,
		ProviderRate: req.ProviderRate,
		ProfitMargin: req.ProfitMargin,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, rate)
}

// EditRate handles PATCH /api/v1/admin/rates.
func (h *RateHandler) EditRate(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req dto.EditRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	rate, err := h.rateSvc.EditRate(c.Request.Context(), a, ports.EditRateRequest{
		CurrencyPair: req.CurrencyPair,
		Field:        domain.RateField(req.Field),
		Value:        req.Value,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rate)
}
