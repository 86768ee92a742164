package dto

import (
	"money-transfer-api/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateTransferRequest is the request body for a new transfer. The payout
// destination is either inline (destination_type + destination_details) or
// a saved account reference.
type CreateTransferRequest struct {
	Kind                string            `json:"kind" binding:"required,oneof=bank_or_card cardless stablecoin"`
	Amount              decimal.Decimal   `json:"amount" binding:"positive_decimal"`
	OriginCurrency      string            `json:"origin_currency" binding:"required,currency"`
	DestinationCurrency string            `json:"destination_currency" binding:"required,currency"`
	DestinationType     string            `json:"destination_type" binding:"omitempty,oneof=clabe card binance"`
	DestinationDetails  map[string]string `json:"destination_details"`
	SavedAccountID      *string           `json:"saved_account_id" binding:"omitempty,uuid"`
}

// TransitionRequest carries an administrator event.
type TransitionRequest struct {
	Event string `json:"event" binding:"required,oneof=approve complete reject"`
}

type CardlessCodeRequest struct {
	Code string `json:"code" binding:"required,cardless_code"`
}

type CreateSavedAccountRequest struct {
	Type    string            `json:"type" binding:"required,oneof=clabe card binance"`
	Details map[string]string `json:"details" binding:"required"`
}

type VerifyAccountRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}

type CreateRateRequest struct {
	CurrencyPair string          `json:"currency_pair" binding:"required,currency_pair"`
	ProviderRate decimal.Decimal `json:"provider_rate" binding:"positive_decimal"`
	ProfitMargin decimal.Decimal `json:"profit_margin" binding:"profit_margin"`
}

// EditRateRequest edits exactly one field of a rate row.
type EditRateRequest struct {
	CurrencyPair string          `json:"currency_pair" binding:"required,currency_pair"`
	Field        string          `json:"field" binding:"required,oneof=provider_rate profit_margin our_rate"`
	Value        decimal.Decimal `json:"value"`
}

type CreateAdminAccountRequest struct {
	Currency    string            `json:"currency" binding:"required,currency"`
	AccountType string            `json:"account_type" binding:"required,oneof=bank binance"`
	Details     map[string]string `json:"account_details" binding:"required"`
}

type SetActiveRequest struct {
	Active *bool `json:"is_active" binding:"required"`
}

// ConvertQuery is the query string of the conversion preview.
type ConvertQuery struct {
	Amount string `form:"amount" binding:"required,positive_decimal"`
	From   string `form:"from" binding:"required,currency"`
	To     string `form:"to" binding:"required,currency"`
}

type ListTransfersQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status" binding:"omitempty,oneof=pending pending_usd_approval pending_cardless completed failed"`
}

// TransferListResponse wraps a paginated transfer list.
type TransferListResponse struct {
	Items      []domain.Transfer `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}
