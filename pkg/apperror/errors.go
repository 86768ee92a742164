package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError so callers can branch without matching codes.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindGuard       Kind = "guard"
	KindConflict    Kind = "conflict"
	KindTransient   Kind = "transient"
	KindNotFound    Kind = "not_found"
	KindAuth        Kind = "auth"
	KindRateLimited Kind = "rate_limited"
	KindInternal    Kind = "internal"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	Kind       Kind   `json:"error_kind"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Kind:       kind,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Kind:       kind,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// ---- Validation (VAL) ----

// Validation returns a generic validation error carrying message.
func Validation(message string) *AppError {
	return New(KindValidation, "VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New(KindValidation, "VAL_002", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrAmountTooLarge() *AppError {
	return New(KindValidation, "VAL_002", "Amount is too large", http.StatusBadRequest)
}

func ErrInvalidCardlessCode() *AppError {
	return New(KindValidation, "VAL_003", "Withdrawal code must be exactly 8 digits", http.StatusBadRequest)
}

func ErrInvalidCLABE() *AppError {
	return New(KindValidation, "VAL_004", "CLABE must be exactly 18 digits", http.StatusBadRequest)
}

func ErrInvalidCard() *AppError {
	return New(KindValidation, "VAL_005", "Card number must be exactly 16 digits and include the card holder", http.StatusBadRequest)
}

func ErrUnsupportedCurrency(code string) *AppError {
	return New(KindValidation, "VAL_006", fmt.Sprintf("Currency %q is not supported", code), http.StatusBadRequest)
}

func ErrInvalidDestination(message string) *AppError {
	return New(KindValidation, "VAL_007", message, http.StatusBadRequest)
}

func ErrInvalidRate(message string) *AppError {
	return New(KindValidation, "VAL_008", message, http.StatusBadRequest)
}

// ---- Transfer lifecycle guards (TRF) ----

func ErrAdminRequired() *AppError {
	return New(KindGuard, "TRF_001", "Only administrators can perform this action", http.StatusForbidden)
}

func ErrInvalidTransition(message string) *AppError {
	return New(KindGuard, "TRF_002", message, http.StatusConflict)
}

func ErrStaleStatus() *AppError {
	return New(KindGuard, "TRF_003", "The record was changed by another action; reload and try again", http.StatusConflict)
}

func ErrRateUnavailable(from, to string) *AppError {
	return New(KindGuard, "TRF_004",
		fmt.Sprintf("No exchange rate is available for %s to %s", from, to),
		http.StatusUnprocessableEntity)
}

func ErrAccountNotVerified() *AppError {
	return New(KindGuard, "TRF_005",
		"This Binance account is not verified for USDT transfers. Contact support to request verification.",
		http.StatusUnprocessableEntity)
}

func ErrWithdrawalNotReady() *AppError {
	return New(KindGuard, "TRF_006", "The withdrawal code is available once the transfer is completed", http.StatusConflict)
}

func ErrNotOwner() *AppError {
	return New(KindGuard, "TRF_007", "You do not have access to this resource", http.StatusForbidden)
}

func ErrRateChanged() *AppError {
	return New(KindGuard, "TRF_008", "The exchange rate was edited concurrently; reload and try again", http.StatusConflict)
}

// ---- Conflicts (CONF) ----

func ErrActiveAccountExists(currency string) *AppError {
	return New(KindConflict, "CONF_001",
		fmt.Sprintf("An active receiving account already exists for %s. Deactivate it first.", currency),
		http.StatusConflict)
}

func ErrWithdrawalExists() *AppError {
	return New(KindConflict, "CONF_002", "A withdrawal code was already issued for this transfer", http.StatusConflict)
}

func ErrDuplicate(message string) *AppError {
	return New(KindConflict, "CONF_003", message, http.StatusConflict)
}

// ---- Lookup (NF) ----

func ErrNotFound(entity string) *AppError {
	return New(KindNotFound, "NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(KindAuth, "AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New(KindAuth, "AUTH_002", "Administrator role required", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(KindRateLimited, "RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// Transient wraps a store or network failure. Callers may retry.
func Transient(err error) *AppError {
	return Wrap(KindTransient, "SYS_001", "Temporary storage failure, please retry", http.StatusServiceUnavailable, err)
}

// InternalError wraps an unexpected error.
func InternalError(err error) *AppError {
	return Wrap(KindInternal, "SYS_000", "Internal server error", http.StatusInternalServerError, err)
}
