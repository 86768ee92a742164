package response

import (
	"errors"
	"net/http"
	"time"

	"money-transfer-api/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// transientRetryAfter is advertised on store outages. Clients retry the
// whole operation; the server never does.
const transientRetryAfter = "1"

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope. ErrorKind is the error
// family: validation, guard, conflict, transient and so on.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	ErrorKind string `json:"error_kind"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

func OK(c *gin.Context, data interface{}) {
	success(c, http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	success(c, http.StatusCreated, data)
}

// Error renders err. Anything that is not an *apperror.AppError becomes
// SYS_000 without leaking its text.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.InternalError(err)
	}
	if appErr.Kind == apperror.KindTransient {
		c.Header("Retry-After", transientRetryAfter)
	}

	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		ErrorKind: string(appErr.Kind),
		Message:   appErr.Message,
		RequestID: requestID(c),
		Timestamp: timestamp(),
	})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{
		Data:      data,
		RequestID: requestID(c),
		Timestamp: timestamp(),
	})
}

// requestID reads the id set by the RequestID middleware, or makes one up
// for handlers mounted without it.
func requestID(c *gin.Context) string {
	if s := c.GetString("request_id"); s != "" {
		return s
	}
	return uuid.New().String()
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
