package handler

import (
	"math"

	"money-transfer-api/internal/adapter/http/middleware"
	"money-transfer-api/internal/core/domain"
	"money-transfer-api/pkg/apperror"
	"money-transfer-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// actor returns the authenticated caller or writes AUTH_001.
func actor(c *gin.Context) (domain.Actor, bool) {
	a, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
	}
	return a, ok
}

// pathID parses a uuid path parameter or writes VAL_001.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.Validation("Invalid "+name+": must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func pageBounds(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

func totalPages(total int64, pageSize int) int {
	return int(math.Ceil(float64(total) / float64(pageSize)))
}
