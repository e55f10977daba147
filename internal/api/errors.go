package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/repository/pgerr"
	"github.com/kingrain94/saas-platform-api/internal/service"
)

const (
	internalErrorMessage    = "An internal server error occurred"
	unavailableErrorMessage = "The service is temporarily unavailable, please retry"
)

// respondError maps a service error onto a status code and envelope. Causes
// of 5xx responses are logged and never echoed.
func (h *BaseHandler) respondError(c *gin.Context, err error) {
	var entityErr *service.Error

	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail("Validation failed", dto.ValidationMessages(err)...))
	case errors.Is(err, service.ErrNotFound) && errors.As(err, &entityErr):
		c.JSON(http.StatusNotFound, dto.Fail(entityErr.Message))
	case errors.Is(err, service.ErrConflict) && errors.As(err, &entityErr):
		c.JSON(http.StatusConflict, dto.Fail(entityErr.Message))
	case pgerr.IsTransient(err):
		h.logger.Warn("transient store failure",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.Fail(unavailableErrorMessage))
	default:
		h.logger.Error("request failed", err,
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, dto.Fail(internalErrorMessage))
	}
}
