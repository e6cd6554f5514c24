package handler

import (
	"net/http"

	domainerr "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to an HTTP status and writes the error body
func respondError(c *gin.Context, logger coreport.Logger, err error, context map[string]any) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsNotFoundError(err):
		statusCode = http.StatusNotFound
		message = err.Error()
	case domainerr.IsValidationError(err):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case domainerr.IsConflictError(err):
		statusCode = http.StatusConflict
		message = err.Error()
	}

	fields := map[string]any{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
		"status": statusCode,
		"error":  err.Error(),
	}
	for k, v := range context {
		fields[k] = v
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Warn("Request rejected", fields)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBadRequest writes a 400 for malformed request payloads
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
	})
}
