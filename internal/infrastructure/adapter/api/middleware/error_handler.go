package middleware

import (
	"net/http"

	domainerr "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a logged 500 with the standard error
// body instead of tearing the connection down
func Recovery(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered while handling request", map[string]any{
					"panic":     r,
					"path":      c.Request.URL.Path,
					"method":    c.Request.Method,
					"client_ip": c.ClientIP(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
