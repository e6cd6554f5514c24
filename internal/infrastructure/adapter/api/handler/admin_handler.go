package handler

import (
	"net/http"

	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/usecase"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin login requests
type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// Login handles GET /admin/login?user=&password=
func (h *AdminHandler) Login(c *gin.Context) {
	user := c.Query("user")
	password := c.Query("password")

	if user == "" || password == "" {
		respondBadRequest(c, "user and password query parameters are required")
		return
	}

	admin, err := h.adminUseCase.Login(c.Request.Context(), user, password)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"user": user})
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data: dto.AdminData{
			ID:   admin.ID,
			User: admin.User,
		},
	})
}
