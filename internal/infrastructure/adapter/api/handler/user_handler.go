package handler

import (
	"net/http"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/usecase"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userUseCase usecase.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

func userToResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Contact: user.Contact,
		GroupID: user.GroupID,
		NEuro:   user.NEuro,
	}
}

// CreateUser handles POST /user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid user payload")
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), usecase.CreateUserRequest{
		Name:    req.Name,
		Contact: req.Contact,
		GroupID: req.GroupID,
		NEuro:   req.NEuro,
	})
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"group_id": req.GroupID})
		return
	}

	c.JSON(http.StatusCreated, userToResponse(user))
}

// ListUsers handles GET /user
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUseCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, nil)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, userToResponse(&users[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// GetUser handles GET /user/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")

	user, err := h.userUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"user_id": userID})
		return
	}

	c.JSON(http.StatusOK, userToResponse(user))
}

// UpdateUser handles PATCH /user/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("id")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid user payload")
		return
	}

	user, err := h.userUseCase.UpdateUser(c.Request.Context(), userID, usecase.CreateUserRequest{
		Name:    req.Name,
		Contact: req.Contact,
		GroupID: req.GroupID,
		NEuro:   req.NEuro,
	})
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"user_id": userID})
		return
	}

	c.JSON(http.StatusOK, userToResponse(user))
}

// UpdateNEuro handles PATCH /user/:id/nEuro
func (h *UserHandler) UpdateNEuro(c *gin.Context) {
	userID := c.Param("id")

	var req dto.UpdateNEuroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid nEuro payload")
		return
	}

	user, err := h.userUseCase.UpdateNEuro(c.Request.Context(), userID, req.NEuro)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"user_id": userID})
		return
	}

	c.JSON(http.StatusOK, userToResponse(user))
}

// DeleteUser handles DELETE /user/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	if err := h.userUseCase.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, h.logger, err, map[string]any{"user_id": userID})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted"})
}
