package handler

import (
	"net/http"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/usecase"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// GroupHandler handles group, round and settlement HTTP requests
type GroupHandler struct {
	groupUseCase usecase.GroupUseCase
	logger       coreport.Logger
}

// NewGroupHandler creates a new group handler instance
func NewGroupHandler(groupUseCase usecase.GroupUseCase, logger coreport.Logger) *GroupHandler {
	return &GroupHandler{
		groupUseCase: groupUseCase,
		logger:       logger,
	}
}

func roundToResponse(round *entity.Round) dto.RoundResponse {
	return dto.RoundResponse{
		ID:             round.ID,
		GroupID:        round.GroupID,
		NEuro:          round.NEuro,
		Retribution:    round.Retribution,
		RetributionQty: round.RetributionQty,
		Number:         round.Number,
	}
}

func groupToResponse(group *entity.Group, rounds []entity.Round) dto.GroupResponse {
	resp := dto.GroupResponse{
		ID:                group.ID,
		Name:              group.Name,
		GameRule:          group.GameRule,
		GameServerCreated: group.GameServerCreated,
	}
	for i := range rounds {
		resp.Rounds = append(resp.Rounds, roundToResponse(&rounds[i]))
	}
	return resp
}

// CreateGroup handles POST /group
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid group payload")
		return
	}

	createReq := usecase.CreateGroupRequest{Name: req.Name}
	for _, r := range req.Rounds {
		createReq.Rounds = append(createReq.Rounds, usecase.RoundSpec{
			NEuro:          r.NEuro,
			Retribution:    r.Retribution,
			RetributionQty: r.RetributionQty,
			Number:         r.Number,
		})
	}

	group, err := h.groupUseCase.CreateGroup(c.Request.Context(), createReq)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"group_name": req.Name})
		return
	}

	c.JSON(http.StatusCreated, groupToResponse(group, nil))
}

// ListGroups handles GET /group
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupUseCase.ListGroups(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, nil)
		return
	}

	resp := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		resp = append(resp, groupToResponse(&groups[i], nil))
	}

	c.JSON(http.StatusOK, resp)
}

// GetRounds handles GET /group/:id/rounds
func (h *GroupHandler) GetRounds(c *gin.Context) {
	groupID := c.Param("id")

	result, err := h.groupUseCase.GetGroupWithRounds(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"group_id": groupID})
		return
	}

	c.JSON(http.StatusOK, groupToResponse(&result.Group, result.Rounds))
}

// GetGameRule handles GET /group/:id/gameRule
func (h *GroupHandler) GetGameRule(c *gin.Context) {
	groupID := c.Param("id")

	gameRule, err := h.groupUseCase.GetGameRule(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"group_id": groupID})
		return
	}

	c.JSON(http.StatusOK, gin.H{"gameRule": gameRule})
}

// GetRoundDetails handles GET /group/:id/round/:nRodada
func (h *GroupHandler) GetRoundDetails(c *gin.Context) {
	groupID := c.Param("id")
	number := c.Param("nRodada")

	round, err := h.groupUseCase.GetRoundDetails(c.Request.Context(), groupID, number)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{
			"group_id": groupID,
			"number":   number,
		})
		return
	}

	c.JSON(http.StatusOK, roundToResponse(round))
}

// UpdateGroup handles PUT /group/:id
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	groupID := c.Param("id")

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid group payload")
		return
	}

	group, err := h.groupUseCase.UpdateGroup(c.Request.Context(), groupID, req.Name)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"group_id": groupID})
		return
	}

	c.JSON(http.StatusOK, groupToResponse(group, nil))
}

// UpdateRound handles PUT /group/:id/round/:roundId
func (h *GroupHandler) UpdateRound(c *gin.Context) {
	roundID := c.Param("roundId")

	var req dto.UpdateRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid round payload")
		return
	}

	err := h.groupUseCase.UpdateRound(c.Request.Context(), roundID, usecase.RoundUpdate{
		NEuro:          req.NEuro,
		Retribution:    req.Retribution,
		RetributionQty: req.RetributionQty,
		Number:         req.Number,
	})
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"round_id": roundID})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Round updated"})
}

// DeleteGroup handles DELETE /group/:id
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	groupID := c.Param("id")

	if err := h.groupUseCase.DeleteGroup(c.Request.Context(), groupID); err != nil {
		respondError(c, h.logger, err, map[string]any{"group_id": groupID})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Group deleted"})
}

// ApplyNEuro handles PATCH /group/:id/applyNEuro
func (h *GroupHandler) ApplyNEuro(c *gin.Context) {
	groupID := c.Param("id")

	var req dto.ApplyNEuroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid applyNEuro payload")
		return
	}

	result, err := h.groupUseCase.ApplyNEuro(c.Request.Context(), usecase.ApplyNEuroRequest{
		GroupID:    groupID,
		UserID:     req.UserID,
		NEuro:      req.NEuro,
		TotalUsers: req.TotalUsers,
	})
	if err != nil {
		respondError(c, h.logger, err, map[string]any{
			"group_id": groupID,
			"user_id":  req.UserID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.ApplyNEuroResponse{
		Values: dto.AggregateValuesResponse{
			ID:           result.Values.ID,
			GroupID:      result.Values.GroupID,
			TotalNEuro:   result.Values.TotalNEuro,
			TotalUsers:   result.Values.TotalUsers,
			RetainedFund: result.Values.RetainedFund,
		},
		UserBalance: result.UserBalance,
	})
}

// NextRound handles POST /group/:id/next-round
func (h *GroupHandler) NextRound(c *gin.Context) {
	groupID := c.Param("id")

	result, err := h.groupUseCase.NextRound(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"group_id": groupID})
		return
	}

	c.JSON(http.StatusOK, dto.SettlementResponse{
		GroupID:      result.GroupID,
		Share:        result.Share,
		RetainedFund: result.RetainedFund,
		UsersSettled: result.UsersSettled,
	})
}

// UpdateTotalNEuro handles PUT /group/:id/updateTotalNEuro
func (h *GroupHandler) UpdateTotalNEuro(c *gin.Context) {
	groupID := c.Param("id")

	if err := h.groupUseCase.UpdateTotalNEuro(c.Request.Context(), groupID); err != nil {
		respondError(c, h.logger, err, map[string]any{"group_id": groupID})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Total nEuro updated"})
}

// GetAggregateField handles GET /group/:id/value/:field
func (h *GroupHandler) GetAggregateField(c *gin.Context) {
	groupID := c.Param("id")
	field := c.Param("field")

	value, err := h.groupUseCase.GetAggregateField(c.Request.Context(), groupID, field)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{
			"group_id": groupID,
			"field":    field,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{field: value})
}

// Stats handles GET /group/nEuroStats
func (h *GroupHandler) Stats(c *gin.Context) {
	stats, err := h.groupUseCase.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, nil)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListTransactions handles GET /group/:id/transaction
func (h *GroupHandler) ListTransactions(c *gin.Context) {
	groupID := c.Param("id")

	transactions, err := h.groupUseCase.ListTransactions(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"group_id": groupID})
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		resp = append(resp, dto.TransactionResponse{
			ID:              transactions[i].ID,
			UserID:          transactions[i].UserID,
			RoundID:         transactions[i].RoundID,
			TransactionType: transactions[i].TransactionType,
			Amount:          transactions[i].Amount,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// CreateTransaction handles POST /group/:id/transaction. The path parameter
// carries the user id, matching the existing client contract.
func (h *GroupHandler) CreateTransaction(c *gin.Context) {
	userID := c.Param("id")

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid transaction payload")
		return
	}

	transaction, err := h.groupUseCase.CreateTransaction(
		c.Request.Context(), userID, req.RoundID, req.TransactionType, req.Amount)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"user_id": userID})
		return
	}

	c.JSON(http.StatusCreated, dto.TransactionResponse{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		RoundID:         transaction.RoundID,
		TransactionType: transaction.TransactionType,
		Amount:          transaction.Amount,
	})
}
