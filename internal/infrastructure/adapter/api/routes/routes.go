package routes

import (
	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/api/handler"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	groupHandler *handler.GroupHandler,
	userHandler *handler.UserHandler,
	adminHandler *handler.AdminHandler,
	wsHandler gin.HandlerFunc,
) {
	// Group routes
	groupRoutes := router.Group("/group")
	{
		groupRoutes.POST("", groupHandler.CreateGroup)
		groupRoutes.GET("", groupHandler.ListGroups)
		groupRoutes.GET("/nEuroStats", groupHandler.Stats)
		groupRoutes.GET("/:id/rounds", groupHandler.GetRounds)
		groupRoutes.GET("/:id/gameRule", groupHandler.GetGameRule)
		groupRoutes.GET("/:id/round/:nRodada", groupHandler.GetRoundDetails)
		groupRoutes.GET("/:id/value/:field", groupHandler.GetAggregateField)
		groupRoutes.GET("/:id/transaction", groupHandler.ListTransactions)
		groupRoutes.PUT("/:id", groupHandler.UpdateGroup)
		groupRoutes.PUT("/:id/round/:roundId", groupHandler.UpdateRound)
		groupRoutes.PUT("/:id/updateTotalNEuro", groupHandler.UpdateTotalNEuro)
		groupRoutes.PATCH("/:id/applyNEuro", groupHandler.ApplyNEuro)
		groupRoutes.POST("/:id/next-round", groupHandler.NextRound)
		// The path parameter is a user id here, kept for client compatibility
		groupRoutes.POST("/:id/transaction", groupHandler.CreateTransaction)
		groupRoutes.DELETE("/:id", groupHandler.DeleteGroup)
	}

	// User routes
	userRoutes := router.Group("/user")
	{
		userRoutes.POST("", userHandler.CreateUser)
		userRoutes.GET("", userHandler.ListUsers)
		userRoutes.GET("/:id", userHandler.GetUser)
		userRoutes.PATCH("/:id", userHandler.UpdateUser)
		userRoutes.PATCH("/:id/nEuro", userHandler.UpdateNEuro)
		userRoutes.DELETE("/:id", userHandler.DeleteUser)
	}

	// Admin routes
	router.GET("/admin/login", adminHandler.Login)

	// Real-time game session socket
	router.GET("/ws", wsHandler)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
