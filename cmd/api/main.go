package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
	adminUseCase "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/usecase/admin"
	groupUseCase "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/usecase/group"
	userUseCase "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/usecase/user"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/api/handler"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/api/routes"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/database"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/database/migration"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/logger"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/repository"
	timeProvider "github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/time"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/ws"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Seed admin credentials when configured
	if err := migrationMgr.SeedAdmin(cfg.Admin.User, cfg.Admin.Password); err != nil {
		appLogger.Error("Failed to seed admin credentials", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize repositories
	groupRepo := repository.NewGroupRepository(dbManager.DB(), tp, appLogger)
	roundRepo := repository.NewRoundRepository(dbManager.DB(), appLogger)
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	aggregateRepo := repository.NewAggregateRepository(dbManager.DB(), tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	adminRepo := repository.NewAdminRepository(dbManager.DB(), appLogger)
	groupLockRepo := repository.NewGroupLockRepository(dbManager.DB(), tp, appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Settlement lock timeout
	lockTimeout := time.Duration(cfg.Settlement.LockTimeoutMs) * time.Millisecond

	// Initialize use cases
	groupUseCaseImpl := groupUseCase.NewGroupUseCase(
		uow,
		groupRepo,
		roundRepo,
		userRepo,
		aggregateRepo,
		transactionRepo,
		groupLockRepo,
		lockTimeout,
		tp,
		appLogger,
	)
	userUseCaseImpl := userUseCase.NewUserUseCase(uow, userRepo, tp, appLogger)
	adminUseCaseImpl := adminUseCase.NewAdminUseCase(adminRepo, appLogger)

	// Initialize API handlers
	groupHandler := handler.NewGroupHandler(groupUseCaseImpl, appLogger)
	userHandler := handler.NewUserHandler(userUseCaseImpl, appLogger)
	adminHandler := handler.NewAdminHandler(adminUseCaseImpl, appLogger)

	// Real-time game session gateway
	registry := ws.NewRegistry(appLogger)
	gateway := ws.NewGateway(registry, groupRepo, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)

	// Setup routes
	routes.SetupRoutes(router, groupHandler, userHandler, adminHandler, gateway.Handle)

	// Background cleanup of expired settlement locks
	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	defer cancelCleanup()
	go runLockCleanup(cleanupCtx, groupLockRepo, appLogger, time.Duration(cfg.Settlement.LockCleanupInterval)*time.Second)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	cancelCleanup()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// runLockCleanup periodically removes expired settlement locks so crashed
// settlements cannot block a group forever
func runLockCleanup(ctx context.Context, lockRepo *repository.GroupLockRepository, appLogger coreport.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := lockRepo.CleanupExpiredLocks(ctx); err != nil {
				appLogger.Error("Settlement lock cleanup failed", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or NC_DB_HOST environment variable)")
	}
	if cfg.Database.Port == "" {
		missingConfigs = append(missingConfigs, "database.port (or NC_DB_PORT environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or NC_DB_USERNAME environment variable)")
	}
	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or NC_DB_PASSWORD environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or NC_DB_NAME environment variable)")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missingConfigs, ", "))
	}

	return nil
}
