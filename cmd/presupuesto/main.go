package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"presupuesto/internal/api"
	"presupuesto/internal/api/handlers"
	"presupuesto/internal/repository"
	"presupuesto/internal/service"
	"presupuesto/pkg/auth"
	"presupuesto/pkg/config"
	"presupuesto/pkg/logger"
	"presupuesto/pkg/postgres"

	"go.uber.org/zap"
)

// @title Presupuesto API
// @version 1.0
// @description Personal budget tracking API with keyword-based expense categorization

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting presupuesto service")

	// Apply pending schema migrations before opening the pool
	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	itemRepo := repository.NewBudgetItemRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	keywordRepo := repository.NewKeywordRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, keywordRepo, appLogger)
	budgetService := service.NewBudgetService(userRepo, itemRepo, appLogger)
	txService := service.NewTransactionService(txRepo, userRepo, categoryService, appLogger)
	analysisService := service.NewAnalysisService(userRepo, itemRepo, txRepo, appLogger)
	profileService := service.NewProfileService(userRepo, categoryRepo, itemRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	profileHandler := handlers.NewProfileHandler(profileService, appLogger)
	categoryHandler := handlers.NewCategoryHandler(categoryService, appLogger)
	budgetHandler := handlers.NewBudgetHandler(budgetService, appLogger)
	txHandler := handlers.NewTransactionHandler(txService, appLogger)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, appLogger)

	// Setup router
	app := api.SetupRouter(
		authHandler,
		profileHandler,
		categoryHandler,
		budgetHandler,
		txHandler,
		analysisHandler,
		jwtManager,
		appLogger,
	)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
