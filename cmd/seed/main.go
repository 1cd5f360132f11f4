package main

import (
	"context"
	"log"
	"time"

	"presupuesto/internal/analysis"
	"presupuesto/internal/models"
	"presupuesto/internal/repository"
	"presupuesto/pkg/auth"
	"presupuesto/pkg/config"
	"presupuesto/pkg/logger"
	"presupuesto/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@presupuesto.local"
	demoUsername = "demo"
	demoPassword = "demo1234"
	demoBudget   = 500000
)

// Seeds a demo account with the predefined category set and a few fixed
// expenses, so a fresh deployment has something to show.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	itemRepo := repository.NewBudgetItemRepository(db, appLogger)

	appLogger.Info("Starting database seeding")

	if existing, _ := userRepo.GetByEmail(ctx, demoEmail); existing != nil {
		appLogger.Info("Demo user already exists, nothing to do",
			zap.String("email", demoEmail),
		)
		return
	}

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		appLogger.Fatal("Failed to hash demo password", zap.Error(err))
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:            uuid.New(),
		Username:      demoUsername,
		Email:         demoEmail,
		Password:      hashed,
		MonthlyBudget: demoBudget,
		BudgetMonth:   analysis.CurrentMonth(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}

	categories := make([]models.Category, 0, len(models.PredefinedCategories))
	for i, c := range models.PredefinedCategories {
		categories = append(categories, models.Category{
			ID:        uuid.New(),
			UserID:    user.ID,
			Name:      c.Name,
			Icon:      c.Icon,
			Color:     c.Color,
			Position:  i,
			CreatedAt: now,
		})
	}
	if err := categoryRepo.ReplaceAll(ctx, user.ID, categories); err != nil {
		appLogger.Fatal("Failed to seed categories", zap.Error(err))
	}

	items := []models.BudgetItem{
		{Name: "Arriendo", Amount: 280000, Category: models.BudgetItemHipoteca},
		{Name: "Internet", Amount: 25000, Category: models.BudgetItemServicios},
	}
	for i := range items {
		items[i].ID = uuid.New()
		items[i].UserID = user.ID
		items[i].IsRecurring = true
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
		if err := itemRepo.Create(ctx, &items[i]); err != nil {
			appLogger.Fatal("Failed to seed budget item",
				zap.String("name", items[i].Name),
				zap.Error(err),
			)
		}
	}

	appLogger.Info("Database seeding completed",
		zap.String("email", demoEmail),
		zap.Int("categories", len(categories)),
		zap.Int("budget_items", len(items)),
	)
}
