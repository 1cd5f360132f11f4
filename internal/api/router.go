package api

import (
	"presupuesto/docs"
	"presupuesto/internal/api/handlers"
	"presupuesto/pkg/auth"
	"presupuesto/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	categoryHandler *handlers.CategoryHandler,
	budgetHandler *handlers.BudgetHandler,
	txHandler *handlers.TransactionHandler,
	analysisHandler *handlers.AnalysisHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo // ensure docs package is imported and init() is called
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	protected.Get("/profile", profileHandler.GetProfile)
	protected.Delete("/profile", profileHandler.DeleteProfile)

	categories := protected.Group("/categories")
	categories.Get("", categoryHandler.ListCategories)
	categories.Put("", categoryHandler.ReplaceCategories)
	categories.Get("/predefined", categoryHandler.PredefinedCategories)
	categories.Get("/detect", categoryHandler.DetectCategory)
	categories.Get("/suggest", categoryHandler.SuggestCategories)
	categories.Get("/:name/keywords", categoryHandler.ListKeywords)
	categories.Post("/:name/keywords", categoryHandler.AddKeywords)

	budget := protected.Group("/budget")
	budget.Put("", budgetHandler.UpdateBudget)
	budget.Get("/remaining", budgetHandler.RemainingBudget)
	budget.Get("/items", budgetHandler.ListBudgetItems)
	budget.Post("/items", budgetHandler.AddBudgetItem)
	budget.Put("/items/:id", budgetHandler.UpdateBudgetItem)
	budget.Delete("/items/:id", budgetHandler.DeleteBudgetItem)

	transactions := protected.Group("/transactions")
	transactions.Get("", txHandler.ListTransactions)
	transactions.Post("", txHandler.AddTransaction)
	transactions.Post("/import", txHandler.ImportTransactions)
	transactions.Post("/parse", txHandler.ParseExpense)
	transactions.Put("/:id", txHandler.UpdateTransaction)
	transactions.Delete("/:id", txHandler.DeleteTransaction)

	protected.Get("/analysis", analysisHandler.MonthlyAnalysis)

	return app
}
