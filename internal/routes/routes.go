// Package routes defines the API routing configuration. It wires the
// repositories, services and handlers together and groups the routes
// by view.
package routes

import (
	"creditsmart/internal/handlers"
	"creditsmart/internal/repositories"
	"creditsmart/internal/services/application"
	"creditsmart/internal/services/catalog"
	"creditsmart/internal/services/simulator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRoutes builds the dependency graph once at startup and mounts
// every endpoint. All consumers share the same repository instances.
func SetupRoutes(app *fiber.App, db *gorm.DB, log *logrus.Logger) {
	// Initialize repositories
	creditRepo := repositories.NewCreditRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	// Initialize services
	catalogService := catalog.NewService(creditRepo, log)
	simulatorService := simulator.NewService(creditRepo)
	applicationService := application.NewService(applicationRepo, creditRepo, log)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	simulatorHandler := handlers.NewSimulatorHandler(simulatorService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to CreditSmart API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	// Catalog view
	credits := api.Group("/credits")
	credits.Get("/", catalogHandler.ListProducts)
	credits.Get("/:id", catalogHandler.GetProduct)
	credits.Post("/", catalogHandler.CreateProduct)

	// Simulator view
	api.Get("/simulator", simulatorHandler.Simulate)

	// Application form
	api.Post("/calculator", applicationHandler.GetQuote)
	api.Post("/applications", applicationHandler.Submit)

	// Applications review view
	api.Get("/applications", applicationHandler.List)
	api.Get("/applications/search", applicationHandler.Search)
	api.Get("/applications/stats", applicationHandler.Stats)
	api.Get("/applications/:id", applicationHandler.Get)
}
