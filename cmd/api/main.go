package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"compliance-tracker/internal/config"
	"compliance-tracker/internal/handler"
	"compliance-tracker/internal/middleware"
	"compliance-tracker/internal/pkg/logger"
	"compliance-tracker/internal/repository"
	"compliance-tracker/internal/seed"
	"compliance-tracker/internal/service"
	"compliance-tracker/internal/service/auth"
	"compliance-tracker/internal/validate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		zapLogger.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		zapLogger.Warn("MinIO unavailable, CSV exports will not be archived", zap.Error(err))
		minioClient = nil
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, cfg, zapLogger)
	validator := validate.NewValidator(zapLogger)
	handlers := handler.NewHandlers(services, validator, zapLogger)

	if err := seed.Run(context.Background(), repos, services, cfg, zapLogger); err != nil {
		zapLogger.Fatal("seeding failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(middleware.Session())

	setupRoutes(app, handlers, services.Auth)

	zapLogger.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	api.Post("/auth/login", h.Auth.Login)
	api.Post("/auth/logout", h.Auth.Logout)
	api.Post("/client-errors", h.Public.ClientError)
	api.Get("/export/csv", h.CSV.Export)

	regulations := api.Group("/regulations")
	regulations.Get("/", h.Regulation.List)
	regulations.Get("/locations", h.Regulation.Locations)
	regulations.Get("/:regulationId", h.Regulation.Get)

	searchGroup := api.Group("/search")
	searchGroup.Get("/advanced", h.Search.AdvancedSearch)
	searchGroup.Get("/suggestions", h.Search.Suggestions)
	searchGroup.Get("/saved", h.Search.ListSavedSearches)
	searchGroup.Post("/saved", h.Search.SaveSearch)
	searchGroup.Post("/saved/:searchId/use", h.Search.UseSavedSearch)

	updates := api.Group("/updates")
	updates.Get("/", h.Update.List)
	updates.Get("/board", h.Update.Board)
	updates.Get("/search", h.Update.Search)
	updates.Get("/category/:category", h.Update.ListByCategory)
	updates.Get("/status/:status", h.Update.ListByStatus)
	updates.Get("/bookmarks", h.Update.Bookmarks)
	updates.Get("/reminders", h.Update.ListReminders)
	updates.Delete("/reminders/:reminderId", h.Update.DeleteReminder)
	updates.Get("/:updateId", h.Update.Get)
	updates.Post("/:updateId/bookmark", h.Update.Bookmark)
	updates.Post("/:updateId/read", h.Update.MarkRead)
	updates.Post("/:updateId/reminders", h.Update.CreateReminder)

	notifications := api.Group("/notifications")
	notifications.Get("/preferences", h.Notification.GetPreferences)
	notifications.Put("/preferences", h.Notification.SavePreferences)
	notifications.Get("/alerts", h.Notification.Alerts)

	admin := api.Group("/admin", middleware.AdminRequired(authService))

	admin.Get("/dashboard", h.Dashboard.Stats)

	adminRegulations := admin.Group("/regulations")
	adminRegulations.Post("/", h.Regulation.Create)
	adminRegulations.Put("/:regulationId", h.Regulation.Edit)
	adminRegulations.Delete("/:regulationId", h.Regulation.Delete)

	adminUpdates := admin.Group("/updates")
	adminUpdates.Post("/", h.Update.Create)
	adminUpdates.Get("/deadlines", h.Update.DeadlineReminders)
	adminUpdates.Post("/bulk-status", h.Update.BulkSetStatus)
	adminUpdates.Post("/bulk-delete", h.Update.BulkDelete)
	adminUpdates.Put("/:updateId", h.Update.Edit)
	adminUpdates.Delete("/:updateId", h.Update.Delete)

	adminUpdates.Get("/export", h.CSV.Export)
	adminUpdates.Post("/import", h.CSV.Import)
}
