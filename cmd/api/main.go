package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"gpsphere-backend/internal/config"
	"gpsphere-backend/internal/domain"
	"gpsphere-backend/internal/handler"
	"gpsphere-backend/internal/middleware"
	"gpsphere-backend/internal/repository"
	"gpsphere-backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (knowledge caching disabled)", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (profile picture upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, cfg)
	handlers := handler.NewHandlers(services, db, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services, cfg)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, services *service.Services, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	// One-time bootstrap, capability-gated outside the notifier core.
	v1.Post("/init", middleware.InitGuard(cfg), h.Init.Run)

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/verify-tac", h.Auth.VerifyTAC)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)

	protected := v1.Group("", middleware.AuthRequired(services.Auth))

	users := protected.Group("/users")
	users.Get("/me", h.User.GetProfile)
	users.Post("/me/profile-picture", h.User.UploadProfilePicture)
	users.Get("/", middleware.RequireRole(domain.RoleAdmin), h.User.ListPending)
	users.Post("/:id/approve", middleware.RequireRole(domain.RoleAdmin), h.User.Approve)
	users.Delete("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Delete)

	events := protected.Group("/events")
	events.Get("/", h.Event.List)
	events.Get("/:id", h.Event.Get)
	events.Post("/", middleware.RequireRole(domain.RoleAdmin), h.Event.Create)
	events.Put("/:id", middleware.RequireRole(domain.RoleAdmin), h.Event.Update)
	events.Post("/:id/finish", middleware.RequireRole(domain.RoleAdmin), h.Event.Finish)
	events.Delete("/:id", middleware.RequireRole(domain.RoleAdmin), h.Event.Delete)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)
	notifications.Post("/notify-upcoming", middleware.RequireRole(domain.RoleAdmin), h.Notification.NotifyUpcoming)

	chatbot := protected.Group("/chatbot/knowledge", middleware.RequireRole(domain.RoleAdmin))
	chatbot.Get("/", h.Knowledge.List)
	chatbot.Get("/:id", h.Knowledge.Get)
	chatbot.Post("/", h.Knowledge.Create)
	chatbot.Put("/:id", h.Knowledge.Update)
	chatbot.Delete("/:id", h.Knowledge.Delete)
	chatbot.Patch("/:id/toggle", h.Knowledge.ToggleActive)
}
