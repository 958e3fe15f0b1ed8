package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"gpsphere-backend/internal/config"
	"gpsphere-backend/internal/repository"
)

// InitHandler exposes the one-time schema bootstrap over HTTP. Access is
// gated by middleware.InitGuard before this handler runs.
type InitHandler struct {
	db  *sqlx.DB
	cfg *config.Config
}

func NewInitHandler(db *sqlx.DB, cfg *config.Config) *InitHandler {
	return &InitHandler{db: db, cfg: cfg}
}

func (h *InitHandler) Run(c *fiber.Ctx) error {
	log.Println("Starting database initialization via API...")

	results, err := repository.Bootstrap(c.Context(), h.db, h.cfg.AdminEmail, h.cfg.AdminPassword)
	if err != nil {
		log.Printf("Database initialization failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Database initialization failed")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Database initialized successfully",
		"results": results,
	})
}
