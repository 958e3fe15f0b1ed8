package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"gpsphere-backend/internal/config"
)

// InitGuard is the capability check for the one-time initialization
// endpoint: the caller must present the configured secret, or the process
// must be running outside production.
func InitGuard(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.IsDevelopment() {
			return c.Next()
		}

		provided := c.Query("secret")
		if provided == "" {
			var body struct {
				Secret string `json:"secret"`
			}
			if err := c.BodyParser(&body); err == nil {
				provided = body.Secret
			}
		}

		if cfg.InitSecret == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.InitSecret)) != 1 {
			return Forbidden("Unauthorized. Provide ?secret=YOUR_INIT_SECRET or set INIT_SECRET.")
		}

		return c.Next()
	}
}
