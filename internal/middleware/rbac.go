package middleware

import (
	"github.com/gofiber/fiber/v2"

	"gpsphere-backend/internal/domain"
)

// RequireRole gates a route on the role hierarchy (admin > member > student).
// The check runs before the handler, so unauthorized callers never reach the
// store.
func RequireRole(required domain.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		if !user.HasRole(required) {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}
