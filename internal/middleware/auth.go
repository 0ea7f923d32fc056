package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"activitylog/internal/platform/access"
	"activitylog/internal/platform/identity"
)

// AuthMiddleware guards the /api group. The claimed email comes from the
// session, a user_email query parameter, or a JSON body, in that order.
// Anonymous requests get 401; emails outside the allow-list get 403 and an
// unauthorized access audit entry.
func AuthMiddleware(c *fiber.Ctx) error {
	db := c.Locals("db").(*gorm.DB)
	store := c.Locals("sessions").(*session.Store)

	fallback := c.Query("user_email")
	if fallback == "" && c.Method() == fiber.MethodPost {
		var body struct {
			UserEmail string `json:"user_email"`
		}
		if err := c.BodyParser(&body); err == nil {
			fallback = body.UserEmail
		}
	}

	resolver := identity.NewResolver(store)
	id, ok := resolver.Current(c, fallback)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}

	gate := access.NewService(db)
	if decision := gate.Authorize(id.Email); !decision.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	c.Locals("user_email", id.Email)
	c.Locals("user_name", id.DisplayName)

	return c.Next()
}
