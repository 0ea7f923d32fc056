package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"activitylog/internal/config"
	"activitylog/internal/platform/access"
	"activitylog/internal/platform/activity"
	"activitylog/internal/platform/identity"
)

// GetDashboard renders the main page as JSON: an identity prompt for
// anonymous visitors, an unauthorized notice for emails outside the
// allow-list, or the dashboard with the most recent activity. An authorized
// view records a "Page Load" entry before reading the log back.
func GetDashboard(c *fiber.Ctx) error {
	db := c.Locals("db").(*gorm.DB)
	store := c.Locals("sessions").(*session.Store)

	resolver := identity.NewResolver(store)
	id, ok := resolver.Current(c, c.Query("email"))
	if !ok {
		return c.JSON(fiber.Map{
			"state":   "anonymous",
			"message": "Enter your email address to continue",
		})
	}

	gate := access.NewService(db)
	if decision := gate.Authorize(id.Email); !decision.Allowed {
		return c.JSON(fiber.Map{
			"state":      "unauthorized",
			"user_email": id.Email,
			"user_name":  id.DisplayName,
			"reason":     decision.Reason,
		})
	}

	activityService := activity.NewService(db)
	if err := activityService.Record(id.Email, activity.TypePageLoad); err != nil {
		// The dashboard still renders; the page load entry is lost.
		log.Errorf("%v", err)
	}

	return c.JSON(fiber.Map{
		"state":      "dashboard",
		"user_email": id.Email,
		"user_name":  id.DisplayName,
		"logs":       activityService.RecentFor(id.Email, activity.DefaultLimit),
	})
}

// PostIdentity establishes the claimed identity from the submitted form.
func PostIdentity(c *fiber.Ctx) error {
	store := c.Locals("sessions").(*session.Store)

	type IdentityInput struct {
		Email string `form:"email" validate:"required,email"`
	}

	var input IdentityInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	if err := config.Validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	resolver := identity.NewResolver(store)
	if _, err := resolver.Establish(c, input.Email); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}
