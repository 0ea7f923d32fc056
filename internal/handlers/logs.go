package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"activitylog/internal/platform/activity"
)

// GetLogs returns the ten most recent activity entries for the
// authenticated user.
func GetLogs(c *fiber.Ctx) error {
	db := c.Locals("db").(*gorm.DB)
	email := c.Locals("user_email").(string)

	activityService := activity.NewService(db)

	return c.JSON(fiber.Map{
		"logs": activityService.RecentFor(email, activity.DefaultLimit),
	})
}
