package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"activitylog/internal/config"
	"activitylog/internal/database"
	"activitylog/internal/platform/identity"
)

// GetDebug dumps aggregate counts, the allow-list, recent log entries and
// the raw session state. It discloses everything the service knows, so it
// stays disabled unless DEBUG_ENDPOINT is set.
func GetDebug(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	if !cfg.DebugEndpoint {
		return c.SendStatus(fiber.StatusNotFound)
	}

	db := c.Locals("db").(*gorm.DB)
	store := c.Locals("sessions").(*session.Store)

	var userCount, activityCount, unauthorizedCount int64
	db.Model(&database.AllowedUser{}).Count(&userCount)
	db.Model(&database.ActivityLog{}).Count(&activityCount)
	db.Model(&database.UnauthorizedAccess{}).Count(&unauthorizedCount)

	var recentActivity []database.ActivityLog
	db.Order("id DESC").Limit(10).Find(&recentActivity)

	var recentUnauthorized []database.UnauthorizedAccess
	db.Order("id DESC").Limit(10).Find(&recentUnauthorized)

	resolver := identity.NewResolver(store)

	return c.JSON(fiber.Map{
		"users_count":           userCount,
		"activity_logs_count":   activityCount,
		"unauthorized_attempts": unauthorizedCount,
		"allowed_users":         cfg.AllowedUsers,
		"recent_activity":       recentActivity,
		"recent_unauthorized":   recentUnauthorized,
		"session_data":          resolver.Contents(c),
	})
}
