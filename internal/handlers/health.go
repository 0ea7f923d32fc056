package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	serviceName    = "Secure User Activity Log App"
	serviceVersion = "1.0.0"
)

// GetHealth is the liveness probe. It deliberately touches neither the
// store nor the session.
func GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"service":   serviceName,
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   serviceVersion,
	})
}
