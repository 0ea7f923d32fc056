package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"activitylog/internal/config"
	"activitylog/internal/mail"
	"activitylog/internal/platform/activity"
)

// SendNotification records a "Notification Sent" entry and, when Mailgun is
// configured, delivers a notification email. Mail delivery is best effort:
// a failed send is logged but the request still succeeds.
func SendNotification(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	db := c.Locals("db").(*gorm.DB)
	email := c.Locals("user_email").(string)
	name := c.Locals("user_name").(string)

	activityService := activity.NewService(db)
	if err := activityService.Record(email, activity.TypeNotificationSent); err != nil {
		log.Errorf("%v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send notification"})
	}

	if cfg.MailEnabled() {
		message := mail.Email{
			Subject: "You have a new notification",
			Body:    fmt.Sprintf("Hello %s, a notification was sent to your activity log.", name),
			From:    cfg.NotificationFrom,
			To:      []string{email},
		}

		mailer := mail.NewMailer(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunAPIBase)
		if err := mailer.SendMail(&message); err != nil {
			log.Errorf("failed to deliver notification mail to %s: %v", email, err)
		}
	}

	now := time.Now()

	return c.JSON(fiber.Map{
		"status":     "Notification sent successfully!",
		"message_id": fmt.Sprintf("msg-%s", now.Format("20060102150405")),
		"user_email": email,
		"timestamp":  now.Format(time.RFC3339),
	})
}
