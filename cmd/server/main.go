package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"activitylog/internal/config"
	"activitylog/internal/database"
	"activitylog/internal/handlers"
	"activitylog/internal/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	database.Initialize(db, cfg.AllowedUsers)

	sessions := session.New(session.Config{
		KeyGenerator: uuid.NewString,
	})

	app := fiber.New()

	app.Use(compress.New())
	app.Use(helmet.New())
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: cfg.SecretKey,
	}))

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("config", cfg)
		c.Locals("db", db)
		c.Locals("sessions", sessions)
		return c.Next()
	})

	app.Get("/", handlers.GetDashboard)
	app.Post("/", handlers.PostIdentity)
	app.Get("/health", handlers.GetHealth)
	app.Get("/debug", handlers.GetDebug)

	api := app.Group("/api", middleware.AuthMiddleware)
	api.Get("/logs", handlers.GetLogs)
	api.Post("/send-notification", handlers.SendNotification)

	app.Use(func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	log.Fatal(app.Listen(fmt.Sprintf(":%d", cfg.ServerPort)))
}
