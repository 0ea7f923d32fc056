package database

import (
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"activitylog/internal/config"
)

func Connect(c *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(c.DatabasePath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	log.Debug("GORM connected to database")

	return db, nil
}

// Initialize creates the three tables if absent and seeds the allow-list.
// Both steps are idempotent and best effort: failures are logged and the
// process keeps starting up.
func Initialize(db *gorm.DB, allowedUsers []string) {
	if err := db.AutoMigrate(&AllowedUser{}, &ActivityLog{}, &UnauthorizedAccess{}); err != nil {
		log.Errorf("failed to initialize database schema: %v", err)
		return
	}

	for _, email := range allowedUsers {
		result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&AllowedUser{Email: email})
		if result.Error != nil {
			log.Errorf("failed to seed allowed user %s: %v", email, result.Error)
		}
	}

	log.Debug("database schema initialized")
}
