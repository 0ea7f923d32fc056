package activity

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"activitylog/internal/database"
)

const (
	TypePageLoad         = "Page Load"
	TypeNotificationSent = "Notification Sent"
)

const DefaultLimit = 10

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Record appends one activity entry for the user. Entries are never
// deduplicated; repeated calls produce repeated entries.
func (s *Service) Record(email, activityType string) error {
	entry := database.ActivityLog{
		UserEmail:    email,
		Timestamp:    time.Now(),
		ActivityType: activityType,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record activity for %s: %w", email, err)
	}

	return nil
}

// RecentFor returns at most limit entries for the user, newest first.
// Degrades to an empty slice on store failure; callers cannot tell an
// empty log from an unreachable store.
func (s *Service) RecentFor(email string, limit int) []database.ActivityLog {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var entries []database.ActivityLog
	result := s.db.Where("user_email = ?", email).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		log.Errorf("failed to fetch recent activity for %s: %v", email, result.Error)
		return []database.ActivityLog{}
	}

	return entries
}
