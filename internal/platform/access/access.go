package access

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"activitylog/internal/database"
)

const ReasonNotInAllowedList = "User not in allowed list"

// Decision is the outcome of an authorization check. A rejection is a
// normal outcome, not an error.
type Decision struct {
	Allowed bool
	Reason  string
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Authorize checks the claimed email against the allow-list. Every call
// re-queries the store; no caching. A rejected email leaves exactly one
// unauthorized access entry in the audit trail. When the store itself is
// unreachable everyone is rejected.
func (s *Service) Authorize(email string) Decision {
	if email == "" {
		return s.reject(email)
	}

	var user database.AllowedUser
	result := s.db.First(&user, "email = ?", email)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Errorf("allow-list lookup failed for %s: %v", email, result.Error)
		}
		return s.reject(email)
	}

	return Decision{Allowed: true}
}

func (s *Service) reject(email string) Decision {
	entry := database.UnauthorizedAccess{
		Email:     email,
		Timestamp: time.Now(),
		Reason:    ReasonNotInAllowedList,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Errorf("failed to record unauthorized access for %s: %v", email, err)
	}

	return Decision{Allowed: false, Reason: ReasonNotInAllowedList}
}
