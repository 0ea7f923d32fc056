package database

import "time"

type AllowedUser struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *AllowedUser) TableName() string {
	return "users"
}

type ActivityLog struct {
	ID           int       `json:"id" gorm:"primaryKey"`
	UserEmail    string    `json:"user_email" gorm:"not null;index"`
	Timestamp    time.Time `json:"timestamp" gorm:"not null"`
	ActivityType string    `json:"activity_type" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *ActivityLog) TableName() string {
	return "user_activity_logs"
}

type UnauthorizedAccess struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
	Reason    string    `json:"reason" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *UnauthorizedAccess) TableName() string {
	return "unauthorized_access_logs"
}
