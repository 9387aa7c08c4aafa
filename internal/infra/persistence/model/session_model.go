package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthSessionModel mirrors the 'auth_sessions' table. One row is one
// logged-in device; the refresh token is unique across all sessions.
type AuthSessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	IPAddress *string   `gorm:"type:varchar(45)"`
	UserAgent *string   `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthSessionModel) TableName() string {
	return "auth_sessions"
}
