package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthIdentityModel mirrors the 'auth_identities' table. One row binds a user
// to one authentication method; the (provider, account_id) pair is unique.
type AuthIdentityModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_identity_provider_account"`
	AccountID    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_identity_provider_account;index"`
	PasswordHash *string   `gorm:"type:varchar(255)"`

	AccessToken           *string `gorm:"type:text"`
	RefreshToken          *string `gorm:"type:text"`
	AccessTokenExpiresAt  *time.Time
	RefreshTokenExpiresAt *time.Time
	Scope                 *string `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthIdentityModel) TableName() string {
	return "auth_identities"
}
