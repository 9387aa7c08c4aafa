// Package model defines the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	Name          string    `gorm:"type:varchar(100)"`
	EmailVerified bool      `gorm:"not null;default:false"`
	Role          *string   `gorm:"type:varchar(20)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Identities []AuthIdentityModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Sessions   []AuthSessionModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
