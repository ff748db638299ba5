package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileModel is the GORM-specific struct for the 'user_profiles' table.
// The table is owned by the host application; this service only reads the
// display name and writes last_online.
type UserProfileModel struct {
	UserID      uuid.UUID  `gorm:"type:uuid;primary_key"`
	DisplayName string     `gorm:"type:text;not null"`
	LastOnline  *time.Time `gorm:""`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
