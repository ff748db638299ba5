package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	RecipientID       uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_recipient_active"`
	Kind              string    `gorm:"type:text;not null"`
	Message           string    `gorm:"type:text;not null"`
	MessageTranslated string    `gorm:"type:text"`
	IsRead            bool      `gorm:"not null;default:false"`
	IsActive          bool      `gorm:"not null;default:true;index:idx_notifications_recipient_active"`
	Delivered         bool      `gorm:"not null;default:false"`
	Context           []byte    `gorm:"type:jsonb"`
	CreatedAt         time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
