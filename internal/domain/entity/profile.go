package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile carries the profile fields the presence subsystem touches.
// The full profile is owned by the host application; this service only reads
// the display name and writes last_online.
type UserProfile struct {
	UserID      uuid.UUID  `json:"user_id"`
	DisplayName string     `json:"display_name"`
	LastOnline  *time.Time `json:"last_online,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
