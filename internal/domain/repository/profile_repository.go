package repository

import (
	"context"
	"errors"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a user profile is not found.
var ErrProfileNotFound = errors.New("user profile not found")

// ProfileRepository defines the profile operations the presence subsystem needs.
type ProfileRepository interface {
	// FindByUserID retrieves a profile by the owning user's ID.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// UpdateLastOnline persists the last-seen timestamp for a user.
	UpdateLastOnline(ctx context.Context, userID uuid.UUID, at time.Time) error
}
