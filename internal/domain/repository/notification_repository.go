// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
// Create is the sole write path for new rows; flag mutations are row-local and
// require no cross-row locking.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindActiveByRecipient retrieves all active notifications for a recipient
	// in creation order, regardless of prior delivery.
	FindActiveByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error)

	// MarkDelivered flags the given notifications as pushed over a live channel.
	MarkDelivered(ctx context.Context, ids []uuid.UUID) error

	// MarkRead sets the read flag on a notification.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// Deactivate archives a notification so it is never delivered again.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
