package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for notification read/flag use cases.
// All mutations are scoped to the owning recipient; acting on another user's
// notification yields a forbidden error.
type NotificationUsecase interface {
	// ActiveForRecipient retrieves the recipient's active notifications in
	// creation order, regardless of prior delivery. This is the catch-up set
	// flushed to every newly connected client.
	ActiveForRecipient(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error)

	// MarkDelivered flags notifications as pushed over a live channel.
	MarkDelivered(ctx context.Context, ids []uuid.UUID) error

	// MarkRead sets the read flag on the recipient's own notification.
	MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error

	// Deactivate archives the recipient's own notification.
	Deactivate(ctx context.Context, recipientID, notificationID uuid.UUID) error
}
