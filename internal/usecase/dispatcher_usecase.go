package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// DomainEvent is a notification-worthy application occurrence: a new review,
// follow, friend request, message, shared game or list, or chat message.
// Context carries the kind-specific fields the message template needs
// (sender_name, game_title, profile_url, ...).
type DomainEvent struct {
	Kind        entity.NotificationKind `json:"kind"`
	RecipientID uuid.UUID               `json:"recipient_id"`
	Context     map[string]string       `json:"context,omitempty"`
}

// NotificationDispatcher turns domain events into persisted notifications and
// publishes them to the recipient's notification topic. It is the sole write
// path for notifications. Publishing is fire-and-forget: failing to reach a
// live subscriber is not an error, the row remains for catch-up. A store
// failure is returned so the caller can report it, but callers must never
// fail the triggering domain action on it.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, event DomainEvent) (*entity.Notification, error)
}
