package service

import (
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationPush is the outbound frame sent over a live notification
// channel, both for catch-up flushes and for live deliveries.
type NotificationPush struct {
	ID                uuid.UUID               `json:"id"`
	Kind              entity.NotificationKind `json:"kind"`
	Message           string                  `json:"message"`
	MessageTranslated string                  `json:"message_translated,omitempty"`
	IsRead            bool                    `json:"is_read"`
	Context           map[string]string       `json:"context,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
}

// PushFromNotification maps a persisted notification to its wire form.
func PushFromNotification(n *entity.Notification) NotificationPush {
	return NotificationPush{
		ID:                n.ID,
		Kind:              n.Kind,
		Message:           n.Message,
		MessageTranslated: n.MessageTranslated,
		IsRead:            n.IsRead,
		Context:           n.Context,
		CreatedAt:         n.CreatedAt,
	}
}

// StatusPush is published on a user's status topic whenever their presence
// changes.
type StatusPush struct {
	Status bool `json:"status"`
}
