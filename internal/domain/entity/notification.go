// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind enumerates the domain events that produce notifications.
type NotificationKind string

const (
	KindReview         NotificationKind = "review"
	KindFollow         NotificationKind = "follow"
	KindFriendRequest  NotificationKind = "friend_request"
	KindMessage        NotificationKind = "message"
	KindChatMessage    NotificationKind = "chat_message"
	KindSharedGame     NotificationKind = "shared_game"
	KindSharedGameList NotificationKind = "shared_game_list"
	KindSharedPoll     NotificationKind = "shared_poll"
)

// Valid reports whether the kind is one of the known notification kinds.
func (k NotificationKind) Valid() bool {
	switch k {
	case KindReview, KindFollow, KindFriendRequest, KindMessage,
		KindChatMessage, KindSharedGame, KindSharedGameList, KindSharedPoll:
		return true
	}

	return false
}

// Notification is a persisted message addressed to exactly one recipient.
// Rows are write-once except for the read/active/delivered flags; the read and
// active flags are mutated only by the owning recipient.
type Notification struct {
	ID                uuid.UUID         `json:"id"`                 // The Global Unique Identifier (GUID) for the notification.
	RecipientID       uuid.UUID         `json:"recipient_id"`       // The user this notification is addressed to.
	Kind              NotificationKind  `json:"kind"`               // The domain event that produced this notification.
	Message           string            `json:"message"`            // Rendered message text.
	MessageTranslated string            `json:"message_translated"` // Localized variant of the message.
	IsRead            bool              `json:"is_read"`            // Whether the recipient has read the notification.
	IsActive          bool              `json:"is_active"`          // Inactive notifications are never delivered.
	Delivered         bool              `json:"delivered"`          // Set once the payload was pushed over a live channel.
	Context           map[string]string `json:"context,omitempty"`  // Kind-specific fields used to render the client view.
	CreatedAt         time.Time         `json:"created_at"`         // Timestamp of when this record was created.
}
