package entity

import (
	"time"

	"github.com/google/uuid"
)

// PresenceStatus is the externally visible view of a user's liveness.
// Online reflects the liveness lease in the shared store; absence of the lease
// is equivalent to offline. LastOnline is only written on an observed
// disconnect, so it may lag behind reality for ungraceful drops.
type PresenceStatus struct {
	UserID     uuid.UUID  `json:"user_id"`
	Online     bool       `json:"online"`
	LastOnline *time.Time `json:"last_online,omitempty"`
}
