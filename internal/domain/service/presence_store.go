package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PresenceStore holds the liveness lease for each user. The lease exists only
// while at least one live connection has sent a heartbeat within the TTL;
// absence of the lease means offline. Writers race on the expiry timestamp
// with last-write-wins semantics, which is acceptable because all writers
// agree on "now".
type PresenceStore interface {
	// SetOnline creates or overwrites the liveness lease with the given TTL.
	SetOnline(ctx context.Context, userID uuid.UUID, ttl time.Duration) error

	// Refresh resets the lease expiry. If the lease already lapsed, the user
	// is simply marked online again.
	Refresh(ctx context.Context, userID uuid.UUID, ttl time.Duration) error

	// SetOffline removes the lease immediately.
	SetOffline(ctx context.Context, userID uuid.UUID) error

	// IsOnline reports whether an unexpired lease exists for the user.
	IsOnline(ctx context.Context, userID uuid.UUID) (bool, error)
}
