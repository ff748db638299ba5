package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// PresenceUsecase drives the liveness lease behind the presence channel.
// Connect, Heartbeat and Disconnect are invoked by the websocket layer;
// Status serves read-side queries.
type PresenceUsecase interface {
	// Connect marks the user online with a bounded lease and publishes a
	// status-change event on the user's status topic.
	Connect(ctx context.Context, userID uuid.UUID) error

	// Heartbeat refreshes the lease. No status event is republished.
	Heartbeat(ctx context.Context, userID uuid.UUID) error

	// Disconnect clears the lease, persists last_online on the user's profile
	// and publishes a status-change event. Called on every connection
	// teardown the server observes; unobserved drops rely on lease expiry.
	Disconnect(ctx context.Context, userID uuid.UUID) error

	// Status reports the user's current liveness and last-seen timestamp.
	Status(ctx context.Context, userID uuid.UUID) (*entity.PresenceStatus, error)
}
