package service

import (
	"context"

	"github.com/google/uuid"
)

// Subscription is one live attachment to a topic. The receive channel is
// closed when the subscription ends.
type Subscription interface {
	// C returns the channel carrying payloads published to the topic.
	C() <-chan []byte

	// Close releases the subscription. Safe to call more than once.
	Close() error
}

// Fabric is the process-wide publish/subscribe layer both channels multiplex
// over. It provides no durability: a payload published to a topic with no
// active subscriber is silently dropped. Durability of notifications comes
// from the persisted store and catch-up-on-connect, never from the fabric.
type Fabric interface {
	// Publish sends a payload to every current subscriber of the topic.
	Publish(ctx context.Context, topic string, payload []byte) error

	// Subscribe attaches to a topic and returns a live subscription.
	Subscribe(ctx context.Context, topic string) (Subscription, error)

	// Close releases the fabric and ends all subscriptions.
	Close() error
}

// NotificationTopic names the per-user topic carrying notification payloads.
func NotificationTopic(userID uuid.UUID) string {
	return "notify." + userID.String()
}

// StatusTopic names the per-user topic carrying presence status changes.
func StatusTopic(userID uuid.UUID) string {
	return "status." + userID.String()
}
