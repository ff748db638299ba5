package fabric

import (
	"context"
	"log/slog"
	"sync"

	"beacon/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisFabric implements the broadcast fabric on redis Pub/Sub, allowing
// dispatcher and channels to live in different processes. Redis Pub/Sub has
// exactly the durability contract the fabric requires: messages published to
// a channel with no subscriber are dropped.
type redisFabric struct {
	client  *redis.Client
	logger  *slog.Logger
	bufSize int
}

// NewRedisFabric creates a fabric backed by redis Pub/Sub.
func NewRedisFabric(client *redis.Client, logger *slog.Logger, bufSize int) service.Fabric {
	if bufSize <= 0 {
		bufSize = 64
	}

	return &redisFabric{
		client:  client,
		logger:  logger,
		bufSize: bufSize,
	}
}

// Publish sends the payload on the redis channel named by the topic.
func (f *redisFabric) Publish(ctx context.Context, topic string, payload []byte) error {
	if err := f.client.Publish(ctx, topic, payload).Err(); err != nil {
		return errors.Wrapf(err, "failed to publish to %s", topic)
	}

	return nil
}

// Subscribe opens one redis subscription per topic attachment.
func (f *redisFabric) Subscribe(ctx context.Context, topic string) (service.Subscription, error) {
	pubsub := f.client.Subscribe(ctx, topic)

	// Wait for the subscription to be confirmed so payloads published right
	// after Subscribe returns are not missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()

		return nil, errors.Wrapf(err, "failed to subscribe to %s", topic)
	}

	out := make(chan []byte, f.bufSize)
	sub := &redisSubscription{pubsub: pubsub, ch: out}

	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			select {
			case out <- []byte(msg.Payload):
			default:
				f.logger.Debug("Redis fabric subscriber buffer full, dropping payload",
					slog.String("topic", topic),
				)
			}
		}
	}()

	return sub, nil
}

// Close is a no-op for the shared client; its lifecycle is owned by the
// connection provider.
func (f *redisFabric) Close() error {
	return nil
}

type redisSubscription struct {
	pubsub *redis.PubSub
	ch     chan []byte
	once   sync.Once
	err    error
}

func (s *redisSubscription) C() <-chan []byte {
	return s.ch
}

func (s *redisSubscription) Close() error {
	s.once.Do(func() {
		s.err = s.pubsub.Close()
	})

	return s.err
}
