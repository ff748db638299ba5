// Package fabric contains the concrete broadcast fabric implementations.
package fabric

import (
	"context"
	"sync"

	"beacon/internal/domain/service"

	"github.com/pkg/errors"
)

// memoryFabric is a single-process fan-out hub. Each subscription owns a
// buffered channel; publishing never blocks, a full subscriber simply loses
// that payload. Losing a live payload is safe because the persisted store
// provides catch-up delivery on the next connect.
type memoryFabric struct {
	mu      sync.RWMutex
	topics  map[string]map[uint64]chan []byte
	nextID  uint64
	bufSize int
	closed  bool
}

// NewMemoryFabric creates an in-process fabric with the given per-subscriber
// buffer depth.
func NewMemoryFabric(bufSize int) service.Fabric {
	if bufSize <= 0 {
		bufSize = 64
	}

	return &memoryFabric{
		topics:  make(map[string]map[uint64]chan []byte),
		bufSize: bufSize,
	}
}

// Publish delivers the payload to every current subscriber of the topic.
// Topics with no subscriber drop the payload silently.
func (f *memoryFabric) Publish(_ context.Context, topic string, payload []byte) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return errors.New("fabric is closed")
	}

	for _, ch := range f.topics[topic] {
		select {
		case ch <- payload:
		default:
			// subscriber buffer full, drop for this subscriber only
		}
	}

	return nil
}

// Subscribe attaches a new buffered subscription to the topic.
func (f *memoryFabric) Subscribe(_ context.Context, topic string) (service.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, errors.New("fabric is closed")
	}

	ch := make(chan []byte, f.bufSize)
	id := f.nextID
	f.nextID++

	if f.topics[topic] == nil {
		f.topics[topic] = make(map[uint64]chan []byte)
	}
	f.topics[topic][id] = ch

	return &memorySubscription{fabric: f, topic: topic, id: id, ch: ch}, nil
}

// Close ends every subscription and rejects further use.
func (f *memoryFabric) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true

	for topic, subs := range f.topics {
		for id, ch := range subs {
			delete(subs, id)
			close(ch)
		}
		delete(f.topics, topic)
	}

	return nil
}

func (f *memoryFabric) unsubscribe(topic string, id uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	subs, ok := f.topics[topic]
	if !ok {
		return
	}

	if ch, ok := subs[id]; ok {
		delete(subs, id)
		close(ch)
	}
	if len(subs) == 0 {
		delete(f.topics, topic)
	}
}

type memorySubscription struct {
	fabric *memoryFabric
	topic  string
	id     uint64
	ch     chan []byte
	once   sync.Once
}

func (s *memorySubscription) C() <-chan []byte {
	return s.ch
}

func (s *memorySubscription) Close() error {
	s.once.Do(func() {
		s.fabric.unsubscribe(s.topic, s.id)
	})

	return nil
}
