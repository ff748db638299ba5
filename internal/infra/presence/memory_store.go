// Package presence contains the concrete liveness lease stores.
package presence

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const janitorInterval = 30 * time.Second

// memoryStore keeps liveness leases in-process. Expiry is checked on read and
// a janitor sweeps lapsed leases so the map does not grow with users nobody
// queries.
type memoryStore struct {
	mu     sync.Mutex
	leases map[uuid.UUID]time.Time
	stop   chan struct{}
	once   sync.Once
}

// NewMemoryStore creates an in-process presence store and starts its janitor.
func NewMemoryStore() *memoryStore {
	store := &memoryStore{
		leases: make(map[uuid.UUID]time.Time),
		stop:   make(chan struct{}),
	}
	go store.janitor()

	return store
}

func (s *memoryStore) SetOnline(_ context.Context, userID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leases[userID] = time.Now().Add(ttl)

	return nil
}

func (s *memoryStore) Refresh(ctx context.Context, userID uuid.UUID, ttl time.Duration) error {
	return s.SetOnline(ctx, userID, ttl)
}

func (s *memoryStore) SetOffline(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.leases, userID)

	return nil
}

func (s *memoryStore) IsOnline(_ context.Context, userID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline, ok := s.leases[userID]
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		delete(s.leases, userID)

		return false, nil
	}

	return true, nil
}

// Close stops the janitor.
func (s *memoryStore) Close() error {
	s.once.Do(func() {
		close(s.stop)
	})

	return nil
}

func (s *memoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for userID, deadline := range s.leases {
				if now.After(deadline) {
					delete(s.leases, userID)
				}
			}
			s.mu.Unlock()
		}
	}
}
