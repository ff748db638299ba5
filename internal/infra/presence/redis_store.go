package presence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisStore keeps liveness leases as redis keys with a TTL. The key is
// allowed to lapse on its own for ungraceful disconnects; only observed
// disconnects delete it explicitly.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a presence store on a shared redis client.
func NewRedisStore(client *redis.Client) *redisStore {
	return &redisStore{client: client}
}

func presenceKey(userID uuid.UUID) string {
	return "presence:" + userID.String()
}

func (s *redisStore) SetOnline(ctx context.Context, userID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, presenceKey(userID), "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set presence key")
	}

	return nil
}

func (s *redisStore) Refresh(ctx context.Context, userID uuid.UUID, ttl time.Duration) error {
	// EXPIRE on a lapsed key is a no-op, so fall back to re-creating the
	// lease; a heartbeat from a live connection always means online.
	ok, err := s.client.Expire(ctx, presenceKey(userID), ttl).Result()
	if err != nil {
		return errors.Wrap(err, "failed to refresh presence key")
	}
	if !ok {
		return s.SetOnline(ctx, userID, ttl)
	}

	return nil
}

func (s *redisStore) SetOffline(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, presenceKey(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete presence key")
	}

	return nil
}

func (s *redisStore) IsOnline(ctx context.Context, userID uuid.UUID) (bool, error) {
	n, err := s.client.Exists(ctx, presenceKey(userID)).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check presence key")
	}

	return n > 0, nil
}
