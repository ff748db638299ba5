package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type presenceService struct {
	store       service.PresenceStore
	fabric      service.Fabric
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
	leaseTTL    time.Duration
}

// NewPresenceService creates the presence use case. The lease TTL is derived
// from the configured heartbeat interval so a single missed heartbeat does not
// flap the user offline.
func NewPresenceService(
	cfg *config.Config,
	logger *slog.Logger,
	store service.PresenceStore,
	fabric service.Fabric,
	profileRepo repository.ProfileRepository,
) usecase.PresenceUsecase {
	return &presenceService{
		store:       store,
		fabric:      fabric,
		profileRepo: profileRepo,
		logger:      logger,
		leaseTTL:    cfg.Presence.LeaseTTL(),
	}
}

// Connect marks the user online and announces the change on their status topic.
func (s *presenceService) Connect(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.SetOnline(ctx, userID, s.leaseTTL); err != nil {
		return errors.Wrap(err, "failed to set liveness flag")
	}

	s.publishStatus(ctx, userID, true)

	return nil
}

// Heartbeat refreshes the liveness lease.
func (s *presenceService) Heartbeat(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.Refresh(ctx, userID, s.leaseTTL); err != nil {
		return errors.Wrap(err, "failed to refresh liveness flag")
	}

	return nil
}

// Disconnect clears the lease, records last_online and announces the change.
// Lease clearing is last-write-wins: if another connection for the same user
// is still live, its next heartbeat re-establishes the flag.
func (s *presenceService) Disconnect(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.SetOffline(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear liveness flag")
	}

	if err := s.profileRepo.UpdateLastOnline(ctx, userID, time.Now()); err != nil {
		s.logger.Warn("Failed to persist last_online",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}

	s.publishStatus(ctx, userID, false)

	return nil
}

// Status reports liveness from the shared store plus the profile's last-seen
// timestamp.
func (s *presenceService) Status(ctx context.Context, userID uuid.UUID) (*entity.PresenceStatus, error) {
	online, err := s.store.IsOnline(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read liveness flag")
	}

	status := &entity.PresenceStatus{
		UserID: userID,
		Online: online,
	}

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return status, nil
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}
	status.LastOnline = profile.LastOnline

	return status, nil
}

func (s *presenceService) publishStatus(ctx context.Context, userID uuid.UUID, online bool) {
	payload, err := json.Marshal(service.StatusPush{Status: online})
	if err != nil {
		return
	}

	if err := s.fabric.Publish(ctx, service.StatusTopic(userID), payload); err != nil {
		s.logger.Warn("Failed to publish status change",
			slog.String("user_id", userID.String()),
			slog.Bool("online", online),
			slog.Any("error", err),
		)
	}
}
