package impl

import (
	"context"

	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

// ActiveForRecipient retrieves the recipient's active notifications in creation order.
func (s *notificationService) ActiveForRecipient(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error) {
	return s.notificationRepo.FindActiveByRecipient(ctx, recipientID)
}

// MarkDelivered flags notifications as pushed over a live channel.
func (s *notificationService) MarkDelivered(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	return s.notificationRepo.MarkDelivered(ctx, ids)
}

// MarkRead sets the read flag after verifying the caller owns the notification.
func (s *notificationService) MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	if err := s.authorize(ctx, recipientID, notificationID); err != nil {
		return err
	}

	return s.notificationRepo.MarkRead(ctx, notificationID)
}

// Deactivate archives the notification after verifying ownership.
func (s *notificationService) Deactivate(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	if err := s.authorize(ctx, recipientID, notificationID); err != nil {
		return err
	}

	return s.notificationRepo.Deactivate(ctx, notificationID)
}

// authorize loads the notification and checks it belongs to the caller.
func (s *notificationService) authorize(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to load notification")
	}

	if notification.RecipientID != recipientID {
		return domainerrors.ErrNotificationForbidden
	}

	return nil
}
