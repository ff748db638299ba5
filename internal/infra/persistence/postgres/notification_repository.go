// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM, err := fromNotificationDomain(notification)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingEventContext.WrapMessage("missing required notification fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM)
}

// FindActiveByRecipient retrieves all active notifications for a recipient in
// creation order. Ordering beyond commit order for rows created in the same
// instant is not guaranteed; the store's ordering is the contract.
func (repo *notificationRepository) FindActiveByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("recipient_id = ? AND is_active = ?", recipientID, true).
		Order("created_at ASC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notification, err := toNotificationDomain(notificationM)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

// MarkDelivered flags the given notifications as pushed over a live channel.
func (repo *notificationRepository) MarkDelivered(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id IN ?", ids).
		Update("delivered", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark notifications delivered")
	}

	return nil
}

// MarkRead sets the read flag on a notification.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return repo.updateFlag(ctx, id, "is_read", true)
}

// Deactivate archives a notification so it is never delivered again.
func (repo *notificationRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return repo.updateFlag(ctx, id, "is_active", false)
}

func (repo *notificationRepository) updateFlag(ctx context.Context, id uuid.UUID, column string, value bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update %s", column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}
