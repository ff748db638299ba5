package postgres

import (
	"context"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestNotificationRepository opens an in-memory database and migrates the
// notifications table so the repository's real queries run against it.
func newTestNotificationRepository(t *testing.T) repository.NotificationRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.NotificationModel{}))

	return NewNotificationRepository(db)
}

// seedNotification persists an active notification with an explicit creation
// time. Rows only ever become inactive afterwards, through Deactivate.
func seedNotification(t *testing.T, repo repository.NotificationRepository, recipientID uuid.UUID, createdAt time.Time) *entity.Notification {
	t.Helper()

	notification := &entity.Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Kind:        entity.KindMessage,
		Message:     "You have received a new message",
		IsActive:    true,
		Context:     map[string]string{"sender_name": "alice"},
		CreatedAt:   createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), notification))

	return notification
}

func TestNotificationRepository_FindActiveByRecipient_SkipsDeactivated(t *testing.T) {
	repo := newTestNotificationRepository(t)
	ctx := context.Background()

	recipientID := uuid.New()
	base := time.Now().UTC().Truncate(time.Second)

	oldest := seedNotification(t, repo, recipientID, base.Add(-2*time.Minute))
	archived := seedNotification(t, repo, recipientID, base.Add(-time.Minute))
	newest := seedNotification(t, repo, recipientID, base)
	seedNotification(t, repo, uuid.New(), base)

	require.NoError(t, repo.Deactivate(ctx, archived.ID))

	notifications, err := repo.FindActiveByRecipient(ctx, recipientID)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	assert.Equal(t, oldest.ID, notifications[0].ID)
	assert.Equal(t, newest.ID, notifications[1].ID)
	for _, notification := range notifications {
		assert.True(t, notification.IsActive)
		assert.Equal(t, recipientID, notification.RecipientID)
	}
}

func TestNotificationRepository_FindActiveByRecipient_CreationOrder(t *testing.T) {
	repo := newTestNotificationRepository(t)
	ctx := context.Background()

	recipientID := uuid.New()
	base := time.Now().UTC().Truncate(time.Second)

	// Seeded out of creation order on purpose.
	third := seedNotification(t, repo, recipientID, base)
	first := seedNotification(t, repo, recipientID, base.Add(-2*time.Minute))
	second := seedNotification(t, repo, recipientID, base.Add(-time.Minute))

	notifications, err := repo.FindActiveByRecipient(ctx, recipientID)
	require.NoError(t, err)
	require.Len(t, notifications, 3)

	assert.Equal(t, first.ID, notifications[0].ID)
	assert.Equal(t, second.ID, notifications[1].ID)
	assert.Equal(t, third.ID, notifications[2].ID)
}

func TestNotificationRepository_CreateAndFindByID(t *testing.T) {
	repo := newTestNotificationRepository(t)
	ctx := context.Background()

	seeded := seedNotification(t, repo, uuid.New(), time.Now().UTC().Truncate(time.Second))

	found, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)

	assert.Equal(t, seeded.RecipientID, found.RecipientID)
	assert.Equal(t, entity.KindMessage, found.Kind)
	assert.Equal(t, seeded.Message, found.Message)
	assert.Equal(t, map[string]string{"sender_name": "alice"}, found.Context)
	assert.False(t, found.IsRead)
	assert.False(t, found.Delivered)
	assert.True(t, found.IsActive)
}

func TestNotificationRepository_FindByID_NotFound(t *testing.T) {
	repo := newTestNotificationRepository(t)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}

func TestNotificationRepository_MarkDelivered(t *testing.T) {
	repo := newTestNotificationRepository(t)
	ctx := context.Background()

	recipientID := uuid.New()
	base := time.Now().UTC().Truncate(time.Second)
	first := seedNotification(t, repo, recipientID, base.Add(-time.Minute))
	second := seedNotification(t, repo, recipientID, base)

	require.NoError(t, repo.MarkDelivered(ctx, []uuid.UUID{first.ID, second.ID}))

	for _, id := range []uuid.UUID{first.ID, second.ID} {
		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, found.Delivered)
	}
}

func TestNotificationRepository_MarkRead_NotFound(t *testing.T) {
	repo := newTestNotificationRepository(t)

	err := repo.MarkRead(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}
