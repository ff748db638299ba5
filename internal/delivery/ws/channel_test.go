package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	"beacon/internal/infra/auth"
	"beacon/internal/infra/fabric"
	"beacon/internal/infra/presence"
	mockRepo "beacon/internal/mocks/repository"
	"beacon/internal/usecase"
	"beacon/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type channelFixtures struct {
	baseURL          string
	fabric           service.Fabric
	store            service.PresenceStore
	tokens           service.TokenService
	notificationRepo *mockRepo.MockNotificationRepository
	profileRepo      *mockRepo.MockProfileRepository
	dispatcher       usecase.NotificationDispatcher
}

func createTestChannels(t *testing.T, heartbeatInterval time.Duration, leaseMultiplier int) channelFixtures {
	t.Helper()

	cfg := &config.Config{
		Presence: &config.PresenceConfig{
			Provider:          "memory",
			HeartbeatInterval: heartbeatInterval,
			LeaseMultiplier:   leaseMultiplier,
		},
	}
	cfg.SecretKey.Access = "test-secret-key-for-channels"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	hub := fabric.NewMemoryFabric(16)
	t.Cleanup(func() { hub.Close() })

	store := presence.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	notificationUC := impl.NewNotificationService(notificationRepo)
	presenceUC := impl.NewPresenceService(cfg, logger, store, hub, profileRepo)
	dispatcher := impl.NewDispatcherService(logger, notificationRepo, hub)

	e := echo.New()
	e.GET("/ws/presence", NewPresenceChannel(logger, tokens, presenceUC).Handle)
	e.GET("/ws/notifications", NewNotificationChannel(logger, tokens, hub, notificationUC).Handle)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return channelFixtures{
		baseURL:          "ws" + strings.TrimPrefix(server.URL, "http"),
		fabric:           hub,
		store:            store,
		tokens:           tokens,
		notificationRepo: notificationRepo,
		profileRepo:      profileRepo,
		dispatcher:       dispatcher,
	}
}

func (f channelFixtures) accessToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	token, err := f.tokens.GenerateAccessToken(userID)
	require.NoError(t, err)

	return token
}

func dialChannel(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	return data
}

func TestPresenceChannel_RejectsGuests(t *testing.T) {
	fx := createTestChannels(t, time.Second, 5)

	conn, resp, err := websocket.DefaultDialer.Dial(fx.baseURL+"/ws/presence", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, conn)
}

func TestPresenceChannel_ConnectionBoundsLiveness(t *testing.T) {
	fx := createTestChannels(t, time.Second, 5)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		UpdateLastOnline(mock.Anything, userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	conn := dialChannel(t, fx.baseURL+"/ws/presence?token="+fx.accessToken(t, userID))

	require.Eventually(t, func() bool {
		online, err := fx.store.IsOnline(ctx, userID)
		return err == nil && online
	}, 2*time.Second, 10*time.Millisecond, "user should be online while connected")

	conn.Close()

	require.Eventually(t, func() bool {
		online, err := fx.store.IsOnline(ctx, userID)
		return err == nil && !online
	}, 2*time.Second, 10*time.Millisecond, "user should go offline after hangup")
}

func TestPresenceChannel_HeartbeatKeepsLeaseAlive(t *testing.T) {
	fx := createTestChannels(t, 50*time.Millisecond, 2) // 100ms lease

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		UpdateLastOnline(mock.Anything, userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	conn := dialChannel(t, fx.baseURL+"/ws/presence?token="+fx.accessToken(t, userID))

	// Heartbeats across several lease lifetimes keep the user online.
	deadline := time.Now().Add(400 * time.Millisecond)
	for time.Now().Before(deadline) {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"heartbeat"}`)))
		time.Sleep(25 * time.Millisecond)
	}

	online, err := fx.store.IsOnline(ctx, userID)
	require.NoError(t, err)
	assert.True(t, online)

	// Once heartbeats stop and the connection drops, the lease clears.
	conn.Close()
	require.Eventually(t, func() bool {
		online, err := fx.store.IsOnline(ctx, userID)
		return err == nil && !online
	}, 2*time.Second, 10*time.Millisecond)
}

func TestPresenceChannel_IgnoresMalformedFrames(t *testing.T) {
	fx := createTestChannels(t, time.Second, 5)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		UpdateLastOnline(mock.Anything, userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	conn := dialChannel(t, fx.baseURL+"/ws/presence?token="+fx.accessToken(t, userID))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"unknown"}`)))

	// The connection survives garbage input.
	require.Eventually(t, func() bool {
		online, err := fx.store.IsOnline(ctx, userID)
		return err == nil && online
	}, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool {
		online, err := fx.store.IsOnline(ctx, userID)
		return err == nil && !online
	}, 2*time.Second, 10*time.Millisecond)
}

func TestPresenceChannel_PublishesStatusChanges(t *testing.T) {
	fx := createTestChannels(t, time.Second, 5)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		UpdateLastOnline(mock.Anything, userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	sub, err := fx.fabric.Subscribe(ctx, service.StatusTopic(userID))
	require.NoError(t, err)
	defer sub.Close()

	conn := dialChannel(t, fx.baseURL+"/ws/presence?token="+fx.accessToken(t, userID))

	var push service.StatusPush
	select {
	case payload := <-sub.C():
		require.NoError(t, json.Unmarshal(payload, &push))
		assert.True(t, push.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for online status")
	}

	conn.Close()

	select {
	case payload := <-sub.C():
		require.NoError(t, json.Unmarshal(payload, &push))
		assert.False(t, push.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for offline status")
	}
}

func TestNotificationChannel_GuestsHoldIdleConnections(t *testing.T) {
	fx := createTestChannels(t, time.Second, 5)

	conn := dialChannel(t, fx.baseURL+"/ws/notifications")

	// A guest connection stays open but never receives a frame.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "timeout") || strings.Contains(err.Error(), "deadline"))
}

func TestNotificationChannel_CatchUpFlush(t *testing.T) {
	fx := createTestChannels(t, time.Second, 5)

	userID := uuid.New()
	stored := []*entity.Notification{
		{ID: uuid.New(), RecipientID: userID, Kind: entity.KindFollow, Message: "alice started following you!", IsActive: true, CreatedAt: time.Now().Add(-time.Hour)},
		{ID: uuid.New(), RecipientID: userID, Kind: entity.KindMessage, Message: "You have a new message from bob!", IsActive: true, CreatedAt: time.Now()},
	}

	fx.notificationRepo.EXPECT().
		FindActiveByRecipient(mock.Anything, userID).
		Return(stored, nil)

	delivered := make(chan []uuid.UUID, 1)
	fx.notificationRepo.EXPECT().
		MarkDelivered(mock.Anything, []uuid.UUID{stored[0].ID, stored[1].ID}).
		Return(nil).
		Run(func(args mock.Arguments) {
			delivered <- args.Get(1).([]uuid.UUID)
		})

	conn := dialChannel(t, fx.baseURL+"/ws/notifications?token="+fx.accessToken(t, userID))

	// Stored notifications arrive first, oldest first.
	var first, second service.NotificationPush
	require.NoError(t, json.Unmarshal(readFrame(t, conn), &first))
	require.NoError(t, json.Unmarshal(readFrame(t, conn), &second))
	assert.Equal(t, stored[0].ID, first.ID)
	assert.Equal(t, stored[1].ID, second.ID)

	select {
	case batch := <-delivered:
		assert.Len(t, batch, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery batch")
	}
}

func TestNotificationChannel_LivePush(t *testing.T) {
	fx := createTestChannels(t, time.Second, 5)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		FindActiveByRecipient(mock.Anything, userID).
		Return([]*entity.Notification{}, nil)

	fx.notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	delivered := make(chan []uuid.UUID, 1)
	fx.notificationRepo.EXPECT().
		MarkDelivered(mock.Anything, mock.AnythingOfType("[]uuid.UUID")).
		Return(nil).
		Run(func(args mock.Arguments) {
			delivered <- args.Get(1).([]uuid.UUID)
		})

	conn := dialChannel(t, fx.baseURL+"/ws/notifications?token="+fx.accessToken(t, userID))

	// Give the server a moment to finish the (empty) flush and subscribe.
	time.Sleep(100 * time.Millisecond)

	notification, err := fx.dispatcher.Dispatch(ctx, usecase.DomainEvent{
		Kind:        entity.KindSharedPoll,
		RecipientID: userID,
		Context:     map[string]string{"sender_name": "alice"},
	})
	require.NoError(t, err)

	var push service.NotificationPush
	require.NoError(t, json.Unmarshal(readFrame(t, conn), &push))
	assert.Equal(t, notification.ID, push.ID)
	assert.Equal(t, "alice shared a poll with you!", push.Message)

	select {
	case batch := <-delivered:
		assert.Equal(t, []uuid.UUID{notification.ID}, batch)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery flag")
	}
}

func TestNotificationChannel_PayloadsAreIsolatedPerUser(t *testing.T) {
	fx := createTestChannels(t, time.Second, 5)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	fx.notificationRepo.EXPECT().
		FindActiveByRecipient(mock.Anything, userID).
		Return([]*entity.Notification{}, nil)

	conn := dialChannel(t, fx.baseURL+"/ws/notifications?token="+fx.accessToken(t, userID))
	time.Sleep(100 * time.Millisecond)

	// A payload for another user never reaches this connection.
	payload, err := json.Marshal(service.NotificationPush{ID: uuid.New()})
	require.NoError(t, err)
	require.NoError(t, fx.fabric.Publish(ctx, service.NotificationTopic(otherID), payload))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, readErr := conn.ReadMessage()
	require.Error(t, readErr)
}
