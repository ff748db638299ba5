package ws

import (
	"context"
	"encoding/json"
	"log/slog"

	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// NotificationChannel streams stored and live notifications to a
// connected user. Guests may attach but never receive frames.
type NotificationChannel struct {
	logger        *slog.Logger
	tokens        service.TokenService
	fabric        service.Fabric
	notifications usecase.NotificationUsecase
}

// NewNotificationChannel is the constructor for NotificationChannel.
func NewNotificationChannel(
	logger *slog.Logger,
	tokens service.TokenService,
	fabric service.Fabric,
	notifications usecase.NotificationUsecase,
) *NotificationChannel {
	return &NotificationChannel{
		logger:        logger,
		tokens:        tokens,
		fabric:        fabric,
		notifications: notifications,
	}
}

// Handle upgrades the request and serves the notification stream:
// first a catch-up flush of undelivered active notifications, then
// live pushes for as long as the connection stays open.
func (n *NotificationChannel) Handle(c echo.Context) error {
	userID, ok := resolveIdentity(c, n.tokens)

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	if !ok {
		// Guests hold an idle connection until they hang up.
		drain(conn)
		return nil
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	// Subscribing before the flush closes the gap where a notification
	// created mid-flush would be neither stored-at-flush-time nor
	// observed live. A rare duplicate frame is possible and harmless.
	sub, err := n.fabric.Subscribe(ctx, service.NotificationTopic(userID))
	if err != nil {
		n.logger.Error("notification subscribe failed", slog.Any("error", err), slog.String("userID", userID.String()))
		return nil
	}
	defer sub.Close()

	if err := n.flush(ctx, conn, userID); err != nil {
		n.logger.Warn("notification catch-up flush failed", slog.Any("error", err), slog.String("userID", userID.String()))
		return nil
	}

	// Inbound frames are not part of this channel's protocol; the read
	// loop only exists to observe the peer closing.
	go func() {
		drain(conn)
		cancel()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case payload, open := <-sub.C():
			if !open {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return nil
			}
			n.markDelivered(ctx, payload)
		}
	}
}

// flush sends every active stored notification in creation order, then
// records the whole batch as delivered.
func (n *NotificationChannel) flush(ctx context.Context, conn *websocket.Conn, userID uuid.UUID) error {
	stored, err := n.notifications.ActiveForRecipient(ctx, userID)
	if err != nil {
		return err
	}

	delivered := make([]uuid.UUID, 0, len(stored))
	for _, notification := range stored {
		payload, err := json.Marshal(service.PushFromNotification(notification))
		if err != nil {
			return err
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return err
		}
		delivered = append(delivered, notification.ID)
	}

	if err := n.notifications.MarkDelivered(ctx, delivered); err != nil {
		n.logger.Warn("marking flushed notifications delivered failed", slog.Any("error", err), slog.String("userID", userID.String()))
	}
	return nil
}

func (n *NotificationChannel) markDelivered(ctx context.Context, payload []byte) {
	var push service.NotificationPush
	if err := json.Unmarshal(payload, &push); err != nil || push.ID == uuid.Nil {
		return
	}
	if err := n.notifications.MarkDelivered(ctx, []uuid.UUID{push.ID}); err != nil {
		n.logger.Warn("marking pushed notification delivered failed", slog.Any("error", err), slog.String("id", push.ID.String()))
	}
}

// drain reads and discards inbound frames until the connection closes.
func drain(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
