package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"beacon/internal/domain/lifecycle"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// clientFrame is the envelope for messages sent by the browser on a
// realtime channel. Only the type is inspected.
type clientFrame struct {
	Type string `json:"type"`
}

const frameTypeHeartbeat = "heartbeat"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The HTTP layer already applies CORS; the handshake origin is not
	// re-checked here.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// PresenceChannel keeps a user's liveness lease alive for as long as
// their websocket connection stays open and sends heartbeats.
type PresenceChannel struct {
	logger   *slog.Logger
	tokens   service.TokenService
	presence usecase.PresenceUsecase
}

// NewPresenceChannel is the constructor for PresenceChannel.
func NewPresenceChannel(
	logger *slog.Logger,
	tokens service.TokenService,
	presence usecase.PresenceUsecase,
) *PresenceChannel {
	return &PresenceChannel{
		logger:   logger,
		tokens:   tokens,
		presence: presence,
	}
}

// Handle upgrades the request and ties the connection's lifetime to the
// caller's presence lease. Guests are rejected before the upgrade.
func (p *PresenceChannel) Handle(c echo.Context) error {
	userID, ok := resolveIdentity(c, p.tokens)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx := c.Request().Context()
	if err := p.presence.Connect(ctx, userID); err != nil {
		p.logger.Error("presence connect failed", slog.Any("error", err), slog.String("userID", userID.String()))
		return nil
	}

	// The request context is gone once the handler unwinds, so teardown
	// runs on its own deadline.
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		if err := p.presence.Disconnect(stopCtx, userID); err != nil {
			p.logger.Warn("presence disconnect failed", slog.Any("error", err), slog.String("userID", userID.String()))
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return nil
		}

		var frame clientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			p.logger.Debug("ignoring malformed presence frame", slog.String("userID", userID.String()))
			continue
		}

		switch frame.Type {
		case frameTypeHeartbeat:
			if err := p.presence.Heartbeat(ctx, userID); err != nil {
				p.logger.Warn("presence heartbeat failed", slog.Any("error", err), slog.String("userID", userID.String()))
			}
		default:
			p.logger.Debug("ignoring unknown presence frame", slog.String("type", frame.Type))
		}
	}
}
