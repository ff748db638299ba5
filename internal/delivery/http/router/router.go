// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/router/handler"
	"beacon/internal/delivery/ws"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	EventHandler        *handler.EventHandler
	PresenceHandler     *handler.PresenceHandler
	PresenceChannel     *ws.PresenceChannel
	NotificationChannel *ws.NotificationChannel
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	eventHandler        *handler.EventHandler
	presenceHandler     *handler.PresenceHandler
	presenceChannel     *ws.PresenceChannel
	notificationChannel *ws.NotificationChannel
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		eventHandler:        params.EventHandler,
		presenceHandler:     params.PresenceHandler,
		presenceChannel:     params.PresenceChannel,
		notificationChannel: params.NotificationChannel,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Realtime channels resolve their own identity so that guests can
	// still attach to the notification stream.
	e.GET("/ws/presence", r.presenceChannel.Handle)
	e.GET("/ws/notifications", r.notificationChannel.Handle)

	// Presence lookup is public: any user may ask about any other user.
	e.GET("/api/presence/:user_id", r.presenceHandler.Status)

	// Event ingress used by the rest of the application to fan out
	// notifications through the dispatcher.
	e.POST("/api/events", r.eventHandler.Dispatch)

	// Notification routes that require authentication
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		apiGroup.GET("/notifications", r.notificationHandler.ListActive)
		apiGroup.POST("/notifications/:id/read", r.notificationHandler.MarkRead)
		apiGroup.POST("/notifications/:id/deactivate", r.notificationHandler.Deactivate)
	}
}
