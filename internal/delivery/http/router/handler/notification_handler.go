package handler

import (
	"context"
	"net/http"

	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		uc: uc,
	}
}

// ListActive returns the caller's active notifications in creation order.
func (h *NotificationHandler) ListActive(c echo.Context) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return response.Error(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required", "")
	}

	notifications, err := h.uc.ActiveForRecipient(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// MarkRead sets the read flag on one of the caller's notifications.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	return h.updateFlag(c, h.uc.MarkRead)
}

// Deactivate archives one of the caller's notifications.
func (h *NotificationHandler) Deactivate(c echo.Context) error {
	return h.updateFlag(c, h.uc.Deactivate)
}

func (h *NotificationHandler) updateFlag(c echo.Context, update func(ctx context.Context, recipientID, notificationID uuid.UUID) error) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return response.Error(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required", "")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NOTIFICATION_ID", "Notification ID must be a UUID")
	}

	if err := update(c.Request().Context(), userID, notificationID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Notification updated successfully")
}
