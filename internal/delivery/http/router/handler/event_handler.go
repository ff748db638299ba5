package handler

import (
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DispatchEventRequest is the payload accepted by the event ingress endpoint.
type DispatchEventRequest struct {
	Kind        string            `json:"kind" validate:"required"`
	RecipientID string            `json:"recipient_id" validate:"required,uuid"`
	Context     map[string]string `json:"context"`
}

// EventHandler holds dependencies for the dispatch ingress endpoint
type EventHandler struct {
	dispatcher usecase.NotificationDispatcher
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(dispatcher usecase.NotificationDispatcher) *EventHandler {
	return &EventHandler{
		dispatcher: dispatcher,
	}
}

// Dispatch converts an application event into a stored notification.
func (h *EventHandler) Dispatch(c echo.Context) error {
	var req DispatchEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST_BODY", "Failed to parse request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_EVENT", "Event payload failed validation")
	}

	kind := entity.NotificationKind(req.Kind)
	if !kind.Valid() {
		return response.BadRequest(c, "UNKNOWN_NOTIFICATION_KIND", "Unknown notification kind")
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return response.BadRequest(c, "INVALID_RECIPIENT_ID", "Recipient ID must be a UUID")
	}

	notification, err := h.dispatcher.Dispatch(c.Request().Context(), usecase.DomainEvent{
		Kind:        kind,
		RecipientID: recipientID,
		Context:     req.Context,
	})
	if err != nil {
		// A store failure fails only the notification step; the caller's own
		// domain action must not be rolled back on it.
		var dbErr *domainerrors.DatabaseError
		if errors.As(err, &dbErr) {
			return response.BadGateway(c, "DISPATCH_FAILED", "Failed to persist the notification")
		}

		return err
	}

	return response.Success(c, http.StatusCreated, notification, "Notification dispatched successfully")
}
