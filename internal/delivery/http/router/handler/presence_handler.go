package handler

import (
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PresenceHandler holds dependencies for presence query handlers
type PresenceHandler struct {
	uc usecase.PresenceUsecase
}

// NewPresenceHandler is the constructor for PresenceHandler
func NewPresenceHandler(uc usecase.PresenceUsecase) *PresenceHandler {
	return &PresenceHandler{
		uc: uc,
	}
}

// Status reports whether a user is currently online and their last seen time.
func (h *PresenceHandler) Status(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "User ID must be a UUID")
	}

	status, err := h.uc.Status(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, status, "Presence retrieved successfully")
}
