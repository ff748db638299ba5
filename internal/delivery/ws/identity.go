// Package ws implements the realtime websocket channels for presence
// and notification delivery.
package ws

import (
	"strings"

	"beacon/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// resolveIdentity extracts and validates the caller's identity from the
// upgrade request. Browsers cannot set headers on websocket handshakes,
// so a `token` query parameter is accepted alongside the usual
// Authorization header. Returns ok=false for guests and invalid tokens.
func resolveIdentity(c echo.Context, tokens service.TokenService) (uuid.UUID, bool) {
	token := ""
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
	}
	if token == "" {
		token = c.QueryParam("token")
	}
	if token == "" {
		return uuid.Nil, false
	}

	claims, err := tokens.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
