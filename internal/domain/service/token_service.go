package service

import (
	"github.com/google/uuid"
)

// Claims carries the identity extracted from a validated access token.
type Claims struct {
	UserID uuid.UUID
	Type   string
}

// TokenService defines the interface for issuing and validating access tokens.
// Session mechanics belong to the host framework; this service only needs to
// establish the identity behind a websocket handshake or API call.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a user.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateAccessToken checks a token string and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
