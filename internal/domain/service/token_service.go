package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a new signed access token asserting the given user ID.
	Issue(userID uuid.UUID) (string, error)

	// Validate checks signature and expiry and returns the embedded user ID.
	Validate(tokenString string) (uuid.UUID, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
