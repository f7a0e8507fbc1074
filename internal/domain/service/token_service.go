package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in the bearer token. The token
// carries only the account identifier; the role is always resolved from
// storage by the authentication middleware.
type Claims struct {
	// UserID is decoded from the registered subject claim, never serialized
	// on its own.
	UserID uuid.UUID `json:"-"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating bearer
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken mints a signed token embedding the account identifier.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string and returns its
	// claims. Expired, tampered or wrongly-signed tokens fail.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured validity window.
	TokenDuration() time.Duration
}
