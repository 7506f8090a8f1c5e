package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by a bearer token.
type Claims struct {
	UserID int64
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// Tokens are self-contained and never persisted; validity is determined solely
// by the signature and the embedded expiry window.
type TokenService interface {
	// GenerateToken creates a new signed token bound to the given user ID.
	GenerateToken(userID int64) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns the claims it carries.
	ValidateToken(tokenString string) (*Claims, error)
}
