// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"tracker/config"
	"tracker/internal/domain/service"
)

// defaultTTL applies when no token lifetime is configured.
const defaultTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Server-held secret for signing and verifying tokens.
	ttl    time.Duration // Validity window from issuance to expiry.
}

// NewJWTService is the constructor for jwtService.
// A missing secret is a configuration precondition failure: construction
// errors and the process never starts, so no per-request path has to cope
// with an unconfigured signer.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.JWT.ExpiresIn
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &jwtService{
		secret: cfg.JWT.Secret,
		ttl:    ttl,
	}, nil
}

// GenerateToken creates a signed token bound to the given user ID, valid from
// now until now plus the configured lifetime.
func (s *jwtService) GenerateToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature and expiry of a token string.
// It is a pure in-memory computation with no external calls.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}

	registered, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	userID, err := strconv.ParseInt(registered.Subject, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not a user id")
	}

	return &service.Claims{
		UserID:           userID,
		RegisteredClaims: *registered,
	}, nil
}
