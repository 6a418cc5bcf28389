// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"clinicdesk/config"
	"clinicdesk/internal/domain/service"
)

// jwtService is a concrete implementation of the SessionTokenService interface
// using HS256-signed JWTs over {sub, iat, exp}.
type jwtService struct {
	secret string        // Server-only secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// A missing secret is a startup invariant violation: the constructor fails and
// the process refuses to start, instead of every request failing later.
func NewJWTService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session signing secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Session,
		ttl:    cfg.Auth.SessionTTL,
	}, nil
}

// Issue creates a signed session token bound to the given user identity.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),       // Subject (who the token is for)
		"iat": now.Unix(),            // Issued At
		"exp": now.Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate checks a token string and returns the subject identifier.
// Expired tokens map to service.ErrTokenExpired; every other failure, from a
// bad signature to an unparseable subject, maps to service.ErrTokenInvalid.
func (s *jwtService) Validate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, service.ErrTokenExpired
		}

		return uuid.Nil, service.ErrTokenInvalid
	}
	if !token.Valid {
		return uuid.Nil, service.ErrTokenInvalid
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return uuid.Nil, service.ErrTokenInvalid
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, service.ErrTokenInvalid
	}

	return userID, nil
}

// TTL returns the configured session lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
