package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validation outcomes for session tokens. Expiry is kept distinct from every
// other failure so callers can log it differently; clients see a single
// undifferentiated 401 either way.
var (
	// ErrTokenInvalid is returned for malformed, tampered or wrongly signed tokens.
	ErrTokenInvalid = errors.New("session token is invalid")
	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("session token has expired")
)

// SessionTokenService defines the interface for minting and validating
// signed, time-bounded session tokens. Tokens are stateless: they carry only
// the subject identifier, and the caller must re-resolve the user record from
// the store so stale names or roles never leak through an old token.
type SessionTokenService interface {
	// Issue creates a signed token bound to the given user identity.
	Issue(userID uuid.UUID) (string, error)

	// Validate checks a token string and returns the subject identifier.
	Validate(token string) (uuid.UUID, error)

	// TTL returns the configured session lifetime.
	TTL() time.Duration
}
