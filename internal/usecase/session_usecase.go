// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"clinicdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session lifecycle operations.
type SessionUsecase interface {
	// Issue mints a session token for the given account and reports its
	// lifetime, which the transport layer mirrors onto the cookie.
	Issue(userID uuid.UUID) (token string, ttl time.Duration, err error)

	// ResolveCurrentUser maps a session token to its account. Missing,
	// malformed, expired, or orphaned tokens resolve to (nil, nil); only
	// infrastructure failures return an error.
	ResolveCurrentUser(ctx context.Context, token string) (*entity.User, error)
}
