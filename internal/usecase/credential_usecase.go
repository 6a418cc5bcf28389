// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"clinicdesk/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthenticateInput defines the data required to verify a credential pair.
type AuthenticateInput struct {
	Email    string
	Password string
}

// CredentialUsecase defines the interface for credential-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CredentialUsecase interface {
	// Register creates a new account after validating and normalizing the
	// input. A duplicate email yields ErrEmailAlreadyRegistered.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Authenticate verifies an email and password pair. Every failure mode,
	// unknown email or wrong password alike, yields ErrInvalidCredentials.
	Authenticate(ctx context.Context, input AuthenticateInput) (*entity.User, error)
}
