// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"clinicdesk/internal/domain/entity"
	domainerrors "clinicdesk/internal/domain/errors"
	"clinicdesk/internal/domain/repository"
	"clinicdesk/internal/domain/service"
	"clinicdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// CredentialServiceParams holds dependencies for credentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewCredentialService is the constructor for credentialService. It receives all dependencies as interfaces.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// normalizeEmail lowercases and trims an address so lookups and the unique
// index agree on identity.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register orchestrates the complete account registration process.
func (srv *credentialService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)

	if name == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name, email and password are required")
	}

	srv.logger.Info("Starting registration", slog.String("email", email))

	// Advisory pre-check for a friendly conflict; the unique index on the
	// store remains the source of truth under concurrency.
	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, service.ErrPasswordTooLong) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("password too long")
		}

		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the pre-check and hit the
		// unique index instead.
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		srv.logger.Error("Failed to create user", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", user.ID))

	return user, nil
}

// Authenticate verifies a credential pair against the stored hash.
func (srv *credentialService) Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)

	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same sentinel as a wrong password; the response must not reveal
			// whether the account exists.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Debug("Password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}
