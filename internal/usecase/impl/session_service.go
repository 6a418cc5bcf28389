package impl

import (
	"context"
	"log/slog"
	"time"

	"clinicdesk/internal/domain/entity"
	"clinicdesk/internal/domain/repository"
	"clinicdesk/internal/domain/service"
	"clinicdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	tokenService service.SessionTokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.SessionTokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Issue mints a session token bound to the given account.
func (srv *sessionService) Issue(userID uuid.UUID) (string, time.Duration, error) {
	token, err := srv.tokenService.Issue(userID)
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to issue session token")
	}

	return token, srv.tokenService.TTL(), nil
}

// ResolveCurrentUser maps a session token to its account.
// Token failures and orphaned accounts degrade to an anonymous result rather
// than an error; callers treat (nil, nil) as "not signed in".
func (srv *sessionService) ResolveCurrentUser(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}

	userID, err := srv.tokenService.Validate(token)
	if err != nil {
		srv.logger.Debug("Session token rejected", slog.Any("error", err))

		return nil, nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		// The account behind a valid token may have been deleted since issue.
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Debug("Session token for unknown user", slog.Any("userID", userID))

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return user, nil
}
