package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"clinicdesk/config"
	"clinicdesk/internal/domain/entity"
	"clinicdesk/internal/infra/auth"
	"clinicdesk/internal/testutil"
	"clinicdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T, repo *testutil.UserRepository) usecase.SessionUsecase {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: time.Hour}}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewSessionService(SessionServiceParams{
		UserRepo:     repo,
		TokenService: tokenService,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func seedUser(t *testing.T, repo *testutil.UserRepository) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:         "Dana",
		Email:        "dana@clinic.example",
		PasswordHash: "$2a$10$irrelevantforthistest",
		Role:         entity.RoleUser,
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestSessionService_IssueAndResolve(t *testing.T) {
	repo := testutil.NewUserRepository()
	service := newSessionService(t, repo)
	user := seedUser(t, repo)

	token, ttl, err := service.Issue(user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, time.Hour, ttl)

	resolved, err := service.ResolveCurrentUser(context.Background(), token)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, user.Email, resolved.Email)
}

func TestSessionService_ResolveAnonymous(t *testing.T) {
	repo := testutil.NewUserRepository()
	service := newSessionService(t, repo)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage token", token: "not-a-session-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := service.ResolveCurrentUser(context.Background(), tt.token)
			assert.NoError(t, err)
			assert.Nil(t, user)
		})
	}
}

func TestSessionService_ResolveDeletedUser(t *testing.T) {
	repo := testutil.NewUserRepository()
	service := newSessionService(t, repo)
	user := seedUser(t, repo)

	token, _, err := service.Issue(user.ID)
	require.NoError(t, err)

	repo.Delete(user.ID)

	// A valid token whose account is gone resolves to anonymous, not an error.
	resolved, err := service.ResolveCurrentUser(context.Background(), token)
	assert.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestSessionService_ResolveUnknownSubject(t *testing.T) {
	repo := testutil.NewUserRepository()
	service := newSessionService(t, repo)

	token, _, err := service.Issue(uuid.New())
	require.NoError(t, err)

	resolved, err := service.ResolveCurrentUser(context.Background(), token)
	assert.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestSessionService_ResolveRepositoryFailure(t *testing.T) {
	repo := testutil.NewUserRepository()
	service := newSessionService(t, repo)
	user := seedUser(t, repo)

	token, _, err := service.Issue(user.ID)
	require.NoError(t, err)

	repo.Err = errors.New("connection refused")

	// Infrastructure failure is the one case that surfaces as an error.
	resolved, err := service.ResolveCurrentUser(context.Background(), token)
	assert.Error(t, err)
	assert.Nil(t, resolved)
}
