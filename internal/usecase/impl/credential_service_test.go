package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"clinicdesk/config"
	domainerrors "clinicdesk/internal/domain/errors"
	"clinicdesk/internal/infra/auth"
	"clinicdesk/internal/testutil"
	"clinicdesk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCredentialService(repo *testutil.UserRepository) usecase.CredentialUsecase {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 10}}

	return NewCredentialService(CredentialServiceParams{
		UserRepo: repo,
		Hasher:   auth.NewBcryptHasher(cfg),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestCredentialService_Register_Success(t *testing.T) {
	repo := testutil.NewUserRepository()
	service := newCredentialService(repo)

	user, err := service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Dana Front",
		Email:    "  Dana@Clinic.Example  ",
		Password: "pw12345",
	})

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "dana@clinic.example", user.Email)
	assert.Equal(t, "Dana Front", user.Name)
	assert.NotEqual(t, "pw12345", user.PasswordHash)
	assert.NotZero(t, user.CreatedAt)
}

func TestCredentialService_Register_MissingFields(t *testing.T) {
	repo := testutil.NewUserRepository()
	service := newCredentialService(repo)

	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{name: "empty name", input: usecase.RegisterInput{Email: "a@b.c", Password: "pw"}},
		{name: "empty email", input: usecase.RegisterInput{Name: "Dana", Password: "pw"}},
		{name: "empty password", input: usecase.RegisterInput{Name: "Dana", Email: "a@b.c"}},
		{name: "whitespace only", input: usecase.RegisterInput{Name: "  ", Email: "  ", Password: "pw"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := service.Register(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Nil(t, user)
		})
	}

	assert.Zero(t, repo.Len())
}

func TestCredentialService_Register_OverlongPassword(t *testing.T) {
	repo := testutil.NewUserRepository()
	service := newCredentialService(repo)

	// Past bcrypt's 72-byte input limit the request is bad input, not an
	// internal failure.
	user, err := service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Dana",
		Email:    "dana@clinic.example",
		Password: strings.Repeat("p", 73),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, user)
	assert.Zero(t, repo.Len())
}

func TestCredentialService_Register_DuplicateEmail(t *testing.T) {
	repo := testutil.NewUserRepository()
	service := newCredentialService(repo)

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Name: "Dana", Email: "dana@clinic.example", Password: "pw12345",
	})
	require.NoError(t, err)

	// Same address with different casing must still collide.
	user, err := service.Register(context.Background(), usecase.RegisterInput{
		Name: "Impostor", Email: "DANA@clinic.example", Password: "other",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	assert.Nil(t, user)
	assert.Equal(t, 1, repo.Len())
}

func TestCredentialService_Register_ConcurrentDuplicates(t *testing.T) {
	repo := testutil.NewUserRepository()
	service := newCredentialService(repo)

	const attempts = 8

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = service.Register(context.Background(), usecase.RegisterInput{
				Name: "Dana", Email: "dana@clinic.example", Password: "pw12345",
			})
		}()
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domainerrors.ErrEmailAlreadyRegistered):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Exactly one attempt wins; the rest see the conflict sentinel.
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)
	assert.Equal(t, 1, repo.Len())
}

func TestCredentialService_Authenticate_Success(t *testing.T) {
	repo := testutil.NewUserRepository()
	service := newCredentialService(repo)

	registered, err := service.Register(context.Background(), usecase.RegisterInput{
		Name: "Dana", Email: "dana@clinic.example", Password: "pw12345",
	})
	require.NoError(t, err)

	// Email lookup normalizes case and whitespace.
	user, err := service.Authenticate(context.Background(), usecase.AuthenticateInput{
		Email: " DANA@clinic.example ", Password: "pw12345",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestCredentialService_Authenticate_Failures(t *testing.T) {
	repo := testutil.NewUserRepository()
	service := newCredentialService(repo)

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Name: "Dana", Email: "dana@clinic.example", Password: "pw12345",
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input usecase.AuthenticateInput
		want  error
	}{
		{
			name:  "unknown email",
			input: usecase.AuthenticateInput{Email: "nobody@clinic.example", Password: "pw12345"},
			want:  domainerrors.ErrInvalidCredentials,
		},
		{
			name:  "wrong password",
			input: usecase.AuthenticateInput{Email: "dana@clinic.example", Password: "wrong"},
			want:  domainerrors.ErrInvalidCredentials,
		},
		{
			name:  "empty password",
			input: usecase.AuthenticateInput{Email: "dana@clinic.example"},
			want:  domainerrors.ErrValidationFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := service.Authenticate(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, user)
		})
	}
}

func TestCredentialService_Authenticate_SameSentinelForBothFailures(t *testing.T) {
	repo := testutil.NewUserRepository()
	service := newCredentialService(repo)

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Name: "Dana", Email: "dana@clinic.example", Password: "pw12345",
	})
	require.NoError(t, err)

	_, unknownErr := service.Authenticate(context.Background(), usecase.AuthenticateInput{
		Email: "nobody@clinic.example", Password: "pw12345",
	})
	_, wrongPwErr := service.Authenticate(context.Background(), usecase.AuthenticateInput{
		Email: "dana@clinic.example", Password: "wrong",
	})

	// Both failure modes must be indistinguishable to the caller.
	assert.Equal(t, unknownErr, wrongPwErr)
}

func TestCredentialService_RepositoryFailure(t *testing.T) {
	repo := testutil.NewUserRepository()
	repo.Err = errors.New("connection refused")
	service := newCredentialService(repo)

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Name: "Dana", Email: "dana@clinic.example", Password: "pw12345",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = service.Authenticate(context.Background(), usecase.AuthenticateInput{
		Email: "dana@clinic.example", Password: "pw12345",
	})
	assert.Error(t, err)
	// Infrastructure failures must not masquerade as bad credentials.
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
