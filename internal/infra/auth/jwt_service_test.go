package auth

import (
	"testing"
	"time"

	"clinicdesk/config"
	"clinicdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: 7 * 24 * time.Hour}}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_MissingSecret(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "session signing secret must be provided")
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	got, err := svc.Validate("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWTService_ForeignSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestTokenConfig("secret_used_by_some_other_deployment_entirely"))
	require.NoError(t, err)
	validator, err := NewJWTService(newTestTokenConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	// A token signed with a different secret must never validate.
	got, err := validator.Validate(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// A negative TTL issues a token that is already past its expiry.
	expired := &jwtService{
		secret: "test_session_secret_key_very_long_for_testing",
		ttl:    -time.Minute,
	}

	token, err := expired.Issue(uuid.New())
	require.NoError(t, err)

	got, err := expired.Validate(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWTService_TTL(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, svc.TTL())
}
