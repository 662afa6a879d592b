package auth

import (
	"testing"
	"time"

	"quill/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	return cfg
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	gotID, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	other, err := NewJWTService(newTestConfig("other-secret"))
	require.NoError(t, err)

	token, err := other.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	// Craft a well-formed token whose expiry has already passed.
	claims := jwt.MapClaims{
		"id":  uuid.New().String(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsMissingIDClaim(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.AccessTokenDuration())

	// TTL falls back to one day when not configured.
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	svc, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.AccessTokenDuration())
}
