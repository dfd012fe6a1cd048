package auth

import (
	"testing"
	"time"

	"parfum/config"
	"parfum/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: ttl},
	}
	cfg.SecretKey.JWT = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{TokenTTL: time.Hour},
	})

	require.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, err := svc.Generate(7, "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, -time.Hour)

	token, err := svc.Generate(7, "admin@example.com")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.ErrorIs(t, err, service.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, err := svc.Generate(7, "admin@example.com")
	require.NoError(t, err)

	claims, err := svc.Validate(token + "x")
	require.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, time.Hour)
	verifier := &jwtService{secret: []byte("other-secret"), ttl: time.Hour}

	token, err := issuer.Generate(7, "admin@example.com")
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	require.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	claims, err := svc.Validate("definitely.not.a-token")
	require.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}
