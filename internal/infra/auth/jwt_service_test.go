package auth

import (
	"testing"
	"time"

	"zilptext/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: ttl}}
	cfg.SecretKey.Access = "test-access-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	accountID := uuid.New()

	token, err := svc.GenerateToken(accountID, "Ada", "Lovelace")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "Ada", claims.FirstName)
	assert.Equal(t, "Lovelace", claims.LastName)
	assert.Equal(t, accountID.String(), claims.Subject)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	// The config path refuses non-positive TTLs, so force expiry directly.
	svc.ttl = -time.Minute

	token, err := svc.GenerateToken(uuid.New(), "Ada", "Lovelace")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, err := svc.GenerateToken(uuid.New(), "Ada", "Lovelace")
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "a-different-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_GarbageRejected(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
}
