package auth

import (
	"testing"
	"time"

	"orderguard/config"
	"orderguard/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(createTestConfig())
	require.NoError(t, err)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, "vip")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "vip", accessClaims.Role)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Role) // Refresh tokens don't carry a role
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(createTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	jwtService, err := NewJWTService(createTestConfig())
	require.NoError(t, err)

	other := createTestConfig()
	other.SecretKey.Access = "some_other_access_secret_for_testing"
	foreign, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := foreign.GenerateAccessToken(uuid.New(), "customer")
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_UnknownTokenType(t *testing.T) {
	cfg := createTestConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	claims := service.Claims{
		UserID: uuid.New(),
		Type:   "session",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	got, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(createTestConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := impl.GenerateAccessToken(uuid.New(), "customer")
	require.NoError(t, err)
	impl.now = time.Now

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(createTestConfig())
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())

	cfg := createTestConfig()
	cfg.Auth = &config.AuthConfig{RefreshTokenTTL: 48 * time.Hour}
	configured, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, configured.GetRefreshTokenDuration())
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(createTestConfig())
	require.NoError(t, err)

	first := jwtService.HashToken("refresh-token")
	assert.Len(t, first, 64)
	assert.Equal(t, first, jwtService.HashToken("refresh-token"))
	assert.NotEqual(t, first, jwtService.HashToken("other-token"))
}
