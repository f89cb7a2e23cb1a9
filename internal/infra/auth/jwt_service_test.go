package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite/config"
	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/service"
)

func newTestJWTService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
			ConfirmTokenTTL: time.Hour,
		},
	}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func testUser() *entity.User {
	return &entity.User{
		ID:          uuid.New(),
		Role:        entity.RoleCourier,
		IsSuperuser: true,
	}
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{}}

	_, err := NewJWTService(cfg)

	require.Error(t, err)
}

func TestJWTService_AccessTokenRoundtrip(t *testing.T) {
	svc := newTestJWTService(t)
	user := testUser()

	access, refresh, err := svc.GenerateTokens(user)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleCourier, claims.Role)
	assert.True(t, claims.IsSuperuser)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
}

func TestJWTService_RefreshTokenCarriesNoRole(t *testing.T) {
	svc := newTestJWTService(t)

	_, refresh, err := svc.GenerateTokens(testUser())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refresh, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
	assert.False(t, claims.IsSuperuser)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	svc := newTestJWTService(t)
	user := testUser()

	access, refresh, err := svc.GenerateTokens(user)
	require.NoError(t, err)

	// A refresh token is signed with another secret, so it fails validation
	// outright when presented as an access token.
	_, err = svc.ValidateToken(refresh, service.TokenTypeAccess)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	// Access and confirmation tokens share a secret; the type claim is what
	// keeps them apart.
	_, err = svc.ValidateToken(access, service.TokenTypeConfirmation)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ConfirmationTokenRoundtrip(t *testing.T) {
	svc := newTestJWTService(t)
	user := testUser()

	token, err := svc.GenerateConfirmationToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token, service.TokenTypeConfirmation)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  -time.Minute,
			RefreshTokenTTL: time.Hour,
			ConfirmTokenTTL: time.Hour,
		},
	}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	access, _, err := svc.GenerateTokens(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(access, service.TokenTypeAccess)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateToken("not.a.jwt", service.TokenTypeAccess)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc := newTestJWTService(t)

	assert.Equal(t, 7*24*time.Hour, svc.GetRefreshTokenDuration())
}
