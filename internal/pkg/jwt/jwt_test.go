package jwt

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func strPtr(s string) *string { return &s }

func TestGenerateAccessToken_RoundTripsClaims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, exp, err := svc.GenerateAccessToken("user-1", "a@example.com", strPtr("emp-1"), strPtr("co-1"), user.RoleEmployee)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, exp, int64(0))

	parsed, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)
	claims, err := parsed.AsMap(context.Background())
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), parsed, nil)
	c, err := ClaimsFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.UserID)
	assert.Equal(t, "emp-1", c.EmployeeID)
	assert.Equal(t, "co-1", c.CompanyID)
	assert.Equal(t, user.RoleEmployee, c.Role)
	assert.Equal(t, TokenTypeAccess, claims["type"])
}

func TestGenerateAccessToken_NilEmployee(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, _, err := svc.GenerateAccessToken("user-1", "a@example.com", nil, nil, user.RoleOwner)
	require.NoError(t, err)

	parsed, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	c, err := ClaimsFromContext(jwtauth.NewContext(context.Background(), parsed, nil))
	require.NoError(t, err)
	assert.Empty(t, c.EmployeeID)
	assert.Equal(t, user.RoleOwner, c.Role)
}

func TestGenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "24h")

	_, _, err := svc.GenerateAccessToken("user-1", "a@example.com", nil, nil, user.RoleEmployee)
	assert.Error(t, err)
}

func TestParseRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	t.Run("valid refresh token", func(t *testing.T) {
		token, _, err := svc.GenerateRefreshToken("user-1")
		require.NoError(t, err)

		userID, err := svc.ParseRefreshToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		token, _, err := svc.GenerateAccessToken("user-1", "a@example.com", nil, nil, user.RoleEmployee)
		require.NoError(t, err)

		_, err = svc.ParseRefreshToken(token)
		assert.Error(t, err)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		other := NewJWTService("another-secret", "1h", "24h")
		token, _, err := other.GenerateRefreshToken("user-1")
		require.NoError(t, err)

		_, err = svc.ParseRefreshToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := svc.ParseRefreshToken("not.a.jwt")
		assert.Error(t, err)
	})
}

func TestClaimsFromContext_RejectsRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	parsed, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	_, err = ClaimsFromContext(jwtauth.NewContext(context.Background(), parsed, nil))
	assert.ErrorIs(t, err, ErrMissingClaims)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	assert.False(t, svc.IsTokenRevoked("abc"))
	svc.RevokeToken("abc")
	assert.True(t, svc.IsTokenRevoked("abc"))
}
