package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/auth"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/user"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
	testPassword   = "password123"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

type storedToken struct {
	userID  string
	revoked bool
}

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*storedToken
}

func (f *fakeRefreshTokenRepo) CreateRefreshToken(_ context.Context, userID, token string, _ int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token] = &storedToken{userID: userID}
	return nil
}

func (f *fakeRefreshTokenRepo) IsRefreshTokenRevoked(_ context.Context, token string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tokens[token]
	if !ok {
		return "", true, nil
	}
	return t.userID, t.revoked, nil
}

func (f *fakeRefreshTokenRepo) RevokeRefreshToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.tokens[token]; ok {
		t.revoked = true
	}
	return nil
}

func (f *fakeRefreshTokenRepo) DeleteExpiredRefreshTokens(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTx) WithinLockedTransaction(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func strPtr(s string) *string { return &s }

func setupAuthService(t *testing.T) (auth.AuthService, *fakeUserRepo, *fakeRefreshTokenRepo, jwt.Service) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[string]user.User{
		"user-1": {
			ID:           "user-1",
			CompanyID:    strPtr("company-1"),
			Email:        "budi@example.com",
			PasswordHash: strPtr(string(hash)),
			Role:         user.RoleEmployee,
			IsActive:     true,
			EmployeeID:   strPtr("emp-1"),
		},
		"user-2": {
			ID:           "user-2",
			Email:        "inactive@example.com",
			PasswordHash: strPtr(string(hash)),
			Role:         user.RoleEmployee,
			IsActive:     false,
		},
		"user-3": {
			ID:    "user-3",
			Email: "nopassword@example.com",
			Role:  user.RoleEmployee,
		},
	}}
	tokens := &fakeRefreshTokenRepo{tokens: make(map[string]*storedToken)}
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)

	return NewAuthService(passthroughTx{}, users, jwtService, tokens), users, tokens, jwtService
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, _, tokens, _ := setupAuthService(t)

		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "budi@example.com", Password: testPassword})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Greater(t, resp.RefreshTokenExpiresIn, resp.AccessTokenExpiresIn)
		assert.Equal(t, "user-1", resp.User.ID)
		require.NotNil(t, resp.User.EmployeeID)
		assert.Equal(t, "emp-1", *resp.User.EmployeeID)

		userID, revoked, err := tokens.IsRefreshTokenRevoked(ctx, resp.RefreshToken)
		require.NoError(t, err)
		assert.False(t, revoked)
		assert.Equal(t, "user-1", userID)
	})

	tests := []struct {
		name    string
		req     auth.LoginRequest
		wantErr error
	}{
		{"wrong password", auth.LoginRequest{Email: "budi@example.com", Password: "nope"}, auth.ErrInvalidCredentials},
		{"unknown email", auth.LoginRequest{Email: "ghost@example.com", Password: testPassword}, auth.ErrInvalidCredentials},
		{"no password set", auth.LoginRequest{Email: "nopassword@example.com", Password: testPassword}, auth.ErrInvalidCredentials},
		{"inactive account", auth.LoginRequest{Email: "inactive@example.com", Password: testPassword}, auth.ErrAccountInactive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := setupAuthService(t)
			_, err := svc.Login(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("validation", func(t *testing.T) {
		svc, _, _, _ := setupAuthService(t)
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "not-an-email"})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 2)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, _, _, _ := setupAuthService(t)
		login, err := svc.Login(ctx, auth.LoginRequest{Email: "budi@example.com", Password: testPassword})
		require.NoError(t, err)

		resp, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		svc, _, _, _ := setupAuthService(t)
		login, err := svc.Login(ctx, auth.LoginRequest{Email: "budi@example.com", Password: testPassword})
		require.NoError(t, err)

		_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.AccessToken})
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc, _, _, _ := setupAuthService(t)
		_, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: "not.a.jwt"})
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("unknown token counts as revoked", func(t *testing.T) {
		svc, _, _, jwtService := setupAuthService(t)
		token, _, err := jwtService.GenerateRefreshToken("user-1")
		require.NoError(t, err)

		_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: token})
		assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
	})

	t.Run("deactivated user", func(t *testing.T) {
		svc, users, _, _ := setupAuthService(t)
		login, err := svc.Login(ctx, auth.LoginRequest{Email: "budi@example.com", Password: testPassword})
		require.NoError(t, err)

		u := users.users["user-1"]
		u.IsActive = false
		users.users["user-1"] = u

		_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
		assert.ErrorIs(t, err, auth.ErrAccountInactive)
	})

	t.Run("missing token", func(t *testing.T) {
		svc, _, _, _ := setupAuthService(t)
		_, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{})
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := setupAuthService(t)

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "budi@example.com", Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken}))
	// Logging out twice is harmless.
	require.NoError(t, svc.Logout(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken}))

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
