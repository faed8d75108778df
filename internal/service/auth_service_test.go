package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/unigrade-backend/internal/config"
	"github.com/stemsi/unigrade-backend/internal/model"
	"github.com/stemsi/unigrade-backend/internal/repository"
)

func newAuth() *AuthService {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	catalog := repository.NewMemoryCatalog(repository.DemoUsers(), repository.DemoCourses(), repository.DemoAllocations())
	return NewAuthService(cfg, catalog, repository.NewMemorySessionStore(), zerolog.Nop())
}

func TestLoginIssuesSessionToken(t *testing.T) {
	ctx := context.Background()
	auth := newAuth()

	resp, err := auth.Login(ctx, "prof.smith@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, "u2", resp.User.ID)
	assert.Equal(t, model.RoleTeacher, resp.User.Role)

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u2", claims.UserID)
	assert.Equal(t, model.RoleTeacher, claims.Role)
	require.NoError(t, auth.ValidateSession(ctx, claims))

	user, err := auth.CurrentUser(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, "Prof. John Smith", user.Name)
}

func TestLoginUnknownIdentifier(t *testing.T) {
	_, err := newAuth().Login(context.Background(), "nobody@uni.edu")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestNewLoginReplacesOldSession(t *testing.T) {
	ctx := context.Background()
	auth := newAuth()

	first, err := auth.Login(ctx, "S2024001")
	require.NoError(t, err)
	second, err := auth.Login(ctx, "alice@uni.edu")
	require.NoError(t, err)

	oldClaims, err := auth.ValidateToken(first.Token)
	require.NoError(t, err)
	assert.ErrorIs(t, auth.ValidateSession(ctx, oldClaims), ErrSessionInvalid)

	newClaims, err := auth.ValidateToken(second.Token)
	require.NoError(t, err)
	assert.NoError(t, auth.ValidateSession(ctx, newClaims))
}

func TestLogoutInvalidatesSession(t *testing.T) {
	ctx := context.Background()
	auth := newAuth()

	resp, err := auth.Login(ctx, "admin@uni.edu")
	require.NoError(t, err)
	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, claims))
	assert.ErrorIs(t, auth.ValidateSession(ctx, claims), ErrSessionInvalid)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	resp, err := newAuth().Login(context.Background(), "admin@uni.edu")
	require.NoError(t, err)

	other := NewAuthService(&config.Config{JWTSecret: "other", JWTExpiry: time.Hour},
		repository.NewMemoryCatalog(nil, nil, nil), repository.NewMemorySessionStore(), zerolog.Nop())
	_, err = other.ValidateToken(resp.Token)
	assert.Error(t, err)
}
