package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/models"
)

func authConfig(d time.Duration) config.App {
	return config.App{TokenSignKey: "sign-key", TokenIssuer: "vaultd", TokenDuration: d}
}

func TestAuthService_CreateAndParse(t *testing.T) {
	svc := service.NewAuthService(authConfig(time.Hour), logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "ops", []string{models.PermissionDelete})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "ops", parsed.Subject)
	assert.True(t, parsed.Allows(models.PermissionDelete))
	assert.False(t, parsed.Allows(models.PermissionAdmin))
}

func TestAuthService_CreateToken_UnknownScope(t *testing.T) {
	svc := service.NewAuthService(authConfig(time.Hour), logger.Nop())

	_, err := svc.CreateToken(context.Background(), "ops", []string{"playervaults.everything"})
	assert.ErrorIs(t, err, service.ErrInvalidTokenParams)
}

func TestAuthService_ParseToken_Errors(t *testing.T) {
	ctx := context.Background()

	expired, err := service.NewAuthService(authConfig(-time.Minute), logger.Nop()).CreateToken(ctx, "ops", nil)
	require.NoError(t, err)

	svc := service.NewAuthService(authConfig(time.Hour), logger.Nop())
	_, err = svc.ParseToken(ctx, expired.SignedString)
	assert.ErrorIs(t, err, service.ErrTokenIsExpired)

	_, err = svc.ParseToken(ctx, "garbage")
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	other := service.NewAuthService(config.App{TokenSignKey: "other", TokenIssuer: "vaultd", TokenDuration: time.Hour}, logger.Nop())
	foreign, err := other.CreateToken(ctx, "ops", nil)
	require.NoError(t, err)
	_, err = svc.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
