package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// authService issues and verifies HMAC-signed admin tokens.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim of every issued JWT. Tokens with another
	// issuer are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService returns an AuthService configured from cfg. The service is
// safe for concurrent use.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a token for subject. Every scope must be a known
// permission node.
func (a *authService) CreateToken(ctx context.Context, subject string, scopes []string) (models.Token, error) {
	log := logger.FromContext(ctx)

	known := models.AllPermissions()
	for _, scope := range scopes {
		if !slices.Contains(known, scope) {
			log.Error().Str("scope", scope).Msg("unknown scope requested")
			return models.Token{}, fmt.Errorf("%w: unknown scope %q", ErrInvalidTokenParams, scope)
		}
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, subject, scopes, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidTokenParams, err)
	}

	return token, nil
}

// ParseToken verifies tokenString. Expired tokens yield ErrTokenIsExpired,
// every other failure ErrInvalidToken.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}
