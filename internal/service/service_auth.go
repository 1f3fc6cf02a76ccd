package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/utils"
	"github.com/MKhiriev/clip-keeper/models"
)

// authService issues and verifies the bearer tokens of the sync server.
// Accounts are not stored: a token's subject is the account.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the token settings in cfg.
// The returned service is safe for concurrent use.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed token whose subject is accountID.
func (a *authService) CreateToken(ctx context.Context, accountID string) (models.Token, error) {
	if accountID == "" {
		return models.Token{}, ErrNoAccountID
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, accountID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies tokenString. An expired token yields ErrTokenIsExpired,
// any other failure ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
