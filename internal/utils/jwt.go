package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/clip-keeper/models"
)

var (
	ErrInvalidTokenParams   = errors.New("invalid params for generating JWT token")
	ErrInvalidAuthorization = errors.New("invalid authorization header")
)

// GenerateJWTToken signs an HS256 token for accountID.
//
// Claims: iss = issuer, sub = accountID, iat = now, exp = now + tokenDuration.
// Every parameter is required.
func GenerateJWTToken(issuer, accountID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || accountID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   accountID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, AccountID: accountID}, nil
}

// ValidateAndParseJWTToken verifies the signature, the issuer and the expiry
// of tokenString and returns it with AccountID filled from the subject.
// Only HS256 is accepted.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, &parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	accountID, err := parsed.GetAccountID()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	parsed.AccountID = accountID
	return parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorization
	}
	return parts[1], nil
}
