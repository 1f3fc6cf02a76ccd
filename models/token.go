package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned when a token carries no account identifier.
var ErrEmptySubject = errors.New("token subject is empty")

// Token is a parsed sync bearer token.
//
// The "sub" claim names the account whose snapshot the bearer may read and
// write; every device of one user shares the same account.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// AccountID is a cached copy of the subject claim.
	AccountID string `json:"-"`
}

// GetAccountID returns the subject claim, failing when it is absent.
func (t *Token) GetAccountID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", ErrEmptySubject
	}
	return sub, nil
}

// String implements fmt.Stringer.
func (t *Token) String() string {
	return t.SignedString
}
