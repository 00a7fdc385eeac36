// Package jwtx signs and verifies the compact session tokens barkeep hands
// to browsers and API clients. Tokens are HS256 over a shared secret; the
// authoritative session record lives in the store and the token only names
// it, so deleting the record revokes the token.
package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken reports a token that failed signature, issuer or expiry
// checks. The cause is deliberately not distinguished to callers.
var ErrInvalidToken = errors.New("jwtx: invalid session token")

// SessionClaims are the claims embedded in a session token.
type SessionClaims struct {
	Username  string `json:"preferred_username"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionSigner issues and verifies session tokens with a shared secret.
type SessionSigner struct {
	Secret []byte
	Issuer string
}

// Sign mints a session token for the given session and account identity.
func (s *SessionSigner) Sign(sessionID, accountID, username string, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		Username:  username,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, returning its claims.
func (s *SessionSigner) Verify(raw string) (SessionClaims, error) {
	var claims SessionClaims

	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return SessionClaims{}, ErrInvalidToken
	}

	if claims.SessionID == "" || claims.Subject == "" {
		return SessionClaims{}, ErrInvalidToken
	}
	return claims, nil
}
