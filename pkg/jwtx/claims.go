package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the lifetime of an admin session token. Sessions are
// stateless so expiry is the only revocation mechanism.
const DefaultSessionTTL = 24 * time.Hour

// Claims are the session-token claims. Subject carries the user ID; the
// username rides along so handlers can log who acted without a user lookup.
type Claims struct {
	jwt.RegisteredClaims

	Username string `json:"username,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for an admin session.
func NewSessionClaims(
	userID, username, issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
	}
}

// ValidateIssuer checks the issuer matches the expected value. An empty
// expected issuer enforces nothing.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
