package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs session claims with an HMAC-SHA256 server secret. One secret,
// one algorithm: a single-process service has no need for key sets or
// asymmetric verification.
type Signer struct {
	secret []byte
}

// NewSigner creates an HS256 signer. The secret must be non-empty; 32 random
// bytes is the expected shape.
func NewSigner(secret []byte) (*Signer, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty signing secret")
	}
	return &Signer{secret: secret}, nil
}

// Sign produces a compact serialized JWT for the given claims.
func (s *Signer) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
