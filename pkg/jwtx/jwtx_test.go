package jwtx_test

import (
	"testing"
	"time"

	"github.com/sharmapg/hostel/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "hostel-api"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestSignAndVerifyRoundtrip(t *testing.T) {
	signer, err := jwtx.NewSigner(testSecret)
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims(
		"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "admin", testIssuer,
		jwtx.DefaultSessionTTL, time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verifier := jwtx.NewVerifier(testSecret, testIssuer)
	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", got.Subject)
	require.Equal(t, "admin", got.Username)
	require.WithinDuration(t,
		time.Now().Add(jwtx.DefaultSessionTTL), got.ExpiresAt.Time, time.Minute)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	signer, err := jwtx.NewSigner(testSecret)
	require.NoError(t, err)

	// Issued far enough in the past that the 24h TTL has lapsed.
	issued := time.Now().UTC().Add(-25 * time.Hour)
	claims := jwtx.NewSessionClaims("uid", "admin", testIssuer, jwtx.DefaultSessionTTL, issued)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = jwtx.NewVerifier(testSecret, testIssuer).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer, err := jwtx.NewSigner(testSecret)
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims("uid", "admin", testIssuer, time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = jwtx.NewVerifier([]byte("another-secret-entirely-here!!!!"), testIssuer).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	signer, err := jwtx.NewSigner(testSecret)
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims("uid", "admin", "someone-else", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = jwtx.NewVerifier(testSecret, testIssuer).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	verifier := jwtx.NewVerifier(testSecret, testIssuer)

	for _, token := range []string{"", "not-a-jwt", "a.b", "a.b.c"} {
		_, err := verifier.Verify(token)
		require.Error(t, err, "token %q should not verify", token)
	}
}

func TestNewSignerRequiresSecret(t *testing.T) {
	_, err := jwtx.NewSigner(nil)
	require.Error(t, err)
}
