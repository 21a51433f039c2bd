package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sharmapg/hostel/pkg/httpx"
	"github.com/sharmapg/hostel/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestAuthnMiddleware(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef")
	issuer := "hostel-api"

	signer, err := jwtx.NewSigner(secret)
	require.NoError(t, err)
	verifier := jwtx.NewVerifier(secret, issuer)

	protected := httpx.AuthnMiddleware(verifier)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-User", httpx.UserIDFromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		},
	))

	t.Run("missing token is 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("non-bearer authorization is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("expired token is 403", func(t *testing.T) {
		claims := jwtx.NewSessionClaims("uid", "admin", issuer,
			jwtx.DefaultSessionTTL, time.Now().UTC().Add(-25*time.Hour))
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid token passes identity through", func(t *testing.T) {
		claims := jwtx.NewSessionClaims("user-1", "admin", issuer,
			jwtx.DefaultSessionTTL, time.Now().UTC())
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-1", rec.Header().Get("X-User"))
	})
}
