package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/sharmapg/hostel/pkg/jwtx"
	"github.com/sharmapg/hostel/pkg/slogx"
)

// AuthnMiddleware guards admin routes with stateless bearer-token auth.
// A missing token is 401; a token that fails verification (bad signature,
// expired, wrong issuer) is 403. The two cases are deliberately distinct so
// clients can tell "log in" apart from "log in again".
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				writeBearerError(w, http.StatusForbidden, "token invalid or expired")
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyUsername, c.Username)
	return ctx
}

// RFC 6750-style error response for bearer auth failures.
func writeBearerError(w http.ResponseWriter, code int, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, code, map[string]string{
		"error":   "invalid_token",
		"message": desc,
	})
}
