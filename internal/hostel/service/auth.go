package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sharmapg/hostel/internal/hostel/domain"
	"github.com/sharmapg/hostel/internal/hostel/store"
	"github.com/sharmapg/hostel/pkg/cryptox"
	"github.com/sharmapg/hostel/pkg/jwtx"
	"github.com/sharmapg/hostel/pkg/slogx"
)

var ErrInvalidCredentials = errors.New("invalid_credentials")

// dummyHash is verified against when the username does not exist, so the
// unknown-user and wrong-password paths cost the same and the response time
// does not leak which usernames are registered.
var (
	dummyHash     string
	dummyHashOnce sync.Once
)

func getDummyHash() string {
	dummyHashOnce.Do(func() {
		h, err := cryptox.HashPassword("hostel-dummy-credential")
		if err != nil {
			// rand.Read failing means the process is in a bad way; an empty
			// hash still fails verification safely.
			h = ""
		}
		dummyHash = h
	})
	return dummyHash
}

type AuthService struct {
	Store  store.Store
	Signer *jwtx.Signer
	Issuer string

	// TokenTTL defaults to jwtx.DefaultSessionTTL when zero.
	TokenTTL time.Duration
}

// Login verifies the credentials and issues a signed session token. Unknown
// usernames and wrong passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn the same hashing work a real lookup would.
			_ = cryptox.VerifyPassword(password, getDummyHash())
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if cryptox.VerifyPassword(password, user.PasswordHash) != nil {
		l.Info("login failed", slog.String("username", username))
		return domain.User{}, "", ErrInvalidCredentials
	}

	ttl := s.TokenTTL
	if ttl == 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Username, s.Issuer, ttl, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.User{}, "", err
	}

	l.Info("login succeeded", slog.String("user_id", user.ID))
	return user, token, nil
}
