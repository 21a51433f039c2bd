package service

import (
	"context"
	"testing"
	"time"

	"github.com/sharmapg/hostel/internal/hostel/domain"
	"github.com/sharmapg/hostel/internal/hostel/store"
	"github.com/sharmapg/hostel/internal/hostel/store/drivers/sqlite"
	"github.com/sharmapg/hostel/pkg/cryptox"
	"github.com/sharmapg/hostel/pkg/idx"
	"github.com/sharmapg/hostel/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedAdmin(t *testing.T, s store.Store, username, password string) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), user))
	return user
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	admin := seedAdmin(t, s, "admin", "correct horse battery")

	secret := []byte("0123456789abcdef0123456789abcdef")
	signer, err := jwtx.NewSigner(secret)
	require.NoError(t, err)

	svc := &AuthService{Store: s, Signer: signer, Issuer: "hostel-api"}

	user, token, err := svc.Login(ctx, "admin", "correct horse battery")
	require.NoError(t, err)
	require.Equal(t, admin.ID, user.ID)
	require.NotEmpty(t, token)

	verifier := jwtx.NewVerifier(secret, "hostel-api")
	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, admin.ID, claims.Subject)
	require.Equal(t, "admin", claims.Username)
	require.WithinDuration(t,
		time.Now().Add(jwtx.DefaultSessionTTL),
		claims.ExpiresAt.Time,
		time.Minute,
	)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedAdmin(t, s, "admin", "correct horse battery")

	signer, err := jwtx.NewSigner([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	svc := &AuthService{Store: s, Signer: signer, Issuer: "hostel-api"}

	// Wrong password and unknown username return the same error value.
	_, _, wrongPass := svc.Login(ctx, "admin", "wrong password")
	require.ErrorIs(t, wrongPass, ErrInvalidCredentials)

	_, _, unknownUser := svc.Login(ctx, "nobody", "correct horse battery")
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)

	require.Equal(t, wrongPass, unknownUser)
}

func TestLoginCustomTTL(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedAdmin(t, s, "admin", "correct horse battery")

	secret := []byte("0123456789abcdef0123456789abcdef")
	signer, err := jwtx.NewSigner(secret)
	require.NoError(t, err)

	svc := &AuthService{
		Store:    s,
		Signer:   signer,
		Issuer:   "hostel-api",
		TokenTTL: time.Hour,
	}

	_, token, err := svc.Login(ctx, "admin", "correct horse battery")
	require.NoError(t, err)

	claims, err := jwtx.NewVerifier(secret, "hostel-api").Verify(token)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}
