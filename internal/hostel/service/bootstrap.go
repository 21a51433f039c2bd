package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"github.com/sharmapg/hostel/internal/hostel/domain"
	"github.com/sharmapg/hostel/internal/hostel/store"
	"github.com/sharmapg/hostel/pkg/cryptox"
	"github.com/sharmapg/hostel/pkg/idx"
	"github.com/sharmapg/hostel/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService provisions the first admin user and the initial room
// inventory on a fresh install, guarded by a pre-shared token.
type BootstrapService struct {
	Store store.Store
	Token string
}

// IsBootstrapped reports whether an admin user already exists.
func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap creates the admin user and seeds room-status rows in one
// transaction. Returns the new admin user's ID.
func (s *BootstrapService) Bootstrap(
	ctx context.Context,
	token, username, password string,
	rooms []domain.RoomStatus,
) (string, error) {
	l := slogx.FromContext(ctx)

	if bootstrapped, err := s.IsBootstrapped(ctx); err != nil {
		return "", err
	} else if bootstrapped {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return "", ErrBootstrapAlready
	}

	if s.Token == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		l.Warn("unauthorized bootstrap attempt")
		return "", ErrBootstrapUnauthorized
	}

	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return "", errors.New("failed to create admin user")
	}

	now := time.Now().UTC()
	adminUserID := idx.New().String()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.Users().CreateUser(ctx, domain.User{
			ID:           adminUserID,
			Username:     username,
			PasswordHash: passHash,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			l.Error("failed to create admin user", slog.Any("error", err))
			return errors.New("failed to create admin user")
		}

		for _, room := range rooms {
			room.ID = idx.New().String()
			room.UpdatedAt = now
			if err := tx.RoomStatus().UpsertRoomStatus(ctx, room); err != nil {
				l.Error("failed to seed room status",
					slog.String("room_type", room.RoomType),
					slog.Any("error", err),
				)
				return errors.New("failed to seed room status")
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	l.Info("successfully bootstrapped system", slog.String("admin_user_id", adminUserID))
	return adminUserID, nil
}
