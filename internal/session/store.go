// Package session persists the current-session marker: at most one user is
// considered logged in at any time, surviving restarts until logout. The
// marker is stored as an HS256-signed token so a tampered or truncated value
// reads as "logged out" instead of producing a bogus session.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkovalev/todovault/internal/logging"
	"github.com/dkovalev/todovault/internal/models"
	"github.com/dkovalev/todovault/internal/storage"
)

// storageKey is the medium namespace holding the session marker.
const storageKey = "todo-app-auth"

// Claims carries the signed user identity. Sessions do not expire; they end
// only at logout.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type Store struct {
	store  storage.Storage
	secret []byte
	log    logging.Logger
}

func NewStore(store storage.Storage, secret []byte, log logging.Logger) *Store {
	return &Store{store: store, secret: secret, log: log}
}

// Save sets the session marker to user, or clears it when user is nil.
// Clearing an already-clear marker is a no-op.
func (s *Store) Save(ctx context.Context, user *models.User) error {
	if user == nil {
		if err := s.store.Remove(ctx, storageKey); err != nil {
			return fmt.Errorf("failed to clear session marker: %w", err)
		}
		return nil
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session marker: %w", err)
	}

	if err := s.store.Set(ctx, storageKey, signed); err != nil {
		return fmt.Errorf("failed to write session marker: %w", err)
	}
	return nil
}

// Current returns the logged-in user, or nil when the marker is absent,
// malformed, or signed with a different secret. It never fails on bad
// persisted data; that simply reads as logged out.
func (s *Store) Current(ctx context.Context) (*models.User, error) {
	raw, err := s.store.Get(ctx, storageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session marker: %w", err)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		s.log.Warn(ctx, "discarding invalid session marker", "error", err)
		return nil, nil
	}

	return &models.User{ID: claims.UserID, Email: claims.Email, Name: claims.Name}, nil
}
