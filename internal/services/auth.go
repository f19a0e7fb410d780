// Package services contains the application services the presentation layer
// talks to. This file defines the authentication service: registration,
// login, logout, and current-session rehydration.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dkovalev/todovault/internal/common"
	"github.com/dkovalev/todovault/internal/cryptox"
	"github.com/dkovalev/todovault/internal/logging"
	"github.com/dkovalev/todovault/internal/models"
	"github.com/dkovalev/todovault/internal/repositories/credentials"
	"github.com/dkovalev/todovault/internal/repositories/users"
	"github.com/dkovalev/todovault/internal/session"
)

// AuthService defines the authentication operations.
//
// Contract:
//   - Register: create an account, fail with common.ErrDuplicateUser on a
//     taken email; the new user becomes the current session.
//   - Login: fail with common.ErrUserNotFound on unknown email and
//     common.ErrInvalidCredentials on a wrong password; the user becomes
//     the current session.
//   - Logout: clear the session marker; idempotent.
//   - CurrentUser: rehydrate the session from the medium; nil means
//     logged out.
//
// All failures are sentinel errors matched with errors.Is; none are fatal
// to the caller.
type AuthService interface {
	Register(ctx context.Context, email string, password []byte, name string) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

// registerInput exists for validation only.
type registerInput struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required"`
}

type authService struct {
	users    users.Repository
	creds    credentials.Repository
	session  *session.Store
	validate *validator.Validate
	log      logging.Logger
}

func NewAuthService(userRepo users.Repository, credRepo credentials.Repository, sessionStore *session.Store, log logging.Logger) AuthService {
	return &authService{
		users:    userRepo,
		creds:    credRepo,
		session:  sessionStore,
		validate: validator.New(),
		log:      log,
	}
}

// Register creates a new account. The password is stretched into a salted
// one-way verifier; the credential record is written before the user record
// so every registered user always has one. Email matching is an exact,
// case-sensitive string comparison.
func (s *authService) Register(ctx context.Context, email string, password []byte, name string) (*models.User, error) {
	if err := s.validate.Struct(registerInput{Email: email, Name: name}); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrValidation, err)
	}
	if len(password) == 0 {
		return nil, fmt.Errorf("%w: password is required", common.ErrValidation)
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrDuplicateUser
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	user := models.User{ID: common.NewID(), Email: email, Name: name}

	salt := common.GenerateRandByteArray(32)
	key := cryptox.DeriveKey(password, salt)
	rec := credentials.Record{Salt: salt, Verifier: cryptox.MakeVerifier(key)}
	if err := s.creds.Save(ctx, email, rec); err != nil {
		return nil, err
	}

	if err := s.users.Add(ctx, user); err != nil {
		return nil, err
	}

	if err := s.session.Save(ctx, &user); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "registered user", "email", email)
	return &user, nil
}

// Login authenticates an existing account and returns the stored user
// record unchanged.
func (s *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	rec, err := s.creds.Get(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// A user without a credential record should not exist; treat it
			// the same as a wrong password.
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !cryptox.VerifyPassword(password, rec.Salt, rec.Verifier) {
		return nil, common.ErrInvalidCredentials
	}

	if err := s.session.Save(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "logged in", "email", email)
	return user, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.session.Save(ctx, nil)
}

func (s *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.session.Current(ctx)
}
