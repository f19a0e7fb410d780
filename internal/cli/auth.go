package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkovalev/todovault/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and creates a new account. On
// success the new user becomes the active session. The password buffer is
// wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Register(ctx, email, password, name)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateUser), errors.Is(err, common.ErrValidation):
			printlnFn(err.Error())
		default:
			a.log.Error(ctx, "registration failed", "error", err)
		}
		return err
	}

	a.user = user
	printlnFn(fmt.Sprintf("Welcome, %s!", user.Name))
	return nil
}

// Login prompts for credentials and authenticates. Auth failures are shown
// to the user without revealing which check failed beyond the service's
// message.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUserNotFound), errors.Is(err, common.ErrInvalidCredentials):
			printlnFn(err.Error())
		default:
			a.log.Error(ctx, "login failed", "error", err)
		}
		return err
	}

	a.user = user
	printlnFn(fmt.Sprintf("Welcome back, %s!", user.Name))
	return nil
}

// Logout clears the persisted session marker and the in-memory user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.user = nil
	printlnFn("Logged out.")
	return nil
}
