// Package common defines shared constants and sentinel errors used across
// TodoVault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors surfaced by the auth service.
	ErrDuplicateUser      = errors.New("user already exists with this email")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")

	// Missing tasks are a soft condition; callers typically show a message
	// and carry on.
	ErrTaskNotFound = errors.New("task not found")

	// Input validation errors.
	ErrValidation = errors.New("validation error")
)
