// Package users persists the account collection in the key-value medium.
package users

import (
	"context"

	"github.com/dkovalev/todovault/internal/models"
)

// Repository describes operations over the persisted user collection.
type Repository interface {
	// GetAll returns every registered user in storage order.
	GetAll(ctx context.Context) ([]models.User, error)

	// FindByEmail returns the user with exactly that email (case-sensitive),
	// or common.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Add appends a user to the collection. Uniqueness is the caller's
	// responsibility.
	Add(ctx context.Context, user models.User) error
}
