// Package tasks persists the task collection. All users' tasks live in one
// medium namespace; every operation is scoped by the explicit owner id
// passed in, never by inspecting the data being saved, so mutating one
// user's tasks can never drop another user's records — including when the
// owner's last task is removed.
package tasks

import (
	"context"

	"github.com/dkovalev/todovault/internal/models"
)

// Repository describes CRUD operations over the task collection.
type Repository interface {
	// ListByOwner returns the owner's tasks in storage order.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error)

	// GetByID returns the task with that id if it belongs to ownerID,
	// otherwise common.ErrNotFound.
	GetByID(ctx context.Context, ownerID, id string) (*models.Task, error)

	// Upsert inserts the task or replaces the stored task with the same id.
	Upsert(ctx context.Context, task models.Task) error

	// RemoveByID deletes the task if it belongs to ownerID and reports
	// whether a removal occurred. Nothing is persisted when it did not.
	RemoveByID(ctx context.Context, ownerID, id string) (bool, error)
}
