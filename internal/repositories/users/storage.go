package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dkovalev/todovault/internal/common"
	"github.com/dkovalev/todovault/internal/logging"
	"github.com/dkovalev/todovault/internal/models"
	"github.com/dkovalev/todovault/internal/storage"
)

// storageKey is the medium namespace holding the serialized user collection.
const storageKey = "todo-app-users"

// StorageRepository implements Repository over the injected medium. Every
// operation reads the collection fresh and writes it back wholesale, which
// keeps instances sharing one medium coherent (last writer wins).
type StorageRepository struct {
	store storage.Storage
	log   logging.Logger
}

func NewStorageRepository(store storage.Storage, log logging.Logger) *StorageRepository {
	return &StorageRepository{store: store, log: log}
}

func (r *StorageRepository) load(ctx context.Context) ([]models.User, error) {
	raw, err := r.store.Get(ctx, storageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user collection: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		// Malformed persisted data resets to an empty collection instead of
		// failing the caller.
		r.log.Warn(ctx, "discarding malformed user collection", "error", err)
		return nil, nil
	}
	return users, nil
}

func (r *StorageRepository) save(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode user collection: %w", err)
	}
	if err := r.store.Set(ctx, storageKey, string(data)); err != nil {
		return fmt.Errorf("failed to write user collection: %w", err)
	}
	return nil
}

func (r *StorageRepository) GetAll(ctx context.Context) ([]models.User, error) {
	return r.load(ctx)
}

func (r *StorageRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *StorageRepository) Add(ctx context.Context, user models.User) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(users, user))
}
