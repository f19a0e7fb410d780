package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dkovalev/todovault/internal/common"
	"github.com/dkovalev/todovault/internal/logging"
	"github.com/dkovalev/todovault/internal/storage"
)

// storageKey is the medium namespace holding the serialized credential map.
const storageKey = "todo-app-passwords"

type StorageRepository struct {
	store storage.Storage
	log   logging.Logger
}

func NewStorageRepository(store storage.Storage, log logging.Logger) *StorageRepository {
	return &StorageRepository{store: store, log: log}
}

func (r *StorageRepository) load(ctx context.Context) map[string]Record {
	raw, err := r.store.Get(ctx, storageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Warn(ctx, "failed to read credential map", "error", err)
		}
		return map[string]Record{}
	}

	var m map[string]Record
	if err := json.Unmarshal([]byte(raw), &m); err != nil || m == nil {
		r.log.Warn(ctx, "discarding malformed credential map", "error", err)
		return map[string]Record{}
	}
	return m
}

func (r *StorageRepository) Save(ctx context.Context, email string, rec Record) error {
	m := r.load(ctx)
	m[email] = rec

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode credential map: %w", err)
	}
	if err := r.store.Set(ctx, storageKey, string(data)); err != nil {
		return fmt.Errorf("failed to write credential map: %w", err)
	}
	return nil
}

func (r *StorageRepository) Get(ctx context.Context, email string) (*Record, error) {
	rec, ok := r.load(ctx)[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &rec, nil
}
