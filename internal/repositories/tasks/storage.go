package tasks

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

// storageKey is the medium namespace holding the serialized task collection
// for all users, partitioned by the userId field.
const storageKey = "todo-app-todos"

// collection is the in-memory index built over the decoded task list:
// storage order is kept in tasks, byID maps task id to its position, and
// byOwner is the secondary index used for owner-scoped reads.
type collection struct {
	tasks   []models.Task
	byID    map[string]int
	byOwner map[string][]int
}

func newCollection(tasks []models.Task) *collection {
	c := &collection{
		tasks:   tasks,
		byID:    make(map[string]int, len(tasks)),
		byOwner: make(map[string][]int),
	}
	for i, t := range tasks {
		c.byID[t.ID] = i
		c.byOwner[t.UserID] = append(c.byOwner[t.UserID], i)
	}
	return c
}

// StorageRepository implements Repository over the injected medium. The
// collection is decoded fresh per operation and written back wholesale, so
// two processes sharing one medium are last-writer-wins at collection
// granularity.
type StorageRepository struct {
	store storage.Storage
	log   logging.Logger
}

func NewStorageRepository(store storage.Storage, log logging.Logger) *StorageRepository {
	return &StorageRepository{store: store, log: log}
}

func (r *StorageRepository) load(ctx context.Context) (*collection, error) {
	raw, err := r.store.Get(ctx, storageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return newCollection(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read task collection: %w", err)
	}

	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		r.log.Warn(ctx, "discarding malformed task collection", "error", err)
		return newCollection(nil), nil
	}
	return newCollection(tasks), nil
}

func (r *StorageRepository) save(ctx context.Context, c *collection) error {
	data, err := json.Marshal(c.tasks)
	if err != nil {
		return fmt.Errorf("failed to encode task collection: %w", err)
	}
	if err := r.store.Set(ctx, storageKey, string(data)); err != nil {
		return fmt.Errorf("failed to write task collection: %w", err)
	}
	return nil
}

func (r *StorageRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	c, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	idxs := c.byOwner[ownerID]
	result := make([]models.Task, 0, len(idxs))
	for _, i := range idxs {
		result = append(result, c.tasks[i])
	}
	return result, nil
}

func (r *StorageRepository) GetByID(ctx context.Context, ownerID, id string) (*models.Task, error) {
	c, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	i, ok := c.byID[id]
	if !ok || c.tasks[i].UserID != ownerID {
		return nil, common.ErrNotFound
	}
	task := c.tasks[i]
	return &task, nil
}

func (r *StorageRepository) Upsert(ctx context.Context, task models.Task) error {
	c, err := r.load(ctx)
	if err != nil {
		return err
	}

	if i, ok := c.byID[task.ID]; ok {
		c.tasks[i] = task
	} else {
		c.tasks = append(c.tasks, task)
	}
	return r.save(ctx, c)
}

func (r *StorageRepository) RemoveByID(ctx context.Context, ownerID, id string) (bool, error) {
	c, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	i, ok := c.byID[id]
	if !ok || c.tasks[i].UserID != ownerID {
		return false, nil
	}

	c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
	if err := r.save(ctx, c); err != nil {
		return false, err
	}
	return true, nil
}
