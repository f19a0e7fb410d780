package tasks

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/todovault/internal/common"
	"github.com/dkovalev/todovault/internal/logging"
	"github.com/dkovalev/todovault/internal/models"
	"github.com/dkovalev/todovault/internal/storage"
)

func newRepo(t *testing.T) (*StorageRepository, *storage.MemoryStorage) {
	t.Helper()
	store := storage.NewMemoryStorage()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	return NewStorageRepository(store, log), store
}

func task(id, owner, title string) models.Task {
	now := time.Now().UTC()
	return models.Task{
		ID:        id,
		Title:     title,
		Priority:  models.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    owner,
	}
}

func TestStorageRepository_UpsertAndList(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)

	require.NoError(t, r.Upsert(ctx, task("1", "ua", "first")))
	require.NoError(t, r.Upsert(ctx, task("2", "ua", "second")))

	got, err := r.ListByOwner(ctx, "ua")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "second", got[1].Title)
}

func TestStorageRepository_Upsert_ReplacesById(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)

	require.NoError(t, r.Upsert(ctx, task("1", "ua", "before")))

	updated := task("1", "ua", "after")
	require.NoError(t, r.Upsert(ctx, updated))

	got, err := r.ListByOwner(ctx, "ua")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "after", got[0].Title)
}

func TestStorageRepository_GetByID_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)

	require.NoError(t, r.Upsert(ctx, task("1", "ua", "mine")))

	got, err := r.GetByID(ctx, "ua", "1")
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Title)

	// another user can not see it
	_, err = r.GetByID(ctx, "ub", "1")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = r.GetByID(ctx, "ua", "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestStorageRepository_RemoveByID(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)

	require.NoError(t, r.Upsert(ctx, task("1", "ua", "t")))

	// wrong owner removes nothing
	removed, err := r.RemoveByID(ctx, "ub", "1")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = r.RemoveByID(ctx, "ua", "1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = r.RemoveByID(ctx, "ua", "1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStorageRepository_PartitionByOwner(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)

	require.NoError(t, r.Upsert(ctx, task("a1", "ua", "a first")))
	require.NoError(t, r.Upsert(ctx, task("b1", "ub", "b first")))
	require.NoError(t, r.Upsert(ctx, task("a2", "ua", "a second")))

	// removing ua's last remaining tasks must not touch ub's records
	removed, err := r.RemoveByID(ctx, "ua", "a1")
	require.NoError(t, err)
	require.True(t, removed)
	removed, err = r.RemoveByID(ctx, "ua", "a2")
	require.NoError(t, err)
	require.True(t, removed)

	aTasks, err := r.ListByOwner(ctx, "ua")
	require.NoError(t, err)
	assert.Empty(t, aTasks)

	bTasks, err := r.ListByOwner(ctx, "ub")
	require.NoError(t, err)
	require.Len(t, bTasks, 1)
	assert.Equal(t, "b first", bTasks[0].Title)
}

func TestStorageRepository_TimestampsSurviveRoundTrip(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)

	in := task("1", "ua", "t")
	require.NoError(t, r.Upsert(ctx, in))

	got, err := r.GetByID(ctx, "ua", "1")
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(in.CreatedAt))
	assert.True(t, got.UpdatedAt.Equal(in.UpdatedAt))
}

func TestStorageRepository_MalformedCollectionResets(t *testing.T) {
	ctx := context.Background()
	r, store := newRepo(t)

	require.NoError(t, store.Set(ctx, "todo-app-todos", "[broken"))

	got, err := r.ListByOwner(ctx, "ua")
	require.NoError(t, err)
	assert.Empty(t, got)
}
