package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dkovalev/todovault/internal/common"
	"github.com/dkovalev/todovault/internal/logging"
	"github.com/dkovalev/todovault/internal/models"
	"github.com/dkovalev/todovault/internal/repositories/tasks"
)

// TaskService defines CRUD and toggle operations over one user's tasks.
// Every operation is scoped by userID; a task id belonging to another user
// behaves exactly like a missing id. Missing tasks surface as
// common.ErrTaskNotFound (Update/Toggle) or a false result (Delete) — soft
// conditions the caller can show and move past.
type TaskService interface {
	List(ctx context.Context, userID string) ([]models.Task, error)
	Create(ctx context.Context, userID string, input models.TaskInput) (*models.Task, error)
	Update(ctx context.Context, userID, taskID string, patch models.TaskPatch) (*models.Task, error)
	Toggle(ctx context.Context, userID, taskID string) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) (bool, error)
}

type taskService struct {
	repo     tasks.Repository
	validate *validator.Validate
	log      logging.Logger
}

func NewTaskService(repo tasks.Repository, log logging.Logger) TaskService {
	return &taskService{repo: repo, validate: validator.New(), log: log}
}

func (s *taskService) List(ctx context.Context, userID string) ([]models.Task, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// Create assigns a fresh time-ordered id and stamps both timestamps with
// the same instant, so a new task always has CreatedAt == UpdatedAt.
func (s *taskService) Create(ctx context.Context, userID string, input models.TaskInput) (*models.Task, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrValidation, err)
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:          common.NewID(),
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		Priority:    input.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      userID,
	}

	if err := s.repo.Upsert(ctx, task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update merges the set patch fields over the stored task and refreshes
// UpdatedAt, even when the patch changes nothing.
func (s *taskService) Update(ctx context.Context, userID, taskID string, patch models.TaskPatch) (*models.Task, error) {
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", common.ErrValidation, *patch.Priority)
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", common.ErrValidation)
	}

	task, err := s.repo.GetByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrTaskNotFound
		}
		return nil, err
	}

	patch.Apply(task)
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, *task); err != nil {
		return nil, err
	}
	return task, nil
}

// Toggle flips the completion flag; otherwise identical to Update.
func (s *taskService) Toggle(ctx context.Context, userID, taskID string) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrTaskNotFound
		}
		return nil, err
	}

	completed := !task.Completed
	return s.Update(ctx, userID, taskID, models.TaskPatch{Completed: &completed})
}

// Delete removes the task and reports whether anything was removed. A
// missing id leaves the user's task set untouched.
func (s *taskService) Delete(ctx context.Context, userID, taskID string) (bool, error) {
	return s.repo.RemoveByID(ctx, userID, taskID)
}
