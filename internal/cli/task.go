package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkovalev/todovault/internal/common"
	"github.com/dkovalev/todovault/internal/models"
)

var errNotLoggedIn = errors.New("not logged in")

func (a *App) requireUser() (*models.User, error) {
	if a.user == nil {
		printlnFn("Please login first.")
		return nil, errNotLoggedIn
	}
	return a.user, nil
}

func formatTask(t models.Task) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s  %s (%s)", mark, t.ID, t.Title, t.Priority)
}

// ListTasks prints the user's tasks in storage order.
func (a *App) ListTasks(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	list, err := a.tasks.List(ctx, user.ID)
	if err != nil {
		a.log.Error(ctx, "failed to list tasks", "error", err)
		return err
	}

	if len(list) == 0 {
		printlnFn("No tasks yet. Use 'add' to create one.")
		return nil
	}
	for _, t := range list {
		printlnFn(formatTask(t))
	}
	return nil
}

// AddTask prompts for the task fields and creates it. An empty priority
// defaults to medium.
func (a *App) AddTask(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	priorityText, err := getSimpleText(a.reader, "Enter priority: low, medium or high (default medium)", os.Stdout)
	if err != nil {
		return err
	}

	priority := models.PriorityMedium
	if priorityText != "" {
		priority = models.Priority(priorityText)
	}

	task, err := a.tasks.Create(ctx, user.ID, models.TaskInput{
		Title:       title,
		Description: description,
		Priority:    priority,
	})
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			printlnFn(err.Error())
		} else {
			a.log.Error(ctx, "failed to create task", "error", err)
		}
		return err
	}

	printlnFn("Created:", formatTask(*task))
	return nil
}

// EditTask prompts for a task id and new field values; empty answers leave
// the stored value untouched.
func (a *App) EditTask(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter task id to edit", os.Stdout)
	if err != nil {
		return err
	}

	var patch models.TaskPatch
	if title, err := getSimpleText(a.reader, "New title (empty to keep)", os.Stdout); err != nil {
		return err
	} else if title != "" {
		patch.Title = &title
	}
	if description, err := getSimpleText(a.reader, "New description (empty to keep)", os.Stdout); err != nil {
		return err
	} else if description != "" {
		patch.Description = &description
	}
	if priorityText, err := getSimpleText(a.reader, "New priority (empty to keep)", os.Stdout); err != nil {
		return err
	} else if priorityText != "" {
		p := models.Priority(priorityText)
		patch.Priority = &p
	}

	task, err := a.tasks.Update(ctx, user.ID, id, patch)
	if err != nil {
		if errors.Is(err, common.ErrTaskNotFound) || errors.Is(err, common.ErrValidation) {
			printlnFn(err.Error())
		} else {
			a.log.Error(ctx, "failed to update task", "error", err)
		}
		return err
	}

	printlnFn("Updated:", formatTask(*task))
	return nil
}

// ToggleTask flips the completion flag of the given task.
func (a *App) ToggleTask(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter task id to toggle", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.tasks.Toggle(ctx, user.ID, id)
	if err != nil {
		if errors.Is(err, common.ErrTaskNotFound) {
			printlnFn(err.Error())
		} else {
			a.log.Error(ctx, "failed to toggle task", "error", err)
		}
		return err
	}

	printlnFn(formatTask(*task))
	return nil
}

// ShowTask prints one task in full.
func (a *App) ShowTask(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter task id to show", os.Stdout)
	if err != nil {
		return err
	}

	list, err := a.tasks.List(ctx, user.ID)
	if err != nil {
		a.log.Error(ctx, "failed to list tasks", "error", err)
		return err
	}
	for _, t := range list {
		if t.ID != id {
			continue
		}
		printlnFn(formatTask(t))
		if t.Description != "" {
			printlnFn("  " + t.Description)
		}
		printlnFn("  created:", t.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		printlnFn("  updated:", t.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		return nil
	}

	printlnFn(common.ErrTaskNotFound.Error())
	return common.ErrTaskNotFound
}

// DeleteTask removes the given task.
func (a *App) DeleteTask(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter task id to delete", os.Stdout)
	if err != nil {
		return err
	}

	removed, err := a.tasks.Delete(ctx, user.ID, id)
	if err != nil {
		a.log.Error(ctx, "failed to delete task", "error", err)
		return err
	}
	if !removed {
		printlnFn(common.ErrTaskNotFound.Error())
		return nil
	}

	printlnFn("Deleted.")
	return nil
}
