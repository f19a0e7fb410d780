package models

import "time"

// Priority classifies task urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a single todo item owned by exactly one user via UserID.
// CreatedAt is fixed at creation; UpdatedAt is refreshed on every mutation,
// toggles included, so UpdatedAt >= CreatedAt always holds.
//
// JSON tags match the persisted collection layout.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      string    `json:"userId"`
}

// TaskInput carries the caller-supplied fields for creating a task.
type TaskInput struct {
	Title       string   `validate:"required"`
	Description string
	Priority    Priority `validate:"required,oneof=low medium high"`
	Completed   bool
}

// TaskPatch is a partial update. Nil fields are left untouched; the merge is
// an explicit presence check per field, never a blind overwrite, so an
// omitted field can not accidentally clear a value.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	Completed   *bool
}

// Apply merges the set fields of p into t.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}
