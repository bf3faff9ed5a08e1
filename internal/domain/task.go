package domain

import (
	"strings"
	"time"
)

// TaskStatus is the workflow state of a task. The board uses the values below
// but any non-empty string is stored as given.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// Task is a unit of work on the board.
//
// ID is assigned by the store and CreatedAt is set once at creation; neither
// changes afterwards.
type Task struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
	DueDate     *time.Time
	Status      TaskStatus
}

// Validate checks the invariants a task must satisfy before it is persisted.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "is required", ErrEmptyTitle)
	}
	return nil
}

// HasDescription reports whether the description has any non-whitespace
// content.
func (t *Task) HasDescription() bool {
	return strings.TrimSpace(t.Description) != ""
}

// ApplyChanges overwrites the mutable fields of t with those of changes.
// Title, description and status are always replaced; the due date only when
// changes carries one. ID and CreatedAt are never touched.
func (t *Task) ApplyChanges(changes Task) {
	t.Title = changes.Title
	t.Description = changes.Description
	t.Status = changes.Status
	if changes.DueDate != nil {
		due := *changes.DueDate
		t.DueDate = &due
	}
}
