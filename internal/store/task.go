package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task persistence. Each call is
// expected to be atomic on its own; callers hold no transactions across calls.
type TaskStore interface {
	// FindAll returns every task in insertion order.
	FindAll(ctx context.Context) ([]*domain.Task, error)

	// FindByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Task, error)

	// Save inserts the task when its ID is zero and updates it otherwise.
	// On insert the store assigns ID. CreatedAt is written on insert only.
	// Returns ErrTaskNotFound when updating a task that no longer exists.
	Save(ctx context.Context, task *domain.Task) error

	// DeleteByID removes the task. Deleting a missing ID is not an error.
	DeleteByID(ctx context.Context, id int64) error
}
