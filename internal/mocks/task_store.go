package mocks

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	FindAllFn    func(ctx context.Context) ([]*domain.Task, error)
	FindByIDFn   func(ctx context.Context, id int64) (*domain.Task, error)
	SaveFn       func(ctx context.Context, task *domain.Task) error
	DeleteByIDFn func(ctx context.Context, id int64) error

	// Default return values
	Tasks        []*domain.Task
	Task         *domain.Task
	DefaultError error

	// Saved records every task passed to Save
	Saved []*domain.Task
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// FindAll implements the TaskStore.FindAll method
func (m *MockTaskStore) FindAll(ctx context.Context) ([]*domain.Task, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return m.Tasks, m.DefaultError
}

// FindByID implements the TaskStore.FindByID method
func (m *MockTaskStore) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return m.Task, m.DefaultError
}

// Save implements the TaskStore.Save method
func (m *MockTaskStore) Save(ctx context.Context, task *domain.Task) error {
	m.Saved = append(m.Saved, task)
	if m.SaveFn != nil {
		return m.SaveFn(ctx, task)
	}
	return m.DefaultError
}

// DeleteByID implements the TaskStore.DeleteByID method
func (m *MockTaskStore) DeleteByID(ctx context.Context, id int64) error {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}
	return m.DefaultError
}
