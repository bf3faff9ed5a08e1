package mocks

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	ListFn   func(ctx context.Context) ([]*domain.Task, error)
	GetFn    func(ctx context.Context, id int64) (*domain.Task, error)
	CreateFn func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	UpdateFn func(ctx context.Context, id int64, changes domain.Task) (*domain.Task, error)
	DeleteFn func(ctx context.Context, id int64) error

	// Default return values
	Tasks        []*domain.Task
	Task         *domain.Task
	DefaultError error
}

// List implements the TaskService.List method
func (m *MockTaskService) List(ctx context.Context) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Tasks, m.DefaultError
}

// Get implements the TaskService.Get method
func (m *MockTaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Task, m.DefaultError
}

// Create implements the TaskService.Create method
func (m *MockTaskService) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return m.Task, m.DefaultError
}

// Update implements the TaskService.Update method
func (m *MockTaskService) Update(ctx context.Context, id int64, changes domain.Task) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, changes)
	}
	return m.Task, m.DefaultError
}

// Delete implements the TaskService.Delete method
func (m *MockTaskService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.DefaultError
}
