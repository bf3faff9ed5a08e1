package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// SuggestionPrefix is prepended to enriched descriptions.
const SuggestionPrefix = "External suggestion: "

// Suggester supplies placeholder description text. Implementations must not
// fail; they return fallback text instead.
type Suggester interface {
	Suggest(ctx context.Context) string
}

// TaskService provides task board operations
type TaskService interface {
	// List returns every task, possibly none.
	List(ctx context.Context) ([]*domain.Task, error)

	// Get returns a single task or store.ErrTaskNotFound.
	Get(ctx context.Context, id int64) (*domain.Task, error)

	// Create persists a new task. A blank description is replaced with an
	// external suggestion, a blank status defaults to PENDING and CreatedAt
	// is stamped with the current time.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// Update overwrites title, description and status of an existing task,
	// and its due date when changes carries one.
	Update(ctx context.Context, id int64, changes domain.Task) (*domain.Task, error)

	// Delete removes a task. Deleting a missing task is not an error.
	Delete(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks     store.TaskStore
	suggester Suggester
	logger    *slog.Logger
	timeFunc  func() time.Time
}

// NewTaskService creates a new TaskService
// It returns an error if any of the required dependencies are nil.
func NewTaskService(tasks store.TaskStore, suggester Suggester, logger *slog.Logger) (TaskService, error) {
	return newTaskService(tasks, suggester, logger, time.Now)
}

func newTaskService(
	tasks store.TaskStore,
	suggester Suggester,
	logger *slog.Logger,
	timeFunc func() time.Time,
) (*taskServiceImpl, error) {
	if tasks == nil {
		return nil, domain.NewValidationError("tasks", "cannot be nil", domain.ErrValidation)
	}
	if suggester == nil {
		return nil, domain.NewValidationError("suggester", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:     tasks,
		suggester: suggester,
		logger:    logger.With(slog.String("component", "task_service")),
		timeFunc:  timeFunc,
	}, nil
}

// List implements TaskService.List
func (s *taskServiceImpl) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.tasks.FindAll(ctx)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("list_tasks", "failed to retrieve tasks", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// Get implements TaskService.Get
func (s *taskServiceImpl) Get(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, NewTaskServiceError("get_task", "task not found", store.ErrTaskNotFound)
		}
		log.Error("failed to retrieve task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// Create implements TaskService.Create
func (s *taskServiceImpl) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if task == nil {
		return nil, domain.NewValidationError("task", "is required", domain.ErrValidation)
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	created := *task
	created.ID = 0
	created.CreatedAt = s.timeFunc().UTC()
	if created.Status == "" {
		created.Status = domain.TaskStatusPending
	}
	if !created.HasDescription() {
		created.Description = SuggestionPrefix + s.suggester.Suggest(ctx)
		log.Debug("filled blank description from suggestion")
	}

	if err := s.tasks.Save(ctx, &created); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return nil, err
		}
		log.Error("failed to save task", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created", slog.Int64("task_id", created.ID))
	return &created, nil
}

// Update implements TaskService.Update
func (s *taskServiceImpl) Update(ctx context.Context, id int64, changes domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := changes.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.ApplyChanges(changes)

	if err := s.tasks.Save(ctx, &updated); err != nil {
		if store.IsNotFoundError(err) {
			// Removed between read and write.
			return nil, NewTaskServiceError("update_task", "task not found", store.ErrTaskNotFound)
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, NewTaskServiceError("update_task", "failed to save task", err)
	}

	log.Info("task updated", slog.Int64("task_id", id))
	return &updated, nil
}

// Delete implements TaskService.Delete
func (s *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.tasks.DeleteByID(ctx, id); err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	return nil
}
