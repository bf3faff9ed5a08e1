package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

const taskColumns = `id, title, description, created_at, due_date, status`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task    domain.Task
		dueDate sql.NullTime
		status  string
	)
	if err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.CreatedAt,
		&dueDate,
		&status,
	); err != nil {
		return nil, err
	}
	if dueDate.Valid {
		d := dueDate.Time.UTC()
		task.DueDate = &d
	}
	task.CreatedAt = task.CreatedAt.UTC()
	task.Status = domain.TaskStatus(status)
	return &task, nil
}

func nullTime(t *domain.Task) sql.NullTime {
	if t.DueDate == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t.DueDate, Valid: true}
}

// FindAll implements store.TaskStore.FindAll.
func (s *PostgresTaskStore) FindAll(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "find_all", "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("task", "find_all", "scan failed", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "find_all", "row iteration failed", err)
	}

	log.Debug("tasks retrieved", slog.Int("count", len(tasks)))
	return tasks, nil
}

// FindByID implements store.TaskStore.FindByID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, store.NewStoreError("task", "find_by_id", "query failed", MapError(err))
	}
	return task, nil
}

// Save implements store.TaskStore.Save.
// A zero ID inserts a new row and assigns the generated ID; any other ID
// updates the mutable columns of the existing row.
func (s *PostgresTaskStore) Save(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during save",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return err
	}

	if task.ID == 0 {
		return s.insert(ctx, log, task)
	}
	return s.update(ctx, log, task)
}

func (s *PostgresTaskStore) insert(ctx context.Context, log *slog.Logger, task *domain.Task) error {
	query := `
		INSERT INTO tasks (title, description, created_at, due_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		task.Title,
		task.Description,
		task.CreatedAt,
		nullTime(task),
		string(task.Status),
	).Scan(&task.ID)
	if err != nil {
		log.Error("failed to insert task", slog.String("error", err.Error()))
		return store.NewStoreError("task", "save", "insert failed", MapError(err))
	}

	log.Info("task created", slog.Int64("task_id", task.ID), slog.String("status", string(task.Status)))
	return nil
}

func (s *PostgresTaskStore) update(ctx context.Context, log *slog.Logger, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3, status = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		nullTime(task),
		string(task.Status),
		task.ID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return store.NewStoreError("task", "save", "update failed", MapError(err))
	}
	if err := checkRowsAffected(result); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("task not found for update", slog.Int64("task_id", task.ID))
		}
		return err
	}

	log.Info("task updated", slog.Int64("task_id", task.ID))
	return nil
}

// DeleteByID implements store.TaskStore.DeleteByID.
// Deleting a task that does not exist succeeds.
func (s *PostgresTaskStore) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return store.NewStoreError("task", "delete", "delete failed", MapError(err))
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		log.Debug("delete of missing task ignored", slog.Int64("task_id", id))
		return nil
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	return nil
}
