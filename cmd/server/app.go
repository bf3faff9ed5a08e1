package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/api/middleware"
	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/platform/suggestion"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// application holds the shared dependencies and owns their cleanup.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	taskStore    store.TaskStore
	tokenService auth.TokenService
	loginService *auth.LoginService
	taskService  service.TaskService
	accessPolicy *middleware.AccessPolicy
}

// newApplication wires the production dependencies on top of db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app, err := buildApplication(cfg, logger, postgres.NewPostgresTaskStore(db, logger), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	app.db = db
	return app, nil
}

// buildApplication wires everything except the database connection.
func buildApplication(
	cfg *config.Config,
	logger *slog.Logger,
	taskStore store.TaskStore,
	bcryptCost int,
) (*application, error) {
	app := &application{
		config:       cfg,
		logger:       logger,
		taskStore:    taskStore,
		accessPolicy: middleware.DefaultAccessPolicy(),
	}

	var err error
	app.tokenService, err = auth.NewTokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("token service initialized",
		slog.Duration("token_lifetime", auth.TokenLifetime))

	checker, err := auth.NewCredentialChecker(bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential checker: %w", err)
	}
	app.loginService = auth.NewLoginService(checker, app.tokenService)

	suggester, err := suggestion.NewFromConfig(cfg.Suggestion, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion client: %w", err)
	}

	app.taskService, err = service.NewTaskService(taskStore, suggester, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", slog.String("error", err.Error()))
			return
		}
		app.logger.Info("database connection closed")
	}
}
