// Package main implements the entry point for the task board API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "taskboard-api: %v\n", err)
		os.Exit(1)
	}
}

// options are the command-line flags.
type options struct {
	migrate string
	envFile string
}

func parseFlags(args []string) (options, error) {
	var opts options
	flags := flag.NewFlagSet("taskboard-api", flag.ContinueOnError)
	flags.StringVar(&opts.migrate, "migrate", "", "run a migration command (up, down, status, version) and exit")
	flags.StringVar(&opts.envFile, "env-file", ".env", "optional dotenv file loaded before configuration")
	if err := flags.Parse(args); err != nil {
		return options{}, err
	}
	switch opts.migrate {
	case "", "up", "down", "status", "version":
	default:
		return options{}, fmt.Errorf("unknown migrate command %q", opts.migrate)
	}
	return opts, nil
}

// loadEnvFile loads path into the environment. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if err := loadEnvFile(opts.envFile); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Any("cors_allowed_origins", cfg.CORS.AllowedOrigins))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	if opts.migrate != "" {
		defer func() { _ = db.Close() }()
		return postgres.Migrate(ctx, db, opts.migrate, log)
	}

	if err := postgres.Migrate(ctx, db, "up", log); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
