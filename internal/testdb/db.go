package testdb

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/taskboard-api/internal/ciutil"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/redact"
)

// migrations tracks one migration run per database URL per test binary.
var migrations sync.Map

type migrationRun struct {
	once sync.Once
	err  error
}

// GetTestDatabaseURL returns the configured test database URL, or "".
func GetTestDatabaseURL() string {
	return ciutil.GetTestDatabaseURL(slog.Default())
}

// ShouldSkipDatabaseTest reports whether no database URL is configured.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}

// Open returns a connection to the test database with migrations applied.
// The connection is closed when the test ends.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		vars := strings.Join(ciutil.DatabaseURLVars, ", ")
		if ciutil.IsCI() {
			t.Fatalf("no test database configured in CI; set one of %s", vars)
		}
		t.Skipf("no test database configured; set one of %s", vars)
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		t.Fatalf("failed to open test database: %s", redact.Error(err))
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("failed to ping test database: %s", redact.Error(err))
	}

	if err := migrateUp(ctx, dbURL, db); err != nil {
		t.Fatalf("failed to migrate test database: %s", redact.Error(err))
	}
	return db
}

func migrateUp(ctx context.Context, dbURL string, db *sql.DB) error {
	v, _ := migrations.LoadOrStore(dbURL, &migrationRun{})
	run := v.(*migrationRun)
	run.once.Do(func() {
		run.err = postgres.Migrate(ctx, db, "up", nil)
	})
	return run.err
}

// WithTx runs fn inside a transaction that is rolled back afterwards, even
// if fn panics or fails the test.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %s", redact.Error(err))
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
