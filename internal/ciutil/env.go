package ciutil

import (
	"log/slog"
	"os"

	"github.com/phrazzld/taskboard-api/internal/redact"
)

// Environment variable names used by the test tooling.
const (
	// CI environment detection variables
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvCircleCI      = "CIRCLECI"

	// Database connection environment variables, preferred name first
	EnvTaskboardTestDBURL   = "TASKBOARD_TEST_DB_URL"
	EnvDatabaseURL          = "DATABASE_URL"
	EnvTaskboardDatabaseURL = "TASKBOARD_DATABASE_URL"
)

// DatabaseURLVars lists the variables checked for a test database URL, in
// order of preference.
var DatabaseURLVars = []string{EnvTaskboardTestDBURL, EnvDatabaseURL, EnvTaskboardDatabaseURL}

var ciVars = []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvCircleCI}

// IsCI returns true if the current environment is a CI environment.
func IsCI() bool {
	for _, name := range ciVars {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// GetEnvWithFallbacks returns the value of the first non-empty variable in
// envVars, or defaultValue if none is set. Using any name but the first logs
// a warning with the value redacted.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for i, envVar := range envVars {
		val := os.Getenv(envVar)
		if val == "" {
			continue
		}
		if i > 0 && logger != nil {
			logger.Warn("using fallback environment variable",
				slog.String("used_var", envVar),
				slog.String("preferred_var", envVars[0]),
				slog.String("value", redact.String(val)))
		}
		return val
	}
	return defaultValue
}

// GetTestDatabaseURL returns the configured test database URL, or "".
func GetTestDatabaseURL(logger *slog.Logger) string {
	return GetEnvWithFallbacks(DatabaseURLVars, "", logger)
}
