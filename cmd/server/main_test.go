package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{name: "defaults", args: nil, want: options{envFile: ".env"}},
		{name: "migrate up", args: []string{"-migrate", "up"}, want: options{migrate: "up", envFile: ".env"}},
		{name: "migrate status", args: []string{"-migrate=status"}, want: options{migrate: "status", envFile: ".env"}},
		{name: "custom env file", args: []string{"-env-file", "prod.env"}, want: options{envFile: "prod.env"}},
		{name: "unknown migrate command", args: []string{"-migrate", "sideways"}, wantErr: true},
		{name: "unknown flag", args: []string{"-verbose"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), "absent.env")))
	})

	t.Run("empty path is ignored", func(t *testing.T) {
		assert.NoError(t, loadEnvFile(""))
	})

	t.Run("values are exported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("TASKBOARD_TEST_DOTENV_VALUE=loaded\n"), 0o600))
		t.Setenv("TASKBOARD_TEST_DOTENV_VALUE", "")
		require.NoError(t, os.Unsetenv("TASKBOARD_TEST_DOTENV_VALUE"))

		require.NoError(t, loadEnvFile(path))
		assert.Equal(t, "loaded", os.Getenv("TASKBOARD_TEST_DOTENV_VALUE"))
	})
}
