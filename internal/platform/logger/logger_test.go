package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLevel(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestSetup(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	buf := &TestLogBuffer{}
	l, err := Setup(LoggerConfig{Level: "warn", Output: buf})
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Same(t, l, slog.Default())

	l.Info("dropped")
	l.Warn("kept", "component", "test")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["msg"])
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "test", entries[0]["component"])
}

func TestFromContext(t *testing.T) {
	l, _ := NewTestLogger()

	t.Run("stored logger is returned", func(t *testing.T) {
		ctx := WithLogger(context.Background(), l)
		assert.Same(t, l, FromContext(ctx))
		assert.Same(t, l, FromContextOrDefault(ctx, slog.Default()))
	})

	t.Run("fallback used when absent", func(t *testing.T) {
		assert.Same(t, l, FromContextOrDefault(context.Background(), l))
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("nil fallback uses default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
	})
}
