package shared

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID in original context")

	ctxWithTrace := SetTraceID(ctx)
	traceID := GetTraceID(ctxWithTrace)
	assert.Len(t, traceID, 32, "Expected trace ID length to be 32 hex characters")

	assert.Empty(t, GetTraceID(ctx), "Expected original context to remain unchanged")
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123)
	assert.Empty(t, GetTraceID(ctx))
}

func TestNewTraceID(t *testing.T) {
	const iterations = 1000
	seen := make(map[string]bool, iterations)

	for i := 0; i < iterations; i++ {
		id := NewTraceID()
		require.Len(t, id, 32)
		_, err := hex.DecodeString(id)
		require.NoError(t, err, "Expected valid hex string")
		assert.False(t, seen[id], "Expected all trace IDs to be unique")
		seen[id] = true
	}
}

func TestIdentityContext(t *testing.T) {
	ctx := context.Background()

	_, ok := IdentityFromContext(ctx)
	assert.False(t, ok)

	ctx = WithIdentity(ctx, auth.Identity{Subject: "admin"})
	identity, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "admin", identity.Subject)

	again := WithIdentity(ctx, auth.Identity{Subject: "someone-else"})
	assert.Equal(t, ctx, again, "existing identity must not be replaced")
	identity, _ = IdentityFromContext(again)
	assert.Equal(t, "admin", identity.Subject)
}

func TestIdentityFromContextRejectsEmptySubject(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityContextKey, auth.Identity{})
	_, ok := IdentityFromContext(ctx)
	assert.False(t, ok)
}
