package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// ContextKey is the key type for request-scoped values set by this package.
type ContextKey string

const (
	// IdentityContextKey holds the auth.Identity of an authenticated request.
	IdentityContextKey ContextKey = "identity"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID returns a copy of ctx carrying a new random trace ID.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, NewTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" if none.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// NewTraceID returns a 32 character lowercase hex identifier.
func NewTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// WithIdentity attaches identity to ctx. If ctx already carries an identity it
// is returned unchanged, so authentication running twice has no extra effect.
func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	if _, ok := IdentityFromContext(ctx); ok {
		return ctx
	}
	return context.WithValue(ctx, IdentityContextKey, identity)
}

// IdentityFromContext returns the identity of an authenticated request.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(IdentityContextKey).(auth.Identity)
	if !ok || identity.Subject == "" {
		return auth.Identity{}, false
	}
	return identity, true
}
