package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves a request identity from a bearer token.
type AuthMiddleware struct {
	tokens auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate attaches the token subject to the request context when the
// Authorization header carries a valid bearer token. Requests without a
// header, with a bad token, or with method OPTIONS pass through unchanged.
// A request that already has an identity is not verified again.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		if _, ok := shared.IdentityFromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := BearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.tokens.Verify(r.Context(), token)
		if err != nil {
			log := logger.FromContext(r.Context())
			reason := "invalid"
			if errors.Is(err, auth.ErrExpiredToken) {
				reason = "expired"
			} else if !errors.Is(err, auth.ErrInvalidToken) {
				reason = "error"
			}
			log.Debug("bearer token rejected, continuing unauthenticated",
				slog.String("reason", reason),
				slog.String("error", redact.Error(err)),
				slog.String("path", r.URL.Path))
			next.ServeHTTP(w, r)
			return
		}

		ctx := shared.WithIdentity(r.Context(), claims.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
