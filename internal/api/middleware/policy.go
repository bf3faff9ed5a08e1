package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// Access is the classification of an endpoint.
type Access int

const (
	// Protected endpoints require an authenticated identity.
	Protected Access = iota
	// Public endpoints are served to anyone.
	Public
)

func (a Access) String() string {
	if a == Public {
		return "PUBLIC"
	}
	return "PROTECTED"
}

// AccessPolicy classifies requests as public or protected. Anything not
// matched by a public path or prefix is protected.
type AccessPolicy struct {
	publicPrefixes []string
	publicPaths    map[string]struct{}
}

// DefaultPublicPrefixes are the login namespaces.
var DefaultPublicPrefixes = []string{"/api/auth/", "/auth/"}

// DefaultPublicPaths are served without authentication.
var DefaultPublicPaths = []string{"/health"}

// NewAccessPolicy builds a policy from public prefixes and exact public paths.
func NewAccessPolicy(publicPrefixes, publicPaths []string) *AccessPolicy {
	paths := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		paths[p] = struct{}{}
	}
	return &AccessPolicy{
		publicPrefixes: append([]string(nil), publicPrefixes...),
		publicPaths:    paths,
	}
}

// DefaultAccessPolicy returns the board's access policy.
func DefaultAccessPolicy() *AccessPolicy {
	return NewAccessPolicy(DefaultPublicPrefixes, DefaultPublicPaths)
}

// Classify returns the access class for a request. OPTIONS is always public
// so CORS preflight never needs credentials.
func (p *AccessPolicy) Classify(method, path string) Access {
	if method == http.MethodOptions {
		return Public
	}
	if _, ok := p.publicPaths[path]; ok {
		return Public
	}
	for _, prefix := range p.publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return Public
		}
	}
	return Protected
}

// Authorize returns auth.ErrUnauthorized when r targets a protected endpoint
// and carries no identity.
func (p *AccessPolicy) Authorize(r *http.Request) error {
	if p.Classify(r.Method, r.URL.Path) == Public {
		return nil
	}
	if _, ok := shared.IdentityFromContext(r.Context()); !ok {
		return auth.ErrUnauthorized
	}
	return nil
}

// Enforce answers protected requests without an identity with 401 and an
// empty body.
func (p *AccessPolicy) Enforce(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := p.Authorize(r); err != nil {
			logger.FromContext(r.Context()).Debug("rejected request to protected endpoint",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
