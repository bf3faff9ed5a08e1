package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, creds auth.Credentials) (string, error)
}

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authenticator Authenticator
	logger        *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authenticator Authenticator, logger *slog.Logger) *AuthHandler {
	if authenticator == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("authenticator cannot be nil for AuthHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		authenticator: authenticator,
		logger:        logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /api/auth/login and POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	token, err := h.authenticator.Login(r.Context(), auth.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("issued token", slog.String("username", req.Username))
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}
