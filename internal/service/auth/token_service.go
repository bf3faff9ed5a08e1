package auth

import (
	"context"
	"time"
)

// TokenLifetime is how long an issued token stays valid.
const TokenLifetime = 24 * time.Hour

// Identity is the subject resolved from a verified token. It is valid for the
// duration of one request only.
type Identity struct {
	Subject string
}

// Claims represents the verified contents of a token.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// Identity returns the request identity carried by the claims.
func (c *Claims) Identity() Identity {
	return Identity{Subject: c.Subject}
}

// TokenService defines operations for issuing and verifying identity tokens.
type TokenService interface {
	// Issue creates a signed token for subject, valid for TokenLifetime.
	Issue(ctx context.Context, subject string) (string, error)

	// Verify checks the token signature and expiry and returns its claims.
	// Returns ErrInvalidToken for malformed or forged tokens and
	// ErrExpiredToken once the expiry instant has been reached.
	Verify(ctx context.Context, token string) (*Claims, error)
}
