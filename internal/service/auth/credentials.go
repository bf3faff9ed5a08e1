package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"golang.org/x/crypto/bcrypt"
)

// The single operator account accepted by Login.
const (
	operatorUsername = "admin"
	operatorPassword = "admin123"
)

// Credentials is a transient username/password pair from a login request.
type Credentials struct {
	Username string
	Password string
}

// CredentialChecker verifies login credentials against the operator account.
// The password is held only as a bcrypt hash computed at construction.
type CredentialChecker struct {
	username     []byte
	passwordHash []byte
}

// NewCredentialChecker hashes the operator password with the given bcrypt cost.
// Pass bcrypt.DefaultCost in production.
func NewCredentialChecker(cost int) (*CredentialChecker, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(operatorPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash operator password: %w", err)
	}
	return &CredentialChecker{
		username:     []byte(operatorUsername),
		passwordHash: hash,
	}, nil
}

// Check returns ErrInvalidCredentials unless creds match the operator account.
func (c *CredentialChecker) Check(creds Credentials) error {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), c.username) == 1
	passErr := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(creds.Password))
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// LoginService exchanges valid credentials for a token.
type LoginService struct {
	checker *CredentialChecker
	tokens  TokenService
}

// NewLoginService creates a LoginService.
func NewLoginService(checker *CredentialChecker, tokens TokenService) *LoginService {
	return &LoginService{checker: checker, tokens: tokens}
}

// Login checks creds and issues a token whose subject is the username.
func (s *LoginService) Login(ctx context.Context, creds Credentials) (string, error) {
	log := logger.FromContext(ctx)

	if err := s.checker.Check(creds); err != nil {
		log.Info("login rejected", slog.String("username", creds.Username))
		return "", err
	}

	token, err := s.tokens.Issue(ctx, creds.Username)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	log.Info("login succeeded", slog.String("username", creds.Username))
	return token, nil
}
