package mocks

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	// IssueFn allows test cases to mock the Issue behavior
	IssueFn func(ctx context.Context, subject string) (string, error)

	// VerifyFn allows test cases to mock the Verify behavior
	VerifyFn func(ctx context.Context, token string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token     string
	Err       error
	Claims    *auth.Claims
	VerifyErr error

	// VerifyCalls counts Verify invocations
	VerifyCalls int
}

var _ auth.TokenService = (*MockTokenService)(nil)

// Issue implements the auth.TokenService interface
func (m *MockTokenService) Issue(ctx context.Context, subject string) (string, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, subject)
	}
	return m.Token, m.Err
}

// Verify implements the auth.TokenService interface
func (m *MockTokenService) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	m.VerifyCalls++
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token)
	}
	return m.Claims, m.VerifyErr
}
