package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubTokens struct {
	issued  []string
	issueFn func(subject string) (string, error)
}

func (s *stubTokens) Issue(_ context.Context, subject string) (string, error) {
	s.issued = append(s.issued, subject)
	if s.issueFn != nil {
		return s.issueFn(subject)
	}
	return "token-for-" + subject, nil
}

func (s *stubTokens) Verify(context.Context, string) (*Claims, error) {
	return nil, ErrInvalidToken
}

func newTestChecker(t *testing.T) *CredentialChecker {
	t.Helper()
	checker, err := NewCredentialChecker(bcrypt.MinCost)
	require.NoError(t, err)
	return checker
}

func TestCredentialChecker(t *testing.T) {
	checker := newTestChecker(t)

	tests := []struct {
		name    string
		creds   Credentials
		wantErr bool
	}{
		{name: "operator account", creds: Credentials{Username: "admin", Password: "admin123"}},
		{name: "wrong password", creds: Credentials{Username: "admin", Password: "admin124"}, wantErr: true},
		{name: "wrong username", creds: Credentials{Username: "root", Password: "admin123"}, wantErr: true},
		{name: "username case differs", creds: Credentials{Username: "Admin", Password: "admin123"}, wantErr: true},
		{name: "empty", creds: Credentials{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checker.Check(tt.creds)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoginService_Login(t *testing.T) {
	t.Run("valid credentials issue token for username", func(t *testing.T) {
		tokens := &stubTokens{}
		svc := NewLoginService(newTestChecker(t), tokens)

		token, err := svc.Login(context.Background(), Credentials{Username: "admin", Password: "admin123"})

		require.NoError(t, err)
		assert.Equal(t, "token-for-admin", token)
		assert.Equal(t, []string{"admin"}, tokens.issued)
	})

	t.Run("invalid credentials never issue", func(t *testing.T) {
		tokens := &stubTokens{}
		svc := NewLoginService(newTestChecker(t), tokens)

		token, err := svc.Login(context.Background(), Credentials{Username: "admin", Password: "nope"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Empty(t, tokens.issued)
	})

	t.Run("signing failure is wrapped", func(t *testing.T) {
		boom := errors.New("sign failed")
		tokens := &stubTokens{issueFn: func(string) (string, error) { return "", boom }}
		svc := NewLoginService(newTestChecker(t), tokens)

		_, err := svc.Login(context.Background(), Credentials{Username: "admin", Password: "admin123"})

		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("round trip through real token service", func(t *testing.T) {
		tokens, err := NewTokenService()
		require.NoError(t, err)
		svc := NewLoginService(newTestChecker(t), tokens)

		token, err := svc.Login(context.Background(), Credentials{Username: "admin", Password: "admin123"})
		require.NoError(t, err)

		claims, err := tokens.Verify(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)
	})
}
