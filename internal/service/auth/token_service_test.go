package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testKey  = []byte("0123456789abcdef0123456789abcdef")
	otherKey = []byte("fedcba9876543210fedcba9876543210")
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssue(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newHMACTokenService(testKey, TokenLifetime, fixedClock(fixedTime))

	token, err := svc.Issue(context.Background(), "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Identity().Subject)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestIssueProducesUniqueTokenIDs(t *testing.T) {
	t.Parallel()

	svc := newHMACTokenService(testKey, TokenLifetime, fixedClock(time.Now()))
	first, err := svc.Issue(context.Background(), "admin")
	require.NoError(t, err)
	second, err := svc.Issue(context.Background(), "admin")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupFunc func() (TokenService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (TokenService, string) {
				svc := newHMACTokenService(testKey, TokenLifetime, fixedClock(fixedTime))
				token, _ := svc.Issue(context.Background(), "admin")
				return svc, token
			},
		},
		{
			name: "just before expiry",
			setupFunc: func() (TokenService, string) {
				gen := newHMACTokenService(testKey, TokenLifetime, fixedClock(fixedTime))
				token, _ := gen.Issue(context.Background(), "admin")
				val := newHMACTokenService(testKey, TokenLifetime,
					fixedClock(fixedTime.Add(TokenLifetime-time.Second)))
				return val, token
			},
		},
		{
			name: "exactly at expiry",
			setupFunc: func() (TokenService, string) {
				gen := newHMACTokenService(testKey, TokenLifetime, fixedClock(fixedTime))
				token, _ := gen.Issue(context.Background(), "admin")
				val := newHMACTokenService(testKey, TokenLifetime,
					fixedClock(fixedTime.Add(TokenLifetime)))
				return val, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "long after expiry",
			setupFunc: func() (TokenService, string) {
				gen := newHMACTokenService(testKey, TokenLifetime, fixedClock(fixedTime))
				token, _ := gen.Issue(context.Background(), "admin")
				val := newHMACTokenService(testKey, TokenLifetime,
					fixedClock(fixedTime.Add(TokenLifetime+time.Hour)))
				return val, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "signed with another key",
			setupFunc: func() (TokenService, string) {
				gen := newHMACTokenService(otherKey, TokenLifetime, fixedClock(fixedTime))
				token, _ := gen.Issue(context.Background(), "admin")
				return newHMACTokenService(testKey, TokenLifetime, fixedClock(fixedTime)), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func() (TokenService, string) {
				return newHMACTokenService(testKey, TokenLifetime, fixedClock(fixedTime)), "not.a.jwt"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "empty token",
			setupFunc: func() (TokenService, string) {
				return newHMACTokenService(testKey, TokenLifetime, fixedClock(fixedTime)), ""
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "unsigned token",
			setupFunc: func() (TokenService, string) {
				claims := jwt.RegisteredClaims{
					Subject:   "admin",
					ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
				}
				token, _ := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				return newHMACTokenService(testKey, TokenLifetime, fixedClock(fixedTime)), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing expiry",
			setupFunc: func() (TokenService, string) {
				claims := jwt.RegisteredClaims{Subject: "admin"}
				token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
				return newHMACTokenService(testKey, TokenLifetime, fixedClock(fixedTime)), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing subject",
			setupFunc: func() (TokenService, string) {
				claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour))}
				token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
				return newHMACTokenService(testKey, TokenLifetime, fixedClock(fixedTime)), token
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, token := tt.setupFunc()
			claims, err := svc.Verify(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "admin", claims.Subject)
		})
	}
}

func TestNewTokenServiceKeysAreIndependent(t *testing.T) {
	t.Parallel()

	first, err := NewTokenService()
	require.NoError(t, err)
	second, err := NewTokenService()
	require.NoError(t, err)

	token, err := first.Issue(context.Background(), "admin")
	require.NoError(t, err)

	claims, err := first.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)

	// A restarted process generates a new key, invalidating earlier tokens.
	_, err = second.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
