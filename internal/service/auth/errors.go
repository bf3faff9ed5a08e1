package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrInvalidCredentials indicates the login username/password pair was rejected
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized indicates a protected route was reached without an identity
	ErrUnauthorized = errors.New("authentication required")
)
