// Package middleware contains the HTTP middleware that establishes request
// identity and enforces the access policy.
//
// Authenticate never rejects a request: it only attaches an identity when a
// valid bearer token is present. Rejection is the job of AccessPolicy.Enforce,
// which runs after it and answers protected requests that carry no identity
// with 401.
package middleware
