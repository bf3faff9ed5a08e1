// Package auth issues and verifies the signed bearer tokens that gate the API,
// and checks login credentials against the single operator account.
//
// Tokens are HS256 JWTs signed with a key generated when the TokenService is
// constructed. The key lives only in memory, so restarting the process
// invalidates every outstanding token.
package auth
