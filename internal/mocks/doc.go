// Package mocks provides centralized mock implementations for testing.
//
// Each mock is a struct with one function field per interface method plus
// default return values used when the function field is nil:
//
//	import "github.com/phrazzld/taskboard-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    tokens := &mocks.MockTokenService{
//	        VerifyFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	            return &auth.Claims{Subject: "admin"}, nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package, create a file named after the
// interface being mocked and follow the same function-field pattern.
package mocks
