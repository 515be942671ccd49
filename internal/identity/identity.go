// Package identity verifies bearer tokens issued by an external identity
// provider and reduces them to the subject, email and display name the
// rest of the service keys users by.
package identity

import (
	"context"
	"errors"
)

// ErrInvalidToken is returned for missing, malformed, expired or untrusted tokens.
var ErrInvalidToken = errors.New("invalid identity token")

// Identity is the verified caller.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Verifier validates a raw bearer token.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
