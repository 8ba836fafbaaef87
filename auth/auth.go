// Package auth resolves bearer credentials to verified identities. The
// rest of the system treats the verifier as an opaque trusted function:
// token in, (user id, display name) out, or a rejection.
package auth

import (
	"context"
	"errors"
	"time"
)

// Identity is what the identity provider vouches for. UserID is the
// provider's stable subject; DisplayName is the user's current artist
// name as known to the provider.
type Identity struct {
	UserID      string
	DisplayName string
	ExpiresAt   time.Time
}

type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

var ErrInvalidToken = errors.New("invalid identity token")
