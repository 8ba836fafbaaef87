package cache

import (
	"context"
	"time"

	"github.com/inkmap/inkmap/auth"
)

// InkmapCache keeps recently-verified bearer tokens so the identity
// provider is not consulted on every request. Entries are keyed by a
// hash of the token and expire with the token itself.
type InkmapCache interface {
	GetIdentity(ctx context.Context, token string) (auth.Identity, bool, error)
	SetIdentity(ctx context.Context, token string, identity auth.Identity, ttl time.Duration) error
}
