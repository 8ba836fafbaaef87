package service

import (
	"context"
	"time"

	"github.com/inkmap/inkmap/auth"
)

const identityCacheTTL = 5 * time.Minute

// Authenticate resolves a bearer token to a verified identity. The
// identity check always runs before any core logic and has no side
// effects beyond refreshing the cache.
func (s *Service) Authenticate(ctx context.Context, token string) (auth.Identity, error) {
	if len(token) == 0 {
		return auth.Identity{}, ErrUnauthorized
	}

	if identity, ok, err := s.Cache.GetIdentity(ctx, token); err == nil && ok {
		return identity, nil
	} else if err != nil {
		// A broken cache must not lock anyone out; fall through to the
		// verifier.
		s.Logger.Warn().Err(err).Msg("identity cache read failed")
	}

	identity, err := s.Verifier.Verify(ctx, token)
	if err != nil {
		return auth.Identity{}, ErrUnauthorized
	}

	if err := s.Cache.SetIdentity(ctx, token, identity, identityCacheTTL); err != nil {
		s.Logger.Warn().Err(err).Msg("identity cache write failed")
	}

	return identity, nil
}
