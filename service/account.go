package service

import (
	"context"
	"errors"

	"github.com/inkmap/inkmap/auth"
	"github.com/inkmap/inkmap/models"
	"github.com/inkmap/inkmap/store"
)

// Login bootstraps a first-time user: profile row plus ink account with
// the initial grant. Both steps are idempotent, so repeated logins only
// refresh the display name and never touch an existing balance.
func (s *Service) Login(ctx context.Context, identity auth.Identity) error {
	user := models.User{
		ID:          identity.UserID,
		DisplayName: identity.DisplayName,
	}
	if err := s.Store.SaveUser(ctx, user); err != nil {
		return err
	}
	return s.Store.EnsureInkAccount(ctx, identity.UserID, s.Ink.Initial)
}

// InkBalance settles accrued regeneration and returns the result.
func (s *Service) InkBalance(ctx context.Context, userID string) (int, error) {
	return s.Store.SettleInkBalance(ctx, userID, s.Ink)
}

// resolveArtistName snapshots the author's display name at write time:
// the profile row wins, the identity provider's name is the fallback for
// users without one.
func (s *Service) resolveArtistName(ctx context.Context, identity auth.Identity) (string, error) {
	user, err := s.Store.GetUser(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return identity.DisplayName, nil
		}
		return "", err
	}
	return user.DisplayName, nil
}
