package service

import (
	"context"

	"github.com/inkmap/inkmap/auth"
	"github.com/inkmap/inkmap/store"
)

type LikeResult struct {
	LikeCount int
	IsLiked   bool
}

// ToggleLike flips the viewer's like on a drawing and returns the fresh
// aggregate. Private drawings stay invisible: only the owner can like
// their own private drawing.
func (s *Service) ToggleLike(ctx context.Context, identity auth.Identity, drawingID uint) (LikeResult, error) {
	drawing, err := s.Store.GetDrawing(ctx, drawingID)
	if err != nil {
		return LikeResult{}, err
	}
	if !drawing.IsPublic && drawing.OwnerID != identity.UserID {
		return LikeResult{}, store.ErrNotFound
	}

	count, liked, err := s.Store.ToggleLike(ctx, drawingID, identity.UserID)
	if err != nil {
		return LikeResult{}, err
	}
	return LikeResult{LikeCount: count, IsLiked: liked}, nil
}
