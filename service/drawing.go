package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/inkmap/inkmap/auth"
	"github.com/inkmap/inkmap/models"
	"github.com/inkmap/inkmap/store"
)

type CreateDrawingParams struct {
	Title           string
	Segments        []models.Segment
	CommentsEnabled bool
	IsPublic        bool
}

type CreateDrawingResult struct {
	Drawing      models.Drawing
	Cost         int
	RemainingInk int
}

// DrawingDetail is a single drawing resolved for a particular viewer.
type DrawingDetail struct {
	Drawing   models.Drawing
	LikeCount int
	IsLiked   bool
	IsOwner   bool
	Region    string
}

// CreateDrawing validates the submitted drawing, prices it at one ink
// per point and persists it together with the debit. The two outcomes
// are all-or-nothing: an underfunded account leaves no drawing behind.
func (s *Service) CreateDrawing(ctx context.Context, identity auth.Identity, p CreateDrawingParams) (CreateDrawingResult, error) {
	if err := ValidateDrawing(p.Title, p.Segments); err != nil {
		return CreateDrawingResult{}, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return CreateDrawingResult{}, err
	}

	artistName, err := s.resolveArtistName(ctx, identity)
	if err != nil {
		return CreateDrawingResult{}, err
	}

	drawing := models.Drawing{
		UUID:            id,
		OwnerID:         identity.UserID,
		ArtistName:      artistName,
		Title:           p.Title,
		Segments:        p.Segments,
		CommentsEnabled: p.CommentsEnabled,
		IsPublic:        p.IsPublic,
	}
	cost := drawing.PointCount()

	remaining, err := s.Store.CreateDrawing(ctx, &drawing, cost, s.Ink)
	if err != nil {
		return CreateDrawingResult{}, err
	}

	s.Logger.Info().
		Str("owner", identity.UserID).
		Uint("drawing", drawing.ID).
		Int("cost", cost).
		Msg("drawing created")

	return CreateDrawingResult{Drawing: drawing, Cost: cost, RemainingInk: remaining}, nil
}

// GetDrawing resolves one drawing for the viewer. Private drawings are
// indistinguishable from absent ones to anybody but their owner.
func (s *Service) GetDrawing(ctx context.Context, identity auth.Identity, id uint) (DrawingDetail, error) {
	drawing, err := s.Store.GetDrawing(ctx, id)
	if err != nil {
		return DrawingDetail{}, err
	}

	isOwner := drawing.OwnerID == identity.UserID
	if !drawing.IsPublic && !isOwner {
		return DrawingDetail{}, store.ErrNotFound
	}

	likeCount, err := s.Store.CountLikes(ctx, drawing.ID)
	if err != nil {
		return DrawingDetail{}, err
	}
	isLiked, err := s.Store.IsLikedBy(ctx, drawing.ID, identity.UserID)
	if err != nil {
		return DrawingDetail{}, err
	}

	return DrawingDetail{
		Drawing:   drawing,
		LikeCount: likeCount,
		IsLiked:   isLiked,
		IsOwner:   isOwner,
		Region:    RegionWKT(drawing.Segments),
	}, nil
}
