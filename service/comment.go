package service

import (
	"context"

	"github.com/inkmap/inkmap/auth"
	"github.com/inkmap/inkmap/models"
	"github.com/inkmap/inkmap/store"
)

const commentPageSize = 10

type CommentPage struct {
	Comments   []models.Comment
	Page       int
	TotalPages int
	Total      int64
}

// PostComment appends a comment to a drawing the viewer can see and
// that accepts comments. The author's display name is snapshotted into
// the comment, so later renames never rewrite old threads.
func (s *Service) PostComment(ctx context.Context, identity auth.Identity, drawingID uint, content string) (models.Comment, error) {
	trimmed, err := ValidateComment(content)
	if err != nil {
		return models.Comment{}, err
	}

	drawing, err := s.Store.GetDrawing(ctx, drawingID)
	if err != nil {
		return models.Comment{}, err
	}
	if !drawing.IsPublic && drawing.OwnerID != identity.UserID {
		return models.Comment{}, store.ErrNotFound
	}
	if !drawing.CommentsEnabled {
		return models.Comment{}, ErrCommentsDisabled
	}

	artistName, err := s.resolveArtistName(ctx, identity)
	if err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		DrawingID:  drawing.ID,
		ArtistName: artistName,
		Content:    trimmed,
	}
	if err := s.Store.CreateComment(ctx, &comment); err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

// ListComments returns one newest-first page of a drawing's comments,
// under the same visibility rule as the drawing itself.
func (s *Service) ListComments(ctx context.Context, identity auth.Identity, drawingID uint, page int) (CommentPage, error) {
	drawing, err := s.Store.GetDrawing(ctx, drawingID)
	if err != nil {
		return CommentPage{}, err
	}
	if !drawing.IsPublic && drawing.OwnerID != identity.UserID {
		return CommentPage{}, store.ErrNotFound
	}

	if page < 1 {
		page = 1
	}

	total, err := s.Store.CountComments(ctx, drawing.ID)
	if err != nil {
		return CommentPage{}, err
	}

	comments, err := s.Store.ListComments(ctx, drawing.ID, commentPageSize, (page-1)*commentPageSize)
	if err != nil {
		return CommentPage{}, err
	}

	totalPages := int((total + commentPageSize - 1) / commentPageSize)

	return CommentPage{
		Comments:   comments,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}
