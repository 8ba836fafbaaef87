package store

import (
	"context"
	"errors"

	"github.com/inkmap/inkmap/ink"
	"github.com/inkmap/inkmap/models"
)

// FeedSort is the already-parsed sort policy; the service maps the raw
// query value (with its fallback rule) onto one of these.
type FeedSort int

const (
	SortNewest FeedSort = iota
	SortOldest
	SortPopular
	SortUnpopular
)

// FeedQuery scopes one page of the drawing feed. Visibility: Mine limits
// to the viewer's own drawings, otherwise public drawings plus the
// viewer's private ones.
type FeedQuery struct {
	ViewerID string
	Sort     FeedSort
	Search   string
	Mine     bool
	Limit    int
	Offset   int
}

// FeedItem is a drawing joined with its like aggregate and the viewer's
// membership flag, both computed against the likes table at query time.
type FeedItem struct {
	models.Drawing
	LikeCount int
	IsLiked   bool
}

type InkmapStore interface {
	// SaveUser creates the profile row on first login and refreshes the
	// display name on later ones.
	SaveUser(ctx context.Context, user models.User) error
	GetUser(ctx context.Context, id string) (models.User, error)

	// EnsureInkAccount is create-if-absent; an existing balance is never
	// reset.
	EnsureInkAccount(ctx context.Context, userID string, initial int) error
	// SettleInkBalance applies accrued regeneration and returns the
	// settled balance. The settle and write-back happen in one
	// transaction holding the account row lock.
	SettleInkBalance(ctx context.Context, userID string, policy ink.Policy) (int, error)

	// CreateDrawing settles and debits the owner's ink account by cost,
	// then inserts the drawing, all in one transaction: a failed debit
	// leaves no row, and no debit survives a failed insert. Returns the
	// remaining balance.
	CreateDrawing(ctx context.Context, drawing *models.Drawing, cost int, policy ink.Policy) (int, error)
	GetDrawing(ctx context.Context, id uint) (models.Drawing, error)

	CountDrawings(ctx context.Context, q FeedQuery) (int64, error)
	ListDrawings(ctx context.Context, q FeedQuery) ([]FeedItem, error)

	// ToggleLike flips the (drawing, user) membership row and returns the
	// recomputed like count plus the post-toggle state.
	ToggleLike(ctx context.Context, drawingID uint, userID string) (int, bool, error)
	CountLikes(ctx context.Context, drawingID uint) (int, error)
	IsLikedBy(ctx context.Context, drawingID uint, userID string) (bool, error)

	CreateComment(ctx context.Context, comment *models.Comment) error
	CountComments(ctx context.Context, drawingID uint) (int64, error)
	ListComments(ctx context.Context, drawingID uint, limit, offset int) ([]models.Comment, error)
}

// Custom error types for clarity
var (
	ErrNotFound        = errors.New("item does not exist")
	ErrInsufficientInk = errors.New("insufficient ink")
)
