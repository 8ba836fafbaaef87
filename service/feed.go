package service

import (
	"context"

	"github.com/inkmap/inkmap/auth"
	"github.com/inkmap/inkmap/store"
)

const feedPageSize = 10

// ParseSort maps the raw query value onto a sort policy. Unknown values
// fall back to newest-first rather than erroring.
func ParseSort(raw string) store.FeedSort {
	switch raw {
	case "oldest":
		return store.SortOldest
	case "popular":
		return store.SortPopular
	case "unpopular":
		return store.SortUnpopular
	default:
		return store.SortNewest
	}
}

type FeedParams struct {
	Sort   store.FeedSort
	Search string
	Mine   bool
	Page   int
}

// FeedEntry is one drawing as it appears in a feed page, resolved for
// the requesting viewer.
type FeedEntry struct {
	Drawing store.FeedItem
	IsOwner bool
}

type FeedPage struct {
	Entries    []FeedEntry
	Page       int
	TotalPages int
	Total      int64
}

// ListFeed returns one page of drawings visible to the viewer: public
// ones plus the viewer's own, or only the viewer's own when Mine is
// set. Pages below 1 are clamped to the first page.
func (s *Service) ListFeed(ctx context.Context, identity auth.Identity, p FeedParams) (FeedPage, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}

	q := store.FeedQuery{
		ViewerID: identity.UserID,
		Sort:     p.Sort,
		Search:   p.Search,
		Mine:     p.Mine,
		Limit:    feedPageSize,
		Offset:   (page - 1) * feedPageSize,
	}

	total, err := s.Store.CountDrawings(ctx, q)
	if err != nil {
		return FeedPage{}, err
	}

	items, err := s.Store.ListDrawings(ctx, q)
	if err != nil {
		return FeedPage{}, err
	}

	entries := make([]FeedEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, FeedEntry{
			Drawing: item,
			IsOwner: item.OwnerID == identity.UserID,
		})
	}

	totalPages := int((total + feedPageSize - 1) / feedPageSize)

	return FeedPage{
		Entries:    entries,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}
