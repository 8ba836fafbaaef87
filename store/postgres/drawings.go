package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/inkmap/inkmap/ink"
	"github.com/inkmap/inkmap/models"
	"github.com/inkmap/inkmap/store"
)

func (s *PostgresInkmapStore) CreateDrawing(ctx context.Context, drawing *models.Drawing, cost int, policy ink.Policy) (int, error) {
	var remaining int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		// Debit and insert commit or roll back together: a failed debit
		// must leave no drawing row, and vice versa.
		remaining, err = spendInk(tx, drawing.OwnerID, cost, policy)
		if err != nil {
			return err
		}
		return tx.Create(drawing).Error
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

func (s *PostgresInkmapStore) GetDrawing(ctx context.Context, id uint) (models.Drawing, error) {
	var drawing models.Drawing
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&drawing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Drawing{}, store.ErrNotFound
		}
		return models.Drawing{}, err
	}
	return drawing, nil
}

// feedScope applies the visibility and search restrictions shared by the
// count and page queries.
func feedScope(db *gorm.DB, q store.FeedQuery) *gorm.DB {
	if q.Mine {
		db = db.Where("drawings.owner_id = ?", q.ViewerID)
	} else {
		db = db.Where("drawings.is_public = ? OR drawings.owner_id = ?", true, q.ViewerID)
	}
	if q.Search != "" {
		pattern := "%" + escapeLike(q.Search) + "%"
		db = db.Where("drawings.artist_name ILIKE ? OR drawings.title ILIKE ?", pattern, pattern)
	}
	return db
}

// escapeLike neutralizes LIKE metacharacters so the search stays a plain
// substring match.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (s *PostgresInkmapStore) CountDrawings(ctx context.Context, q store.FeedQuery) (int64, error) {
	var total int64
	err := feedScope(s.db.WithContext(ctx).Model(&models.Drawing{}), q).Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

type feedRow struct {
	models.Drawing `gorm:"embedded"`
	LikeCount      int  `gorm:"column:like_count"`
	IsLiked        bool `gorm:"column:is_liked"`
}

// feedOrder always ends on the unique id so rows sharing a created_at
// cannot shuffle between pages.
func feedOrder(sort store.FeedSort) string {
	switch sort {
	case store.SortOldest:
		return "drawings.created_at ASC, drawings.id ASC"
	case store.SortPopular:
		return "like_count DESC, drawings.created_at DESC, drawings.id DESC"
	case store.SortUnpopular:
		return "like_count ASC, drawings.created_at DESC, drawings.id DESC"
	default:
		return "drawings.created_at DESC, drawings.id DESC"
	}
}

func (s *PostgresInkmapStore) ListDrawings(ctx context.Context, q store.FeedQuery) ([]store.FeedItem, error) {
	// The like aggregate and the viewer membership flag are both derived
	// from the likes table at query time; there is no counter column to
	// drift out of sync.
	query := s.db.WithContext(ctx).Table("drawings").
		Select(`drawings.*,
			(SELECT COUNT(*) FROM likes WHERE likes.drawing_id = drawings.id) AS like_count,
			EXISTS(SELECT 1 FROM likes WHERE likes.drawing_id = drawings.id AND likes.user_id = ?) AS is_liked`,
			q.ViewerID)
	query = feedScope(query, q).
		Order(feedOrder(q.Sort)).
		Limit(q.Limit).
		Offset(q.Offset)

	var rows []feedRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]store.FeedItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, store.FeedItem{
			Drawing:   row.Drawing,
			LikeCount: row.LikeCount,
			IsLiked:   row.IsLiked,
		})
	}
	return items, nil
}
