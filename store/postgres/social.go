package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inkmap/inkmap/models"
	"github.com/inkmap/inkmap/store"
)

func (s *PostgresInkmapStore) ToggleLike(ctx context.Context, drawingID uint, userID string) (int, bool, error) {
	var (
		count int64
		liked bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.Drawing{}).Where("id = ?", drawingID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return store.ErrNotFound
		}

		// Membership is keyed by (drawing_id, user_id): delete removes at
		// most one row, and the conflict clause keeps a racing insert from
		// ever producing a duplicate.
		res := tx.Where("drawing_id = ? AND user_id = ?", drawingID, userID).
			Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			like := models.Like{DrawingID: drawingID, UserID: userID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return err
			}
			liked = true
		}

		// Recomputed, not incrementally tracked, so the count cannot drift.
		return tx.Model(&models.Like{}).Where("drawing_id = ?", drawingID).Count(&count).Error
	})
	if err != nil {
		return 0, false, err
	}
	return int(count), liked, nil
}

func (s *PostgresInkmapStore) CountLikes(ctx context.Context, drawingID uint) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Like{}).
		Where("drawing_id = ?", drawingID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *PostgresInkmapStore) IsLikedBy(ctx context.Context, drawingID uint, userID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Like{}).
		Where("drawing_id = ? AND user_id = ?", drawingID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *PostgresInkmapStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *PostgresInkmapStore) CountComments(ctx context.Context, drawingID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Comment{}).
		Where("drawing_id = ?", drawingID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *PostgresInkmapStore) ListComments(ctx context.Context, drawingID uint, limit, offset int) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("drawing_id = ?", drawingID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
