package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User is a profile row keyed by the identity provider's stable subject.
// Created on first login, never deleted.
type User struct {
	ID          string    `gorm:"column:id;type:varchar(100);primaryKey" json:"id"`
	DisplayName string    `gorm:"column:display_name;type:varchar(100);not null" json:"displayName"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (User) TableName() string { return "users" }

// InkAccount tracks a user's spendable ink. Regeneration is settled lazily:
// stored balance plus whole elapsed hours since LastUpdated, capped.
// LastUpdated only advances when a non-zero settlement was applied, so
// partial hours keep accruing against the old timestamp.
type InkAccount struct {
	UserID      string    `gorm:"column:user_id;type:varchar(100);primaryKey" json:"userId"`
	Ink         int       `gorm:"column:ink;not null" json:"ink"`
	LastUpdated time.Time `gorm:"column:last_updated;not null" json:"lastUpdated"`
}

func (InkAccount) TableName() string { return "ink_accounts" }

// Point is a 2-D map coordinate, serialized as [lng, lat].
type Point [2]float64

// Segment is one continuous stroke: an ordered point sequence plus a color.
type Segment struct {
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

// SegmentList stores a drawing's segments as a single jsonb column.
type SegmentList []Segment

func (s SegmentList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SegmentList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return errors.New("segments: unsupported source type")
	}
}

// Drawing is write-once: nothing on the row changes after creation.
// ArtistName is a snapshot of the owner's display name at creation time,
// not a live reference — renames must not rewrite history.
type Drawing struct {
	ID              uint        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UUID            uuid.UUID   `gorm:"column:uuid;type:uuid;uniqueIndex;not null" json:"uuid"`
	OwnerID         string      `gorm:"column:owner_id;type:varchar(100);not null;index" json:"-"`
	ArtistName      string      `gorm:"column:artist_name;type:varchar(100);not null" json:"artistName"`
	Title           string      `gorm:"column:title;type:varchar(255)" json:"title"`
	Segments        SegmentList `gorm:"column:segments;type:jsonb" json:"segments"`
	CommentsEnabled bool        `gorm:"column:comments_enabled;not null;default:true" json:"commentsEnabled"`
	IsPublic        bool        `gorm:"column:is_public;not null;default:false" json:"isPublic"`
	CreatedAt       time.Time   `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
}

func (Drawing) TableName() string { return "drawings" }

// PointCount is the ink cost of persisting the drawing.
func (d *Drawing) PointCount() int {
	total := 0
	for _, seg := range d.Segments {
		total += len(seg.Points)
	}
	return total
}

// Like is pure membership: the row's existence means "liked".
// The composite primary key makes inserts idempotent per (drawing, user).
type Like struct {
	DrawingID uint      `gorm:"column:drawing_id;primaryKey" json:"drawingId"`
	UserID    string    `gorm:"column:user_id;type:varchar(100);primaryKey" json:"userId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`

	Drawing Drawing `gorm:"foreignKey:DrawingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Like) TableName() string { return "likes" }

// Comment is append-only. ArtistName is a snapshot, same as on Drawing.
type Comment struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DrawingID  uint      `gorm:"column:drawing_id;not null;index:idx_comments_drawing_created" json:"drawingId"`
	ArtistName string    `gorm:"column:artist_name;type:varchar(100);not null" json:"artistName"`
	Content    string    `gorm:"column:content;type:varchar(1000);not null" json:"content"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index:idx_comments_drawing_created" json:"createdAt"`

	Drawing Drawing `gorm:"foreignKey:DrawingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string { return "comments" }
