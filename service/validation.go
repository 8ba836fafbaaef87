package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/inkmap/inkmap/models"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

const (
	maxTitleLen      = 255
	maxSegmentPoints = 1000
	maxSegments      = 100
	maxCommentLen    = 1000
)

// ValidateDrawing checks the client-supplied shape of a new drawing.
// The ink cost is validated separately by the debit itself.
func ValidateDrawing(title string, segments []models.Segment) error {
	if len(title) > maxTitleLen {
		return fmt.Errorf("%w: title too long", ErrValidation)
	}
	if len(segments) == 0 {
		return fmt.Errorf("%w: drawing has no segments", ErrValidation)
	}
	if len(segments) > maxSegments {
		return fmt.Errorf("%w: too many segments", ErrValidation)
	}
	for i, seg := range segments {
		if len(seg.Points) == 0 {
			return fmt.Errorf("%w: segment %d has no points", ErrValidation, i)
		}
		if len(seg.Points) > maxSegmentPoints {
			return fmt.Errorf("%w: segment %d too long", ErrValidation, i)
		}
		if !hexColorRegex.MatchString(seg.Color) {
			return fmt.Errorf("%w: segment %d has an invalid color", ErrValidation, i)
		}
	}
	return nil
}

// ValidateComment trims and bounds comment content. Returns the trimmed
// content that should be stored.
func ValidateComment(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", fmt.Errorf("%w: comment is empty", ErrValidation)
	}
	// The bound is characters, not bytes; multi-byte scripts must get the
	// full length.
	if utf8.RuneCountInString(trimmed) > maxCommentLen {
		return "", fmt.Errorf("%w: comment too long", ErrValidation)
	}
	return trimmed, nil
}
