package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkmap/inkmap/models"
	"github.com/inkmap/inkmap/service"
)

func TestValidateDrawing_Valid(t *testing.T) {
	err := service.ValidateDrawing("Sunset", testSegments())
	assert.NoError(t, err)
}

func TestValidateDrawing_TitleTooLong(t *testing.T) {
	err := service.ValidateDrawing(strings.Repeat("t", 256), testSegments())
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestValidateDrawing_EmptySegment(t *testing.T) {
	err := service.ValidateDrawing("Empty Segment", []models.Segment{
		{Color: "#123456", Points: nil},
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestValidateDrawing_ColorFormats(t *testing.T) {
	valid := []string{"#000000", "#FFFFFF", "#a1B2c3"}
	for _, color := range valid {
		err := service.ValidateDrawing("ok", []models.Segment{
			{Color: color, Points: []models.Point{{0, 0}}},
		})
		assert.NoError(t, err, color)
	}

	invalid := []string{"", "red", "#FFF", "#GGGGGG", "123456", "#1234567"}
	for _, color := range invalid {
		err := service.ValidateDrawing("bad", []models.Segment{
			{Color: color, Points: []models.Point{{0, 0}}},
		})
		assert.ErrorIs(t, err, service.ErrValidation, color)
	}
}

func TestValidateComment_Trims(t *testing.T) {
	got, err := service.ValidateComment("  hello  ")
	assert.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestValidateComment_Empty(t *testing.T) {
	_, err := service.ValidateComment("")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = service.ValidateComment("   ")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestValidateComment_MaxLength(t *testing.T) {
	got, err := service.ValidateComment(strings.Repeat("a", 1000))
	assert.NoError(t, err)
	assert.Len(t, got, 1000)

	_, err = service.ValidateComment(strings.Repeat("a", 1001))
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestValidateComment_LengthIsCharacters(t *testing.T) {
	// Multi-byte runes count once each, not per byte.
	got, err := service.ValidateComment(strings.Repeat("한", 400))
	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat("한", 400), got)

	_, err = service.ValidateComment(strings.Repeat("한", 1000))
	assert.NoError(t, err)

	_, err = service.ValidateComment(strings.Repeat("한", 1001))
	assert.ErrorIs(t, err, service.ErrValidation)
}
