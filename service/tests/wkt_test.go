package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkmap/inkmap/models"
	"github.com/inkmap/inkmap/service"
)

func TestRegionWKT_ClosesRings(t *testing.T) {
	segments := []models.Segment{
		{Color: "#000000", Points: []models.Point{{0, 0}, {1, 0}, {1, 1}}},
	}

	wkt := service.RegionWKT(segments)
	assert.Equal(t, "SRID=4326;MULTIPOLYGON(((0 0,1 0,1 1,0 0)))", wkt)
}

func TestRegionWKT_AlreadyClosedRing(t *testing.T) {
	segments := []models.Segment{
		{Color: "#000000", Points: []models.Point{{0, 0}, {1, 0}, {0, 0}}},
	}

	wkt := service.RegionWKT(segments)
	assert.Equal(t, "SRID=4326;MULTIPOLYGON(((0 0,1 0,0 0)))", wkt)
}

func TestRegionWKT_MultipleSegments(t *testing.T) {
	segments := []models.Segment{
		{Color: "#000000", Points: []models.Point{{0, 0}, {1, 1}}},
		{Color: "#FFFFFF", Points: []models.Point{{2.5, 3.5}, {4, 4}}},
	}

	wkt := service.RegionWKT(segments)
	assert.Equal(t, "SRID=4326;MULTIPOLYGON(((0 0,1 1,0 0)),((2.5 3.5,4 4,2.5 3.5)))", wkt)
}

func TestRegionWKT_NoSegments(t *testing.T) {
	wkt := service.RegionWKT(nil)
	assert.Equal(t, "SRID=4326;MULTIPOLYGON()", wkt)
}
