package service

import (
	"strconv"
	"strings"

	"github.com/inkmap/inkmap/models"
)

// RegionWKT renders the drawing's segments as an EWKT multipolygon.
// Each segment becomes one ring, closed back to its first point.
func RegionWKT(segments []models.Segment) string {
	var b strings.Builder
	b.WriteString("SRID=4326;MULTIPOLYGON(")
	for i, seg := range segments {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString("((")
		for j, pt := range seg.Points {
			if j > 0 {
				b.WriteByte(',')
			}
			writePoint(&b, pt)
		}
		if len(seg.Points) > 0 && seg.Points[len(seg.Points)-1] != seg.Points[0] {
			b.WriteByte(',')
			writePoint(&b, seg.Points[0])
		}
		b.WriteString("))")
	}
	b.WriteByte(')')
	return b.String()
}

func writePoint(b *strings.Builder, pt models.Point) {
	b.WriteString(strconv.FormatFloat(pt[0], 'f', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(pt[1], 'f', -1, 64))
}
