package drawing

import (
	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/offset"
	"github.com/tue-alga/cartocrow-sub002/pattern"
)

// Dilated is one pattern's dilated boundary, tagged with its partition
// index and category so faces and half-edges can be traced back to it.
type Dilated struct {
	Index    int
	Category int
	Boundary curve.CSPolygon
}

// dilatePatterns computes every pattern's dilated boundary via the offset
// engine (§4.C), indexed by its position in the partition.
func dilatePatterns(part []pattern.Pattern, gs pattern.Settings) []Dilated {
	out := make([]Dilated, len(part))
	radius := gs.DilationRadius()
	for i, p := range part {
		out[i] = Dilated{Index: i, Category: p.Category(), Boundary: dilateContour(p.Contour(), radius)}
	}
	return out
}

func dilateContour(c pattern.Contour, radius float64) curve.CSPolygon {
	switch c.Kind {
	case pattern.ContourDegeneratePolygon:
		return offset.OffsetPoint(c.Point, radius)
	case pattern.ContourPolyline:
		return offset.OffsetPolyline(pattern.Vertices(c), radius, offset.Epsilon)
	default:
		return offset.OffsetPolygon(pattern.Vertices(c), radius, offset.Epsilon)
	}
}
