package pattern

import (
	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
)

// CategoricalPoint is an immutable (category, position) pair, §3.
type CategoricalPoint struct {
	Category int
	Position geom.Point
}

// ContourKind distinguishes the three contour representations at the type
// level, as required by §4.D ("distinguish at the type level").
type ContourKind int

const (
	ContourDegeneratePolygon ContourKind = iota // SinglePoint
	ContourPolyline                             // Matching, Bank
	ContourPolygon                              // Island
)

// Contour is a pattern's cached boundary, tagged with which of the three
// shapes it actually is. Exactly one of Polyline/Polygon is populated,
// matching Kind; for ContourDegeneratePolygon neither is meaningful beyond
// the single point itself.
type Contour struct {
	Kind     ContourKind
	Point    geom.Point       // valid when Kind == ContourDegeneratePolygon
	Polyline curve.CSPolyline // valid when Kind == ContourPolyline (as straight segments)
	Polygon  curve.CSPolygon  // valid when Kind == ContourPolygon
}

// Pattern is the shared interface implemented by SinglePoint, Matching,
// Bank, and Island (§4.D). Patterns are immutable after construction and
// referenced by shared ownership (plain pointers; the engines never
// mutate a Pattern).
type Pattern interface {
	Category() int
	Points() []CategoricalPoint
	Contour() Contour
	CoverRadius() float64
	IsValid(s Settings) bool
}

// straightPolyline builds an open CSPolyline of rational line segments
// through pts, used by Matching and Bank (and by Island's degenerate
// collinear fallback).
func straightPolyline(pts []geom.Point) curve.CSPolyline {
	curves := make([]curve.XMonotoneCurve, len(pts)-1)
	for i := 0; i+1 < len(pts); i++ {
		curves[i] = curve.NewSegment(pts[i], pts[i+1])
	}
	return curve.NewPolyline(curves)
}

// straightPolygon builds a closed CSPolygon of rational line segments
// through pts (implicitly closing from the last point back to the first),
// used by Island.
func straightPolygon(pts []geom.Point) curve.CSPolygon {
	curves := make([]curve.XMonotoneCurve, len(pts))
	n := len(pts)
	for i := range n {
		curves[i] = curve.NewSegment(pts[i], pts[(i+1)%n])
	}
	return curve.NewPolygon(curves)
}
