package pattern

import (
	"math"

	"github.com/tue-alga/cartocrow-sub002/geom"
)

// Matching is the two-point pattern drawn as an open line segment (§3).
// Its cover radius is half the Euclidean distance between its points.
type Matching struct {
	points      [2]CategoricalPoint
	coverRadius float64
}

// NewMatching constructs a Matching pattern from exactly two categorical
// points of the same category. Panics if the category differs; coincident
// points are not rejected here.
func NewMatching(a, b CategoricalPoint) *Matching {
	if a.Category != b.Category {
		geom.Degenerate("matching points of different categories")
	}
	d2 := geom.SquaredDistance(a.Position, b.Position)
	d2f, _ := d2.Float64()
	m := &Matching{points: [2]CategoricalPoint{a, b}}
	m.coverRadius = math.Sqrt(d2f) / 2
	return m
}

func (m *Matching) Category() int { return m.points[0].Category }

func (m *Matching) Points() []CategoricalPoint { return m.points[:] }

func (m *Matching) Contour() Contour {
	pl := straightPolyline([]geom.Point{m.points[0].Position, m.points[1].Position})
	return Contour{Kind: ContourPolyline, Polyline: pl}
}

func (m *Matching) CoverRadius() float64 { return m.coverRadius }

// IsValid is always true for Matching (§4.D).
func (m *Matching) IsValid(Settings) bool { return true }

var _ Pattern = (*Matching)(nil)
