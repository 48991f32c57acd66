package pattern

import (
	"math"

	"github.com/tue-alga/cartocrow-sub002/geom"
)

// Bank is the open-polyline pattern of three or more points with bounded
// turning behavior (§3). A bend is a maximal same-orientation run of
// turns; validity requires the number of orientation flips not to exceed
// an inflection limit, and every bend's maximum per-vertex turn and total
// turning not to exceed configured limits. Cover radius is half the
// longest edge length.
type Bank struct {
	points      []CategoricalPoint
	coverRadius float64
	bends       []bend
}

type bend struct {
	sign      int // +1 or -1; the bend's shared turn orientation
	maxTurn   float64
	totalTurn float64
}

// NewBank constructs a Bank pattern from three or more same-category
// points forming an open polyline. Panics if fewer than 3 points are
// given or if their categories differ; coincident consecutive points are
// not rejected here.
func NewBank(points []CategoricalPoint) *Bank {
	if len(points) < 3 {
		geom.Degenerate("bank needs at least 3 points")
	}
	cat := points[0].Category
	for _, p := range points {
		if p.Category != cat {
			geom.Degenerate("bank points of mixed categories")
		}
	}
	b := &Bank{points: points}
	b.coverRadius = longestEdgeHalf(points)
	b.bends = computeBends(points)
	return b
}

func longestEdgeHalf(points []CategoricalPoint) float64 {
	var maxLen float64
	for i := 0; i+1 < len(points); i++ {
		d2 := geom.SquaredDistance(points[i].Position, points[i+1].Position)
		d2f, _ := d2.Float64()
		l := math.Sqrt(d2f)
		if l > maxLen {
			maxLen = l
		}
	}
	return maxLen / 2
}

// computeBends walks the interior vertices, computing the signed turn at
// each, and groups consecutive same-sign turns into bends. A collinear
// (zero-angle) vertex extends the current bend without starting a new one
// and without contributing to its max/total turn.
func computeBends(points []CategoricalPoint) []bend {
	n := len(points)
	var bends []bend
	curIdx := -1
	for i := 1; i < n-1; i++ {
		a := points[i-1].Position.Inexact()
		v := points[i].Position.Inexact()
		c := points[i+1].Position.Inexact()
		e1 := v.Sub(a)
		e2 := c.Sub(v)
		cross := e1.Cross(e2)
		dot := e1.Dot(e2)
		angle := math.Atan2(math.Abs(cross), dot)
		sign := 0
		switch {
		case cross > 1e-12:
			sign = 1
		case cross < -1e-12:
			sign = -1
		}
		if sign == 0 {
			continue // collinear vertex: no new bend, no angle contribution
		}
		if curIdx < 0 || bends[curIdx].sign != sign {
			bends = append(bends, bend{sign: sign})
			curIdx = len(bends) - 1
		}
		if angle > bends[curIdx].maxTurn {
			bends[curIdx].maxTurn = angle
		}
		bends[curIdx].totalTurn += angle
	}
	return bends
}

func (b *Bank) Category() int { return b.points[0].Category }

func (b *Bank) Points() []CategoricalPoint { return b.points }

func (b *Bank) Contour() Contour {
	pts := make([]geom.Point, len(b.points))
	for i, p := range b.points {
		pts[i] = p.Position
	}
	return Contour{Kind: ContourPolyline, Polyline: straightPolyline(pts)}
}

func (b *Bank) CoverRadius() float64 { return b.coverRadius }

// IsValid implements §3/§4.D's Bank validity: orientation flips (bends
// minus one) <= inflection limit, every bend's max per-vertex turn <=
// maxTurnAngle, every bend's total turning <= maxBendAngle.
func (b *Bank) IsValid(s Settings) bool {
	flips := len(b.bends) - 1
	if flips < 0 {
		flips = 0
	}
	if flips > s.InflectionLimit {
		return false
	}
	for _, bd := range b.bends {
		if bd.maxTurn > s.MaxTurnAngle {
			return false
		}
		if bd.totalTurn > s.MaxBendAngle {
			return false
		}
	}
	return true
}

var _ Pattern = (*Bank)(nil)
