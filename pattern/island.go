package pattern

import (
	"math"
	"sort"

	"github.com/tue-alga/cartocrow-sub002/geom"
	"github.com/tue-alga/cartocrow-sub002/offset"
)

// Island is the closed-polygon pattern formed by the convex hull of three
// or more non-collinear points (§3). If the input is collinear, the
// island degenerates and is internally represented as a Bank.
type Island struct {
	points      []CategoricalPoint
	coverRadius float64
	hull        []geom.Point
	degenerate  *Bank // non-nil iff the points are collinear
}

// NewIsland constructs an Island pattern from three or more same-category
// points. Panics if fewer than 3 points are given.
func NewIsland(points []CategoricalPoint) *Island {
	if len(points) < 3 {
		geom.Degenerate("island needs at least 3 points")
	}
	cat := points[0].Category
	for _, p := range points {
		if p.Category != cat {
			geom.Degenerate("island points of mixed categories")
		}
	}
	pts := make([]geom.Point, len(points))
	for i, p := range points {
		pts[i] = p.Position
	}
	if allCollinear(pts) {
		ordered := orderAlongLine(points)
		degenerate := NewBank(ordered)
		return &Island{points: points, degenerate: degenerate, coverRadius: degenerate.CoverRadius()}
	}
	hull := offset.ConvexHull(pts)
	island := &Island{points: points, hull: hull}
	island.coverRadius = voronoiCoverRadius(pts, hull)
	return island
}

func allCollinear(pts []geom.Point) bool {
	for i := 2; i < len(pts); i++ {
		if !geom.Collinear(pts[0], pts[1], pts[i]) {
			return false
		}
	}
	return true
}

// orderAlongLine sorts collinear points by their position along the line
// they share, so the degenerate Bank fallback is a simple open polyline
// (§8 scenario S2/S7).
func orderAlongLine(points []CategoricalPoint) []CategoricalPoint {
	out := append([]CategoricalPoint(nil), points...)
	if len(out) < 2 {
		return out
	}
	a := out[0].Position.Inexact()
	b := out[1].Position.Inexact()
	dir := b.Sub(a)
	sort.Slice(out, func(i, j int) bool {
		ti := out[i].Position.Inexact().Sub(a).Dot(dir)
		tj := out[j].Position.Inexact().Sub(a).Dot(dir)
		return ti < tj
	})
	return out
}

func (is *Island) Category() int { return is.points[0].Category }

func (is *Island) Points() []CategoricalPoint { return is.points }

// Contour returns the convex hull polygon, or (for the collinear
// fallback) the degenerate Bank's open-polyline contour — §8 scenario 7:
// "an Island whose contour is a Polyline (not a closed Polygon)".
func (is *Island) Contour() Contour {
	if is.degenerate != nil {
		return is.degenerate.Contour()
	}
	return Contour{Kind: ContourPolygon, Polygon: straightPolygon(is.hull)}
}

func (is *Island) CoverRadius() float64 { return is.coverRadius }

// IsValid is always true for Island (§4.D).
func (is *Island) IsValid(Settings) bool { return true }

var _ Pattern = (*Island)(nil)

// voronoiCoverRadius implements §3's Island cover radius: the largest
// distance from any Voronoi vertex of the (site set, clipped to the
// convex hull) diagram to its site. It does not construct the clipped
// Voronoi diagram; instead it returns the largest circumradius over all
// non-collinear triples of sites whose circumcenter lies inside the hull.
// Triples whose circumcircle contains another site are not excluded, and
// vertices that clipping creates on the hull boundary are not considered,
// so the result is an approximation of the clipped-diagram value.
func voronoiCoverRadius(pts []geom.Point, hull []geom.Point) float64 {
	var maxRInside, maxRAny float64
	n := len(pts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if geom.Collinear(pts[i], pts[j], pts[k]) {
					continue
				}
				center, r, ok := circumcenter(pts[i], pts[j], pts[k])
				if !ok {
					continue
				}
				if r > maxRAny {
					maxRAny = r
				}
				if pointInPolygon(hull, center) && r > maxRInside {
					maxRInside = r
				}
			}
		}
	}
	if maxRInside > 0 {
		return maxRInside
	}
	// No triple's circumcenter falls inside the hull (e.g. an obtuse
	// triangle): fall back to the largest circumradius found. The true
	// clipped-Voronoi vertex would lie on the hull boundary closer in,
	// making this an upper-bound approximation.
	return maxRAny
}

func circumcenter(a, b, c geom.Point) (geom.Vec2, float64, bool) {
	av, bv, cv := a.Inexact(), b.Inexact(), c.Inexact()
	d := 2 * (av.X*(bv.Y-cv.Y) + bv.X*(cv.Y-av.Y) + cv.X*(av.Y-bv.Y))
	if math.Abs(d) < 1e-12 {
		return geom.Vec2{}, 0, false
	}
	ux := (av.X*av.X+av.Y*av.Y)*(bv.Y-cv.Y) + (bv.X*bv.X+bv.Y*bv.Y)*(cv.Y-av.Y) + (cv.X*cv.X+cv.Y*cv.Y)*(av.Y-bv.Y)
	uy := (av.X*av.X+av.Y*av.Y)*(cv.X-bv.X) + (bv.X*bv.X+bv.Y*bv.Y)*(av.X-cv.X) + (cv.X*cv.X+cv.Y*cv.Y)*(bv.X-av.X)
	center := geom.Vec2{X: ux / d, Y: uy / d}
	r := geom.Distance(center, av)
	return center, r, true
}

func pointInPolygon(hull []geom.Point, p geom.Vec2) bool {
	n := len(hull)
	crossings := 0
	for i := range n {
		a := hull[i].Inexact()
		b := hull[(i+1)%n].Inexact()
		if (a.Y > p.Y) != (b.Y > p.Y) {
			t := (p.Y - a.Y) / (b.Y - a.Y)
			x := a.X + t*(b.X-a.X)
			if x > p.X {
				crossings++
			}
		}
	}
	return crossings%2 == 1
}
