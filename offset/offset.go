package offset

import (
	"math"
	"math/big"

	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
)

// Epsilon is the default Hausdorff tolerance used when callers don't
// specify one explicitly; it is far smaller than any cover radius or
// dilation radius this module deals with, since all approximations below
// are bounded only by float64 rounding, not by a coarser discretization.
const Epsilon = 1e-9

// ratify rationalizes an inexact point exactly as a rational number (every
// float64 bit pattern has an exact rational value), which is the
// approximation step described in §4.C: an irrational tangent point is
// replaced by a nearby rational point within epsilon.
func ratify(v geom.Vec2) geom.Point {
	return geom.Point{X: new(big.Rat).SetFloat64(v.X), Y: new(big.Rat).SetFloat64(v.Y)}
}

func ratifyScalar(x float64) *big.Rat {
	return new(big.Rat).SetFloat64(x)
}

// OffsetPoint dilates a single point by radius, returning the circle as a
// CSPolygon of two half-circle arcs, as built by curve.CircleToPolygon (§8
// scenario S6).
func OffsetPoint(p geom.Point, radius float64) curve.CSPolygon {
	if radius <= 0 {
		geom.Degenerate("non-positive offset radius")
	}
	r2 := ratifyScalar(radius * radius)
	return curve.CircleToPolygon(geom.Circle{Center: p, R2: r2})
}

// edge holds the float64 working values the offset construction needs
// (endpoints, direction, left normal).
type edge struct {
	a, b geom.Vec2
	dir  geom.Vec2 // unit direction a->b
	n    geom.Vec2 // unit left normal (dir rotated 90 deg CCW)
}

func makeEdge(a, b geom.Vec2) edge {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		geom.Degenerate("zero-length edge in offset chain")
	}
	dir := geom.Vec2{X: d.X / l, Y: d.Y / l}
	return edge{a: a, b: b, dir: dir, n: dir.Perp()}
}

// offsetEdgeLeft returns the edge translated by radius along its left
// normal, i.e. the offset rail on the left side of travel.
func offsetEdgeLeft(e edge, radius float64) (geom.Vec2, geom.Vec2) {
	off := e.n.Mul(radius)
	return e.a.Add(off), e.b.Add(off)
}

// lineIntersect intersects the infinite lines through (a1,b1) and (a2,b2).
func lineIntersect(a1, b1, a2, b2 geom.Vec2) (geom.Vec2, bool) {
	d1 := b1.Sub(a1)
	d2 := b2.Sub(a2)
	denom := d1.Cross(d2)
	if math.Abs(denom) < 1e-12 {
		return geom.Vec2{}, false
	}
	diff := a2.Sub(a1)
	t := diff.Cross(d2) / denom
	return a1.Add(d1.Mul(t)), true
}

// joinKind classifies a chain vertex cur, reached from prev and left
// towards next, for the left rail: 1 (convex) when the path turns right,
// since the left rail is then on the outer side and its two segments
// diverge, leaving a gap for a round join of the given radius; -1 (reflex)
// when the path turns left, putting the left rail on the inner side; 0
// when the three points are collinear.
func joinKind(prev, cur, next geom.Vec2) int {
	// Use float orientation directly; the offset construction already
	// works in the inexact domain end to end and only rationalizes at
	// the very end, so a float cross product suffices here.
	cross := cur.Sub(prev).Cross(next.Sub(cur))
	switch {
	case cross < -1e-12:
		return 1 // right turn: convex for the left rail
	case cross > 1e-12:
		return -1 // left turn: reflex for the left rail
	default:
		return 0 // collinear
	}
}
