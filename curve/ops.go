package curve

import (
	"math"
	"math/big"

	"github.com/tue-alga/cartocrow-sub002/geom"
)

func bigOne() *big.Rat { return big.NewRat(1, 1) }
func negOne() *big.Rat { return big.NewRat(-1, 1) }

// ContainsPoint implements §4.B.1: a ray-cast test with an axis-aligned ray
// toward +x, counting transversal crossings. A ray endpoint that is exactly
// a curve endpoint is counted once (endpoint-dedup via the half-open
// convention on each curve's y-range below).
func ContainsPoint(poly CSPolygon, p geom.Vec2) bool {
	box := poly.BoundingBox()
	if p.Y < box.LLy || p.Y > box.URy {
		return false
	}
	crossings := 0
	for _, c := range poly.Curves {
		crossings += curveRayCrossings(c, p)
	}
	return crossings%2 == 1
}

// curveRayCrossings counts how many times the ray {(x,p.Y) : x >= p.X}
// crosses curve c, using the half-open convention [lower endpoint y, upper
// endpoint y) so a ray that passes exactly through a shared vertex is
// counted by exactly one of the two incident curves.
func curveRayCrossings(c XMonotoneCurve, p geom.Vec2) int {
	src, tgt := c.Source(), c.Target()
	if src.Y == tgt.Y {
		return 0 // horizontal segment or degenerate arc chord, never crossed transversally
	}
	lo, hi := src, tgt
	increasing := true
	if lo.Y > hi.Y {
		lo, hi = hi, lo
		increasing = false
	}
	_ = increasing
	if p.Y < lo.Y || p.Y >= hi.Y {
		return 0
	}
	switch c.Kind {
	case KindSegment:
		t := (p.Y - lo.Y) / (hi.Y - lo.Y)
		x := lo.X + t*(hi.X-lo.X)
		if x >= p.X {
			return 1
		}
		return 0
	default:
		cx, _ := c.Circle.Center.X.Float64()
		cy, _ := c.Circle.Center.Y.Float64()
		r2, _ := c.Circle.R2.Float64()
		dy := p.Y - cy
		disc := r2 - dy*dy
		if disc < 0 {
			return 0
		}
		dx := math.Sqrt(disc)
		// At this height the arc crosses on the circle's right branch when
		// it runs downward clockwise or upward counterclockwise, and on the
		// left branch otherwise.
		var x float64
		if increasing == (c.ArcOrient == CCW) {
			x = cx + dx
		} else {
			x = cx - dx
		}
		if x >= p.X {
			return 1
		}
		return 0
	}
}

// LiesOn implements §4.B.2: an x-range check plus supporting-primitive
// incidence.
func LiesOn(p geom.Vec2, c XMonotoneCurve) bool {
	const eps = 1e-9
	box := c.BoundingBox()
	if p.X < box.LLx-eps || p.X > box.URx+eps || p.Y < box.LLy-eps || p.Y > box.URy+eps {
		return false
	}
	switch c.Kind {
	case KindSegment:
		src, tgt := c.Source(), c.Target()
		cross := (tgt.X-src.X)*(p.Y-src.Y) - (tgt.Y-src.Y)*(p.X-src.X)
		return math.Abs(cross) < eps*math.Max(1, tgt.Sub(src).Length())
	default:
		cx, _ := c.Circle.Center.X.Float64()
		cy, _ := c.Circle.Center.Y.Float64()
		r2, _ := c.Circle.R2.Float64()
		d2 := (p.X-cx)*(p.X-cx) + (p.Y-cy)*(p.Y-cy)
		return math.Abs(d2-r2) < eps*math.Max(1, r2)
	}
}

// nearestOnCurve returns the nearest point on a single curve to p and the
// squared distance to it.
func nearestOnCurve(c XMonotoneCurve, p geom.Vec2) (geom.Vec2, float64) {
	switch c.Kind {
	case KindSegment:
		src, tgt := c.Source(), c.Target()
		d := tgt.Sub(src)
		l2 := d.LengthSquared()
		if l2 == 0 {
			return src, p.Sub(src).LengthSquared()
		}
		t := p.Sub(src).Dot(d) / l2
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		q := src.Add(d.Mul(t))
		return q, p.Sub(q).LengthSquared()
	default:
		cx, _ := c.Circle.Center.X.Float64()
		cy, _ := c.Circle.Center.Y.Float64()
		r2, _ := c.Circle.R2.Float64()
		r := math.Sqrt(r2)
		center := geom.Vec2{X: cx, Y: cy}
		dir := p.Sub(center)
		if dir.LengthSquared() == 0 {
			dir = geom.Vec2{X: 1, Y: 0}
		}
		dir = dir.Normalized()
		candidate := center.Add(dir.Mul(r))
		// Clamp to the arc's angular span by falling back to whichever
		// endpoint is closer if the candidate is outside [src,tgt] in angle.
		// angleBetween tests the counterclockwise span, so a CW arc is
		// tested from its target to its source.
		src, tgt := c.Source(), c.Target()
		from, to := src, tgt
		if c.ArcOrient == CW {
			from, to = tgt, src
		}
		if !angleBetween(center, from, to, candidate) {
			dSrc := p.Sub(src).LengthSquared()
			dTgt := p.Sub(tgt).LengthSquared()
			if dSrc <= dTgt {
				return src, dSrc
			}
			return tgt, dTgt
		}
		return candidate, p.Sub(candidate).LengthSquared()
	}
}

func angleBetween(center, src, tgt, cand geom.Vec2) bool {
	a0 := math.Atan2(src.Y-center.Y, src.X-center.X)
	a1 := math.Atan2(tgt.Y-center.Y, tgt.X-center.X)
	ac := math.Atan2(cand.Y-center.Y, cand.X-center.X)
	norm := func(a float64) float64 {
		for a < 0 {
			a += 2 * math.Pi
		}
		for a >= 2*math.Pi {
			a -= 2 * math.Pi
		}
		return a
	}
	a0, a1, ac = norm(a0), norm(a1), norm(ac)
	if a0 <= a1 {
		return ac >= a0 && ac <= a1
	}
	return ac >= a0 || ac <= a1
}

// Nearest implements §4.B.3: the minimum over curves of per-curve nearest.
func Nearest(pl CSPolyline, p geom.Vec2) geom.Vec2 {
	best, bestD2 := nearestOnCurve(pl.Curves[0], p)
	for _, c := range pl.Curves[1:] {
		q, d2 := nearestOnCurve(c, p)
		if d2 < bestD2 {
			best, bestD2 = q, d2
		}
	}
	return best
}

// DistanceToPolyline is a convenience wrapper returning the scalar distance
// instead of the nearest point, used throughout the partition engine's
// admissibility checks.
func DistanceToPolyline(pl CSPolyline, p geom.Vec2) float64 {
	q := Nearest(pl, p)
	return p.Sub(q).Length()
}

// Area implements §4.B.4: a Green-theorem sum over curves; for arcs the
// chord contributes its trapezoid term and the circular segment beyond the
// chord contributes separately, signed by the arc's orientation.
func Area(poly CSPolygon) float64 {
	var total float64
	for _, c := range poly.Curves {
		src, tgt := c.Source(), c.Target()
		total += src.X*tgt.Y - tgt.X*src.Y // chord (shoelace) term
		if c.Kind == KindArc {
			total += 2 * circularSegmentSignedArea(c)
		}
	}
	return total / 2
}

// circularSegmentSignedArea returns the signed area between an arc and its
// chord, with the sweep from src to tgt taken in the arc's own direction:
// positive for a CCW arc, negative for a CW arc. Area adds 2x this value
// into its shoelace accumulator, which holds twice the area.
func circularSegmentSignedArea(c XMonotoneCurve) float64 {
	r2, _ := c.Circle.R2.Float64()
	cx, _ := c.Circle.Center.X.Float64()
	cy, _ := c.Circle.Center.Y.Float64()
	center := geom.Vec2{X: cx, Y: cy}
	src, tgt := c.Source(), c.Target()
	a0 := math.Atan2(src.Y-center.Y, src.X-center.X)
	a1 := math.Atan2(tgt.Y-center.Y, tgt.X-center.X)
	delta := a1 - a0
	if c.ArcOrient == CW {
		for delta > 0 {
			delta -= 2 * math.Pi
		}
	} else {
		for delta < 0 {
			delta += 2 * math.Pi
		}
	}
	return 0.5 * r2 * (delta - math.Sin(delta))
}

// CircleToPolygon implements §4.B.5: splits the supporting circle at its
// topmost and bottommost points (where the tangent is horizontal) into its
// right and left halves, producing a polygon with no degenerate isolated
// points. Each half is monotone in y, not in x. The top/bottom points are
// in general irrational (y = cy +/- sqrt(r2)) and are represented exactly
// in the OneRoot domain.
func CircleToPolygon(c geom.Circle) CSPolygon {
	if c.R2.Sign() <= 0 {
		geom.Degenerate("zero-radius circle")
	}
	cx := c.Center.X
	cy := c.Center.Y

	one := bigOne()
	top := geom.OneRootPoint{
		X: geom.RationalOneRoot(cx),
		Y: geom.OneRoot{A: cy, B: one, C: c.R2},
	}
	bottom := geom.OneRootPoint{
		X: geom.RationalOneRoot(cx),
		Y: geom.OneRoot{A: cy, B: negOne(), C: c.R2},
	}

	// Right branch goes top -> bottom through the +x side; left branch
	// goes bottom -> top through the -x side. Both arcs are CW, so together
	// they traverse the circle clockwise once and Area of the result is
	// negative.
	rightArc := NewArc(c, top, bottom, CW)
	leftArc := NewArc(c, bottom, top, CW)
	return NewPolygon([]XMonotoneCurve{rightArc, leftArc})
}
