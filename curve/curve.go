package curve

import (
	"github.com/tue-alga/cartocrow-sub002/geom"
)

// Orientation of a circular arc's traversal direction.
type Orientation int

const (
	CW Orientation = iota
	CCW
)

// Kind distinguishes the two XMonotoneCurve variants at the type level, as
// required by §4.B ("distinguish at the type level").
type Kind int

const (
	KindSegment Kind = iota
	KindArc
)

// XMonotoneCurve is either a rational line segment or a circular arc whose
// supporting circle is rational and whose endpoints are algebraic
// (geom.OneRoot) points. Despite the name, arcs are neither checked nor
// required to be x-monotone: the halves built by CircleToPolygon are
// monotone in y, not in x.
type XMonotoneCurve struct {
	Kind Kind

	// Segment fields (valid when Kind == KindSegment).
	SegP, SegQ geom.Point

	// Arc fields (valid when Kind == KindArc).
	Circle      geom.Circle
	ArcSrc      geom.OneRootPoint
	ArcTgt      geom.OneRootPoint
	ArcOrient   Orientation
}

// NewSegment constructs a line-segment curve. Panics (GeometryDegenerate)
// if p == q.
func NewSegment(p, q geom.Point) XMonotoneCurve {
	if p.Eq(q) {
		geom.Degenerate("zero-length segment at %s", p)
	}
	return XMonotoneCurve{Kind: KindSegment, SegP: p, SegQ: q}
}

// NewArc constructs a circular-arc curve. Panics if the circle has zero
// radius. It does not check that src and tgt lie on the circle or that the
// arc is x-monotone.
func NewArc(c geom.Circle, src, tgt geom.OneRootPoint, orient Orientation) XMonotoneCurve {
	if c.R2.Sign() <= 0 {
		geom.Degenerate("zero or negative radius circle")
	}
	return XMonotoneCurve{Kind: KindArc, Circle: c, ArcSrc: src, ArcTgt: tgt, ArcOrient: orient}
}

// Source returns the curve's starting point, as constructed, in the inexact
// domain.
func (c XMonotoneCurve) Source() geom.Vec2 {
	if c.Kind == KindSegment {
		return c.SegP.Inexact()
	}
	return c.ArcSrc.Inexact()
}

// Target returns the curve's ending point in the inexact domain.
func (c XMonotoneCurve) Target() geom.Vec2 {
	if c.Kind == KindSegment {
		return c.SegQ.Inexact()
	}
	return c.ArcTgt.Inexact()
}

// SourceExactRational reports whether the source endpoint has an exact
// rational representation, and if so returns it. Arc endpoints are
// frequently algebraic and return ok=false.
func (c XMonotoneCurve) SourceExactRational() (geom.Point, bool) {
	if c.Kind == KindSegment {
		return c.SegP, true
	}
	if c.ArcSrc.X.IsRational() && c.ArcSrc.Y.IsRational() {
		return geom.Point{X: c.ArcSrc.X.A, Y: c.ArcSrc.Y.A}, true
	}
	return geom.Point{}, false
}

// BoundingBox returns the axis-aligned bounding box of the curve in the
// inexact domain.
func (c XMonotoneCurve) BoundingBox() geom.Rect {
	if c.Kind == KindSegment {
		return geom.BoundingBoxOf([]geom.Vec2{c.SegP.Inexact(), c.SegQ.Inexact()})
	}
	// For an arc, the box of its endpoints is widened by each of the
	// circle's four axis-extreme points that lies on the arc's span.
	src, tgt := c.ArcSrc.Inexact(), c.ArcTgt.Inexact()
	r2f, _ := c.Circle.R2.Float64()
	cx, _ := c.Circle.Center.X.Float64()
	cy, _ := c.Circle.Center.Y.Float64()
	r := sqrtf(r2f)
	center := geom.Vec2{X: cx, Y: cy}
	from, to := src, tgt
	if c.ArcOrient == CW {
		from, to = tgt, src
	}
	box := geom.BoundingBoxOf([]geom.Vec2{src, tgt})
	for _, ext := range []geom.Vec2{{X: cx + r, Y: cy}, {X: cx, Y: cy + r}, {X: cx - r, Y: cy}, {X: cx, Y: cy - r}} {
		if angleBetween(center, from, to, ext) {
			box = box.ExpandToInclude(ext)
		}
	}
	return box
}

func sqrtf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	lo, hi := 0.0, x
	if hi < 1 {
		hi = 1
	}
	for range 60 {
		mid := (lo + hi) / 2
		if mid*mid < x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// Reversed returns the curve traversed in the opposite direction, used when
// building the twin half-edge in an arrangement.
func (c XMonotoneCurve) Reversed() XMonotoneCurve {
	switch c.Kind {
	case KindSegment:
		return XMonotoneCurve{Kind: KindSegment, SegP: c.SegQ, SegQ: c.SegP}
	default:
		orient := CW
		if c.ArcOrient == CW {
			orient = CCW
		}
		return XMonotoneCurve{Kind: KindArc, Circle: c.Circle, ArcSrc: c.ArcTgt, ArcTgt: c.ArcSrc, ArcOrient: orient}
	}
}

// chordMidpointInexact returns the inexact midpoint of the curve's two
// endpoints.
func (c XMonotoneCurve) chordMidpointInexact() geom.Vec2 {
	return geom.MidpointV(c.Source(), c.Target())
}
