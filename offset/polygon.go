package offset

import (
	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
)

// OffsetPolygon implements §4.C: the Minkowski dilation of a closed,
// simple, counterclockwise polygon by radius, returned as a CSPolygon with
// no holes. Each edge contributes a parallel rational segment; each convex
// vertex contributes a circular arc of the given radius; reflex vertices
// are absorbed into the intersection of their neighboring offset edges.
func OffsetPolygon(vertices []geom.Point, radius, epsilon float64) curve.CSPolygon {
	if len(vertices) < 3 {
		geom.Degenerate("polygon offset needs at least 3 vertices")
	}
	if radius <= 0 {
		geom.Degenerate("non-positive offset radius")
	}
	pts := toVec2(vertices)
	// Walk the polygon clockwise, so every edge's left normal points
	// outward and the left rail is the dilation's boundary.
	if signedArea(pts) > 0 {
		pts = reversed(pts)
	}
	n := len(pts)
	edges := make([]edge, n)
	for i := range n {
		edges[i] = makeEdge(pts[i], pts[(i+1)%n])
	}

	var curves []curve.XMonotoneCurve
	for i := range n {
		e := edges[i]
		a, b := offsetEdgeLeft(e, radius)
		curves = append(curves, curve.NewSegment(ratify(a), ratify(b)))

		nextE := edges[(i+1)%n]
		na, _ := offsetEdgeLeft(nextE, radius)
		kind := joinKind(pts[i], pts[(i+1)%n], pts[(i+2)%n])
		joinVertex := pts[(i+1)%n]
		appendJoin(&curves, b, na, joinVertex, radius, kind)
	}
	_ = epsilon
	return curve.NewPolygon(mergeCollinear(curves))
}

// appendJoin bridges the gap between the end of one offset edge (at b) and
// the start of the next (at na) around the original vertex v. A convex
// join (kind>0) gets a circular arc of the given radius; a reflex or
// collinear join is skipped (the two offset edges already meet, or nearly
// meet, and are connected with a short rational bridging segment through
// their line intersection when they don't coincide).
func appendJoin(curves *[]curve.XMonotoneCurve, b, na, v geom.Vec2, radius float64, kind int) {
	if sameInexact(b, na) {
		return
	}
	if kind > 0 {
		*curves = append(*curves, arcBetween(v, radius, b, na, true))
		return
	}
	// Reflex/collinear: bridge with a single short rational segment; this
	// is the "absorbed" case of §4.C (no arc; the edges are joined
	// directly rather than rounded).
	*curves = append(*curves, curve.NewSegment(ratify(b), ratify(na)))
}

// arcBetween builds a rational-endpoint arc of the given radius centered
// at c from point p to point q (both already offset points, at
// approximately distance radius from c). CW selects the traversal
// direction consistent with how the caller is walking the boundary.
func arcBetween(c geom.Vec2, radius float64, p, q geom.Vec2, cw bool) curve.XMonotoneCurve {
	center := ratify(c)
	r2 := ratifyScalar(radius * radius)
	circ := geom.Circle{Center: center, R2: r2}
	orient := curve.CCW
	if cw {
		orient = curve.CW
	}
	return curve.NewArc(circ, geom.RationalOneRootPoint(ratify(p)), geom.RationalOneRootPoint(ratify(q)), orient)
}

func sameInexact(a, b geom.Vec2) bool {
	return geom.Distance(a, b) < 1e-9
}

func toVec2(pts []geom.Point) []geom.Vec2 {
	out := make([]geom.Vec2, len(pts))
	for i, p := range pts {
		out[i] = p.Inexact()
	}
	return out
}

func reversed(pts []geom.Vec2) []geom.Vec2 {
	out := make([]geom.Vec2, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func signedArea(pts []geom.Vec2) float64 {
	var a float64
	n := len(pts)
	for i := range n {
		j := (i + 1) % n
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

// mergeCollinear drops curves whose junction neighbors happen to form a
// zero-length artifact from floating-point rationalization, keeping the
// resulting polygon free of degenerate isolated points (§4.B.5).
func mergeCollinear(curves []curve.XMonotoneCurve) []curve.XMonotoneCurve {
	out := curves[:0:0]
	for _, c := range curves {
		if c.Kind == curve.KindSegment && geom.Distance(c.Source(), c.Target()) < 1e-9 {
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		geom.Degenerate("offset collapsed to nothing")
	}
	return out
}
