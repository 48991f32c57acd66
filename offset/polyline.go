package offset

import (
	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
)

// OffsetSegment implements §4.C specialized to a two-vertex polyline: the
// Minkowski dilation of a single segment by radius is a rounded rectangle
// ("stadium" shape) — two parallel rational segments joined by a
// semicircular arc at each end.
func OffsetSegment(p, q geom.Point, radius, epsilon float64) curve.CSPolygon {
	return OffsetPolyline([]geom.Point{p, q}, radius, epsilon)
}

// OffsetPolyline implements §4.C for an open chain of 2+ vertices: the
// boundary of the dilation is built by walking the left-offset rail
// forward, capping with a semicircle at the far end, walking the
// right-offset rail backward (equivalently, the left-offset rail of the
// reversed chain), and capping with a semicircle at the near end.
// Internal vertices get a convex round join on whichever rail is on their
// convex side and are absorbed (line-intersected) on the other.
func OffsetPolyline(vertices []geom.Point, radius, epsilon float64) curve.CSPolygon {
	if len(vertices) < 2 {
		geom.Degenerate("polyline offset needs at least 2 vertices")
	}
	if radius <= 0 {
		geom.Degenerate("non-positive offset radius")
	}
	pts := toVec2(vertices)
	n := len(pts)
	fwdEdges := make([]edge, n-1)
	for i := 0; i < n-1; i++ {
		fwdEdges[i] = makeEdge(pts[i], pts[i+1])
	}

	var curves []curve.XMonotoneCurve

	// Forward rail (left offset of the forward chain).
	for i := 0; i < n-1; i++ {
		e := fwdEdges[i]
		a, b := offsetEdgeLeft(e, radius)
		curves = append(curves, curve.NewSegment(ratify(a), ratify(b)))
		if i+1 < n-1 {
			next := fwdEdges[i+1]
			na, _ := offsetEdgeLeft(next, radius)
			kind := joinKind(pts[i], pts[i+1], pts[i+2])
			appendJoin(&curves, b, na, pts[i+1], radius, kind)
		}
	}

	// End cap: semicircle around pts[n-1] from the forward rail's end to
	// the backward rail's start.
	lastFwd := fwdEdges[n-2]
	fwdEndPoint := pts[n-1].Add(lastFwd.n.Mul(radius))
	bwdStartPoint := pts[n-1].Add(lastFwd.n.Mul(-radius))
	curves = append(curves, arcBetween(pts[n-1], radius, fwdEndPoint, bwdStartPoint, true))

	// Backward rail (left offset of the reversed chain == right offset of
	// the forward chain), walking from n-1 down to 0.
	bwdEdges := make([]edge, n-1)
	for i := 0; i < n-1; i++ {
		bwdEdges[i] = makeEdge(pts[n-1-i], pts[n-2-i])
	}
	for i := 0; i < n-1; i++ {
		e := bwdEdges[i]
		a, b := offsetEdgeLeft(e, radius)
		curves = append(curves, curve.NewSegment(ratify(a), ratify(b)))
		if i+1 < n-1 {
			next := bwdEdges[i+1]
			na, _ := offsetEdgeLeft(next, radius)
			kind := joinKind(pts[n-1-i], pts[n-2-i], pts[n-3-i])
			appendJoin(&curves, b, na, pts[n-2-i], radius, kind)
		}
	}

	// Start cap: semicircle around pts[0] from the backward rail's end
	// back to the forward rail's start.
	lastBwd := bwdEdges[n-2]
	bwdEndPoint := pts[0].Add(lastBwd.n.Mul(radius))
	fwdStartPoint := pts[0].Add(fwdEdges[0].n.Mul(radius))
	curves = append(curves, arcBetween(pts[0], radius, bwdEndPoint, fwdStartPoint, true))

	_ = epsilon
	return curve.NewPolygon(mergeCollinear(curves))
}
