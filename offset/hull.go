package offset

import (
	"sort"

	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
)

// Disk is a circle used as input to ApproximateConvexHull: a center and a
// shared radius (every caller in this module dilates by the same fixed
// dilation radius, so a uniform radius is all that's needed here).
type Disk struct {
	Center geom.Point
	Radius float64
}

// ApproximateConvexHull implements §4.C: builds the convex hull of the
// disk centers (an Apollonius-graph outer tangent sequence degenerates to
// a plain convex hull when every disk shares one radius) and stitches
// tangent segments with arcs exactly as OffsetPolygon does for a simple
// polygon — the hull-of-centers offset by the shared radius is precisely
// the approximate convex hull of the disks.
func ApproximateConvexHull(disks []Disk, epsilon float64) curve.CSPolygon {
	if len(disks) == 0 {
		geom.Degenerate("convex hull of zero disks")
	}
	if len(disks) == 1 {
		return OffsetPoint(disks[0].Center, disks[0].Radius)
	}
	radius := disks[0].Radius
	centers := make([]geom.Point, len(disks))
	for i, d := range disks {
		centers[i] = d.Center
	}
	hull := convexHull(centers)
	if len(hull) == 1 {
		return OffsetPoint(hull[0], radius)
	}
	if len(hull) == 2 {
		return OffsetSegment(hull[0], hull[1], radius, epsilon)
	}
	return OffsetPolygon(hull, radius, epsilon)
}

// ConvexHull computes the convex hull of a point set using Andrew's
// monotone chain, expressed with the exact orientation predicate so
// collinear boundary points are dropped deterministically. Exported for
// package pattern's Island contour (§4.D depends on §4.C per the
// component table).
func ConvexHull(pts []geom.Point) []geom.Point {
	return convexHull(pts)
}

func convexHull(pts []geom.Point) []geom.Point {
	uniq := dedupe(pts)
	if len(uniq) <= 2 {
		return uniq
	}
	sort.Slice(uniq, func(i, j int) bool {
		if c := uniq[i].X.Cmp(uniq[j].X); c != 0 {
			return c < 0
		}
		return uniq[i].Y.Cmp(uniq[j].Y) < 0
	})

	build := func(points []geom.Point) []geom.Point {
		var hull []geom.Point
		for _, p := range points {
			for len(hull) >= 2 && geom.Orientation(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, p)
		}
		return hull
	}

	lower := build(uniq)
	rev := make([]geom.Point, len(uniq))
	for i, p := range uniq {
		rev[len(uniq)-1-i] = p
	}
	upper := build(rev)

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}

func dedupe(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.Eq(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
