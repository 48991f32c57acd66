package boolop

import (
	"math"
	"sort"

	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
)

// tessellationSteps chords approximate each curve (segment or arc) when
// locating where it crosses a polygon set's boundary; matches the
// resolution package drawing uses for its own arrangement tessellation.
const tessellationSteps = 24

// boundaryEpsilon is the distance within which a polyline point is treated
// as lying exactly on the polygon set's boundary rather than strictly
// inside or outside it.
const boundaryEpsilon = 1e-7

type region int

const (
	outsideRegion region = iota
	onBoundary
	insideRegion
)

// Intersect returns the portions of pl that lie inside ps (§4.G). A portion
// that lies exactly on ps's boundary is included only if keepOverlap is set
// (S3, S4, property 8).
func Intersect(pl curve.CSPolyline, ps curve.CSPolygonSet, keepOverlap bool) []curve.CSPolyline {
	return run(pl, ps, keepOverlap, true)
}

// Difference returns the portions of pl that lie outside ps. A boundary
// portion is included whenever Intersect would have excluded it, so every
// sub-curve of pl is allocated to exactly one of Intersect or Difference.
func Difference(pl curve.CSPolyline, ps curve.CSPolygonSet, keepOverlap bool) []curve.CSPolyline {
	return run(pl, ps, keepOverlap, false)
}

func run(pl curve.CSPolyline, ps curve.CSPolygonSet, keepOverlap, wantIntersect bool) []curve.CSPolyline {
	var boundary []curve.XMonotoneCurve
	boundary = append(boundary, ps.Outer.Curves...)
	for _, h := range ps.Holes {
		boundary = append(boundary, h.Curves...)
	}

	var kept []curve.XMonotoneCurve
	for _, c := range pl.Curves {
		bps := breakpoints(c, boundary)
		for i := 0; i+1 < len(bps); i++ {
			t0, t1 := bps[i], bps[i+1]
			if t1-t0 < 1e-9 {
				continue
			}
			mid := pointAt(c, (t0+t1)/2)
			if keepSubCurve(classify(ps, mid), keepOverlap, wantIntersect) {
				kept = append(kept, subCurve(c, t0, t1))
			}
		}
	}
	return stitch(kept)
}

func keepSubCurve(r region, keepOverlap, wantIntersect bool) bool {
	switch r {
	case insideRegion:
		return wantIntersect
	case outsideRegion:
		return !wantIntersect
	default: // onBoundary
		if wantIntersect {
			return keepOverlap
		}
		return !keepOverlap
	}
}

// classify reports whether p lies inside, outside, or on the boundary of ps.
func classify(ps curve.CSPolygonSet, p geom.Vec2) region {
	for _, c := range ps.Outer.Curves {
		if distanceToCurve(c, p) < boundaryEpsilon {
			return onBoundary
		}
	}
	for _, h := range ps.Holes {
		for _, c := range h.Curves {
			if distanceToCurve(c, p) < boundaryEpsilon {
				return onBoundary
			}
		}
	}
	if !curve.ContainsPoint(ps.Outer, p) {
		return outsideRegion
	}
	for _, h := range ps.Holes {
		if curve.ContainsPoint(h, p) {
			return outsideRegion
		}
	}
	return insideRegion
}

func distanceToCurve(c curve.XMonotoneCurve, p geom.Vec2) float64 {
	return curve.DistanceToPolyline(curve.CSPolyline{Curves: []curve.XMonotoneCurve{c}}, p)
}

// breakpoints returns the sorted parameter values in [0,1] along c
// (including both endpoints) where c crosses any curve of boundary, found
// by pairwise chord intersection of tessellated approximations of both
// sides.
func breakpoints(c curve.XMonotoneCurve, boundary []curve.XMonotoneCurve) []float64 {
	lp := sampleCurve(c)
	seen := map[float64]bool{0: true, 1: true}
	for _, g := range boundary {
		gp := sampleCurve(g)
		for i := 0; i+1 < len(lp); i++ {
			for j := 0; j+1 < len(gp); j++ {
				if _, t, _, ok := segSegIntersect(lp[i], lp[i+1], gp[j], gp[j+1]); ok {
					globalT := (float64(i) + t) / float64(tessellationSteps)
					seen[globalT] = true
				}
			}
		}
	}
	ts := make([]float64, 0, len(seen))
	for t := range seen {
		ts = append(ts, t)
	}
	sort.Float64s(ts)
	return ts
}

func segSegIntersect(p0, p1, p2, p3 geom.Vec2) (geom.Vec2, float64, float64, bool) {
	d1 := p1.Sub(p0)
	d2 := p3.Sub(p2)
	denom := d1.Cross(d2)
	if math.Abs(denom) < 1e-12 {
		return geom.Vec2{}, 0, 0, false
	}
	diff := p2.Sub(p0)
	t := diff.Cross(d2) / denom
	u := diff.Cross(d1) / denom
	if t < -1e-9 || t > 1+1e-9 || u < -1e-9 || u > 1+1e-9 {
		return geom.Vec2{}, 0, 0, false
	}
	return p0.Add(d1.Mul(t)), t, u, true
}

// sampleCurve returns tessellationSteps+1 points uniformly spaced in c's own
// parameter (linear for a segment, angular for an arc).
func sampleCurve(c curve.XMonotoneCurve) []geom.Vec2 {
	pts := make([]geom.Vec2, tessellationSteps+1)
	for i := range pts {
		pts[i] = pointAt(c, float64(i)/float64(tessellationSteps))
	}
	return pts
}

// pointAt evaluates c at parameter t in [0,1].
func pointAt(c curve.XMonotoneCurve, t float64) geom.Vec2 {
	src, tgt := c.Source(), c.Target()
	if c.Kind == curve.KindSegment {
		return geom.Vec2{X: src.X + (tgt.X-src.X)*t, Y: src.Y + (tgt.Y-src.Y)*t}
	}
	cx, _ := c.Circle.Center.X.Float64()
	cy, _ := c.Circle.Center.Y.Float64()
	r2, _ := c.Circle.R2.Float64()
	r := math.Sqrt(r2)
	a0 := math.Atan2(src.Y-cy, src.X-cx)
	a1 := math.Atan2(tgt.Y-cy, tgt.X-cx)
	if c.ArcOrient == curve.CW {
		for a1 > a0 {
			a1 -= 2 * math.Pi
		}
	} else {
		for a1 < a0 {
			a1 += 2 * math.Pi
		}
	}
	angle := a0 + (a1-a0)*t
	return geom.Vec2{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
}

// subCurve returns the portion of c between parameters t0 and t1, of the
// same kind as c (a straight sub-segment, or a sub-arc of the same
// supporting circle and orientation).
func subCurve(c curve.XMonotoneCurve, t0, t1 float64) curve.XMonotoneCurve {
	if t0 <= 1e-12 && t1 >= 1-1e-12 {
		return c
	}
	p0, p1 := pointAt(c, t0), pointAt(c, t1)
	if c.Kind == curve.KindSegment {
		return curve.NewSegment(geom.PointFromFloat(p0.X, p0.Y), geom.PointFromFloat(p1.X, p1.Y))
	}
	src := geom.RationalOneRootPoint(geom.PointFromFloat(p0.X, p0.Y))
	tgt := geom.RationalOneRootPoint(geom.PointFromFloat(p1.X, p1.Y))
	return curve.NewArc(c.Circle, src, tgt, c.ArcOrient)
}

// stitch merges consecutive kept sub-curves whose endpoints coincide into
// maximal output polylines, splitting wherever there is a gap.
func stitch(curves []curve.XMonotoneCurve) []curve.CSPolyline {
	if len(curves) == 0 {
		return nil
	}
	var result []curve.CSPolyline
	run := []curve.XMonotoneCurve{curves[0]}
	for i := 1; i < len(curves); i++ {
		prev := run[len(run)-1]
		if geom.Distance(prev.Target(), curves[i].Source()) < 1e-6 {
			run = append(run, curves[i])
		} else {
			result = append(result, curve.NewPolyline(run))
			run = []curve.XMonotoneCurve{curves[i]}
		}
	}
	result = append(result, curve.NewPolyline(run))
	return result
}
