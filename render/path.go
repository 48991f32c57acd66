package render

import (
	"math"

	"seehuhn.de/go/geom/path"
	geomvec "seehuhn.de/go/geom/vec"

	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
)

// maxArcSweep is the largest arc angle lowered into a single cubic Bezier;
// larger sweeps are subdivided so the kappa approximation stays accurate.
const maxArcSweep = math.Pi / 2

func toVec(v geom.Vec2) geomvec.Vec2 { return geomvec.Vec2{X: v.X, Y: v.Y} }

// ToPathData lowers a closed circle-segment polygon into a filled path.Data
// outline, one MoveTo followed by LineTo/CubeTo per curve and a trailing
// Close.
func ToPathData(poly curve.CSPolygon) *path.Data {
	d := &path.Data{}
	appendContour(d, poly.Curves)
	d.Cmds = append(d.Cmds, path.CmdClose)
	return d
}

// ToPathDataWithHoles lowers a polygon-with-holes (outer boundary plus any
// number of hole boundaries, each wound opposite the outer) into a single
// path.Data suitable for a non-zero-winding fill.
func ToPathDataWithHoles(outer curve.CSPolygon, holes []curve.CSPolygon) *path.Data {
	d := ToPathData(outer)
	for _, h := range holes {
		appendContour(d, h.Curves)
		d.Cmds = append(d.Cmds, path.CmdClose)
	}
	return d
}

func appendContour(d *path.Data, curves []curve.XMonotoneCurve) {
	if len(curves) == 0 {
		return
	}
	d.Cmds = append(d.Cmds, path.CmdMoveTo)
	d.Coords = append(d.Coords, toVec(curves[0].Source()))
	for _, c := range curves {
		appendCurve(d, c)
	}
}

func appendCurve(d *path.Data, c curve.XMonotoneCurve) {
	if c.Kind == curve.KindSegment {
		d.Cmds = append(d.Cmds, path.CmdLineTo)
		d.Coords = append(d.Coords, toVec(c.Target()))
		return
	}
	for _, seg := range arcToCubics(c) {
		d.Cmds = append(d.Cmds, path.CmdCubeTo)
		d.Coords = append(d.Coords, toVec(seg[0]), toVec(seg[1]), toVec(seg[2]))
	}
}

// ToPath builds an open path.Path iterator over a circle-segment polyline,
// the same path.Path form seehuhn.de/go/geom/path-consuming infrastructure
// (a rasterizer, a vector document writer) expects for a stroked path.
func ToPath(pl curve.CSPolyline) path.Path {
	return func(yield func(path.Command, []geomvec.Vec2) bool) {
		if len(pl.Curves) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, []geomvec.Vec2{toVec(pl.Curves[0].Source())}) {
			return
		}
		for _, c := range pl.Curves {
			if c.Kind == curve.KindSegment {
				if !yield(path.CmdLineTo, []geomvec.Vec2{toVec(c.Target())}) {
					return
				}
				continue
			}
			for _, seg := range arcToCubics(c) {
				if !yield(path.CmdCubeTo, []geomvec.Vec2{toVec(seg[0]), toVec(seg[1]), toVec(seg[2])}) {
					return
				}
			}
		}
	}
}

// arcToCubics lowers a single circular arc into a sequence of cubic Bezier
// control-point triples (c1, c2, end), each spanning at most maxArcSweep
// radians, using the standard kappa = 4/3*tan(sweep/4) approximation.
func arcToCubics(c curve.XMonotoneCurve) [][3]geom.Vec2 {
	cx, _ := c.Circle.Center.X.Float64()
	cy, _ := c.Circle.Center.Y.Float64()
	r2, _ := c.Circle.R2.Float64()
	r := math.Sqrt(r2)
	center := geom.Vec2{X: cx, Y: cy}

	src, tgt := c.Source(), c.Target()
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
	sweep := a1 - a0

	n := int(math.Ceil(math.Abs(sweep) / maxArcSweep))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	kappa := (4.0 / 3.0) * math.Tan(step/4)

	segs := make([][3]geom.Vec2, 0, n)
	a := a0
	for i := 0; i < n; i++ {
		next := a + step
		p0 := pointOnCircle(center, r, a)
		p1 := pointOnCircle(center, r, next)
		t0 := tangentOnCircle(r, a, kappa)
		t1 := tangentOnCircle(r, next, -kappa)
		segs = append(segs, [3]geom.Vec2{p0.Add(t0), p1.Add(t1), p1})
		a = next
	}
	return segs
}

func pointOnCircle(center geom.Vec2, r, angle float64) geom.Vec2 {
	return geom.Vec2{X: center.X + r*math.Cos(angle), Y: center.Y + r*math.Sin(angle)}
}

// tangentOnCircle returns kappa*r times the unit tangent at angle, used as
// the Bezier control-point offset from the on-circle endpoint.
func tangentOnCircle(r, angle, kappa float64) geom.Vec2 {
	return geom.Vec2{X: -kappa * r * math.Sin(angle), Y: kappa * r * math.Cos(angle)}
}
