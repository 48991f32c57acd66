package partition

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"

	"github.com/tue-alga/cartocrow-sub002/curve"
)

// arcTessellation is the number of chords used to flatten a circular arc for
// the area arithmetic intersectionDelay needs; the dilation radius is fixed
// and small relative to the point spacings this engine deals with, so a
// coarse tessellation is accurate enough for an area difference.
const arcTessellation = 24

// flatten approximates a dilated pattern's circle-segment boundary as a
// straight polygon contour, letting the general polygon-set boolean engine
// (github.com/akavel/polyclip-go) compute the intersection area that
// intersectionDelay needs without building a full circle-segment
// arrangement for what is ultimately just a scalar area.
func flatten(poly curve.CSPolygon) polyclip.Contour {
	var c polyclip.Contour
	for _, cu := range poly.Curves {
		if cu.Kind == curve.KindSegment {
			p := cu.Source()
			c = append(c, polyclip.Point{X: p.X, Y: p.Y})
			continue
		}
		c = append(c, tessellateArc(cu)...)
	}
	return c
}

func tessellateArc(cu curve.XMonotoneCurve) []polyclip.Point {
	cx, _ := cu.Circle.Center.X.Float64()
	cy, _ := cu.Circle.Center.Y.Float64()
	r2, _ := cu.Circle.R2.Float64()
	r := math.Sqrt(r2)

	src, tgt := cu.Source(), cu.Target()
	a0 := math.Atan2(src.Y-cy, src.X-cx)
	a1 := math.Atan2(tgt.Y-cy, tgt.X-cx)
	if cu.ArcOrient == curve.CW {
		for a1 > a0 {
			a1 -= 2 * math.Pi
		}
	} else {
		for a1 < a0 {
			a1 += 2 * math.Pi
		}
	}

	pts := make([]polyclip.Point, 0, arcTessellation)
	for i := 0; i < arcTessellation; i++ {
		t := float64(i) / float64(arcTessellation)
		a := a0 + (a1-a0)*t
		pts = append(pts, polyclip.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return pts
}

// polygonIntersectionArea returns the area of the intersection of two
// dilated circle-segment polygons.
func polygonIntersectionArea(a, b curve.CSPolygon) float64 {
	pa := polyclip.Polygon{flatten(a)}
	pb := polyclip.Polygon{flatten(b)}
	result := pa.Construct(polyclip.INTERSECTION, pb)
	var total float64
	for _, c := range result {
		total += math.Abs(c.Area())
	}
	return total
}
