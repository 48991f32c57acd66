package pattern

import (
	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
)

// ToCSPolyline converts any pattern's contour into the circle-segment
// polyline domain, so downstream arrangement code in package drawing can
// stay type-uniform regardless of which Pattern variant produced a
// contour (§4.D: "a conversion utility maps any pattern-with-polyline-or-
// polygon contour into the circle-segment domain").
func ToCSPolyline(c Contour) curve.CSPolyline {
	switch c.Kind {
	case ContourDegeneratePolygon:
		// A single point has no edges; represent it as a zero-length
		// polyline is not well-formed, so callers needing a contour to
		// dilate should special-case SinglePoint via offset.OffsetPoint
		// instead of going through this conversion.
		panic("pattern: cannot convert a degenerate point contour to a polyline")
	case ContourPolyline:
		return c.Polyline
	default:
		return c.Polygon.AsPolyline()
	}
}

// Vertices extracts the exact rational vertex sequence from a polyline or
// polygon contour, which is what package offset's dilation routines
// consume (they work on plain vertex lists, not already-built CSPolylines,
// since every pattern's contour before dilation is a straight-edge
// polyline or polygon — only dilated contours contain arcs).
func Vertices(c Contour) []geom.Point {
	switch c.Kind {
	case ContourPolyline:
		return straightVerticesOfPolyline(c.Polyline)
	case ContourPolygon:
		return straightVerticesOfPolygon(c.Polygon)
	default:
		return []geom.Point{c.Point}
	}
}

func straightVerticesOfPolyline(pl curve.CSPolyline) []geom.Point {
	pts := make([]geom.Point, 0, len(pl.Curves)+1)
	for i, cu := range pl.Curves {
		p, ok := cu.SourceExactRational()
		if !ok {
			panic("pattern: non-rational vertex in an undilated contour")
		}
		if i == 0 {
			pts = append(pts, p)
		}
		q, ok := exactTarget(cu)
		if !ok {
			panic("pattern: non-rational vertex in an undilated contour")
		}
		pts = append(pts, q)
	}
	return pts
}

func straightVerticesOfPolygon(pg curve.CSPolygon) []geom.Point {
	pts := make([]geom.Point, 0, len(pg.Curves))
	for _, cu := range pg.Curves {
		p, ok := cu.SourceExactRational()
		if !ok {
			panic("pattern: non-rational vertex in an undilated contour")
		}
		pts = append(pts, p)
	}
	return pts
}

func exactTarget(cu curve.XMonotoneCurve) (geom.Point, bool) {
	if cu.Kind == curve.KindSegment {
		return cu.SegQ, true
	}
	return geom.Point{}, false
}
