package drawing

import (
	"image/color"
	"sort"

	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
	"github.com/tue-alga/cartocrow-sub002/render"
)

// Paint builds a render.Painting from the computed faces and half-edges:
// one fill per bounded face (painted from largest to smallest so a nested
// face's fill always ends on top of its parent's, giving the same result
// as subtracting holes without needing polygon-with-holes geometry) and
// one stroke per twin pair of arrangement half-edges, colored by the
// category of the pattern they bound; the second half-edge of a pair is
// not stroked separately.
func (d *DilatedPatternDrawing) Paint(ds DrawSettings) *render.Painting {
	p := &render.Painting{}

	order := make([]int, len(d.faces))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return d.faceArea(order[i]) > d.faceArea(order[j])
	})

	for _, idx := range order {
		f := d.faces[idx]
		poly := d.facePolygon(f)
		p.Fill(poly, ds.whiten(d.faceColor(f, ds)))
	}

	seen := make([]bool, len(d.arr.halfEdges))
	width := ContourStrokeWeight(d.gs)
	for he := range d.arr.halfEdges {
		if seen[he] {
			continue
		}
		twin := d.arr.halfEdges[he].twin
		seen[he] = true
		seen[twin] = true
		pl := d.halfEdgePolyline(he)
		category := d.categoryOf(d.arr.halfEdges[he].patternIndex)
		p.Stroke(pl, width, ds.Color(category))
	}

	return p
}

func (d *DilatedPatternDrawing) faceArea(idx int) float64 {
	pts := d.arr.loopVertices(d.faces[idx].loopID)
	a := signedArea(pts)
	if a < 0 {
		a = -a
	}
	return a
}

// faceColor picks a face's fill color: the single claiming pattern's
// category color if exactly one origin is assigned, the neutral overlap
// color otherwise (since stacking preference is never resolved, see
// computePreference).
func (d *DilatedPatternDrawing) faceColor(f face, ds DrawSettings) color.NRGBA {
	if len(f.origins) == 1 {
		return ds.Color(d.categoryOf(f.origins[0]))
	}
	return overlapColor
}

func (d *DilatedPatternDrawing) categoryOf(patternIndex int) int {
	for _, dl := range d.dilated {
		if dl.Index == patternIndex {
			return dl.Category
		}
	}
	return -1
}

func (d *DilatedPatternDrawing) facePolygon(f face) curve.CSPolygon {
	pts := d.arr.loopVertices(f.loopID)
	curves := make([]curve.XMonotoneCurve, len(pts))
	for i := range pts {
		j := (i + 1) % len(pts)
		curves[i] = curve.NewSegment(geom.PointFromFloat(pts[i].X, pts[i].Y), geom.PointFromFloat(pts[j].X, pts[j].Y))
	}
	return curve.NewPolygon(curves)
}

func (d *DilatedPatternDrawing) halfEdgePolyline(he int) curve.CSPolyline {
	e := d.arr.halfEdges[he]
	twin := d.arr.halfEdges[e.twin]
	p0 := d.arr.vertices[e.origin].pos
	p1 := d.arr.vertices[twin.origin].pos
	c := curve.NewSegment(geom.PointFromFloat(p0.X, p0.Y), geom.PointFromFloat(p1.X, p1.Y))
	return curve.NewPolyline([]curve.XMonotoneCurve{c})
}
