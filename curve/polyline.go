package curve

import (
	"github.com/tue-alga/cartocrow-sub002/geom"
)

// CSPolyline is a finite open sequence of x-monotone curves with matching
// endpoints at each junction: curve[i]'s target equals curve[i+1]'s source
// (checked loosely, in the inexact domain, since arc endpoints may only
// agree up to the algebraic representation chosen by their constructors).
type CSPolyline struct {
	Curves []XMonotoneCurve
}

// NewPolyline validates junction continuity and returns a CSPolyline.
func NewPolyline(curves []XMonotoneCurve) CSPolyline {
	if len(curves) == 0 {
		geom.Degenerate("empty polyline")
	}
	for i := 0; i+1 < len(curves); i++ {
		if !closeEnough(curves[i].Target(), curves[i+1].Source()) {
			geom.Degenerate("non-incident polyline junction at curve %d", i)
		}
	}
	return CSPolyline{Curves: curves}
}

func closeEnough(a, b geom.Vec2) bool {
	const eps = 1e-9
	return geom.Distance(a, b) < eps
}

// Source returns the polyline's first point.
func (p CSPolyline) Source() geom.Vec2 { return p.Curves[0].Source() }

// Target returns the polyline's last point.
func (p CSPolyline) Target() geom.Vec2 { return p.Curves[len(p.Curves)-1].Target() }

// BoundingBox returns the union of the bounding boxes of all curves.
func (p CSPolyline) BoundingBox() geom.Rect {
	box := p.Curves[0].BoundingBox()
	for _, c := range p.Curves[1:] {
		cb := c.BoundingBox()
		box = box.ExpandToInclude(geom.Vec2{X: cb.LLx, Y: cb.LLy})
		box = box.ExpandToInclude(geom.Vec2{X: cb.URx, Y: cb.URy})
	}
	return box
}

// CSPolygon is a closed CSPolyline: the last curve's target coincides with
// the first curve's source. Simple (non-self-intersecting) by construction
// contract; callers that build one from untrusted data should validate
// separately.
type CSPolygon struct {
	Curves []XMonotoneCurve
}

// NewPolygon validates closure and junction continuity.
func NewPolygon(curves []XMonotoneCurve) CSPolygon {
	if len(curves) < 1 {
		geom.Degenerate("empty polygon")
	}
	for i := range curves {
		j := (i + 1) % len(curves)
		if !closeEnough(curves[i].Target(), curves[j].Source()) {
			geom.Degenerate("non-incident polygon junction at curve %d", i)
		}
	}
	return CSPolygon{Curves: curves}
}

// AsPolyline drops the closure distinction, useful for code shared between
// open and closed contours (e.g. render path iteration).
func (p CSPolygon) AsPolyline() CSPolyline { return CSPolyline{Curves: p.Curves} }

// BoundingBox returns the union of the bounding boxes of all curves.
func (p CSPolygon) BoundingBox() geom.Rect {
	return CSPolyline{Curves: p.Curves}.BoundingBox()
}

// CSPolygonSet is a general polygon set supporting boolean operations: an
// outer boundary plus zero or more hole boundaries, matching the
// "polygon-with-holes" shape needed by package boolop.
type CSPolygonSet struct {
	Outer CSPolygon
	Holes []CSPolygon
}
