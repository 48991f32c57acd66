package render

import (
	"image/color"

	"github.com/tue-alga/cartocrow-sub002/curve"
)

// OpKind distinguishes a filled face from a stroked half-edge.
type OpKind int

const (
	OpFill OpKind = iota
	OpStroke
)

// PaintOp is one drawing instruction: fill a face or stroke a curve,
// mirroring the output description of a vector document with one filled
// path per bounded face and one stroked path per half-edge.
type PaintOp struct {
	Kind     OpKind
	Polygon  curve.CSPolygon  // valid when Kind == OpFill
	Polyline curve.CSPolyline // valid when Kind == OpStroke
	Color    color.NRGBA
	Width    float64 // stroke width in user-space units; valid when Kind == OpStroke
}

// Painting is an ordered list of paint operations, later operations drawn
// on top of earlier ones, matching how the arrangement's faces are filled
// before half-edges are stroked over them.
type Painting struct {
	Ops []PaintOp
}

// Fill appends a filled-face operation.
func (p *Painting) Fill(poly curve.CSPolygon, c color.NRGBA) {
	p.Ops = append(p.Ops, PaintOp{Kind: OpFill, Polygon: poly, Color: c})
}

// Stroke appends a stroked half-edge operation.
func (p *Painting) Stroke(pl curve.CSPolyline, width float64, c color.NRGBA) {
	p.Ops = append(p.Ops, PaintOp{Kind: OpStroke, Polyline: pl, Color: c, Width: width})
}
