package curve

import "github.com/tue-alga/cartocrow-sub002/geom"

// CommandKind is the render-path command kind, §4.B.6.
type CommandKind int

const (
	MoveTo CommandKind = iota
	LineTo
	ArcTo
)

// PathCommand is one step of a render path: a moveTo/lineTo/arcTo
// instruction in the inexact domain, ready for a renderer.
// render.ToPathData does not use these commands; it reads the polygon's
// curves directly.
type PathCommand struct {
	Kind CommandKind
	To   geom.Vec2

	// Arc-only fields.
	Center geom.Vec2
	Radius float64
	CW     bool
}

// RenderPath implements §4.B.6: an iterator of moveTo/lineTo/arcTo commands
// for a renderer. Returned as a slice rather than a channel/iterator
// function, since the whole command list is small and a slice can be
// walked more than once.
func RenderPath(poly CSPolygon) []PathCommand {
	cmds := make([]PathCommand, 0, len(poly.Curves)+1)
	cmds = append(cmds, PathCommand{Kind: MoveTo, To: poly.Curves[0].Source()})
	for _, c := range poly.Curves {
		cmds = append(cmds, curveToCommand(c))
	}
	return cmds
}

// RenderOpenPath is RenderPath's open-polyline counterpart, for contours
// that are not closed, such as those of Bank and Matching patterns.
func RenderOpenPath(pl CSPolyline) []PathCommand {
	cmds := make([]PathCommand, 0, len(pl.Curves)+1)
	cmds = append(cmds, PathCommand{Kind: MoveTo, To: pl.Curves[0].Source()})
	for _, c := range pl.Curves {
		cmds = append(cmds, curveToCommand(c))
	}
	return cmds
}

func curveToCommand(c XMonotoneCurve) PathCommand {
	if c.Kind == KindSegment {
		return PathCommand{Kind: LineTo, To: c.Target()}
	}
	cx, _ := c.Circle.Center.X.Float64()
	cy, _ := c.Circle.Center.Y.Float64()
	r2, _ := c.Circle.R2.Float64()
	return PathCommand{
		Kind:   ArcTo,
		To:     c.Target(),
		Center: geom.Vec2{X: cx, Y: cy},
		Radius: sqrtf(r2),
		CW:     c.ArcOrient == CW,
	}
}
