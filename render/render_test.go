package render

import (
	"image/color"
	"testing"

	"seehuhn.de/go/geom/path"

	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
)

func seg(x0, y0, x1, y1 float64) curve.XMonotoneCurve {
	return curve.NewSegment(geom.PointFromFloat(x0, y0), geom.PointFromFloat(x1, y1))
}

func square() curve.CSPolygon {
	return curve.NewPolygon([]curve.XMonotoneCurve{
		seg(0, 0, 4, 0),
		seg(4, 0, 4, 4),
		seg(4, 4, 0, 4),
		seg(0, 4, 0, 0),
	})
}

func TestToPathDataClosesContour(t *testing.T) {
	d := ToPathData(square())
	if len(d.Cmds) == 0 || d.Cmds[0] != path.CmdMoveTo {
		t.Fatalf("expected path to start with MoveTo, got %v", d.Cmds)
	}
	last := d.Cmds[len(d.Cmds)-1]
	if last != path.CmdClose {
		t.Fatalf("expected path to end with Close, got %v", last)
	}
}

func TestToPathLinearPolyline(t *testing.T) {
	pl := curve.NewPolyline([]curve.XMonotoneCurve{seg(0, 0, 1, 0), seg(1, 0, 1, 1)})
	count := 0
	for range ToPath(pl) {
		count++
	}
	if count != 3 {
		t.Fatalf("expected 3 path commands (move, line, line), got %d", count)
	}
}

func TestPaintingRecordsOpsInOrder(t *testing.T) {
	pl := curve.NewPolyline([]curve.XMonotoneCurve{seg(0, 0, 1, 0)})

	var p Painting
	p.Fill(square(), color.NRGBA{R: 255, A: 255})
	p.Stroke(pl, 2, color.NRGBA{B: 255, A: 255})

	if len(p.Ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(p.Ops))
	}
	if p.Ops[0].Kind != OpFill || p.Ops[1].Kind != OpStroke {
		t.Fatalf("expected fill before stroke, got %v then %v", p.Ops[0].Kind, p.Ops[1].Kind)
	}
	if p.Ops[1].Width != 2 {
		t.Fatalf("expected stroke width 2, got %v", p.Ops[1].Width)
	}
}
