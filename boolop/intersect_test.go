package boolop

import (
	"math"
	"math/big"
	"testing"

	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
)

func seg(x0, y0, x1, y1 float64) curve.XMonotoneCurve {
	return curve.NewSegment(geom.PointFromFloat(x0, y0), geom.PointFromFloat(x1, y1))
}

func unitDisk() curve.CSPolygon {
	c := geom.Circle{Center: geom.NewPoint(0, 1, 0, 1), R2: big.NewRat(1, 1)}
	return curve.CircleToPolygon(c)
}

func rectangle(x0, y0, x1, y1 float64) curve.CSPolygon {
	return curve.NewPolygon([]curve.XMonotoneCurve{
		seg(x0, y0, x1, y0),
		seg(x1, y0, x1, y1),
		seg(x1, y1, x0, y1),
		seg(x0, y1, x0, y0),
	})
}

func TestIntersectSegmentWithUnitDisk(t *testing.T) {
	pl := curve.NewPolyline([]curve.XMonotoneCurve{seg(-2, 0, 2, 0)})
	ps := curve.CSPolygonSet{Outer: unitDisk()}

	out := Intersect(pl, ps, false)
	if len(out) != 1 {
		t.Fatalf("expected exactly one intersection polyline, got %d", len(out))
	}
	src, tgt := out[0].Source(), out[0].Target()
	if math.Abs(math.Abs(src.X)-1) > 1e-3 || math.Abs(src.Y) > 1e-6 {
		t.Fatalf("expected one endpoint near (+-1,0), got %v", src)
	}
	if math.Abs(math.Abs(tgt.X)-1) > 1e-3 || math.Abs(tgt.Y) > 1e-6 {
		t.Fatalf("expected one endpoint near (+-1,0), got %v", tgt)
	}
}

func TestIntersectOverlapNeedsKeepOverlap(t *testing.T) {
	pl := curve.NewPolyline([]curve.XMonotoneCurve{seg(-2, 2, 2, 2)})
	ps := curve.CSPolygonSet{Outer: rectangle(-4, 0, 4, 2)}

	if out := Intersect(pl, ps, false); len(out) != 0 {
		t.Fatalf("expected empty result without keepOverlap, got %d polylines", len(out))
	}

	out := Intersect(pl, ps, true)
	if len(out) != 1 {
		t.Fatalf("expected one overlap polyline with keepOverlap, got %d", len(out))
	}
	if math.Abs(out[0].Source().X+2) > 1e-6 || math.Abs(out[0].Target().X-2) > 1e-6 {
		t.Fatalf("expected the full segment back, got %v to %v", out[0].Source(), out[0].Target())
	}
}

func TestDifferenceComplementsIntersect(t *testing.T) {
	pl := curve.NewPolyline([]curve.XMonotoneCurve{seg(-2, 0, 2, 0)})
	ps := curve.CSPolygonSet{Outer: unitDisk()}

	inter := Intersect(pl, ps, false)
	diff := Difference(pl, ps, false)
	if len(inter) != 1 || len(diff) != 2 {
		t.Fatalf("expected 1 intersection run and 2 difference runs (left and right of the disk), got %d and %d", len(inter), len(diff))
	}
}

func TestZigZagYieldsTwoAndOneCurveRuns(t *testing.T) {
	// The path dips into the disk with a bend at (0, 0.5) (inside), exits,
	// then crosses the disk a second time as a straight chord through the
	// origin with no vertex inside it.
	pl := curve.NewPolyline([]curve.XMonotoneCurve{
		seg(-3, -3, 0, 0.5),
		seg(0, 0.5, 3, -3),
		seg(3, -3, -3, 3),
	})
	ps := curve.CSPolygonSet{Outer: unitDisk()}

	out := Intersect(pl, ps, false)
	if len(out) != 2 {
		t.Fatalf("expected two separate intersection polylines, got %d", len(out))
	}
	if len(out[0].Curves) != 2 {
		t.Fatalf("expected the first (bend) run to have 2 curves, got %d", len(out[0].Curves))
	}
	if len(out[1].Curves) != 1 {
		t.Fatalf("expected the second (simple chord) run to have 1 curve, got %d", len(out[1].Curves))
	}
}
