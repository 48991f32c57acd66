package curve

import (
	"math/big"
	"testing"

	"github.com/tue-alga/cartocrow-sub002/geom"
)

func unitSquare() CSPolygon {
	p00 := geom.NewPoint(0, 1, 0, 1)
	p10 := geom.NewPoint(1, 1, 0, 1)
	p11 := geom.NewPoint(1, 1, 1, 1)
	p01 := geom.NewPoint(0, 1, 1, 1)
	return NewPolygon([]XMonotoneCurve{
		NewSegment(p00, p10),
		NewSegment(p10, p11),
		NewSegment(p11, p01),
		NewSegment(p01, p00),
	})
}

func TestContainsPointSquare(t *testing.T) {
	sq := unitSquare()
	if !ContainsPoint(sq, geom.Vec2{X: 0.5, Y: 0.5}) {
		t.Fatal("center should be inside")
	}
	if ContainsPoint(sq, geom.Vec2{X: 2, Y: 2}) {
		t.Fatal("far point should be outside")
	}
}

func TestAreaSquare(t *testing.T) {
	sq := unitSquare()
	if got := Area(sq); got < 0.999 || got > 1.001 {
		t.Fatalf("expected area ~1, got %v", got)
	}
}

func TestCircleToPolygonArea(t *testing.T) {
	c := geom.Circle{Center: geom.NewPoint(0, 1, 0, 1), R2: big.NewRat(4, 1)}
	poly := CircleToPolygon(c)
	if len(poly.Curves) != 2 {
		t.Fatalf("expected exactly 2 arcs, got %d", len(poly.Curves))
	}
	got := Area(poly)
	want := 4 * 3.14159265358979
	if got < 0 {
		got = -got
	}
	if diff := got - want; diff > 0.01 || diff < -0.01 {
		t.Fatalf("expected area ~%v, got %v", want, got)
	}
}

func TestNearestOnSegment(t *testing.T) {
	pl := CSPolyline{Curves: []XMonotoneCurve{
		NewSegment(geom.NewPoint(0, 1, 0, 1), geom.NewPoint(10, 1, 0, 1)),
	}}
	q := Nearest(pl, geom.Vec2{X: 5, Y: 3})
	if q.X != 5 || q.Y != 0 {
		t.Fatalf("expected (5,0), got %+v", q)
	}
}
