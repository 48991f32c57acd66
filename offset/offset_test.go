package offset

import (
	"testing"

	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
)

func TestOffsetPointArea(t *testing.T) {
	p := geom.NewPoint(0, 1, 0, 1)
	poly := OffsetPoint(p, 2)
	got := curve.Area(poly)
	if got < 0 {
		got = -got
	}
	want := 4 * 3.14159265358979
	if diff := got - want; diff > 0.01 || diff < -0.01 {
		t.Fatalf("expected area ~%v, got %v", want, got)
	}
}

func TestOffsetPolygonSquareContainsOriginal(t *testing.T) {
	verts := []geom.Point{
		geom.NewPoint(0, 1, 0, 1),
		geom.NewPoint(10, 1, 0, 1),
		geom.NewPoint(10, 1, 10, 1),
		geom.NewPoint(0, 1, 10, 1),
	}
	poly := OffsetPolygon(verts, 1, Epsilon)
	if !curve.ContainsPoint(poly, geom.Vec2{X: 5, Y: 5}) {
		t.Fatal("dilated square should contain its own center")
	}
	if !curve.ContainsPoint(poly, geom.Vec2{X: -0.5, Y: -0.5}) {
		t.Fatal("dilated square should extend past its corner by the radius")
	}
	if curve.ContainsPoint(poly, geom.Vec2{X: -2, Y: -2}) {
		t.Fatal("dilated square should not extend radius*2 past its corner")
	}
}

func TestOffsetSegmentIsStadium(t *testing.T) {
	p := geom.NewPoint(0, 1, 0, 1)
	q := geom.NewPoint(10, 1, 0, 1)
	poly := OffsetSegment(p, q, 1, Epsilon)
	if !curve.ContainsPoint(poly, geom.Vec2{X: 5, Y: 0}) {
		t.Fatal("stadium should contain the segment midpoint")
	}
	if !curve.ContainsPoint(poly, geom.Vec2{X: -0.9, Y: 0}) {
		t.Fatal("stadium should extend past the segment endpoint by the radius")
	}
}

func TestApproximateConvexHullSinglePoint(t *testing.T) {
	d := Disk{Center: geom.NewPoint(0, 1, 0, 1), Radius: 3}
	poly := ApproximateConvexHull([]Disk{d}, Epsilon)
	if !curve.ContainsPoint(poly, geom.Vec2{X: 0, Y: 0}) {
		t.Fatal("expected hull of a single disk to contain its center")
	}
}
