package geom

import (
	"math/big"
	"testing"
)

func TestOrientation(t *testing.T) {
	a := NewPoint(0, 1, 0, 1)
	b := NewPoint(1, 1, 0, 1)
	c := NewPoint(0, 1, 1, 1)
	if got := Orientation(a, b, c); got != 1 {
		t.Fatalf("expected CCW (+1), got %d", got)
	}
	if got := Orientation(a, c, b); got != -1 {
		t.Fatalf("expected CW (-1), got %d", got)
	}
	d := NewPoint(2, 1, 0, 1)
	if got := Orientation(a, b, d); got != 0 {
		t.Fatalf("expected collinear (0), got %d", got)
	}
}

func TestSquaredDistance(t *testing.T) {
	a := NewPoint(0, 1, 0, 1)
	b := NewPoint(3, 1, 4, 1)
	got := SquaredDistance(a, b)
	want := big.NewRat(25, 1)
	if got.Cmp(want) != 0 {
		t.Fatalf("got %s, want %s", got.RatString(), want.RatString())
	}
}

func TestSegmentSegmentIntersection(t *testing.T) {
	p1 := NewPoint(0, 1, 0, 1)
	p2 := NewPoint(2, 1, 2, 1)
	p3 := NewPoint(0, 1, 2, 1)
	p4 := NewPoint(2, 1, 0, 1)
	pt, ok := SegmentSegmentIntersection(p1, p2, p3, p4)
	if !ok {
		t.Fatal("expected an intersection")
	}
	v := pt.Inexact()
	if v.X != 1 || v.Y != 1 {
		t.Fatalf("expected (1,1), got (%v,%v)", v.X, v.Y)
	}
}

func TestRectEnlarged(t *testing.T) {
	r := Rect{LLx: 0, LLy: 0, URx: 2, URy: 2}
	e := r.Enlarged(1)
	if e.LLx != -1 || e.URx != 3 {
		t.Fatalf("unexpected enlarged rect %+v", e)
	}
}

func TestFlipY(t *testing.T) {
	m := FlipY()
	v := m.Apply(Vec2{X: 3, Y: 4})
	if v.X != 3 || v.Y != -4 {
		t.Fatalf("expected (3,-4), got %+v", v)
	}
}
