package pattern

import (
	"math"
	"testing"

	"github.com/tue-alga/cartocrow-sub002/geom"
)

func cp(cat int, x, y float64) CategoricalPoint {
	return CategoricalPoint{Category: cat, Position: geom.PointFromFloat(x, y)}
}

func TestSinglePoint(t *testing.T) {
	p := NewSinglePoint(cp(1, 3, 4))
	if p.CoverRadius() != 0 {
		t.Fatalf("expected cover radius 0, got %v", p.CoverRadius())
	}
	if !p.IsValid(DefaultSettings()) {
		t.Fatal("SinglePoint should always be valid")
	}
}

func TestMatchingCoverRadius(t *testing.T) {
	m := NewMatching(cp(0, 0, 0), cp(0, 6, 8))
	if math.Abs(m.CoverRadius()-5) > 1e-9 {
		t.Fatalf("expected cover radius 5, got %v", m.CoverRadius())
	}
}

// TestCollinearIslandIsBank implements §8 scenario 7: four collinear
// same-category points construct an Island whose contour is a Polyline,
// with cover_radius = 0.5 * inter-point spacing.
func TestCollinearIslandIsBank(t *testing.T) {
	pts := []CategoricalPoint{cp(0, 0, 0), cp(0, 1, 0), cp(0, 2, 0), cp(0, 3, 0)}
	is := NewIsland(pts)
	c := is.Contour()
	if c.Kind != ContourPolyline {
		t.Fatalf("expected a polyline contour for collinear points, got kind %v", c.Kind)
	}
	if math.Abs(is.CoverRadius()-0.5) > 1e-9 {
		t.Fatalf("expected cover radius 0.5, got %v", is.CoverRadius())
	}
}

func TestIslandConvexHullContour(t *testing.T) {
	pts := []CategoricalPoint{cp(0, 0, 0), cp(0, 10, 0), cp(0, 10, 10), cp(0, 0, 10), cp(0, 5, 5)}
	is := NewIsland(pts)
	c := is.Contour()
	if c.Kind != ContourPolygon {
		t.Fatalf("expected a polygon contour, got kind %v", c.Kind)
	}
	if len(c.Polygon.Curves) != 4 {
		t.Fatalf("expected the interior point to be excluded from the hull, got %d hull edges", len(c.Polygon.Curves))
	}
}

func TestBankValidity(t *testing.T) {
	pts := []CategoricalPoint{cp(0, 0, 0), cp(0, 1, 0), cp(0, 2, 0), cp(0, 3, 0)}
	b := NewBank(pts)
	if !b.IsValid(DefaultSettings()) {
		t.Fatal("a straight bank should always be valid")
	}
}

func TestBankRejectsExcessiveTurning(t *testing.T) {
	// A zig-zag with a sharp turn at every vertex: each vertex alternates
	// turn sign, so every single vertex is its own bend, and a small
	// inflection limit should reject it.
	pts := []CategoricalPoint{
		cp(0, 0, 0), cp(0, 1, 1), cp(0, 2, 0), cp(0, 3, 1), cp(0, 4, 0),
	}
	b := NewBank(pts)
	s := NewSettings(WithInflectionLimit(0))
	if b.IsValid(s) {
		t.Fatal("expected a zig-zag bank to violate a zero inflection limit")
	}
}
