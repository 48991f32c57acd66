package input

import (
	"errors"
	"strings"
	"testing"
)

func TestReadPointsFlipsY(t *testing.T) {
	r := strings.NewReader("0 1 2\n1 3 4\n")
	points, err := ReadPoints(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	x, _ := points[0].Position.X.Float64()
	y, _ := points[0].Position.Y.Float64()
	if x != 1 || y != -2 {
		t.Fatalf("expected (1,-2) after y-flip, got (%v,%v)", x, y)
	}
	if points[0].Category != 0 || points[1].Category != 1 {
		t.Fatalf("unexpected categories: %+v", points)
	}
}

func TestReadPointsSkipsBlankLines(t *testing.T) {
	r := strings.NewReader("0 1 2\n\n   \n1 3 4\n")
	points, err := ReadPoints(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
}

func TestReadPointsRejectsWrongFieldCount(t *testing.T) {
	r := strings.NewReader("0 1\n")
	_, err := ReadPoints(r)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestReadPointsRejectsNonNumericToken(t *testing.T) {
	r := strings.NewReader("zero 1 2\n")
	_, err := ReadPoints(r)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
