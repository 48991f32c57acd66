package drawing

import (
	"image/color"
	"testing"

	"github.com/tue-alga/cartocrow-sub002/geom"
	"github.com/tue-alga/cartocrow-sub002/pattern"
	"github.com/tue-alga/cartocrow-sub002/render"
)

func cp(cat int, x, y float64) pattern.CategoricalPoint {
	return pattern.CategoricalPoint{Category: cat, Position: geom.PointFromFloat(x, y)}
}

func TestSingleIsolatedPatternHasOneFaceNoOverlap(t *testing.T) {
	gs := pattern.DefaultSettings()
	part := []pattern.Pattern{pattern.NewSinglePoint(cp(0, 0, 0))}

	d := New(part, gs, DefaultSettings())
	if len(d.Faces()) != 1 {
		t.Fatalf("expected 1 face for an isolated pattern, got %d", len(d.Faces()))
	}
	f := d.Faces()[0]
	if len(f.origins) != 1 || f.origins[0] != 0 {
		t.Fatalf("expected the single face to be claimed only by pattern 0, got %v", f.origins)
	}
}

func TestTwoDistantPatternsDoNotShareAFace(t *testing.T) {
	gs := pattern.DefaultSettings()
	part := []pattern.Pattern{
		pattern.NewSinglePoint(cp(0, 0, 0)),
		pattern.NewSinglePoint(cp(1, 1000, 1000)),
	}

	d := New(part, gs, DefaultSettings())
	if len(d.Faces()) != 2 {
		t.Fatalf("expected 2 disjoint faces, got %d", len(d.Faces()))
	}
	for _, f := range d.Faces() {
		if len(f.origins) != 1 {
			t.Fatalf("expected every face to have exactly one origin, got %v", f.origins)
		}
	}
	if len(d.IntersectionComponentsPair(0, 1)) != 0 {
		t.Fatal("expected no shared components between distant patterns")
	}
}

func TestOverlappingPatternsProduceAMultiOriginFace(t *testing.T) {
	gs := pattern.NewSettings(pattern.WithPointRadius(1.0))
	part := []pattern.Pattern{
		pattern.NewSinglePoint(cp(0, 0, 0)),
		pattern.NewSinglePoint(cp(1, 1, 0)),
	}

	d := New(part, gs, DefaultSettings())

	found := false
	for _, f := range d.Faces() {
		if len(f.origins) >= 2 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected overlapping dilations to produce at least one multi-origin face")
	}

	comps := d.IntersectionComponentsPair(0, 1)
	if len(comps) == 0 {
		t.Fatal("expected a shared face-adjacency component between overlapping patterns")
	}
}

func TestComputePreferenceAlwaysZero(t *testing.T) {
	r := computePreference(0, 1, Component{Faces: []int{0}})
	if r.Preference != Zero || r.Ordering != Zero {
		t.Fatalf("expected Zero/Zero, got %v/%v", r.Preference, r.Ordering)
	}
}

func TestPaintProducesOneFillPerFaceAndOneStrokePerEdgePair(t *testing.T) {
	gs := pattern.DefaultSettings()
	part := []pattern.Pattern{pattern.NewSinglePoint(cp(0, 0, 0))}
	d := New(part, gs, DefaultSettings())

	ds := DrawSettings{Colors: []color.NRGBA{{R: 255, A: 255}}, Whiten: 0}
	painting := d.Paint(ds)

	fills, strokes := 0, 0
	for _, op := range painting.Ops {
		switch op.Kind {
		case render.OpFill:
			fills++
		case render.OpStroke:
			strokes++
		}
	}
	if fills != len(d.Faces()) {
		t.Fatalf("expected %d fills, got %d", len(d.Faces()), fills)
	}
	if want := len(d.arr.halfEdges) / 2; strokes != want {
		t.Fatalf("expected %d strokes (one per twin pair), got %d", want, strokes)
	}
}

func TestDrawSettingsColorFallsBackOnUnknownCategory(t *testing.T) {
	ds := DrawSettings{Colors: nil}
	c := ds.Color(5)
	if c.A == 0 {
		t.Fatal("expected a visible fallback color")
	}
}

func TestWhitenBlendsTowardsWhite(t *testing.T) {
	ds := DrawSettings{Whiten: 1}
	c := ds.whiten(color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Fatalf("expected full whiten to reach (255,255,255), got %+v", c)
	}
}
