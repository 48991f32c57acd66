package config

import (
	"strings"
	"testing"
)

const sampleProject = `{
	"points": "points.txt",
	"cover": 2.5,
	"generalSettings": {"pointSize": 1.5, "inflectionLimit": 2, "maxBendAngle": 1.0, "maxTurnAngle": 0.5},
	"drawSettings": {"colors": ["#ff0000", "00ff00"], "whiten": 0.2},
	"partitionSettings": {"banks": true, "islands": false, "regularityDelay": true, "intersectionDelay": false, "admissibleRadiusFactor": 1.0},
	"computeDrawingSettings": {"cutoutRadiusFactor": 1.5}
}`

func TestDecodeProject(t *testing.T) {
	p, err := Decode(strings.NewReader(sampleProject))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Points != "points.txt" || p.Cover != 2.5 {
		t.Fatalf("unexpected top-level fields: %+v", p)
	}
	if len(p.DrawSettings.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(p.DrawSettings.Colors))
	}
	red := p.DrawSettings.Colors[0]
	if red.R != 255 || red.G != 0 || red.B != 0 || red.A != 255 {
		t.Fatalf("expected opaque red, got %+v", red)
	}

	gs := p.GeneralPatternSettings()
	if gs.PointRadius != 1.5 || gs.InflectionLimit != 2 {
		t.Fatalf("unexpected general settings: %+v", gs)
	}

	ps := p.PartitionEngineSettings()
	if !ps.Banks || ps.Islands || !ps.RegularityDelay {
		t.Fatalf("unexpected partition settings: %+v", ps)
	}

	cds := p.ComputeDrawingEngineSettings()
	if cds.CutoutRadiusFactor != 1.5 {
		t.Fatalf("unexpected cutout radius factor: %v", cds.CutoutRadiusFactor)
	}

	ds := p.DrawingColors()
	if len(ds.Colors) != 2 || ds.Whiten != 0.2 {
		t.Fatalf("unexpected draw settings: %+v", ds)
	}
}

func TestHexColorRejectsBadLength(t *testing.T) {
	var h HexColor
	if err := h.UnmarshalJSON([]byte(`"#fff"`)); err == nil {
		t.Fatal("expected an error for a 3-digit hex color")
	}
}
