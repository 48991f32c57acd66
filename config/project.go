// Package config decodes the JSON project format described in spec.md §6
// into the settings values the pattern, partition, and drawing packages
// expect.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/tue-alga/cartocrow-sub002/drawing"
	"github.com/tue-alga/cartocrow-sub002/partition"
	"github.com/tue-alga/cartocrow-sub002/pattern"
)

// HexColor decodes a 24-bit hex color string ("#rrggbb" or "rrggbb") into
// an opaque color.NRGBA.
type HexColor color.NRGBA

// UnmarshalJSON implements json.Unmarshaler for the drawSettings.colors
// list entries.
func (h *HexColor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return fmt.Errorf("config: color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("config: color %q: %w", s, err)
	}
	*h = HexColor(color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	})
	return nil
}

// GeneralSettings mirrors §6's generalSettings.* keys.
type GeneralSettings struct {
	PointSize       float64 `json:"pointSize"`
	InflectionLimit int     `json:"inflectionLimit"`
	MaxBendAngle    float64 `json:"maxBendAngle"`
	MaxTurnAngle    float64 `json:"maxTurnAngle"`
}

// DrawSettings mirrors §6's drawSettings.* keys.
type DrawSettings struct {
	Colors []HexColor `json:"colors"`
	Whiten float64    `json:"whiten"`
}

// PartitionSettings mirrors §6's partitionSettings.* keys.
type PartitionSettings struct {
	Banks                  bool    `json:"banks"`
	Islands                bool    `json:"islands"`
	RegularityDelay        bool    `json:"regularityDelay"`
	IntersectionDelay      bool    `json:"intersectionDelay"`
	AdmissibleRadiusFactor float64 `json:"admissibleRadiusFactor"`
}

// ComputeDrawingSettings mirrors §6's computeDrawingSettings.* keys.
type ComputeDrawingSettings struct {
	CutoutRadiusFactor float64 `json:"cutoutRadiusFactor"`
}

// Project is the top-level JSON object described in §6.
type Project struct {
	Points                 string                 `json:"points"`
	Cover                  float64                `json:"cover"`
	GeneralSettings        GeneralSettings        `json:"generalSettings"`
	DrawSettings           DrawSettings           `json:"drawSettings"`
	PartitionSettings      PartitionSettings      `json:"partitionSettings"`
	ComputeDrawingSettings ComputeDrawingSettings `json:"computeDrawingSettings"`
}

// Decode reads a Project from r. It does not range-check the values.
func Decode(r io.Reader) (Project, error) {
	var p Project
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Project{}, fmt.Errorf("config: decoding project: %w", err)
	}
	return p, nil
}

// GeneralPatternSettings converts the JSON generalSettings block into the
// pattern package's Settings.
func (p Project) GeneralPatternSettings() pattern.Settings {
	return pattern.NewSettings(
		pattern.WithPointRadius(p.GeneralSettings.PointSize),
		pattern.WithInflectionLimit(p.GeneralSettings.InflectionLimit),
		pattern.WithMaxBendAngle(p.GeneralSettings.MaxBendAngle),
		pattern.WithMaxTurnAngle(p.GeneralSettings.MaxTurnAngle),
	)
}

// PartitionEngineSettings converts the JSON partitionSettings block into
// the partition package's Settings.
func (p Project) PartitionEngineSettings() partition.Settings {
	return partition.NewSettings(
		partition.WithBanks(p.PartitionSettings.Banks),
		partition.WithIslands(p.PartitionSettings.Islands),
		partition.WithRegularityDelay(p.PartitionSettings.RegularityDelay),
		partition.WithIntersectionDelay(p.PartitionSettings.IntersectionDelay),
		partition.WithAdmissibleRadiusFactor(p.PartitionSettings.AdmissibleRadiusFactor),
	)
}

// ComputeDrawingEngineSettings converts the JSON computeDrawingSettings
// block into the drawing package's Settings.
func (p Project) ComputeDrawingEngineSettings() drawing.Settings {
	return drawing.NewSettings(drawing.WithCutoutRadiusFactor(p.ComputeDrawingSettings.CutoutRadiusFactor))
}

// DrawingColors converts the JSON drawSettings block into the drawing
// package's DrawSettings.
func (p Project) DrawingColors() drawing.DrawSettings {
	colors := make([]color.NRGBA, len(p.DrawSettings.Colors))
	for i, c := range p.DrawSettings.Colors {
		colors[i] = color.NRGBA(c)
	}
	return drawing.DrawSettings{Colors: colors, Whiten: p.DrawSettings.Whiten}
}
