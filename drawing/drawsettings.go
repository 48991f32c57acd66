package drawing

import (
	"image/color"
	"log/slog"

	"github.com/tue-alga/cartocrow-sub002/pattern"
)

// DrawSettings carries the visual parameters of §6's drawSettings config
// block: one color per input category plus a whitening factor blended into
// every fill. The stroke weights are not part of it; PointStrokeWeight and
// ContourStrokeWeight derive them from the general point size.
type DrawSettings struct {
	Colors []color.NRGBA
	Whiten float64
}

// Color returns the configured color for category, or a neutral fallback
// with a logged warning if none was configured (mirroring the reference
// implementation's own "no color specified" warning).
func (ds DrawSettings) Color(category int) color.NRGBA {
	if category < 0 || category >= len(ds.Colors) {
		slog.Warn("no color specified for category", "category", category)
		return color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	}
	return ds.Colors[category]
}

// PointStrokeWeight is the stroke width used when drawing the input points
// themselves.
func PointStrokeWeight(gs pattern.Settings) float64 { return gs.PointRadius / 2.5 }

// ContourStrokeWeight is the stroke width used for dilated-pattern contours.
func ContourStrokeWeight(gs pattern.Settings) float64 { return gs.PointRadius / 3.5 }

// whitenChannel blends a single channel towards 255 by fraction t.
func whitenChannel(v uint8, t float64) uint8 {
	if t <= 0 {
		return v
	}
	if t > 1 {
		t = 1
	}
	return uint8(float64(v) + (255-float64(v))*t)
}

// whiten blends c's RGB channels towards white by ds.Whiten, preserving A.
func (ds DrawSettings) whiten(c color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: whitenChannel(c.R, ds.Whiten),
		G: whitenChannel(c.G, ds.Whiten),
		B: whitenChannel(c.B, ds.Whiten),
		A: c.A,
	}
}

// overlapColor is drawn for faces claimed by more than one pattern with no
// resolved stacking preference (§4.F step 5): a neutral gray at partial
// opacity, since no single category's color is more correct than another.
var overlapColor = color.NRGBA{R: 160, G: 160, B: 160, A: 150}
