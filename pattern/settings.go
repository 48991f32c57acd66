package pattern

import "math"

// Settings are the general settings of §4.E's input list that affect
// pattern validity: point radius and Bank turning limits. Built via
// functional options in the style of katalvlaran-lvlath/dijkstra.Options,
// so the partition and drawing engines can share the same construction
// idiom for their own settings types.
type Settings struct {
	PointRadius     float64
	InflectionLimit int
	MaxBendAngle    float64
	MaxTurnAngle    float64
}

// Option configures a Settings value.
type Option func(*Settings)

// WithPointRadius sets the drawn point radius (generalSettings.pointSize).
func WithPointRadius(r float64) Option {
	return func(s *Settings) { s.PointRadius = r }
}

// WithInflectionLimit sets the maximum number of bend flips a Bank may have.
func WithInflectionLimit(n int) Option {
	return func(s *Settings) { s.InflectionLimit = n }
}

// WithMaxBendAngle sets the maximum total turning per bend, in radians.
func WithMaxBendAngle(a float64) Option {
	return func(s *Settings) { s.MaxBendAngle = a }
}

// WithMaxTurnAngle sets the maximum per-vertex turn, in radians.
func WithMaxTurnAngle(a float64) Option {
	return func(s *Settings) { s.MaxTurnAngle = a }
}

// DefaultSettings returns the reference implementation's defaults.
func DefaultSettings() Settings {
	return Settings{
		PointRadius:     1.0,
		InflectionLimit: 1,
		MaxBendAngle:    math.Pi / 2,
		MaxTurnAngle:    math.Pi / 3,
	}
}

// NewSettings builds a Settings from DefaultSettings plus the given
// options.
func NewSettings(opts ...Option) Settings {
	s := DefaultSettings()
	for _, o := range opts {
		o(&s)
	}
	return s
}

// DilationRadius is three times the point radius, per spec.md §3/§6.
func (s Settings) DilationRadius() float64 { return 3 * s.PointRadius }
