package partition

// Settings are §4.E's partition settings: which merge kinds to attempt and
// how aggressively to delay or reject them. Built via functional options,
// matching the idiom used by pattern.Settings and
// katalvlaran-lvlath/dijkstra.Options.
type Settings struct {
	Banks                  bool
	Islands                bool
	RegularityDelay        bool
	IntersectionDelay      bool
	AdmissibleRadiusFactor float64
}

// Option configures a Settings value.
type Option func(*Settings)

// WithBanks enables or disables Bank merges.
func WithBanks(b bool) Option { return func(s *Settings) { s.Banks = b } }

// WithIslands enables or disables Island merges.
func WithIslands(b bool) Option { return func(s *Settings) { s.Islands = b } }

// WithRegularityDelay enables the regularity delay (§4.E).
func WithRegularityDelay(b bool) Option { return func(s *Settings) { s.RegularityDelay = b } }

// WithIntersectionDelay enables the intersection delay (§4.E).
func WithIntersectionDelay(b bool) Option { return func(s *Settings) { s.IntersectionDelay = b } }

// WithAdmissibleRadiusFactor sets the admissibility scale for candidate
// filtering (partitionSettings.admissibleRadiusFactor).
func WithAdmissibleRadiusFactor(f float64) Option {
	return func(s *Settings) { s.AdmissibleRadiusFactor = f }
}

// DefaultSettings returns the reference implementation's defaults: both
// merge kinds enabled, neither delay enabled, admissibility scale 1.
func DefaultSettings() Settings {
	return Settings{
		Banks:                  true,
		Islands:                true,
		RegularityDelay:        false,
		IntersectionDelay:      false,
		AdmissibleRadiusFactor: 1,
	}
}

// NewSettings builds a Settings from DefaultSettings plus the given options.
func NewSettings(opts ...Option) Settings {
	s := DefaultSettings()
	for _, o := range opts {
		o(&s)
	}
	return s
}
