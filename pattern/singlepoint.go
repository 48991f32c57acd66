package pattern

// SinglePoint is the pattern variant wrapping exactly one categorical
// point (§3/§4.D). Its contour is a degenerate polygon of that point and
// its cover radius is 0.
type SinglePoint struct {
	point CategoricalPoint
}

// NewSinglePoint constructs a SinglePoint pattern.
func NewSinglePoint(p CategoricalPoint) *SinglePoint {
	return &SinglePoint{point: p}
}

func (s *SinglePoint) Category() int { return s.point.Category }

func (s *SinglePoint) Points() []CategoricalPoint { return []CategoricalPoint{s.point} }

func (s *SinglePoint) Contour() Contour {
	return Contour{Kind: ContourDegeneratePolygon, Point: s.point.Position}
}

func (s *SinglePoint) CoverRadius() float64 { return 0 }

// IsValid is always true for SinglePoint (§4.D: "for all others, always true").
func (s *SinglePoint) IsValid(Settings) bool { return true }

var _ Pattern = (*SinglePoint)(nil)
