package geom

import (
	"math"
	"math/big"
)

// OneRoot represents a + b*sqrt(c) with a, b, c exact rationals and c >= 0.
// This is the degree-2 real algebraic number domain used for circle-segment
// curve endpoints (§4.A, §9 "Mixed numeric domain"): it is closed under the
// operations needed to intersect a rational line with a rational circle,
// while remaining exactly representable.
type OneRoot struct {
	A, B, C *big.Rat
}

// RationalOneRoot lifts an exact rational into the OneRoot domain (b=0).
func RationalOneRoot(a *big.Rat) OneRoot {
	return OneRoot{A: a, B: big.NewRat(0, 1), C: big.NewRat(0, 1)}
}

// IsRational reports whether the value has no irrational part.
func (v OneRoot) IsRational() bool {
	return v.B.Sign() == 0 || v.C.Sign() == 0
}

// Float64 evaluates the value in the inexact domain.
func (v OneRoot) Float64() float64 {
	a, _ := v.A.Float64()
	b, _ := v.B.Float64()
	c, _ := v.C.Float64()
	return a + b*math.Sqrt(c)
}

// OneRootPoint is a point with each coordinate in the OneRoot domain; this
// is the endpoint type for circular arcs.
type OneRootPoint struct {
	X, Y OneRoot
}

// RationalOneRootPoint lifts an exact Point into the OneRoot domain.
func RationalOneRootPoint(p Point) OneRootPoint {
	return OneRootPoint{X: RationalOneRoot(p.X), Y: RationalOneRoot(p.Y)}
}

// Inexact converts to the double-precision domain.
func (p OneRootPoint) Inexact() Vec2 {
	return Vec2{X: p.X.Float64(), Y: p.Y.Float64()}
}

// Eq reports structural equality of the algebraic representation (not
// numeric equality across different square-root bases).
func (v OneRoot) Eq(w OneRoot) bool {
	return v.A.Cmp(w.A) == 0 && v.B.Cmp(w.B) == 0 && v.C.Cmp(w.C) == 0
}
