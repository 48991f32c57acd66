package geom

import (
	"fmt"
	"math/big"
)

// Point is an exact point in the plane, stored as a pair of rationals.
// Points are immutable once constructed; methods never mutate the
// receiver's coordinates.
type Point struct {
	X, Y *big.Rat
}

// NewPoint builds a Point from int64 numerator pairs, a convenience for
// tests and for loading already-rationalized input coordinates.
func NewPoint(xn, xd, yn, yd int64) Point {
	return Point{X: big.NewRat(xn, xd), Y: big.NewRat(yn, yd)}
}

// PointFromFloat rationalizes a float64 pair exactly (no rounding beyond
// what float64 already performs); used when loading the floating-point
// points file described in the input format.
func PointFromFloat(x, y float64) Point {
	return Point{X: new(big.Rat).SetFloat64(x), Y: new(big.Rat).SetFloat64(y)}
}

// Inexact converts the point to the double-precision domain.
func (p Point) Inexact() Vec2 {
	x, _ := p.X.Float64()
	y, _ := p.Y.Float64()
	return Vec2{X: x, Y: y}
}

// Eq reports whether two exact points are identical.
func (p Point) Eq(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X.RatString(), p.Y.RatString())
}

// SquaredDistance returns the exact squared Euclidean distance between two
// points.
func SquaredDistance(p, q Point) *big.Rat {
	dx := new(big.Rat).Sub(p.X, q.X)
	dy := new(big.Rat).Sub(p.Y, q.Y)
	dx.Mul(dx, dx)
	dy.Mul(dy, dy)
	return dx.Add(dx, dy)
}

// Midpoint returns the exact midpoint of p and q.
func Midpoint(p, q Point) Point {
	x := new(big.Rat).Add(p.X, q.X)
	x.Quo(x, big.NewRat(2, 1))
	y := new(big.Rat).Add(p.Y, q.Y)
	y.Quo(y, big.NewRat(2, 1))
	return Point{X: x, Y: y}
}

// Orientation is the sign of the cross product (b-a) x (c-a): +1 if a,b,c
// turn counterclockwise, -1 if clockwise, 0 if collinear. It never fails:
// every triple of exact points has a well-defined orientation.
func Orientation(a, b, c Point) int {
	abx := new(big.Rat).Sub(b.X, a.X)
	aby := new(big.Rat).Sub(b.Y, a.Y)
	acx := new(big.Rat).Sub(c.X, a.X)
	acy := new(big.Rat).Sub(c.Y, a.Y)

	left := new(big.Rat).Mul(abx, acy)
	right := new(big.Rat).Mul(aby, acx)
	cross := left.Sub(left, right)
	return cross.Sign()
}

// Collinear reports whether three points lie on a common line.
func Collinear(a, b, c Point) bool {
	return Orientation(a, b, c) == 0
}
