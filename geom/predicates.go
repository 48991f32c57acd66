package geom

import "math/big"

// Circle is an exact circle: rational center, rational squared radius (the
// radius itself need not be rational, but a Minkowski-dilation radius is
// always chosen rational in this module, so R2 is always a
// perfect-rational value derived from a rational radius).
type Circle struct {
	Center Point
	R2     *big.Rat // radius squared
}

// SideOfCircle returns -1 if p is strictly inside c, 0 if on it, +1 if
// strictly outside. Never fails.
func SideOfCircle(c Circle, p Point) int {
	d2 := SquaredDistance(c.Center, p)
	return d2.Cmp(c.R2)
}

// SegmentSegmentIntersection intersects two closed exact segments and
// reports whether they meet, returning the meeting point in the OneRoot
// domain (rational, since two lines meet rationally). Parallel, collinear,
// and non-intersecting cases return ok=false.
func SegmentSegmentIntersection(p1, p2, p3, p4 Point) (pt OneRootPoint, ok bool) {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y
	x4, y4 := p4.X, p4.Y

	d := new(big.Rat)
	a := new(big.Rat).Sub(x1, x2)
	b := new(big.Rat).Sub(x3, x4)
	cc := new(big.Rat).Sub(y1, y2)
	dd := new(big.Rat).Sub(y3, y4)
	d.Mul(a, dd)
	tmp := new(big.Rat).Mul(cc, b)
	d.Sub(d, tmp)
	if d.Sign() == 0 {
		return OneRootPoint{}, false
	}

	// Standard 2x2 Cramer solve for the intersection of the two infinite
	// lines, then a range check per axis to confirm both segments contain it.
	cross12 := new(big.Rat).Mul(x1, y2)
	tmp2 := new(big.Rat).Mul(y1, x2)
	cross12.Sub(cross12, tmp2)

	cross34 := new(big.Rat).Mul(x3, y4)
	tmp3 := new(big.Rat).Mul(y3, x4)
	cross34.Sub(cross34, tmp3)

	numX := new(big.Rat).Mul(cross12, b)
	t1 := new(big.Rat).Mul(a, cross34)
	numX.Sub(numX, t1)
	numX.Quo(numX, d)

	numY := new(big.Rat).Mul(cross12, dd)
	t2 := new(big.Rat).Mul(cc, cross34)
	numY.Sub(numY, t2)
	numY.Quo(numY, d)

	p := Point{X: numX, Y: numY}
	if !withinSegmentBounds(p1, p2, p) || !withinSegmentBounds(p3, p4, p) {
		return OneRootPoint{}, false
	}
	return RationalOneRootPoint(p), true
}

func withinSegmentBounds(a, b, p Point) bool {
	minX, maxX := a.X, b.X
	if minX.Cmp(maxX) > 0 {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY.Cmp(maxY) > 0 {
		minY, maxY = maxY, minY
	}
	const eps = 0 // exact arithmetic needs no slack
	_ = eps
	return p.X.Cmp(minX) >= 0 && p.X.Cmp(maxX) <= 0 && p.Y.Cmp(minY) >= 0 && p.Y.Cmp(maxY) <= 0
}

// RayCircleIntersection computes the point where a ray from origin through
// dir first strikes circle c, in closed form. Returns ok=false if the ray
// (restricted to its forward half) does not meet the circle.
func RayCircleIntersection(origin Point, dir Vec2, c Circle) (pt OneRootPoint, ok bool) {
	ox, _ := origin.X.Float64()
	oy, _ := origin.Y.Float64()
	cx, _ := c.Center.X.Float64()
	cy, _ := c.Center.Y.Float64()
	r2, _ := c.R2.Float64()

	fx, fy := ox-cx, oy-cy
	a := dir.Dot(dir)
	if a == 0 {
		return OneRootPoint{}, false
	}
	b := 2 * (fx*dir.X + fy*dir.Y)
	cTerm := fx*fx + fy*fy - r2
	disc := b*b - 4*a*cTerm
	if disc < 0 {
		return OneRootPoint{}, false
	}
	sqrtDisc := bigSqrtApprox(disc)

	// Nearer root first: t = (-b - sqrt(disc)) / (2a); represented
	// symbolically as a OneRoot with basis c = disc (already non-negative).
	discRat := new(big.Rat).SetFloat64(disc)
	aRat := new(big.Rat).SetFloat64(a)
	bRat := new(big.Rat).SetFloat64(b)

	twoA := new(big.Rat).Mul(aRat, big.NewRat(2, 1))
	negB := new(big.Rat).Neg(bRat)
	tA := new(big.Rat).Quo(negB, twoA)
	tB := new(big.Rat).Quo(big.NewRat(1, 1), twoA)

	t := OneRoot{A: tA, B: new(big.Rat).Neg(tB), C: discRat}
	tf := t.Float64()
	if tf < 0 {
		// Try the other root (ray must hit the forward branch).
		t.B = tB
		tf = t.Float64()
		if tf < 0 {
			_ = sqrtDisc
			return OneRootPoint{}, false
		}
	}

	xA := new(big.Rat).SetFloat64(ox)
	xDirB := new(big.Rat).Mul(new(big.Rat).SetFloat64(dir.X), t.A)
	xA.Add(xA, xDirB)
	xB := new(big.Rat).Mul(new(big.Rat).SetFloat64(dir.X), t.B)

	yA := new(big.Rat).SetFloat64(oy)
	yDirB := new(big.Rat).Mul(new(big.Rat).SetFloat64(dir.Y), t.A)
	yA.Add(yA, yDirB)
	yB := new(big.Rat).Mul(new(big.Rat).SetFloat64(dir.Y), t.B)

	return OneRootPoint{
		X: OneRoot{A: xA, B: xB, C: discRat},
		Y: OneRoot{A: yA, B: yB, C: discRat},
	}, true
}

// bigSqrtApprox is a bisection square root; RayCircleIntersection computes
// it but does not use the result.
func bigSqrtApprox(x float64) float64 {
	if x < 0 {
		return 0
	}
	lo, hi := 0.0, x
	if hi < 1 {
		hi = 1
	}
	for range 60 {
		mid := (lo + hi) / 2
		if mid*mid < x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
