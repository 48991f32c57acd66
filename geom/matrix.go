package geom

// Matrix is a 2D affine transform [a b c d e f] mapping (x,y) to
// (a*x + c*y + e, b*x + d*y + f), laid out the way
// seehuhn.de/go/geom/matrix.Matrix lays out PDF-style transforms.
type Matrix [6]float64

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// FlipY returns the transform that negates the y coordinate, used to load
// the points file's screen-coordinate convention (§6: "the y-axis is
// inverted on load").
func FlipY() Matrix { return Matrix{1, 0, 0, -1, 0, 0} }

// Apply transforms a vector by the matrix.
func (m Matrix) Apply(v Vec2) Vec2 {
	return Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// ApplyLinear applies only the linear part of m, ignoring translation.
func (m Matrix) ApplyLinear(v Vec2) Vec2 {
	return Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// Mul composes m then n (n applied after m, PDF/teacher convention).
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}
