package geom

import "math"

// Vec2 is a double-precision point/vector, modeled on the value-type API of
// seehuhn.de/go/geom/vec.Vec2: cheap to pass by value, used for predicates
// that don't need exactness and for anything destined for rendering.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged; callers that need a tangent must ensure non-degeneracy first.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perp returns v rotated 90 degrees counterclockwise.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

func (v Vec2) Eq(w Vec2) bool { return v.X == w.X && v.Y == w.Y }

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 { return a.Sub(b).Length() }

// MidpointV returns the inexact midpoint of a and b.
func MidpointV(a, b Vec2) Vec2 { return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2} }

// BoundingBoxOf computes the axis-aligned bounding box of a non-empty
// sequence of points.
func BoundingBoxOf(pts []Vec2) Rect {
	if len(pts) == 0 {
		panic(InvariantError{Kind: "GeometryDegenerate", Msg: "bounding box of empty point set"})
	}
	r := Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, p := range pts[1:] {
		r = r.ExpandToInclude(p)
	}
	return r
}
