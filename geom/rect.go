package geom

// Rect is an axis-aligned bounding box, modeled directly on
// seehuhn.de/go/geom/rect.Rect: lower-left and upper-right corners in
// device- or user-space coordinates.
type Rect struct {
	LLx, LLy, URx, URy float64
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.URx <= r.LLx || r.URy <= r.LLy }

// Contains reports whether p lies within the (closed) rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.LLx && p.X <= r.URx && p.Y >= r.LLy && p.Y <= r.URy
}

// ExpandToInclude returns the smallest rectangle containing both r and p.
func (r Rect) ExpandToInclude(p Vec2) Rect {
	if p.X < r.LLx {
		r.LLx = p.X
	}
	if p.X > r.URx {
		r.URx = p.X
	}
	if p.Y < r.LLy {
		r.LLy = p.Y
	}
	if p.Y > r.URy {
		r.URy = p.Y
	}
	return r
}

// Enlarged returns r grown by d on every side.
func (r Rect) Enlarged(d float64) Rect {
	return Rect{LLx: r.LLx - d, LLy: r.LLy - d, URx: r.URx + d, URy: r.URy + d}
}

// Corner returns one of the four corners, indexed 0=LL,1=LR,2=UR,3=UL.
func (r Rect) Corner(i int) Vec2 {
	switch i % 4 {
	case 0:
		return Vec2{r.LLx, r.LLy}
	case 1:
		return Vec2{r.URx, r.LLy}
	case 2:
		return Vec2{r.URx, r.URy}
	default:
		return Vec2{r.LLx, r.URy}
	}
}

// Overlaps reports whether two rectangles intersect.
func (r Rect) Overlaps(s Rect) bool {
	return r.LLx <= s.URx && s.LLx <= r.URx && r.LLy <= s.URy && s.LLy <= r.URy
}
