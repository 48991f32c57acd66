package drawing

import (
	"sort"

	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
)

// face is one bounded region of the arrangement: a loop of half-edges
// enclosing positive area, minus any other loop directly nested inside it
// (its "holes" — a disjoint nested pattern dilation, or any other loop
// whose own positive area sits entirely within this one).
type face struct {
	loopID   int
	children []int // loop IDs of directly-nested loops to exclude when sampling
	sample   geom.Vec2
	origins  []int // sorted pattern indices whose dilation contains sample
}

// buildFaces filters the arrangement's loops down to bounded candidates,
// computes direct nesting, picks one interior sample per face avoiding its
// children, and tests that sample against every dilated boundary.
func buildFaces(a *arrangement, dilated []Dilated) []face {
	type candidate struct {
		loopID int
		pts    []geom.Vec2
		area   float64
	}
	var positives []candidate
	for id := range a.loops {
		pts := a.loopVertices(id)
		if len(pts) < 3 {
			continue
		}
		area := signedArea(pts)
		if area > 0 {
			positives = append(positives, candidate{loopID: id, pts: pts, area: area})
		}
	}
	sort.Slice(positives, func(i, j int) bool { return positives[i].area < positives[j].area })

	parent := make(map[int]int) // loopID -> parent loopID
	for i, c := range positives {
		best := -1
		bestArea := 0.0
		for j, other := range positives {
			if j == i || other.area <= c.area {
				continue
			}
			if !pointInPolygon(other.pts, c.pts[0]) {
				continue
			}
			if best == -1 || other.area < bestArea {
				best = other.loopID
				bestArea = other.area
			}
		}
		if best != -1 {
			parent[c.loopID] = best
		}
	}

	children := map[int][]int{}
	for loopID, p := range parent {
		children[p] = append(children[p], loopID)
	}

	var faces []face
	for _, c := range positives {
		kids := children[c.loopID]
		sample, ok := interiorSample(a, c.loopID, c.pts, kids)
		if !ok {
			continue
		}
		f := face{loopID: c.loopID, children: kids, sample: sample}
		f.origins = originsOf(dilated, sample)
		faces = append(faces, f)
	}
	return faces
}

// interiorSample tries the midpoint of each boundary edge, nudged slightly
// inward along the edge's normal, until it finds one that lies inside the
// loop's own polygon and outside every directly-nested child.
func interiorSample(a *arrangement, loopID int, pts []geom.Vec2, childLoopIDs []int) (geom.Vec2, bool) {
	childPts := make([][]geom.Vec2, len(childLoopIDs))
	for i, id := range childLoopIDs {
		childPts[i] = a.loopVertices(id)
	}

	n := len(pts)
	for i := 0; i < n; i++ {
		p0, p1 := pts[i], pts[(i+1)%n]
		mid := geom.Vec2{X: (p0.X + p1.X) / 2, Y: (p0.Y + p1.Y) / 2}
		edge := p1.Sub(p0)
		inward := geom.Vec2{X: -edge.Y, Y: edge.X}.Normalized()
		step := edge.Length() * 1e-3
		if step <= 0 {
			continue
		}
		for _, sign := range []float64{1, -1} {
			cand := mid.Add(inward.Mul(step * sign))
			if !pointInPolygon(pts, cand) {
				continue
			}
			insideChild := false
			for _, cp := range childPts {
				if pointInPolygon(cp, cand) {
					insideChild = true
					break
				}
			}
			if !insideChild {
				return cand, true
			}
		}
	}
	return geom.Vec2{}, false
}

func originsOf(dilated []Dilated, p geom.Vec2) []int {
	var origins []int
	for _, d := range dilated {
		if curve.ContainsPoint(d.Boundary, p) {
			origins = append(origins, d.Index)
		}
	}
	sort.Ints(origins)
	return origins
}

func containsOrigin(origins []int, i int) bool {
	for _, o := range origins {
		if o == i {
			return true
		}
	}
	return false
}
