package drawing

import (
	"math"
	"sort"

	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
)

// snapEpsilon merges endpoints and intersection points within this distance
// into a single arrangement vertex.
const snapEpsilon = 1e-6

// arcTessellation chords a circular arc into this many straight segments,
// consistent with package partition's area arithmetic.
const arcTessellation = 24

// rawSegment is one straight chord of a dilated pattern's boundary, tagged
// with the pattern it came from.
type rawSegment struct {
	p0, p1       geom.Vec2
	patternIndex int
}

// halfEdge is one directed arrangement edge.
type halfEdge struct {
	origin       int // vertex index this half-edge starts at
	twin         int
	next         int
	patternIndex int
	loop         int // index into loops, assigned during face tracing
}

type vertexRec struct {
	pos geom.Vec2
	out []int // half-edge indices with this vertex as origin
}

// arrangement is the planar subdivision built from every dilated pattern's
// boundary.
type arrangement struct {
	vertices  []vertexRec
	halfEdges []halfEdge
	loops     [][]int // each loop is a cyclic sequence of half-edge indices
}

// buildArrangement tessellates every dilated boundary into chords, splits
// them at all pairwise intersections, unifies endpoints into vertices, and
// traces faces via angular-sort next-pointers.
func buildArrangement(dilated []Dilated) *arrangement {
	var raw []rawSegment
	for _, d := range dilated {
		raw = append(raw, tessellateBoundary(d)...)
	}

	a := &arrangement{}
	a.build(raw)
	a.traceLoops()
	return a
}

func tessellateBoundary(d Dilated) []rawSegment {
	var segs []rawSegment
	for _, cu := range d.Boundary.Curves {
		if cu.Kind == curve.KindSegment {
			segs = append(segs, rawSegment{p0: cu.Source(), p1: cu.Target(), patternIndex: d.Index})
			continue
		}
		pts := tessellateArc(cu)
		for i := 0; i+1 < len(pts); i++ {
			segs = append(segs, rawSegment{p0: pts[i], p1: pts[i+1], patternIndex: d.Index})
		}
	}
	return segs
}

func tessellateArc(cu curve.XMonotoneCurve) []geom.Vec2 {
	cx, _ := cu.Circle.Center.X.Float64()
	cy, _ := cu.Circle.Center.Y.Float64()
	r2, _ := cu.Circle.R2.Float64()
	r := math.Sqrt(r2)

	src, tgt := cu.Source(), cu.Target()
	a0 := math.Atan2(src.Y-cy, src.X-cx)
	a1 := math.Atan2(tgt.Y-cy, tgt.X-cx)
	if cu.ArcOrient == curve.CW {
		for a1 > a0 {
			a1 -= 2 * math.Pi
		}
	} else {
		for a1 < a0 {
			a1 += 2 * math.Pi
		}
	}

	pts := make([]geom.Vec2, 0, arcTessellation+1)
	for i := 0; i <= arcTessellation; i++ {
		t := float64(i) / float64(arcTessellation)
		angle := a0 + (a1-a0)*t
		pts = append(pts, geom.Vec2{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)})
	}
	return pts
}

// build splits every raw chord at its intersections with every other raw
// chord, merges endpoints within snapEpsilon into shared vertices, and
// emits a pair of twin half-edges per final sub-segment.
func (a *arrangement) build(raw []rawSegment) {
	splitParams := make([][]float64, len(raw))
	for i := range raw {
		splitParams[i] = []float64{0, 1}
	}

	for i := 0; i < len(raw); i++ {
		for j := i + 1; j < len(raw); j++ {
			if _, t, u, ok := segmentIntersection(raw[i].p0, raw[i].p1, raw[j].p0, raw[j].p1); ok {
				if t > 1e-9 && t < 1-1e-9 {
					splitParams[i] = append(splitParams[i], t)
				}
				if u > 1e-9 && u < 1-1e-9 {
					splitParams[j] = append(splitParams[j], u)
				}
			}
		}
	}

	index := map[[2]int64]int{}
	vertexAt := func(p geom.Vec2) int {
		key := snapKey(p)
		if v, ok := index[key]; ok {
			return v
		}
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if v, ok := index[[2]int64{key[0] + int64(dx), key[1] + int64(dy)}]; ok {
					if geom.Distance(a.vertices[v].pos, p) < snapEpsilon {
						return v
					}
				}
			}
		}
		v := len(a.vertices)
		a.vertices = append(a.vertices, vertexRec{pos: p})
		index[key] = v
		return v
	}

	for i, seg := range raw {
		ts := append([]float64{}, splitParams[i]...)
		sort.Float64s(ts)
		for k := 0; k+1 < len(ts); k++ {
			p0 := lerp(seg.p0, seg.p1, ts[k])
			p1 := lerp(seg.p0, seg.p1, ts[k+1])
			if geom.Distance(p0, p1) < snapEpsilon {
				continue
			}
			v0 := vertexAt(p0)
			v1 := vertexAt(p1)
			if v0 == v1 {
				continue
			}
			a.addEdgePair(v0, v1, seg.patternIndex)
		}
	}
}

func snapKey(p geom.Vec2) [2]int64 {
	const scale = 1 / snapEpsilon
	return [2]int64{int64(math.Round(p.X * scale)), int64(math.Round(p.Y * scale))}
}

func lerp(a, b geom.Vec2, t float64) geom.Vec2 {
	return geom.Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

func (a *arrangement) addEdgePair(v0, v1, patternIndex int) {
	e0 := len(a.halfEdges)
	e1 := e0 + 1
	a.halfEdges = append(a.halfEdges,
		halfEdge{origin: v0, twin: e1, patternIndex: patternIndex},
		halfEdge{origin: v1, twin: e0, patternIndex: patternIndex},
	)
	a.vertices[v0].out = append(a.vertices[v0].out, e0)
	a.vertices[v1].out = append(a.vertices[v1].out, e1)
}

// segmentIntersection solves p0+t*(p1-p0) == p2+u*(p3-p2) for t,u in a
// plain float64 line-segment intersection; ok is false for parallel or
// non-crossing segments.
func segmentIntersection(p0, p1, p2, p3 geom.Vec2) (geom.Vec2, float64, float64, bool) {
	d1 := p1.Sub(p0)
	d2 := p3.Sub(p2)
	denom := d1.Cross(d2)
	if math.Abs(denom) < 1e-12 {
		return geom.Vec2{}, 0, 0, false
	}
	diff := p2.Sub(p0)
	t := diff.Cross(d2) / denom
	u := diff.Cross(d1) / denom
	if t < -1e-9 || t > 1+1e-9 || u < -1e-9 || u > 1+1e-9 {
		return geom.Vec2{}, 0, 0, false
	}
	return p0.Add(d1.Mul(t)), t, u, true
}

// traceLoops assigns next-pointers at every vertex by angular sort (a
// half-edge's next, around its face, is the outgoing half-edge at its
// target immediately clockwise from its twin) and then walks every
// half-edge exactly once into a maximal cyclic loop.
func (a *arrangement) traceLoops() {
	for _, v := range a.vertices {
		if len(v.out) == 0 {
			continue
		}
		order := append([]int{}, v.out...)
		sort.Slice(order, func(i, j int) bool {
			return angleOf(a.edgeVector(order[i])) < angleOf(a.edgeVector(order[j]))
		})
		pos := map[int]int{}
		for i, e := range order {
			pos[e] = i
		}
		// For each outgoing edge e at v, the half-edge arriving at v along
		// the same physical edge is f = twin(e). f.next is the outgoing
		// edge at v immediately clockwise from e (e itself is f's twin).
		for _, e := range v.out {
			idx := pos[e]
			prevIdx := (idx - 1 + len(order)) % len(order)
			f := a.halfEdges[e].twin
			a.halfEdges[f].next = order[prevIdx]
		}
	}

	visited := make([]bool, len(a.halfEdges))
	for start := range a.halfEdges {
		if visited[start] {
			continue
		}
		var loop []int
		e := start
		for {
			visited[e] = true
			loop = append(loop, e)
			e = a.halfEdges[e].next
			if e == start {
				break
			}
			if visited[e] {
				// Defensive: a malformed graph could cycle back into an
				// already-visited half-edge without reaching start; stop
				// rather than loop forever.
				break
			}
		}
		loopID := len(a.loops)
		a.loops = append(a.loops, loop)
		for _, he := range loop {
			a.halfEdges[he].loop = loopID
		}
	}
}

func (a *arrangement) edgeVector(he int) geom.Vec2 {
	e := a.halfEdges[he]
	return a.vertices[a.halfEdges[e.twin].origin].pos.Sub(a.vertices[e.origin].pos)
}

func angleOf(v geom.Vec2) float64 { return math.Atan2(v.Y, v.X) }

// loopVertices returns the ordered vertex positions of a loop, for area and
// point-in-polygon computations.
func (a *arrangement) loopVertices(loopID int) []geom.Vec2 {
	pts := make([]geom.Vec2, len(a.loops[loopID]))
	for i, he := range a.loops[loopID] {
		pts[i] = a.vertices[a.halfEdges[he].origin].pos
	}
	return pts
}

// signedArea is the shoelace signed area; sign distinguishes a loop that
// bounds area on its left (positive, a candidate bounded face) from one
// that bounds area on its right (negative).
func signedArea(pts []geom.Vec2) float64 {
	var total float64
	for i := range pts {
		j := (i + 1) % len(pts)
		total += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return total / 2
}

// pointInPolygon is a standard ray-casting test against a simple polygon
// given as an ordered vertex list.
func pointInPolygon(pts []geom.Vec2, p geom.Vec2) bool {
	inside := false
	n := len(pts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := pts[i], pts[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			x := pj.X + (p.Y-pj.Y)/(pi.Y-pj.Y)*(pi.X-pj.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
