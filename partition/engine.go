package partition

import (
	"container/heap"
	"math"

	"github.com/tue-alga/cartocrow-sub002/curve"
	"github.com/tue-alga/cartocrow-sub002/geom"
	"github.com/tue-alga/cartocrow-sub002/offset"
	"github.com/tue-alga/cartocrow-sub002/pattern"
)

// admissibilityEpsilon is the ε of §4.E's admissibility filter: a point
// exactly as close to the contour as to the nearest member point is
// admissible, only strictly-closer points are rejected.
const admissibilityEpsilon = 1e-9

// Partition is an ordered sequence of shared Pattern references with
// pairwise disjoint point sets whose union equals the input point set (§3).
type Partition []pattern.Pattern

// HistoryEntry pairs a partition with the time at which it was produced.
type HistoryEntry struct {
	Time      float64
	Partition Partition
}

// History is §3's PartitionHistory: a time-monotone sequence of partitions,
// the first entry always (0, singletons).
type History []HistoryEntry

// Run executes the partition engine (§4.E) over points, bounded by maxTime.
// gs carries the general settings (point radius, Bank turning limits); ps
// carries the partition-specific settings (which merge kinds to attempt,
// which delays to apply). stats, if non-nil, accumulates OperationalDiscard
// counts for diagnostic reporting (§7).
func Run(points []pattern.CategoricalPoint, gs pattern.Settings, ps Settings, maxTime float64, stats *Stats) History {
	r := &runner{points: points, gs: gs, ps: ps, maxTime: maxTime, stats: stats}
	r.init()
	r.process()
	return r.history
}

type runner struct {
	points  []pattern.CategoricalPoint
	gs      pattern.Settings
	ps      Settings
	maxTime float64
	stats   *Stats

	current Partition
	queue   eventQueue
	history History
}

// init implements §4.E's initialization: wrap every point in a SinglePoint,
// record the (0, singletons) history entry, then enqueue one candidate
// Matching event per admissible same-category pair within 2*maxTime.
func (r *runner) init() {
	r.current = make(Partition, len(r.points))
	for i, p := range r.points {
		r.current[i] = pattern.NewSinglePoint(p)
	}
	r.history = append(r.history, snapshot(0, r.current))

	heap.Init(&r.queue)
	for i := 0; i < len(r.current); i++ {
		for j := i + 1; j < len(r.current); j++ {
			a, b := r.current[i], r.current[j]
			if a.Category() != b.Category() {
				continue
			}
			pa, pb := a.Points()[0].Position, b.Points()[0].Position
			d2, _ := geom.SquaredDistance(pa, pb).Float64()
			if d2 > squared(2*r.maxTime) {
				continue
			}
			cand := pattern.NewMatching(a.Points()[0], b.Points()[0])
			if !r.admissible(cand) {
				continue
			}
			heap.Push(&r.queue, &mergeEvent{time: cand.CoverRadius(), p1: a, p2: b, result: cand})
		}
	}
}

func snapshot(t float64, cur Partition) HistoryEntry {
	return HistoryEntry{Time: t, Partition: append(Partition(nil), cur...)}
}

// process implements §4.E's main loop.
func (r *runner) process() {
	for r.queue.Len() > 0 {
		ev := heap.Pop(&r.queue).(*mergeEvent)

		if ev.time > r.maxTime {
			break
		}

		if !ev.finalized {
			ev.time += r.intersectionDelay(ev)
			ev.finalized = true
			heap.Push(&r.queue, ev)
			continue
		}

		if !r.present(ev.p1) || !r.present(ev.p2) {
			if r.stats != nil {
				r.stats.StaleDrops++
			}
			continue
		}

		if r.intersectsOthers(ev) {
			if r.stats != nil {
				r.stats.IntersectionDrops++
			}
			continue
		}

		if !r.admissible(ev.result) {
			if r.stats != nil {
				r.stats.AdmissibilityDrops++
			}
			continue
		}

		r.commit(ev)
		r.enqueueFollowups(ev)
	}
}

func (r *runner) present(p pattern.Pattern) bool {
	for _, q := range r.current {
		if q == p {
			return true
		}
	}
	return false
}

// intersectsOthers implements §4.E main-loop step 4: the result's contour
// must not intersect any current pattern other than its two sources.
func (r *runner) intersectsOthers(ev *mergeEvent) bool {
	resultContour := ev.result.Contour()
	for _, p := range r.current {
		if p == ev.p1 || p == ev.p2 {
			continue
		}
		if contoursIntersect(p.Contour(), resultContour) {
			return true
		}
	}
	return false
}

// admissible implements the admissibility filter shared by initialization
// (§4.E step 2) and the main loop (§4.E step 5): no point outside cand's own
// member set may be both closer to cand's contour than
// admissibleRadiusFactor*dilationRadius and closer to the contour than to
// cand's nearest member point.
func (r *runner) admissible(cand pattern.Pattern) bool {
	admissibleR := r.ps.AdmissibleRadiusFactor * r.gs.DilationRadius()
	contour := cand.Contour()
	members := cand.Points()

	for _, pt := range r.points {
		if containsCatPoint(members, pt) {
			continue
		}
		pd := distanceToContour(contour, pt.Position)
		if pd >= admissibleR {
			continue
		}
		nearest := math.Inf(1)
		for _, m := range members {
			d := geom.Distance(m.Position.Inexact(), pt.Position.Inexact())
			if d < nearest {
				nearest = d
			}
		}
		if pd < nearest-admissibilityEpsilon {
			return false
		}
	}
	return true
}

// commit implements §4.E main-loop step 6: remove the two sources, insert
// the result, and append a snapshot to the history.
func (r *runner) commit(ev *mergeEvent) {
	next := make(Partition, 0, len(r.current))
	for _, p := range r.current {
		if p == ev.p1 || p == ev.p2 {
			continue
		}
		next = append(next, p)
	}
	next = append(next, ev.result)
	r.current = next
	r.history = append(r.history, snapshot(ev.time, r.current))
}

// enqueueFollowups implements §4.E main-loop step 7: for every remaining
// pattern of the result's category, enqueue Island and/or Bank candidates
// (the latter in all four concatenation orderings), each with an optional
// regularity-delay, skipping any candidate whose time exceeds maxTime.
func (r *runner) enqueueFollowups(ev *mergeEvent) {
	for _, p := range r.current {
		if p == ev.result || p.Category() != ev.result.Category() {
			continue
		}

		if r.ps.Islands {
			r.tryIsland(ev, p)
		}
		if r.ps.Banks && isBankLike(p) && isBankLike(ev.result) {
			r.tryBanks(ev, p)
		}
	}
}

func (r *runner) tryIsland(ev *mergeEvent, p pattern.Pattern) {
	if minSquaredDistance(p.Points(), ev.result.Points()) > squared(2*r.maxTime) {
		return
	}
	merged := append(append([]pattern.CategoricalPoint{}, ev.result.Points()...), p.Points()...)
	if len(merged) < 3 {
		return
	}
	island := pattern.NewIsland(merged)
	delay := regularityDelay(r.ps, island.CoverRadius(), ev.result.CoverRadius(), p.CoverRadius())
	t := island.CoverRadius() + delay
	if t > r.maxTime {
		return
	}
	heap.Push(&r.queue, &mergeEvent{time: t, p1: ev.result, p2: p, result: island})
}

func (r *runner) tryBanks(ev *mergeEvent, p pattern.Pattern) {
	for _, order := range bankConcatenations(p.Points(), ev.result.Points()) {
		if len(order) < 3 {
			continue
		}
		bank := pattern.NewBank(order)
		if !bank.IsValid(r.gs) {
			continue
		}
		delay := regularityDelay(r.ps, bank.CoverRadius(), ev.result.CoverRadius(), p.CoverRadius())
		t := bank.CoverRadius() + delay
		if t > r.maxTime {
			continue
		}
		heap.Push(&r.queue, &mergeEvent{time: t, p1: ev.result, p2: p, result: bank})
	}
}

// isBankLike mirrors the reference implementation's to_bank_or_island:
// every pattern except Island can stand in for a Bank for the purpose of
// point-sequence concatenation (a SinglePoint or Matching degenerates to a
// 1- or 2-point sequence).
func isBankLike(p pattern.Pattern) bool {
	_, isIsland := p.(*pattern.Island)
	return !isIsland
}

func bankConcatenations(a, b []pattern.CategoricalPoint) [][]pattern.CategoricalPoint {
	ra, rb := reverseCatPoints(a), reverseCatPoints(b)
	return [][]pattern.CategoricalPoint{
		concatCatPoints(a, b),
		concatCatPoints(a, rb),
		concatCatPoints(ra, rb),
		concatCatPoints(ra, b),
	}
}

func reverseCatPoints(pts []pattern.CategoricalPoint) []pattern.CategoricalPoint {
	out := make([]pattern.CategoricalPoint, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func concatCatPoints(a, b []pattern.CategoricalPoint) []pattern.CategoricalPoint {
	out := make([]pattern.CategoricalPoint, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func minSquaredDistance(a, b []pattern.CategoricalPoint) float64 {
	min := math.Inf(1)
	for _, p := range a {
		for _, q := range b {
			d2, _ := geom.SquaredDistance(p.Position, q.Position).Float64()
			if d2 < min {
				min = d2
			}
		}
	}
	return min
}

func containsCatPoint(pts []pattern.CategoricalPoint, q pattern.CategoricalPoint) bool {
	for _, p := range pts {
		if samePoint(p, q) {
			return true
		}
	}
	return false
}

func samePoint(a, b pattern.CategoricalPoint) bool {
	return a.Category == b.Category && a.Position.Eq(b.Position)
}

func squared(x float64) float64 { return x * x }

// distanceToContour returns the Euclidean distance from q to a pattern
// contour, handling the degenerate single-point case separately since it
// has no curves to measure against.
func distanceToContour(c pattern.Contour, q geom.Point) float64 {
	if c.Kind == pattern.ContourDegeneratePolygon {
		return geom.Distance(c.Point.Inexact(), q.Inexact())
	}
	return curve.DistanceToPolyline(pattern.ToCSPolyline(c), q.Inexact())
}

// contourSegments returns a pattern contour's straight edges as point pairs.
// Valid only for pre-dilation pattern contours, which are always built from
// rational line segments (dilation into arcs happens only in package
// drawing, never during partition construction).
func contourSegments(c pattern.Contour) [][2]geom.Point {
	switch c.Kind {
	case pattern.ContourDegeneratePolygon:
		return nil
	case pattern.ContourPolyline:
		pts := pattern.Vertices(c)
		segs := make([][2]geom.Point, 0, len(pts)-1)
		for i := 0; i+1 < len(pts); i++ {
			segs = append(segs, [2]geom.Point{pts[i], pts[i+1]})
		}
		return segs
	default:
		pts := pattern.Vertices(c)
		segs := make([][2]geom.Point, len(pts))
		for i := range pts {
			segs[i] = [2]geom.Point{pts[i], pts[(i+1)%len(pts)]}
		}
		return segs
	}
}

func anchorPoint(c pattern.Contour) geom.Point {
	if c.Kind == pattern.ContourDegeneratePolygon {
		return c.Point
	}
	return pattern.Vertices(c)[0]
}

// contoursIntersect tests two pre-dilation pattern contours for intersection
// (§4.E main-loop step 4's do_intersect): any crossing edge pair counts, and
// so does one contour being wholly nested inside the other polygon.
func contoursIntersect(a, b pattern.Contour) bool {
	segsA, segsB := contourSegments(a), contourSegments(b)
	for _, sa := range segsA {
		for _, sb := range segsB {
			if _, ok := geom.SegmentSegmentIntersection(sa[0], sa[1], sb[0], sb[1]); ok {
				return true
			}
		}
	}
	if a.Kind == pattern.ContourPolygon && len(segsB) > 0 && curve.ContainsPoint(a.Polygon, anchorPoint(b).Inexact()) {
		return true
	}
	if b.Kind == pattern.ContourPolygon && len(segsA) > 0 && curve.ContainsPoint(b.Polygon, anchorPoint(a).Inexact()) {
		return true
	}
	return false
}

// regularityDelay implements §4.E's regularity-delay: zero if disabled,
// otherwise how much the candidate's cover radius exceeds the largest of
// its sources' cover radii (clamped at zero, since an improving merge gets
// no delay).
func regularityDelay(ps Settings, candCover float64, sourceCovers ...float64) float64 {
	if !ps.RegularityDelay {
		return 0
	}
	maxSource := sourceCovers[0]
	for _, c := range sourceCovers[1:] {
		if c > maxSource {
			maxSource = c
		}
	}
	d := candCover - maxSource
	if d < 0 {
		return 0
	}
	return d
}

// intersectionDelay implements §4.E's intersection-delay: for every point
// not in the result, within 2*dilationRadius of the result's contour, sum
// how much more the result's dilation covers that point's disk than the two
// sources' dilations did, and set delay = sqrt(excess area / pi).
func (r *runner) intersectionDelay(ev *mergeEvent) float64 {
	if !r.ps.IntersectionDelay {
		return 0
	}
	dilation := r.gs.DilationRadius()
	resultPts := ev.result.Points()
	resultPoly := dilatePattern(ev.result, dilation)
	p1Poly := dilatePattern(ev.p1, dilation)
	p2Poly := dilatePattern(ev.p2, dilation)

	var excess float64
	for _, pt := range r.points {
		if containsCatPoint(resultPts, pt) {
			continue
		}
		if distanceToContour(ev.result.Contour(), pt.Position) >= 2*dilation {
			continue
		}
		ptPoly := offset.OffsetPoint(pt.Position, dilation)
		newArea := polygonIntersectionArea(resultPoly, ptPoly)
		oldArea := polygonIntersectionArea(p1Poly, ptPoly) + polygonIntersectionArea(p2Poly, ptPoly)
		excess += newArea - oldArea
	}
	if excess <= 0 {
		return 0
	}
	return math.Sqrt(excess / math.Pi)
}

func dilatePattern(p pattern.Pattern, radius float64) curve.CSPolygon {
	c := p.Contour()
	switch c.Kind {
	case pattern.ContourDegeneratePolygon:
		return offset.OffsetPoint(c.Point, radius)
	case pattern.ContourPolyline:
		return offset.OffsetPolyline(pattern.Vertices(c), radius, offset.Epsilon)
	default:
		return offset.OffsetPolygon(pattern.Vertices(c), radius, offset.Epsilon)
	}
}
