package partition

import (
	"math"
	"testing"

	"github.com/tue-alga/cartocrow-sub002/geom"
	"github.com/tue-alga/cartocrow-sub002/pattern"
)

func cp(cat int, x, y float64) pattern.CategoricalPoint {
	return pattern.CategoricalPoint{Category: cat, Position: geom.PointFromFloat(x, y)}
}

func allPoints(part Partition) []pattern.CategoricalPoint {
	var out []pattern.CategoricalPoint
	for _, p := range part {
		out = append(out, p.Points()...)
	}
	return out
}

// TestPartitionIsComplete implements §8 property 1: every history entry's
// patterns partition the input points exactly, with no point missing,
// duplicated, or changing category.
func TestPartitionIsComplete(t *testing.T) {
	pts := []pattern.CategoricalPoint{
		cp(0, 0, 0), cp(0, 1, 0), cp(0, 2, 0),
		cp(1, 0, 10), cp(1, 5, 10),
	}
	h := Run(pts, pattern.DefaultSettings(), DefaultSettings(), 20, nil)
	if len(h) == 0 {
		t.Fatal("expected at least the initial singleton snapshot")
	}
	for _, entry := range h {
		got := allPoints(entry.Partition)
		if len(got) != len(pts) {
			t.Fatalf("time %v: expected %d points across the partition, got %d", entry.Time, len(pts), len(got))
		}
		for _, want := range pts {
			found := false
			for _, g := range got {
				if samePoint(g, want) {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("time %v: point %+v missing from partition", entry.Time, want)
			}
		}
	}
}

// TestHistoryTimesMonotone implements §8 property 2: history times are
// non-decreasing, and the first entry is always at time zero.
func TestHistoryTimesMonotone(t *testing.T) {
	pts := []pattern.CategoricalPoint{cp(0, 0, 0), cp(0, 1, 0), cp(0, 2, 0), cp(0, 3, 0)}
	h := Run(pts, pattern.DefaultSettings(), DefaultSettings(), 10, nil)
	if h[0].Time != 0 {
		t.Fatalf("expected first history entry at time 0, got %v", h[0].Time)
	}
	for i := 1; i < len(h); i++ {
		if h[i].Time < h[i-1].Time {
			t.Fatalf("history time decreased at entry %d: %v then %v", i, h[i-1].Time, h[i].Time)
		}
	}
}

// TestMaxTimeZeroYieldsSingletons checks that a zero time budget admits no
// merges: the only history entry is the initial all-singleton partition.
func TestMaxTimeZeroYieldsSingletons(t *testing.T) {
	pts := []pattern.CategoricalPoint{cp(0, 0, 0), cp(0, 1, 0), cp(1, 10, 10)}
	h := Run(pts, pattern.DefaultSettings(), DefaultSettings(), 0, nil)
	if len(h) != 1 {
		t.Fatalf("expected exactly one history entry at maxTime=0, got %d", len(h))
	}
	if len(h[0].Partition) != len(pts) {
		t.Fatalf("expected %d singleton patterns, got %d", len(pts), len(h[0].Partition))
	}
}

// TestCollinearPointsMergeIntoOnePattern implements §8 scenario 2: four
// evenly-spaced collinear same-category points, given enough time budget,
// eventually merge into a single pattern covering all four.
func TestCollinearPointsMergeIntoOnePattern(t *testing.T) {
	pts := []pattern.CategoricalPoint{cp(0, 0, 0), cp(0, 1, 0), cp(0, 2, 0), cp(0, 3, 0)}
	h := Run(pts, pattern.DefaultSettings(), DefaultSettings(), 20, nil)
	last := h[len(h)-1].Partition
	if len(last) != 1 {
		t.Fatalf("expected the four collinear points to merge into one pattern, got %d patterns", len(last))
	}
	if len(last[0].Points()) != 4 {
		t.Fatalf("expected the merged pattern to cover all 4 points, got %d", len(last[0].Points()))
	}
}

// TestCloseDifferentCategoriesDoNotMerge checks that points of different
// categories, however close, never merge into a single pattern: category
// identity is preserved in every history entry.
func TestCloseDifferentCategoriesDoNotMerge(t *testing.T) {
	pts := []pattern.CategoricalPoint{cp(0, 0, 0), cp(1, 0.1, 0)}
	h := Run(pts, pattern.DefaultSettings(), DefaultSettings(), 50, nil)
	last := h[len(h)-1].Partition
	if len(last) != 2 {
		t.Fatalf("expected two patterns (one per category), got %d", len(last))
	}
	for _, p := range last {
		if len(p.Points()) != 1 {
			t.Fatalf("expected single-category patterns to stay singletons, got %d points", len(p.Points()))
		}
	}
}

// TestIntersectionDelayNeverShrinksTime checks that enabling the
// intersection delay never produces an event time smaller than the
// candidate's own cover radius (§4.E: delay is additive and non-negative).
func TestIntersectionDelayNeverShrinksTime(t *testing.T) {
	pts := []pattern.CategoricalPoint{
		cp(0, 0, 0), cp(0, 4, 0), cp(0, 2, 3),
	}
	gs := pattern.DefaultSettings()
	ps := NewSettings(WithIntersectionDelay(true))
	stats := &Stats{}
	h := Run(pts, gs, ps, 20, stats)
	if len(h) == 0 {
		t.Fatal("expected a non-empty history")
	}
	// commit appends the merged pattern last in each snapshot.
	for _, e := range h[1:] {
		res := e.Partition[len(e.Partition)-1]
		if e.Time < res.CoverRadius() {
			t.Fatalf("merge at time %v is earlier than its cover radius %v", e.Time, res.CoverRadius())
		}
	}
}

// TestStatsAccumulate is a smoke test that Stats counters never go
// negative and that Run accepts a nil Stats without panicking (already
// exercised by the other tests; here we just check the non-nil path
// produces non-negative counts).
func TestStatsAccumulate(t *testing.T) {
	pts := []pattern.CategoricalPoint{
		cp(0, 0, 0), cp(0, 1, 0), cp(0, 2, 0), cp(0, 100, 100),
	}
	stats := &Stats{}
	Run(pts, pattern.DefaultSettings(), DefaultSettings(), 5, stats)
	if stats.StaleDrops < 0 || stats.IntersectionDrops < 0 || stats.AdmissibilityDrops < 0 {
		t.Fatal("stats counters must never be negative")
	}
}

func TestAtCoverSelectsLargestTimeBelowThreshold(t *testing.T) {
	h := History{
		{Time: 0, Partition: Partition{pattern.NewSinglePoint(cp(0, 0, 0))}},
		{Time: 2, Partition: Partition{pattern.NewSinglePoint(cp(0, 1, 0))}},
		{Time: 5, Partition: Partition{pattern.NewSinglePoint(cp(0, 2, 0))}},
	}

	if got := h.AtCover(0, 1); got[0] != h[0].Partition[0] {
		t.Fatalf("expected the first entry at cover 0, got %v", got)
	}
	got := h.AtCover(3, 1)
	if got[0] != h[1].Partition[0] {
		t.Fatalf("expected the time=2 entry selected for cover*radius=3, got %v", got)
	}
	got = h.AtCover(10, 1)
	if got[0] != h[2].Partition[0] {
		t.Fatalf("expected the last entry selected when cover*radius exceeds every time, got %v", got)
	}
}

func TestRegularityDelayHelper(t *testing.T) {
	off := NewSettings(WithRegularityDelay(false))
	if d := regularityDelay(off, 10, 1, 2); d != 0 {
		t.Fatalf("expected zero delay when disabled, got %v", d)
	}
	on := NewSettings(WithRegularityDelay(true))
	if d := regularityDelay(on, 5, 1, 2); math.Abs(d-3) > 1e-9 {
		t.Fatalf("expected delay of 3 (5 - max(1,2)), got %v", d)
	}
	if d := regularityDelay(on, 1, 5, 2); d != 0 {
		t.Fatalf("expected zero delay for an improving merge, got %v", d)
	}
}
