package partition

// Stats accumulates OperationalDiscard counts (§7: "not an error; it is
// routine control flow"). A caller passes a non-nil *Stats to Run to get
// diagnostic counts of how many candidate merges or popped events were
// discarded and why.
type Stats struct {
	// StaleDrops counts events discarded because one of their source
	// patterns was no longer present in the current partition.
	StaleDrops int
	// IntersectionDrops counts events discarded because the result
	// pattern's contour intersected some other current pattern.
	IntersectionDrops int
	// AdmissibilityDrops counts events discarded because some extraneous
	// point violated the admissibility distance constraint.
	AdmissibilityDrops int
}
