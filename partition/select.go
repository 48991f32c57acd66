package partition

// AtCover returns the partition recorded at the largest time no greater
// than cover*dilationRadius (§6: the project config's "cover" key). h is
// assumed sorted by Time ascending, which Run always produces.
func (h History) AtCover(cover, dilationRadius float64) Partition {
	threshold := cover * dilationRadius
	best := h[0].Partition
	for _, entry := range h {
		if entry.Time > threshold {
			break
		}
		best = entry.Partition
	}
	return best
}
