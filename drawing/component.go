package drawing

// Component is a maximal set of faces that are mutually reachable through
// shared arrangement edges, all sharing the same relevant set of origin
// indices (§4.F step 5).
type Component struct {
	Faces []int // indices into DilatedPatternDrawing.faces
}

// intersectionComponentsFor groups the faces whose origins satisfy keep
// into maximal face-adjacency components, where two faces are adjacent if
// one's loop boundary contains a half-edge whose twin belongs to the
// other's loop.
func (d *DilatedPatternDrawing) intersectionComponentsFor(keep func(origins []int) bool) []Component {
	var candidates []int
	faceOfLoop := map[int]int{}
	for idx, f := range d.faces {
		faceOfLoop[f.loopID] = idx
		if keep(f.origins) {
			candidates = append(candidates, idx)
		}
	}

	candidateSet := map[int]bool{}
	for _, c := range candidates {
		candidateSet[c] = true
	}

	adj := map[int][]int{}
	for _, idx := range candidates {
		f := d.faces[idx]
		for _, he := range d.arr.loops[f.loopID] {
			twin := d.arr.halfEdges[d.arr.halfEdges[he].twin]
			neighborLoop := twin.loop
			if nIdx, ok := faceOfLoop[neighborLoop]; ok && candidateSet[nIdx] && nIdx != idx {
				adj[idx] = append(adj[idx], nIdx)
			}
		}
	}

	visited := map[int]bool{}
	var comps []Component
	for _, idx := range candidates {
		if visited[idx] {
			continue
		}
		var comp Component
		stack := []int{idx}
		visited[idx] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp.Faces = append(comp.Faces, cur)
			for _, n := range adj[cur] {
				if !visited[n] {
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// IntersectionComponents returns the maximal face-adjacency components
// whose origins include pattern i.
func (d *DilatedPatternDrawing) IntersectionComponents(i int) []Component {
	return d.intersectionComponentsFor(func(origins []int) bool { return containsOrigin(origins, i) })
}

// IntersectionComponentsPair returns the maximal face-adjacency components
// whose origins include both i and j.
func (d *DilatedPatternDrawing) IntersectionComponentsPair(i, j int) []Component {
	return d.intersectionComponentsFor(func(origins []int) bool {
		return containsOrigin(origins, i) && containsOrigin(origins, j)
	})
}
