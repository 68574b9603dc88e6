package grid

// Reachable reports whether to can be reached from from by orthogonal
// moves over non-wall cells. It runs a flood fill, so it always terminates.
//
// Time:   O(W·H).
// Memory: O(W·H) for the seen flags and the queue.
func (g *Grid) Reachable(from, to Point) bool {
	if !g.Passable(from) || !g.Passable(to) {
		return false
	}
	seen := make([]bool, g.Len())
	queue := []int{g.Index(from)}
	seen[queue[0]] = true
	target := g.Index(to)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == target {
			return true
		}
		for _, s := range g.Neighbors(g.Point(u)) {
			vi := g.Index(s.To)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return false
}

// Region returns the row-major indices of every cell reachable from p,
// p included, in flood-fill order. It returns nil if p is not passable.
func (g *Grid) Region(p Point) []int {
	if !g.Passable(p) {
		return nil
	}
	seen := make([]bool, g.Len())
	region := []int{g.Index(p)}
	seen[region[0]] = true
	for qi := 0; qi < len(region); qi++ {
		for _, s := range g.Neighbors(g.Point(region[qi])) {
			vi := g.Index(s.To)
			if !seen[vi] {
				seen[vi] = true
				region = append(region, vi)
			}
		}
	}

	return region
}
