package gridgraph

// Regions labels every cell with the id of its 4-connected free region.
// Obstacle cells get -1; free regions are numbered 0,1,2… in row-major order
// of their first cell. The returned slice is indexed row-major and the second
// value is the number of regions.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for labels and the queue.
func (g *Grid) Regions() (labels []int, count int) {
	total := g.Cells()
	labels = make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	queue := make([]int, 0, total)

	for i0 := 0; i0 < total; i0++ {
		if g.blocked[i0] || labels[i0] >= 0 {
			continue
		}
		// BFS flood from i0
		labels[i0] = count
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, m := range Moves {
				dx, dy := m.Delta()
				vx, vy := ux+dx, uy+dy
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.index(vx, vy)
				if g.blocked[vi] || labels[vi] >= 0 {
					continue
				}
				labels[vi] = count
				queue = append(queue, vi)
			}
		}
		count++
	}
	return labels, count
}

// Connected reports whether a and b are passable cells of the same region.
// Complexity: O(W·H) worst case; the flood stops as soon as b is reached.
func (g *Grid) Connected(a, b Point) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	if a == b {
		return true
	}
	src, dst := g.Index(a), g.Index(b)
	seen := make([]bool, g.Cells())
	seen[src] = true
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := g.Coordinate(queue[qi])
		for _, m := range Moves {
			dx, dy := m.Delta()
			vx, vy := ux+dx, uy+dy
			if !g.InBounds(vx, vy) {
				continue
			}
			vi := g.index(vx, vy)
			if g.blocked[vi] || seen[vi] {
				continue
			}
			if vi == dst {
				return true
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}
	return false
}
