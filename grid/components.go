package grid

// Components finds all 4-connected regions of unblocked cells.
// Returns a slice of components; each component is a slice of row-major
// cell indices in BFS discovery order. Components are ordered by their
// first cell in row-major order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0 := range g.cells {
		if g.cells[i0].Blocked || seen[i0] {
			continue
		}
		comps = append(comps, g.flood(i0, seen))
	}
	return comps
}

// ComponentOf returns the cells of the region containing c, starting with c.
// A blocked cell forms no region and yields nil.
func (g *Grid) ComponentOf(c *Cell) []*Cell {
	if c.Blocked {
		return nil
	}
	seen := make([]bool, len(g.cells))
	idx := g.flood(g.Index(c), seen)
	out := make([]*Cell, len(idx))
	for i, v := range idx {
		out[i] = &g.cells[v]
	}
	return out
}

// flood collects the region of unblocked cells around i0 with a BFS over a
// slice queue, marking seen as it goes.
func (g *Grid) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	seen[i0] = true

	for qi := 0; qi < len(queue); qi++ {
		u := &g.cells[queue[qi]]
		for _, d := range Directions() {
			v := g.Neighbor(u, d, 1)
			if v == nil || v.Blocked {
				continue
			}
			vi := g.index(v.X, v.Y)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}
