package grid

// Neighbors returns the cells reachable from c in one move, in the order
// Up, Left, Down, Right.
//
// Without jumping, this is every in-bounds unblocked adjacent cell.
// With jumping, each direction is scanned ray-wise to the border, and every
// unblocked cell on the ray is a candidate (blocked cells are jumped over).
// A ray stops early when a cell that already has a cost (G > 0) lies
// further than 2 steps away and its prospective f, JumpCost(c) + H, is
// above the running maximum. The running maximum starts at c.F() and is
// replaced by the prospective f of every costed cell that has a parent; it
// is shared across the four rays.
//
// Complexity: O(1) without jumping, O(W+H) with jumping.
func (g *Grid) Neighbors(c *Cell, canJump bool) []*Cell {
	out := make([]*Cell, 0, 4)
	maxF := c.F()

	for _, d := range Directions() {
		for dist := 1; ; dist++ {
			n := g.Neighbor(c, d, dist)
			if n == nil {
				break // border
			}
			if n.G > 0 {
				nf := AddCost(n.JumpCost(c), n.H)
				if nf > maxF && dist > 2 {
					break
				}
				if n.HasParent() {
					maxF = nf
				}
			}
			if !n.Blocked {
				out = append(out, n)
			}
			if !canJump {
				break
			}
		}
	}

	return out
}
