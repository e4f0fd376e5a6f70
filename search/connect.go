package search

import "github.com/katalvlaran/gridnav/grid"

// Connect links to back to from along the straight segment between them
// and returns the waypoints it chose, ordered from -> to.
//
// from and to must share a row or a column. Without jumping, or when no
// free cell lies strictly between them, to's parent simply becomes from.
// With jumping, the free cells strictly between them are candidates:
// starting at from, the candidate with the lowest (f, h) becomes the next
// waypoint, where g is the jump cost from the current waypoint and h the
// distance to to; only candidates past the chosen one stay in play. Each
// waypoint's parent is the previous one, and to's parent is the last.
// Since 2^(a-1) + 2^(b-1) <= 2^(a+b-1), the refined chain never costs more
// than the direct hop.
func Connect(g *grid.Grid, from, to *grid.Cell, canJump bool) []*grid.Cell {
	if from == to {
		return nil
	}
	if !canJump {
		g.SetParent(to, from)
		return nil
	}

	d := grid.DirectionBetween(from, to)
	var candidates []*grid.Cell
	for n := g.Neighbor(from, d, 1); n != nil && n != to; n = g.Neighbor(n, d, 1) {
		if !n.Blocked {
			candidates = append(candidates, n)
		}
	}

	var waypoints []*grid.Cell
	anchor := from
	for len(candidates) > 0 {
		best, bf, bh := 0, 0, 0
		for k, c := range candidates {
			h := c.Manhattan(to)
			f := grid.AddCost(anchor.JumpCost(c), h)
			if k == 0 || f < bf || (f == bf && h < bh) {
				best, bf, bh = k, f, h
			}
		}
		next := candidates[best]
		g.SetParent(next, anchor)
		waypoints = append(waypoints, next)
		anchor = next
		candidates = candidates[best+1:]
	}
	g.SetParent(to, anchor)
	return waypoints
}
