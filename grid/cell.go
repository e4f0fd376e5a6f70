package grid

import (
	"fmt"
	"math"
)

// noParent marks a cell without predecessor.
const noParent = -1

// MaxCost is the ceiling of every path cost. Jump costs and cost sums
// saturate at it, so long jumps on wide grids stay expensive instead of
// wrapping around.
const MaxCost = math.MaxInt / 4

// maxJumpShift is the largest d-1 for which 2^(d-1) stays below MaxCost.
const maxJumpShift = 60

// Cell is one grid position with its search state.
//
// Cells are created by New and live as long as their Grid. Two cells are
// the same cell iff their locations are equal; within one Grid there is
// exactly one *Cell per location.
type Cell struct {
	X, Y    int  // coordinates, immutable
	G       int  // cost from the search root
	H       int  // heuristic estimate to the current goal
	Blocked bool // covered by a wall, immutable after construction

	parent int // row-major index of the predecessor, noParent if none
}

// F returns G + H, the primary ordering key of informed searches.
func (c *Cell) F() int {
	return c.G + c.H
}

// Location returns the cell's coordinates.
func (c *Cell) Location() Location {
	return Location{X: c.X, Y: c.Y}
}

// Manhattan returns |dx| + |dy| between c and other.
func (c *Cell) Manhattan(other *Cell) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// JumpCost returns the cost of moving straight from c to other:
// 2^(d-1) for Manhattan distance d, so 1, 2, 4, 8, ... and 0 for d == 0.
// Distances beyond 61 cost MaxCost.
func (c *Cell) JumpCost(other *Cell) int {
	d := c.Manhattan(other)
	if d == 0 {
		return 0
	}
	if d-1 > maxJumpShift {
		return MaxCost
	}
	return 1 << (d - 1)
}

// AddCost returns a + b for non-negative costs, saturating at MaxCost.
func AddCost(a, b int) int {
	if a >= MaxCost-b {
		return MaxCost
	}
	return a + b
}

// HasParent reports whether a predecessor is recorded.
func (c *Cell) HasParent() bool {
	return c.parent != noParent
}

// Reset zeroes G and H and clears the parent. Blocked is kept.
func (c *Cell) Reset() {
	c.G, c.H = 0, 0
	c.parent = noParent
}

// String formats the cell as "<Cell (x, y)>".
func (c *Cell) String() string {
	return fmt.Sprintf("<Cell (%d, %d)>", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
