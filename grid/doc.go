// Package grid models a rectangular 2D map of cells with axis-aligned wall
// rectangles, the shared state every path search in gridnav operates on.
//
// What:
//
//   - Grid owns a dense, row-major collection of Cells indexed by (y, x).
//   - Walls are (x, y, width, height) rectangles applied once at construction.
//   - Cells carry mutable search state: G (cost so far), H (heuristic),
//     a parent handle, plus an immutable Blocked flag.
//   - Neighbors enumerates moves in the fixed order Up, Left, Down, Right,
//     optionally scanning whole rays when the agent can jump.
//   - Components reports 4-connected regions of free cells.
//
// Jumping:
//
//	A jump is a straight move over distance d > 1 costing 2^(d-1)
//	(Cell.JumpCost). With jumping enabled, Neighbors walks each ray to the
//	border and emits every free cell, except that a ray stops early past
//	distance 2 once a cell with known cost has a prospective f above the
//	running maximum f. The pruning is a tunable heuristic; distances 1 and 2
//	are never pruned, so reachability never depends on it.
//
// Ownership:
//
//	Cell state is shared and unguarded. Only one search may use a Grid at a
//	time; Acquire enforces this and returns ErrGridBusy on contention.
//
// Complexity:
//
//   - New, Reset, NetArea, Components: O(W×H).
//   - Neighbor: O(1). Neighbors: O(1) without jumping, O(W+H) with.
//
// Errors:
//
//   - ErrInvalidMapGeometry: bad dimensions or a wall outside the grid.
//   - ErrInvalidLocation: coordinates outside the grid (wraps ErrInvalidMapGeometry).
//   - ErrInvalidDirection: unknown direction code.
//   - ErrGridBusy: the grid is already owned by a running search.
package grid
