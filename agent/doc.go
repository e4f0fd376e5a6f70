// Package agent binds a grid.Grid, a start cell, a goal set, and a jump
// capability, and converts between parent chains and direction paths.
//
// Paths are lists of Steps. A Step prints as its direction code ("up",
// "left", "down", "right"), suffixed with "_<N>" when it jumps N > 1 cells,
// e.g. "right_3". TracePath turns a parent chain into a Path; TraversePath
// replays a Path from the agent's cell and sums its jump cost, so that
//
//	cell, _, _ := a.TraversePath(a.TracePath(goal, true))
//
// lands on goal for every goal a search reached.
package agent
