package agent

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridnav/grid"
)

// ErrNilGrid is returned when an Agent is built without a grid.
var ErrNilGrid = errors.New("agent: grid is nil")

// Agent is a robot standing on a grid cell with a list of goal cells.
// It reads cell state to rebuild paths but never resets the grid itself.
type Agent struct {
	grid    *grid.Grid
	cell    *grid.Cell
	goals   []*grid.Cell
	canJump bool
}

// New places an agent at start with the given goals.
// Returns ErrNilGrid for a nil grid and grid.ErrInvalidLocation when start
// or any goal is outside the grid. Repeated goals are kept once, in first
// occurrence order.
func New(g *grid.Grid, start grid.Location, goals []grid.Location, canJump bool) (*Agent, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	c, err := g.At(start)
	if err != nil {
		return nil, fmt.Errorf("agent start: %w", err)
	}
	a := &Agent{grid: g, cell: c, canJump: canJump, goals: make([]*grid.Cell, 0, len(goals))}

	seen := make(map[grid.Location]bool, len(goals))
	for i, loc := range goals {
		gc, err := g.At(loc)
		if err != nil {
			return nil, fmt.Errorf("agent goal %d: %w", i, err)
		}
		if seen[loc] {
			continue
		}
		seen[loc] = true
		a.goals = append(a.goals, gc)
	}
	return a, nil
}

// Grid returns the grid the agent moves on.
func (a *Agent) Grid() *grid.Grid { return a.grid }

// Cell returns the agent's current cell.
func (a *Agent) Cell() *grid.Cell { return a.cell }

// Goals returns a copy of the goal cells in their declared order.
func (a *Agent) Goals() []*grid.Cell {
	out := make([]*grid.Cell, len(a.goals))
	copy(out, a.goals)
	return out
}

// CanJump reports whether the agent may jump over cells.
func (a *Agent) CanJump() bool { return a.canJump }

// IsGoal reports whether c is one of the agent's goals.
func (a *Agent) IsGoal(c *grid.Cell) bool {
	for _, g := range a.goals {
		if g == c {
			return true
		}
	}
	return false
}

// TracePath follows parent links from c to the chain root and returns one
// step per hop.
//
// backward=true builds the path root → c: each hop parent → cell is
// prepended. backward=false builds the path c → root: each hop
// cell → parent is appended.
// Distances are recorded only when the agent can jump.
func (a *Agent) TracePath(c *grid.Cell, backward bool) Path {
	var path Path
	for p := a.grid.Parent(c); p != nil; c, p = p, a.grid.Parent(p) {
		var s Step
		if backward {
			s.Direction = grid.DirectionBetween(p, c)
		} else {
			s.Direction = grid.DirectionBetween(c, p)
		}
		s.Distance = 1
		if a.canJump {
			s.Distance = c.Manhattan(p)
		}
		path = append(path, s)
	}
	if backward {
		reverse(path)
	}
	return path
}

// TraversePath replays path from the agent's cell and returns the cell it
// ends on with the summed jump cost.
// Returns ErrInvalidStep if a step leaves the grid.
func (a *Agent) TraversePath(path Path) (*grid.Cell, int, error) {
	cur, cost := a.cell, 0
	for i, s := range path {
		dist := s.Distance
		if dist < 1 {
			dist = 1
		}
		next := a.grid.Neighbor(cur, s.Direction, dist)
		if next == nil {
			return cur, cost, fmt.Errorf("%w: step %d %q from %v leaves the grid", ErrInvalidStep, i, s, cur.Location())
		}
		cost = grid.AddCost(cost, cur.JumpCost(next))
		cur = next
	}
	return cur, cost, nil
}

// reverse reverses p in place.
func reverse(p Path) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
