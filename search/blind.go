package search

import (
	"github.com/katalvlaran/gridnav/agent"
	"github.com/katalvlaran/gridnav/grid"
)

// BFS runs breadth-first search from the agent's cell.
//
// The frontier is a FIFO queue; neighbors are enqueued in Up, Left, Down,
// Right order, a cell is counted and marked visited when first seen, and
// the goal test happens on dequeue. The path found is shortest in steps;
// with jumping enabled every jump is one step whatever its cost.
//
// In all-mode, reaching a goal restarts the frontier from that goal.
func BFS(a *agent.Agent, opts ...Option) (*Result, error) {
	return walk("bfs", a, false, opts)
}

// DFS runs depth-first search from the agent's cell.
//
// The frontier is a LIFO stack; neighbors are pushed in reverse order so
// that they pop in Up, Left, Down, Right order. The first path found is
// returned, whatever its length.
func DFS(a *agent.Agent, opts ...Option) (*Result, error) {
	return walk("dfs", a, true, opts)
}

// walk is the shared frontier loop of BFS (lifo=false) and DFS (lifo=true).
func walk(name string, a *agent.Agent, lifo bool, opts []Option) (*Result, error) {
	r, release, err := begin(name, a, opts)
	if err != nil {
		return nil, err
	}
	defer release()

	if r.startIsGoal() {
		return r.finish(), nil
	}

	g := r.grid
	start := a.Cell()
	frontier := []*grid.Cell{start}
	visited := newCellSet(g.Size())
	visited.add(g.Index(start))

	for len(frontier) > 0 {
		if err := r.cancelled(); err != nil {
			return nil, err
		}

		var cur *grid.Cell
		if lifo {
			cur = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
		} else {
			cur = frontier[0]
			frontier = frontier[1:]
		}

		if r.isPending(cur) {
			r.reach(cur, a.TracePath(cur, true))
			if r.done() {
				return r.finish(), nil
			}
			// Restart from the goal just reached.
			frontier = append(frontier[:0], cur)
			visited.clear()
			visited.add(g.Index(cur))
			g.SetParent(cur, nil)
			continue
		}

		neighbors := g.Neighbors(cur, a.CanJump())
		for k := range neighbors {
			n := neighbors[k]
			if lifo {
				n = neighbors[len(neighbors)-1-k]
			}
			i := g.Index(n)
			if visited.has(i) {
				continue
			}
			visited.add(i)
			r.visit(n)
			g.SetParent(n, cur)
			frontier = append(frontier, n)
		}
	}

	return r.finish(), nil
}
