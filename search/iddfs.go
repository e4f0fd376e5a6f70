package search

import (
	"github.com/katalvlaran/gridnav/agent"
	"github.com/katalvlaran/gridnav/grid"
)

// ctxCheckEvery is how many visits IDDFS lets pass between context checks.
const ctxCheckEvery = 1024

// IDDFS runs iterative deepening depth-first search from the agent's cell.
//
// A depth-limited DFS is repeated with depth 1, 2, ... up to the grid's net
// area, each attempt starting from a visited set holding only the root.
// Cells are un-marked when they yield nothing, so they may be revisited
// along another branch or at another depth. The visit cap (WithLimit,
// DefaultLimit by default, 0 for none) bounds the visits of all attempts
// together; hitting it ends the search with StatusLimitExceeded.
func IDDFS(a *agent.Agent, opts ...Option) (*Result, error) {
	r, release, err := begin("iddfs", a, opts)
	if err != nil {
		return nil, err
	}
	defer release()

	if r.startIsGoal() {
		return r.finish(), nil
	}

	d := &deepener{
		run:     r,
		visited: newCellSet(r.grid.Size()),
		limit:   r.opts.Limit,
		jump:    a.CanJump(),
	}
	root := a.Cell()
	maxDepth := r.grid.NetArea()

	for len(r.pending) > 0 && !d.stopped() {
		found := false
		for depth := 1; depth <= maxDepth; depth++ {
			if d.err = r.cancelled(); d.err != nil {
				break
			}
			d.visited.clear()
			d.visited.add(r.grid.Index(root))

			goal, ok := d.dls(root, depth)
			if ok {
				r.reach(goal, a.TracePath(goal, true))
				if r.done() {
					return r.finish(), nil
				}
				root = goal
				root.Reset()
				found = true
				break
			}
			if d.stopped() {
				break
			}
		}
		if !found {
			break
		}
	}

	if d.err != nil {
		return nil, d.err
	}
	res := r.finish()
	if d.capped() && res.Status != StatusSuccess {
		res.Status = StatusLimitExceeded
	}
	return res, nil
}

// deepener holds the mutable state of the depth-limited searches.
type deepener struct {
	*run
	visited *cellSet
	limit   int
	jump    bool
	err     error // context error seen during recursion
}

// capped reports whether the visit cap is reached.
func (d *deepener) capped() bool {
	return d.limit > 0 && d.res.Count >= d.limit
}

// stopped reports whether the search must unwind: cap reached or context done.
func (d *deepener) stopped() bool {
	if d.capped() || d.err != nil {
		return true
	}
	if d.res.Count%ctxCheckEvery == 0 {
		d.err = d.cancelled()
	}
	return d.err != nil
}

// dls searches at most depth moves below cur. On success every cell of the
// branch gets its parent set while the recursion unwinds.
func (d *deepener) dls(cur *grid.Cell, depth int) (*grid.Cell, bool) {
	if d.isPending(cur) {
		return cur, true
	}
	if depth == 0 {
		return nil, false
	}

	g := d.grid
	for _, n := range g.Neighbors(cur, d.jump) {
		if d.stopped() {
			return nil, false
		}
		i := g.Index(n)
		if d.visited.has(i) {
			continue
		}
		d.visited.add(i)
		d.visit(n)
		if goal, ok := d.dls(n, depth-1); ok {
			g.SetParent(n, cur)
			return goal, true
		}
		d.visited.remove(i)
	}
	return nil, false
}
