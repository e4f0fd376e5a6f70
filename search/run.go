package search

import (
	"github.com/katalvlaran/gridnav/agent"
	"github.com/katalvlaran/gridnav/grid"
)

// run carries the state every algorithm shares: the agent, the options,
// the result being built, and the goals not reached yet.
type run struct {
	name    string
	agent   *agent.Agent
	grid    *grid.Grid
	opts    Options
	res     *Result
	pending []*grid.Cell // unreached goals, declared order
	missed  int          // goals given up as unreachable
}

// begin validates input, takes ownership of the grid, and resets it.
// The returned release function gives the grid back.
func begin(name string, a *agent.Agent, opts []Option) (*run, func(), error) {
	if a == nil {
		return nil, nil, ErrNilAgent
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}
	goals := a.Goals()
	if len(goals) == 0 {
		return nil, nil, ErrNoGoals
	}

	g := a.Grid()
	release, err := g.Acquire()
	if err != nil {
		return nil, nil, err
	}
	g.Reset()

	r := &run{
		name:    name,
		agent:   a,
		grid:    g,
		opts:    o,
		res:     &Result{Count: 1},
		pending: goals,
	}
	return r, release, nil
}

// startIsGoal handles the single-goal shortcut: when the start already is
// a goal, the result is that goal with an empty path and a count of 1.
func (r *run) startIsGoal() bool {
	start := r.agent.Cell()
	if r.opts.All || !r.isPending(start) {
		return false
	}
	r.res.Goals = []*grid.Cell{start}
	r.pending = nil
	return true
}

// isPending reports whether c is a goal not reached yet.
func (r *run) isPending(c *grid.Cell) bool {
	for _, g := range r.pending {
		if g == c {
			return true
		}
	}
	return false
}

// reach records goal c and the path segment leading to it.
func (r *run) reach(c *grid.Cell, segment agent.Path) {
	r.res.Goals = append(r.res.Goals, c)
	r.res.Path = append(r.res.Path, segment...)
	r.drop(c)
	r.opts.Logger.Debug("goal reached",
		"algorithm", r.name, "goal", c.Location(), "steps", len(segment), "count", r.res.Count)
}

// drop removes c from the pending goals.
func (r *run) drop(c *grid.Cell) {
	for i, g := range r.pending {
		if g == c {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			return
		}
	}
}

// giveUp drops c from the pending goals as unreachable.
func (r *run) giveUp(c *grid.Cell) {
	r.drop(c)
	r.missed++
	r.opts.Logger.Debug("goal unreachable", "algorithm", r.name, "goal", c.Location(), "count", r.res.Count)
}

// done reports whether the run has nothing left to look for.
func (r *run) done() bool {
	return !r.opts.All || len(r.pending) == 0
}

// visit counts a newly discovered cell.
func (r *run) visit(c *grid.Cell) {
	r.res.Count++
	r.opts.OnVisit(c)
}

// nearest returns the pending goal closest to c by Manhattan distance.
// Ties go to the goal declared first.
func (r *run) nearest(c *grid.Cell) *grid.Cell {
	var best *grid.Cell
	for _, g := range r.pending {
		if best == nil || c.Manhattan(g) < c.Manhattan(best) {
			best = g
		}
	}
	return best
}

// cancelled returns the context error, if any.
func (r *run) cancelled() error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
		return nil
	}
}

// finish tags the result from what was reached.
func (r *run) finish() *Result {
	switch {
	case len(r.res.Goals) == 0:
		r.res.Status = StatusNoGoalReachable
	case r.opts.All && (len(r.pending) > 0 || r.missed > 0):
		r.res.Status = StatusPartial
	default:
		r.res.Status = StatusSuccess
	}
	r.opts.Logger.Debug("search finished",
		"algorithm", r.name, "status", r.res.Status, "goals", len(r.res.Goals), "count", r.res.Count)
	return r.res
}

// cellSet is a visited/closed set over row-major cell indices. Clearing is
// O(1): membership is a generation stamp.
type cellSet struct {
	marks []uint32
	gen   uint32
}

func newCellSet(size int) *cellSet {
	return &cellSet{marks: make([]uint32, size), gen: 1}
}

func (s *cellSet) add(i int)      { s.marks[i] = s.gen }
func (s *cellSet) has(i int) bool { return s.marks[i] == s.gen }
func (s *cellSet) remove(i int)   { s.marks[i] = 0 }

func (s *cellSet) clear() {
	s.gen++
	if s.gen == 0 { // wrapped
		clear(s.marks)
		s.gen = 1
	}
}
