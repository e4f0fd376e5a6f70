package search

import (
	"github.com/katalvlaran/gridnav/agent"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/queue"
)

// AStar runs A* from the agent's cell toward the nearest goal.
//
// The open list is an indexed min-heap ordered by f = g + h, then by h,
// then by insertion order; g is the summed jump cost and h the Manhattan
// distance to the targeted goal (the pending goal nearest to the root).
// Popping any pending goal reaches it. Improving the g of a queued cell
// is an O(log n) decrease-key.
//
// With jumping disabled the path is cost-optimal. In all-mode, reaching a
// goal resets every touched cell, reseeds the open list with the goal, and
// targets the next nearest pending goal.
func AStar(a *agent.Agent, opts ...Option) (*Result, error) {
	return bestFirst("astar", a, false, opts)
}

// Greedy runs greedy best-first search: the same loop as AStar but ordered
// by h alone (then insertion order). Costs are not tracked and a queued
// cell is never re-parented, so paths are valid but not minimal.
func Greedy(a *agent.Agent, opts ...Option) (*Result, error) {
	return bestFirst("greedy", a, true, opts)
}

// informed holds the open list, closed set, and targeting state of one
// best-first search.
type informed struct {
	*run
	greedy  bool
	open    *queue.MinHeap
	closed  *cellSet
	seq     []uint64 // insertion order per cell index
	next    uint64
	touched []int // every cell pushed since the last reset
	target  *grid.Cell
}

func bestFirst(name string, a *agent.Agent, greedy bool, opts []Option) (*Result, error) {
	r, release, err := begin(name, a, opts)
	if err != nil {
		return nil, err
	}
	defer release()

	if r.startIsGoal() {
		return r.finish(), nil
	}

	g := r.grid
	s := &informed{
		run:    r,
		greedy: greedy,
		closed: newCellSet(g.Size()),
		seq:    make([]uint64, g.Size()),
	}
	s.open = queue.New(g.Size(), s.less)

	s.seed(a.Cell())
	for s.open.Len() > 0 {
		if err := r.cancelled(); err != nil {
			return nil, err
		}

		cur := g.ByIndex(s.open.Pop())
		s.closed.add(g.Index(cur))

		if r.isPending(cur) {
			r.reach(cur, a.TracePath(cur, true))
			if r.done() {
				return r.finish(), nil
			}
			s.restart(cur)
			continue
		}

		s.expand(cur)
	}

	return r.finish(), nil
}

// less orders cell indices: A* by (f, h, seq), Greedy by (h, seq).
func (s *informed) less(i, j int) bool {
	a, b := s.grid.ByIndex(i), s.grid.ByIndex(j)
	if !s.greedy {
		if fa, fb := a.F(), b.F(); fa != fb {
			return fa < fb
		}
	}
	if a.H != b.H {
		return a.H < b.H
	}
	return s.seq[i] < s.seq[j]
}

// seed targets the goal nearest to root and queues root.
func (s *informed) seed(root *grid.Cell) {
	s.target = s.nearest(root)
	root.H = root.Manhattan(s.target)
	s.push(root)
}

// restart clears the search state touched since the last seed and seeds
// again from root, a goal that was just reached.
func (s *informed) restart(root *grid.Cell) {
	for _, i := range s.touched {
		s.grid.ByIndex(i).Reset()
	}
	s.touched = s.touched[:0]
	s.open.Clear()
	s.closed.clear()
	root.Reset()
	s.seed(root)
	s.opts.Logger.Debug("frontier reset", "algorithm", s.name, "root", root.Location(), "target", s.target.Location())
}

func (s *informed) push(c *grid.Cell) {
	i := s.grid.Index(c)
	s.seq[i] = s.next
	s.next++
	s.touched = append(s.touched, i)
	s.open.Push(i)
}

// expand relaxes every neighbor of cur that is not closed yet.
func (s *informed) expand(cur *grid.Cell) {
	g := s.grid
	for _, n := range g.Neighbors(cur, s.agent.CanJump()) {
		i := g.Index(n)
		if s.closed.has(i) {
			continue
		}

		if s.greedy {
			if !s.open.Contains(i) {
				s.visit(n)
				n.H = n.Manhattan(s.target)
				g.SetParent(n, cur)
				s.push(n)
			}
			continue
		}

		tentative := grid.AddCost(cur.G, cur.JumpCost(n))
		switch {
		case !s.open.Contains(i):
			s.visit(n)
			n.G = tentative
			n.H = n.Manhattan(s.target)
			g.SetParent(n, cur)
			s.push(n)
		case tentative < n.G:
			n.G = tentative
			g.SetParent(n, cur)
			s.open.Fix(i)
		}
	}
}
