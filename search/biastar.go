package search

import (
	"github.com/katalvlaran/gridnav/agent"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/queue"
)

// BiAStar runs bidirectional A* between the agent's cell and the nearest
// pending goal.
//
// Two A* frontiers grow at once, one from the root toward the goal and one
// from the goal toward the root, each with its own open list, closed set,
// costs, and parents. Every round pops one cell from each. A popped cell
// the other frontier has already reached is the collision:
//
//   - if the other frontier closed it, both halves end at that cell;
//   - otherwise the other frontier's parent link into it is the hop that
//     joins the halves.
//
// The start half is traced from the root to its end of the collision, the
// joining hop is refined with Connect (a long jump is split into cheaper
// waypoints), and the goal half is traced on to the goal.
//
// Collisions are only detected at pop time. A cell both frontiers have
// pushed but neither has popped yet does not end the round, so the joined
// path is not guaranteed to be the cheapest one.
//
// A goal whose frontier runs dry is given up and the next nearest pending
// goal is tried. In all-mode each reached goal becomes the next root.
func BiAStar(a *agent.Agent, opts ...Option) (*Result, error) {
	r, release, err := begin("bi_astar", a, opts)
	if err != nil {
		return nil, err
	}
	defer release()

	if r.startIsGoal() {
		return r.finish(), nil
	}

	g := r.grid
	b := &bidirectional{
		run:  r,
		jump: a.CanJump(),
		fwd:  newFrontier(g, true),
		bwd:  newFrontier(g, false),
	}

	root := a.Cell()
	for len(r.pending) > 0 {
		target := r.nearest(root)
		if target.Blocked {
			r.giveUp(target)
			continue
		}

		path, ok, err := b.meet(root, target)
		if err != nil {
			return nil, err
		}
		if !ok {
			r.giveUp(target)
			continue
		}

		r.reach(target, path)
		if r.done() {
			break
		}
		root = target
	}

	return r.finish(), nil
}

// bidirectional holds both frontiers of one bidirectional A* run.
type bidirectional struct {
	*run
	jump     bool
	fwd, bwd *frontier
}

// meet searches from root and target at once until the frontiers collide
// and returns the spliced root → target path.
func (b *bidirectional) meet(root, target *grid.Cell) (agent.Path, bool, error) {
	b.grid.Reset()
	b.fwd.seed(root, target)
	b.bwd.seed(target, root)
	if root == target {
		return nil, true, nil
	}

	for b.fwd.open.Len() > 0 && b.bwd.open.Len() > 0 {
		if err := b.cancelled(); err != nil {
			return nil, false, err
		}

		cs := b.fwd.pop()
		cg := b.bwd.pop()

		if startSide, goalSide, ok := b.collision(cs, cg); ok {
			b.opts.Logger.Debug("frontiers met",
				"algorithm", b.name, "start_side", startSide.Location(), "goal_side", goalSide.Location())
			return b.splice(startSide, goalSide), true, nil
		}

		b.expand(b.fwd, cs)
		b.expand(b.bwd, cg)
	}
	return nil, false, nil
}

// collision checks the two freshly popped cells against the opposite
// frontier and returns the start-side and goal-side ends of the joining hop.
func (b *bidirectional) collision(cs, cg *grid.Cell) (startSide, goalSide *grid.Cell, ok bool) {
	g := b.grid

	si := g.Index(cs)
	switch {
	case b.bwd.closed.has(si):
		return cs, cs, true
	case b.bwd.open.Contains(si):
		if p := b.bwd.parentOf(si); p != nil {
			return cs, p, true
		}
		return cs, cs, true
	}

	gi := g.Index(cg)
	switch {
	case b.fwd.closed.has(gi):
		return cg, cg, true
	case b.fwd.open.Contains(gi):
		if p := b.fwd.parentOf(gi); p != nil {
			return p, cg, true
		}
		return cg, cg, true
	}
	return nil, nil, false
}

// splice turns the two parent chains into one path. The start chain is
// traced first; then the goal chain is written into the cells, the joining
// hop is linked with Connect, and the rest is traced forward.
func (b *bidirectional) splice(startSide, goalSide *grid.Cell) agent.Path {
	b.fwd.writeChain(startSide)
	head := b.agent.TracePath(startSide, true)

	onChain := b.bwd.writeChain(goalSide)
	// Refining must not re-parent a cell of the goal chain, or the
	// forward trace would loop.
	refine := b.jump && !b.crosses(onChain, goalSide, startSide)
	Connect(b.grid, goalSide, startSide, refine)

	tail := b.agent.TracePath(startSide, false)
	return append(head, tail...)
}

// crosses reports whether a cell strictly between from and to is in set.
func (b *bidirectional) crosses(set *cellSet, from, to *grid.Cell) bool {
	if from == to {
		return false
	}
	g := b.grid
	d := grid.DirectionBetween(from, to)
	for n := g.Neighbor(from, d, 1); n != nil && n != to; n = g.Neighbor(n, d, 1) {
		if set.has(g.Index(n)) {
			return true
		}
	}
	return false
}

// expand relaxes the neighbors of cur within frontier f.
func (b *bidirectional) expand(f *frontier, cur *grid.Cell) {
	g := b.grid
	ci := g.Index(cur)
	for _, n := range g.Neighbors(cur, b.jump) {
		i := g.Index(n)
		if f.closed.has(i) {
			continue
		}
		tentative := grid.AddCost(f.g[ci], cur.JumpCost(n))
		switch {
		case !f.open.Contains(i):
			b.visit(n)
			f.relax(n, cur, tentative)
			f.push(i)
		case tentative < f.g[i]:
			f.relax(n, cur, tentative)
			f.open.Fix(i)
		}
	}
}

// frontier is the state of one search direction. Costs and parents are
// kept per cell index. The forward frontier also mirrors them into the
// cells so that jump pruning in grid.Neighbors sees them.
type frontier struct {
	grid    *grid.Grid
	mirror  bool
	toward  *grid.Cell // root of the opposite frontier, the heuristic target
	open    *queue.MinHeap
	closed  *cellSet
	g       []int
	parent  []int
	seq     []uint64
	next    uint64
	touched []int
}

func newFrontier(g *grid.Grid, mirror bool) *frontier {
	n := g.Size()
	f := &frontier{
		grid:   g,
		mirror: mirror,
		closed: newCellSet(n),
		g:      make([]int, n),
		parent: make([]int, n),
		seq:    make([]uint64, n),
	}
	for i := range f.parent {
		f.parent[i] = -1
	}
	f.open = queue.New(n, f.less)
	return f
}

// less orders by (f, h, insertion order).
func (f *frontier) less(i, j int) bool {
	a, b := f.grid.ByIndex(i), f.grid.ByIndex(j)
	ha, hb := a.Manhattan(f.toward), b.Manhattan(f.toward)
	if fa, fb := f.g[i]+ha, f.g[j]+hb; fa != fb {
		return fa < fb
	}
	if ha != hb {
		return ha < hb
	}
	return f.seq[i] < f.seq[j]
}

// seed clears the frontier and queues root, aimed at toward.
func (f *frontier) seed(root, toward *grid.Cell) {
	for _, i := range f.touched {
		f.parent[i] = -1
		f.g[i] = 0
	}
	f.touched = f.touched[:0]
	f.open.Clear()
	f.closed.clear()
	f.toward = toward

	i := f.grid.Index(root)
	f.g[i] = 0
	f.parent[i] = -1
	if f.mirror {
		root.H = root.Manhattan(toward)
	}
	f.push(i)
}

func (f *frontier) push(i int) {
	f.seq[i] = f.next
	f.next++
	f.touched = append(f.touched, i)
	f.open.Push(i)
}

// pop moves the best open cell to the closed set and returns it.
func (f *frontier) pop() *grid.Cell {
	i := f.open.Pop()
	f.closed.add(i)
	return f.grid.ByIndex(i)
}

// relax records cost and parent of n reached from cur.
func (f *frontier) relax(n, cur *grid.Cell, cost int) {
	i := f.grid.Index(n)
	f.g[i] = cost
	f.parent[i] = f.grid.Index(cur)
	if f.mirror {
		n.G = cost
		n.H = n.Manhattan(f.toward)
		f.grid.SetParent(n, cur)
	}
}

// parentOf returns the frontier's parent of cell i, or nil.
func (f *frontier) parentOf(i int) *grid.Cell {
	if p := f.parent[i]; p >= 0 {
		return f.grid.ByIndex(p)
	}
	return nil
}

// writeChain copies the frontier's parent chain from c up to the root into
// the cells' parent links and returns the set of cells on it.
func (f *frontier) writeChain(c *grid.Cell) *cellSet {
	set := newCellSet(f.grid.Size())
	for {
		i := f.grid.Index(c)
		set.add(i)
		p := f.parentOf(i)
		f.grid.SetParent(c, p)
		if p == nil {
			return set
		}
		c = p
	}
}
