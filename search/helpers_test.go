package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/agent"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/search"
)

// algorithms lists every search under its registry name, in a stable order.
var algorithms = []struct {
	name string
	fn   search.Algorithm
}{
	{"bfs", search.BFS},
	{"dfs", search.DFS},
	{"iddfs", search.IDDFS},
	{"astar", search.AStar},
	{"greedy", search.Greedy},
	{"bi_astar", search.BiAStar},
}

func loc(x, y int) grid.Location { return grid.Location{X: x, Y: y} }

func newAgent(t testing.TB, h, w int, walls []grid.Wall, start grid.Location, goals []grid.Location, jump bool) *agent.Agent {
	t.Helper()
	g, err := grid.New(h, w, walls)
	require.NoError(t, err)
	a, err := agent.New(g, start, goals, jump)
	require.NoError(t, err)
	return a
}

func goalLocations(res *search.Result) []grid.Location {
	out := make([]grid.Location, len(res.Goals))
	for i, c := range res.Goals {
		out[i] = c.Location()
	}
	return out
}

// assertValidPath replays res.Path step by step: every step must land on an
// in-bounds free cell (adjacent unless the agent can jump), the reached
// goals must be passed in order, and the path must end on the last one.
func assertValidPath(t *testing.T, a *agent.Agent, res *search.Result) {
	t.Helper()
	g := a.Grid()
	cur := a.Cell()
	next := 0
	advance := func() {
		for next < len(res.Goals) && cur == res.Goals[next] {
			next++
		}
	}
	advance()
	for i, s := range res.Path {
		if !a.CanJump() {
			require.Equalf(t, 1, s.Distance, "step %d %v jumps without jump capability", i, s)
		}
		n := g.Neighbor(cur, s.Direction, s.Distance)
		require.NotNilf(t, n, "step %d %v leaves the grid at %v", i, s, cur.Location())
		require.Falsef(t, n.Blocked, "step %d %v lands on wall %v", i, s, n.Location())
		cur = n
		advance()
	}
	assert.Equal(t, len(res.Goals), next, "path must pass the reached goals in order")
	if len(res.Goals) > 0 {
		assert.Same(t, res.Goals[len(res.Goals)-1], cur, "path must end on the last goal")
	}
}

// bfsDistance is a brute-force step count between two cells without
// jumping; -1 when unreachable.
func bfsDistance(g *grid.Grid, from, to *grid.Cell) int {
	dist := make([]int, g.Size())
	for i := range dist {
		dist[i] = -1
	}
	dist[g.Index(from)] = 0
	queue := []*grid.Cell{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == to {
			return dist[g.Index(c)]
		}
		for _, d := range grid.Directions() {
			n := g.Neighbor(c, d, 1)
			if n == nil || n.Blocked || dist[g.Index(n)] >= 0 {
				continue
			}
			dist[g.Index(n)] = dist[g.Index(c)] + 1
			queue = append(queue, n)
		}
	}
	return -1
}

// randomWalls scatters single cells and short bars over an h×w grid.
func randomWalls(rng *rand.Rand, h, w int) []grid.Wall {
	n := rng.Intn(h*w/4 + 1)
	walls := make([]grid.Wall, 0, n)
	for i := 0; i < n; i++ {
		ww, wh := 1, 1
		if rng.Intn(3) == 0 {
			ww = 1 + rng.Intn(3)
		} else if rng.Intn(3) == 0 {
			wh = 1 + rng.Intn(3)
		}
		x, y := rng.Intn(w), rng.Intn(h)
		if x+ww > w {
			ww = w - x
		}
		if y+wh > h {
			wh = h - y
		}
		walls = append(walls, grid.Wall{X: x, Y: y, Width: ww, Height: wh})
	}
	return walls
}

// freeCell picks a random unblocked cell, or nil if there is none.
func freeCell(rng *rand.Rand, g *grid.Grid) *grid.Cell {
	if g.NetArea() == 0 {
		return nil
	}
	for {
		c := g.ByIndex(rng.Intn(g.Size()))
		if !c.Blocked {
			return c
		}
	}
}
