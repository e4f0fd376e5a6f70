package agent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/agent"
	"github.com/katalvlaran/gridnav/grid"
)

func mustGrid(t *testing.T, h, w int, walls ...grid.Wall) *grid.Grid {
	t.Helper()
	g, err := grid.New(h, w, walls)
	require.NoError(t, err)
	return g
}

func cellAt(t *testing.T, g *grid.Grid, x, y int) *grid.Cell {
	t.Helper()
	c, err := g.Cell(x, y)
	require.NoError(t, err)
	return c
}

// link sets parent links along cells[0] <- cells[1] <- ... <- cells[n-1].
func link(g *grid.Grid, cells ...*grid.Cell) {
	for i := 1; i < len(cells); i++ {
		g.SetParent(cells[i], cells[i-1])
	}
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	g := mustGrid(t, 3, 3)

	_, err := agent.New(nil, grid.Location{}, nil, false)
	assert.ErrorIs(t, err, agent.ErrNilGrid)

	_, err = agent.New(g, grid.Location{X: 3, Y: 0}, []grid.Location{{X: 0, Y: 0}}, false)
	assert.ErrorIs(t, err, grid.ErrInvalidLocation)

	_, err = agent.New(g, grid.Location{}, []grid.Location{{X: 1, Y: 1}, {X: 0, Y: -1}}, false)
	assert.ErrorIs(t, err, grid.ErrInvalidLocation)
	assert.ErrorIs(t, err, grid.ErrInvalidMapGeometry)
}

func TestNew_GoalsDeduplicated(t *testing.T) {
	g := mustGrid(t, 3, 3)
	a, err := agent.New(g, grid.Location{X: 0, Y: 0},
		[]grid.Location{{X: 2, Y: 2}, {X: 1, Y: 0}, {X: 2, Y: 2}}, true)
	require.NoError(t, err)

	goals := a.Goals()
	require.Len(t, goals, 2)
	assert.Equal(t, grid.Location{X: 2, Y: 2}, goals[0].Location())
	assert.Equal(t, grid.Location{X: 1, Y: 0}, goals[1].Location())
	assert.True(t, a.IsGoal(cellAt(t, g, 1, 0)))
	assert.False(t, a.IsGoal(a.Cell()))
	assert.True(t, a.CanJump())
}

//----------------------------------------------------------------------------//
// Steps
//----------------------------------------------------------------------------//

func TestStep_Tokens(t *testing.T) {
	cases := []struct {
		token string
		step  agent.Step
		out   string
	}{
		{"up", agent.Step{Direction: grid.Up, Distance: 1}, "up"},
		{"left_1", agent.Step{Direction: grid.Left, Distance: 1}, "left"},
		{"down_2", agent.Step{Direction: grid.Down, Distance: 2}, "down_2"},
		{" right_12 ", agent.Step{Direction: grid.Right, Distance: 12}, "right_12"},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			s, err := agent.ParseStep(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.step, s)
			assert.Equal(t, tc.out, s.String())
		})
	}

	for _, bad := range []string{"", "north", "up_", "up_0", "up_x", "down_-2"} {
		_, err := agent.ParseStep(bad)
		assert.ErrorIs(t, err, agent.ErrInvalidStep, "ParseStep(%q)", bad)
	}
}

func TestParsePath(t *testing.T) {
	p, err := agent.ParsePath([]string{"right", "down_3", "left"})
	require.NoError(t, err)
	assert.Equal(t, "[right, down_3, left]", p.String())
	assert.Equal(t, 5, p.Cells())

	_, err = agent.ParsePath([]string{"up", "sideways"})
	assert.ErrorIs(t, err, agent.ErrInvalidStep)
}

//----------------------------------------------------------------------------//
// TracePath / TraversePath
//----------------------------------------------------------------------------//

func TestTracePath_Directions(t *testing.T) {
	g := mustGrid(t, 3, 3)
	a, err := agent.New(g, grid.Location{X: 0, Y: 0}, []grid.Location{{X: 2, Y: 2}}, false)
	require.NoError(t, err)

	// (0,0) -> (1,0) -> (1,1) -> (1,2) -> (2,2)
	chain := []*grid.Cell{
		cellAt(t, g, 0, 0), cellAt(t, g, 1, 0), cellAt(t, g, 1, 1), cellAt(t, g, 1, 2), cellAt(t, g, 2, 2),
	}
	link(g, chain...)
	goal := chain[len(chain)-1]

	assert.Equal(t, []string{"right", "down", "down", "right"}, a.TracePath(goal, true).Tokens())
	assert.Equal(t, []string{"left", "up", "up", "left"}, a.TracePath(goal, false).Tokens())
	assert.Empty(t, a.TracePath(chain[0], true))

	end, cost, err := a.TraversePath(a.TracePath(goal, true))
	require.NoError(t, err)
	assert.Same(t, goal, end)
	assert.Equal(t, 4, cost)
}

func TestTracePath_JumpDistances(t *testing.T) {
	g := mustGrid(t, 4, 5, grid.Wall{X: 1, Y: 0, Width: 2, Height: 1})
	a, err := agent.New(g, grid.Location{X: 0, Y: 0}, []grid.Location{{X: 3, Y: 3}}, true)
	require.NoError(t, err)

	// (0,0) -jump 3-> (3,0) -1-> (3,1) -jump 2-> (3,3)
	chain := []*grid.Cell{cellAt(t, g, 0, 0), cellAt(t, g, 3, 0), cellAt(t, g, 3, 1), cellAt(t, g, 3, 3)}
	link(g, chain...)

	path := a.TracePath(chain[3], true)
	assert.Equal(t, []string{"right_3", "down", "down_2"}, path.Tokens())

	end, cost, err := a.TraversePath(path)
	require.NoError(t, err)
	assert.Same(t, chain[3], end)
	assert.Equal(t, 4+1+2, cost)

	assert.Equal(t, []string{"up_2", "up", "left_3"}, a.TracePath(chain[3], false).Tokens())
}

func TestTraversePath_LeavesGrid(t *testing.T) {
	g := mustGrid(t, 2, 2)
	a, err := agent.New(g, grid.Location{X: 0, Y: 0}, []grid.Location{{X: 1, Y: 1}}, false)
	require.NoError(t, err)

	p, err := agent.ParsePath([]string{"right", "right"})
	require.NoError(t, err)
	end, cost, err := a.TraversePath(p)
	assert.ErrorIs(t, err, agent.ErrInvalidStep)
	assert.Equal(t, grid.Location{X: 1, Y: 0}, end.Location())
	assert.Equal(t, 1, cost)
}
