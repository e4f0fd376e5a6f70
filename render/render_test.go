package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/agent"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/mapfile"
	"github.com/katalvlaran/gridnav/render"
	"github.com/katalvlaran/gridnav/search"
)

func robotNav(t *testing.T) *agent.Agent {
	t.Helper()
	m, err := mapfile.Load("../maps/RobotNav-test.txt")
	require.NoError(t, err)
	_, a, err := m.Build(false)
	require.NoError(t, err)
	return a
}

func TestMap(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Map(&buf, robotNav(t)))
	want := strings.Join([]string{
		"0011000G101",
		"A0110000100",
		"00000000000",
		"0010000001G",
		"00111100110",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPath(t *testing.T) {
	g, err := grid.New(2, 4, []grid.Wall{{X: 1, Y: 0, Width: 2, Height: 1}})
	require.NoError(t, err)
	a, err := agent.New(g, grid.Location{X: 0, Y: 0}, []grid.Location{{X: 3, Y: 0}}, false)
	require.NoError(t, err)

	res, err := search.BFS(a)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Path(&buf, a, res.Path))
	assert.Equal(t, "A11G\n****\n", buf.String())
}

func TestPath_LeavesGrid(t *testing.T) {
	a := robotNav(t)
	p, err := agent.ParsePath([]string{"up", "up"})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = render.Path(&buf, a, p)
	assert.ErrorIs(t, err, agent.ErrInvalidStep)
}

func TestStyled(t *testing.T) {
	a := robotNav(t)
	var plain, styled bytes.Buffer
	require.NoError(t, render.Plain().Map(&plain, a))
	require.NoError(t, render.Styled(nil).Map(&styled, a))

	// Styling may add escape codes but never drops characters.
	assert.Equal(t, strings.Count(plain.String(), "\n"), strings.Count(styled.String(), "\n"))
	assert.Contains(t, styled.String(), "A")
	assert.Contains(t, styled.String(), "G")
}

func TestGlyph_Rune(t *testing.T) {
	assert.Equal(t, '0', render.Free.Rune())
	assert.Equal(t, '1', render.Wall.Rune())
	assert.Equal(t, 'A', render.Start.Rune())
	assert.Equal(t, 'G', render.Goal.Rune())
	assert.Equal(t, '*', render.Trail.Rune())
}
