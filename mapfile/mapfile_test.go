package mapfile_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/mapfile"
)

func robotNav() *mapfile.Map {
	return &mapfile.Map{
		Height: 5,
		Width:  11,
		Start:  grid.Location{X: 0, Y: 1},
		Goals:  []grid.Location{{X: 7, Y: 0}, {X: 10, Y: 3}},
		Walls: []grid.Wall{
			{X: 2, Y: 0, Width: 2, Height: 2},
			{X: 8, Y: 0, Width: 1, Height: 2},
			{X: 10, Y: 0, Width: 1, Height: 1},
			{X: 2, Y: 3, Width: 1, Height: 2},
			{X: 3, Y: 4, Width: 3, Height: 1},
			{X: 9, Y: 3, Width: 1, Height: 1},
			{X: 8, Y: 4, Width: 2, Height: 1},
		},
	}
}

func TestLoad_Text(t *testing.T) {
	m, err := mapfile.Load(filepath.Join("testdata", "robotnav.txt"))
	require.NoError(t, err)
	assert.Equal(t, robotNav(), m)
}

func TestLoad_YAML(t *testing.T) {
	m, err := mapfile.Load(filepath.Join("testdata", "corridor.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 5, m.Height)
	assert.Equal(t, 7, m.Width)
	assert.Equal(t, []grid.Location{{X: 6, Y: 0}}, m.Goals)
	assert.Len(t, m.Walls, 3)
}

func TestParse_SpacingAndComments(t *testing.T) {
	m, err := mapfile.Load(filepath.Join("testdata", "spaced.txt"))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Height)
	assert.Equal(t, grid.Location{X: 0, Y: 0}, m.Start)
	assert.Equal(t, []grid.Location{{X: 2, Y: 2}, {X: 1, Y: 1}}, m.Goals)
	// The blank line ends the wall list.
	assert.Equal(t, []grid.Wall{{X: 1, Y: 0, Width: 1, Height: 1}}, m.Walls)
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line string
	}{
		{"empty", "", "missing size"},
		{"size brackets", "(5,11)\n(0,1)\n(7,0)\n", "line 1"},
		{"size arity", "[5]\n(0,1)\n(7,0)\n", "line 1"},
		{"start value", "[5,11]\n(0,x)\n(7,0)\n", "line 2"},
		{"goal", "[5,11]\n(0,1)\n(7,0) | 10,3\n", "line 3"},
		{"no goals", "[5,11]\n(0,1)\n", "missing goals"},
		{"wall", "[5,11]\n(0,1)\n(7,0)\n(1,1,1,1)\n(1,1,1)\n", "line 5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapfile.Parse(strings.NewReader(tc.in))
			require.ErrorIs(t, err, mapfile.ErrMalformedMap)
			assert.Contains(t, err.Error(), tc.line)
		})
	}

	_, err := mapfile.Load(filepath.Join("testdata", "badwall.txt"))
	require.ErrorIs(t, err, mapfile.ErrMalformedMap)
	assert.Contains(t, err.Error(), "badwall.txt")
}

func TestWrite_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, mapfile.Write(&buf, robotNav()))
	assert.True(t, strings.HasPrefix(buf.String(), "[5,11]\n(0,1)\n(7,0) | (10,3)\n(2,0,2,2)\n"))

	m, err := mapfile.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, robotNav(), m)
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, mapfile.WriteYAML(&buf, robotNav()))

	m, err := mapfile.ParseYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, robotNav(), m)

	_, err = mapfile.ParseYAML(strings.NewReader("height: [\n"))
	assert.ErrorIs(t, err, mapfile.ErrMalformedMap)
	_, err = mapfile.ParseYAML(strings.NewReader("goals: []\n"))
	assert.ErrorIs(t, err, mapfile.ErrMalformedMap)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.yml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, mapfile.Save(path, robotNav()))
		m, err := mapfile.Load(path)
		require.NoError(t, err)
		assert.Equal(t, robotNav(), m)
	}
}

func TestList(t *testing.T) {
	names, err := mapfile.List("testdata")
	require.NoError(t, err)
	assert.Equal(t, []string{"badwall.txt", "corridor.yaml", "robotnav.txt", "spaced.txt"}, names)

	_, err = mapfile.List(filepath.Join("testdata", "missing"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("testdata", "robotnav.txt"), mapfile.Resolve("testdata", "robotnav.txt"))
	existing := filepath.Join("testdata", "spaced.txt")
	assert.Equal(t, existing, mapfile.Resolve("elsewhere", existing))
}

func TestBuild(t *testing.T) {
	g, a, err := robotNav().Build(true)
	require.NoError(t, err)
	assert.Equal(t, 11, g.Width())
	assert.Equal(t, 5, g.Height())
	assert.Equal(t, 40, g.NetArea())
	assert.True(t, a.CanJump())
	assert.Equal(t, grid.Location{X: 0, Y: 1}, a.Cell().Location())
	assert.Len(t, a.Goals(), 2)

	bad := robotNav()
	bad.Walls = append(bad.Walls, grid.Wall{X: 10, Y: 4, Width: 2, Height: 1})
	_, _, err = bad.Build(false)
	assert.ErrorIs(t, err, grid.ErrInvalidMapGeometry)

	bad = robotNav()
	bad.Goals = append(bad.Goals, grid.Location{X: 11, Y: 0})
	_, _, err = bad.Build(false)
	assert.ErrorIs(t, err, grid.ErrInvalidLocation)
}
