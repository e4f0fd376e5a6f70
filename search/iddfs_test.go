package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/search"
)

func TestIDDFS_LimitExceeded(t *testing.T) {
	a := newAgent(t, 10, 10, nil, loc(0, 0), []grid.Location{loc(9, 9)}, false)
	res, err := search.IDDFS(a, search.WithLimit(50))
	require.NoError(t, err)

	assert.Equal(t, search.StatusLimitExceeded, res.Status)
	assert.Equal(t, 50, res.Count)
	assert.Empty(t, res.Path)
	assert.ErrorIs(t, res.Err(), search.ErrSearchLimitExceeded)
}

func TestIDDFS_LimitKeepsReachedGoals(t *testing.T) {
	a := newAgent(t, 10, 10, nil, loc(0, 0), []grid.Location{loc(1, 0), loc(9, 9)}, false)
	res, err := search.IDDFS(a, search.WithAll(true), search.WithLimit(50))
	require.NoError(t, err)

	assert.Equal(t, search.StatusLimitExceeded, res.Status)
	assert.Equal(t, []grid.Location{loc(1, 0)}, goalLocations(res))
	assert.Equal(t, []string{"right"}, res.Path.Tokens())
}

func TestIDDFS_NoLimit(t *testing.T) {
	a := newAgent(t, 4, 4, nil, loc(0, 0), []grid.Location{loc(3, 3)}, false)
	res, err := search.IDDFS(a, search.WithLimit(0))
	require.NoError(t, err)

	require.Equal(t, search.StatusSuccess, res.Status)
	// Iterative deepening finds the shallowest goal first.
	assert.Len(t, res.Path, 6)
	assertValidPath(t, a, res)
}

func TestIDDFS_DefaultLimit(t *testing.T) {
	assert.Equal(t, search.DefaultLimit, search.DefaultOptions().Limit)
}
