// Package mapgen produces random navigation maps.
//
// Generation is deterministic for a fixed seed: walls are dropped as random
// rectangles until the requested share of the grid is blocked, then the
// start and goals are drawn from the remaining free cells, all distinct.
//
// Options follow the functional style: invalid values are recorded and
// reported by Generate as ErrOptionViolation.
package mapgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/mapfile"
)

// Defaults used when no option overrides them.
const (
	DefaultSeed        = int64(1)
	DefaultWallDensity = 0.2
	DefaultGoals       = 1
	DefaultMaxWallSize = 3
)

// maxAttemptsPerCell bounds wall placement on dense or tiny grids.
const maxAttemptsPerCell = 8

var (
	// ErrInvalidSize is returned for a height or width below 1.
	ErrInvalidSize = errors.New("mapgen: invalid size")

	// ErrOptionViolation is returned when an Option received a bad value.
	ErrOptionViolation = errors.New("mapgen: invalid option value")

	// ErrTooDense is returned when the grid cannot hold the start and goals.
	ErrTooDense = errors.New("mapgen: not enough free cells")
)

// Option configures Generate.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	density float64
	goals   int
	maxWall int
	err     error
}

func newConfig(opts []Option) config {
	c := config{
		density: DefaultWallDensity,
		goals:   DefaultGoals,
		maxWall: DefaultMaxWallSize,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	return c
}

// WithSeed draws from a new source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws from r, shared with the caller. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mapgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWallDensity sets the share of cells to block, in [0, 1).
func WithWallDensity(p float64) Option {
	return func(c *config) {
		if p < 0 || p >= 1 {
			c.err = fmt.Errorf("%w: wall density %v outside [0, 1)", ErrOptionViolation, p)
			return
		}
		c.density = p
	}
}

// WithGoals sets the number of goals, at least 1.
func WithGoals(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.err = fmt.Errorf("%w: goals %d < 1", ErrOptionViolation, n)
			return
		}
		c.goals = n
	}
}

// WithMaxWallSize caps the width and height of each wall, at least 1.
func WithMaxWallSize(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.err = fmt.Errorf("%w: max wall size %d < 1", ErrOptionViolation, n)
			return
		}
		c.maxWall = n
	}
}

// Generate returns a random height×width map.
// Complexity: O(H·W·maxWallSize²) time, O(H·W) memory.
func Generate(height, width int, opts ...Option) (*mapfile.Map, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, height, width)
	}
	c := newConfig(opts)
	if c.err != nil {
		return nil, c.err
	}
	area := height * width
	if area < c.goals+1 {
		return nil, fmt.Errorf("%w: %d cells for start and %d goals", ErrTooDense, area, c.goals)
	}

	blocked := make([]bool, area)
	target := int(c.density * float64(area))
	if limit := area - c.goals - 1; target > limit {
		target = limit
	}

	m := &mapfile.Map{Height: height, Width: width}
	count := 0
	for attempt := 0; count < target && attempt < area*maxAttemptsPerCell; attempt++ {
		w := grid.Wall{
			X:      c.rng.Intn(width),
			Y:      c.rng.Intn(height),
			Width:  1 + c.rng.Intn(c.maxWall),
			Height: 1 + c.rng.Intn(c.maxWall),
		}
		w.Width = min(w.Width, width-w.X)
		w.Height = min(w.Height, height-w.Y)

		fresh := 0
		for y := w.Y; y < w.Y+w.Height; y++ {
			for x := w.X; x < w.X+w.Width; x++ {
				if !blocked[y*width+x] {
					fresh++
				}
			}
		}
		if fresh == 0 || count+fresh > target {
			continue
		}
		for y := w.Y; y < w.Y+w.Height; y++ {
			for x := w.X; x < w.X+w.Width; x++ {
				blocked[y*width+x] = true
			}
		}
		count += fresh
		m.Walls = append(m.Walls, w)
	}

	free := make([]int, 0, area-count)
	for i, b := range blocked {
		if !b {
			free = append(free, i)
		}
	}
	c.rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	at := func(i int) grid.Location { return grid.Location{X: i % width, Y: i / width} }
	m.Start = at(free[0])
	m.Goals = make([]grid.Location, c.goals)
	for k := range m.Goals {
		m.Goals[k] = at(free[k+1])
	}
	return m, nil
}
