package grid

import (
	"fmt"
	"sync"
)

// Grid is a height×width map of Cells with blocked wall rectangles.
// Cells are stored row-major; Cell(x, y) lives at index y*width + x.
type Grid struct {
	width, height int
	cells         []Cell
	walls         []Wall
	blocked       int

	mu sync.Mutex // held by the search that owns the cell state
}

// New builds a grid of the given size and marks every cell covered by a
// wall as blocked.
// Returns ErrInvalidMapGeometry if height or width is below 1, or if any
// wall is empty or does not fit inside the grid.
// Complexity: O(W×H + Σ wall area).
func New(height, width int, walls []Wall) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: size %dx%d must be at least 1x1", ErrInvalidMapGeometry, height, width)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		walls:  make([]Wall, len(walls)),
	}
	copy(g.walls, walls)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[g.index(x, y)] = Cell{X: x, Y: y, parent: noParent}
		}
	}

	for i, w := range walls {
		if w.Width < 1 || w.Height < 1 {
			return nil, fmt.Errorf("%w: wall %d %v has empty extent", ErrInvalidMapGeometry, i, w)
		}
		if !g.InBounds(w.X, w.Y) || !g.InBounds(w.X+w.Width-1, w.Y+w.Height-1) {
			return nil, fmt.Errorf("%w: wall %d %v outside %dx%d grid", ErrInvalidMapGeometry, i, w, height, width)
		}
		for y := w.Y; y < w.Y+w.Height; y++ {
			for x := w.X; x < w.X+w.Width; x++ {
				c := &g.cells[g.index(x, y)]
				if !c.Blocked {
					c.Blocked = true
					g.blocked++
				}
			}
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Walls returns a copy of the wall rectangles the grid was built with.
func (g *Grid) Walls() []Wall {
	out := make([]Wall, len(g.walls))
	copy(out, g.walls)
	return out
}

// InBounds reports whether (x, y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns the cell at (x, y), or ErrInvalidLocation.
func (g *Grid) Cell(x, y int) (*Cell, error) {
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d, %d) not in %dx%d grid", ErrInvalidLocation, x, y, g.height, g.width)
	}
	return &g.cells[g.index(x, y)], nil
}

// At returns the cell at loc, or ErrInvalidLocation.
func (g *Grid) At(loc Location) (*Cell, error) {
	return g.Cell(loc.X, loc.Y)
}

// Index returns the row-major index of c. It is the dense id used by
// visited sets and priority queues.
func (g *Grid) Index(c *Cell) int {
	return g.index(c.X, c.Y)
}

// ByIndex returns the cell with the given row-major index.
func (g *Grid) ByIndex(i int) *Cell {
	return &g.cells[i]
}

// Size returns the total number of cells, blocked or not.
func (g *Grid) Size() int {
	return len(g.cells)
}

// Parent returns the recorded predecessor of c, or nil.
func (g *Grid) Parent(c *Cell) *Cell {
	if c.parent == noParent {
		return nil
	}
	return &g.cells[c.parent]
}

// SetParent records p as the predecessor of c. A nil p clears the link.
func (g *Grid) SetParent(c, p *Cell) {
	if p == nil {
		c.parent = noParent
		return
	}
	c.parent = g.index(p.X, p.Y)
}

// Neighbor returns the cell dist steps from c in direction d, or nil when
// that position is outside the grid. Blocked cells are returned as well.
// Complexity: O(1).
func (g *Grid) Neighbor(c *Cell, d Direction, dist int) *Cell {
	dx, dy := d.Offset()
	x, y := c.X+dx*dist, c.Y+dy*dist
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[g.index(x, y)]
}

// Reset clears the search state of every cell.
// Complexity: O(W×H).
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Reset()
	}
}

// NetArea returns the number of unblocked cells.
func (g *Grid) NetArea() int {
	return len(g.cells) - g.blocked
}

// Acquire takes exclusive ownership of the grid's cell state for one
// search. The returned release function must be called when done.
// Returns ErrGridBusy if another search already owns the grid.
func (g *Grid) Acquire() (release func(), err error) {
	if !g.mu.TryLock() {
		return nil, ErrGridBusy
	}
	return g.mu.Unlock, nil
}

// index maps (x, y) to its row-major offset.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}
