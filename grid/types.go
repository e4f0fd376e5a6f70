// Package grid defines directions, locations, walls, and sentinel errors
// shared by the grid model.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrInvalidMapGeometry indicates bad dimensions or a wall that does not fit the grid.
	ErrInvalidMapGeometry = errors.New("grid: invalid map geometry")

	// ErrInvalidLocation indicates coordinates outside the grid.
	ErrInvalidLocation = fmt.Errorf("%w: location out of bounds", ErrInvalidMapGeometry)

	// ErrInvalidDirection indicates an unknown direction code.
	ErrInvalidDirection = errors.New("grid: invalid direction")

	// ErrGridBusy indicates the grid is already owned by a running search.
	ErrGridBusy = errors.New("grid: grid is in use by another search")
)

// Direction is one of the four orthogonal moves.
// The declaration order is the neighbor enumeration order.
type Direction uint8

const (
	// Up decreases y.
	Up Direction = iota
	// Left decreases x.
	Left
	// Down increases y.
	Down
	// Right increases x.
	Right
)

var directionCodes = [...]string{"up", "left", "down", "right"}

// offsets[d] is the unit displacement of direction d.
var offsets = [...][2]int{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}

// Directions returns the four directions in enumeration order.
func Directions() []Direction {
	return []Direction{Up, Left, Down, Right}
}

// String returns the lowercase direction code ("up", "left", "down", "right").
func (d Direction) String() string {
	if int(d) < len(directionCodes) {
		return directionCodes[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Offset returns the unit displacement (dx, dy) of d.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d&3]
	return o[0], o[1]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// ParseDirection converts a direction code back to a Direction.
func ParseDirection(code string) (Direction, error) {
	for i, c := range directionCodes {
		if c == code {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, code)
}

// DirectionBetween returns the direction of the displacement from -> to.
// Purely vertical displacements map to Up or Down; anything with a
// horizontal component maps to Left or Right.
func DirectionBetween(from, to *Cell) Direction {
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx == 0 {
		if dy < 0 {
			return Up
		}
		return Down
	}
	if dx < 0 {
		return Left
	}
	return Right
}

// Location is the value identity of a cell.
type Location struct {
	X, Y int
}

// String formats the location as "(x, y)".
func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.X, l.Y)
}

// Wall is an axis-aligned blocked rectangle anchored at its top-left cell.
type Wall struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether (x, y) lies inside the rectangle.
func (w Wall) Contains(x, y int) bool {
	return w.X <= x && x < w.X+w.Width && w.Y <= y && y < w.Y+w.Height
}

// String formats the wall as "(x, y, w, h)".
func (w Wall) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", w.X, w.Y, w.Width, w.Height)
}
