package agent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridnav/grid"
)

// ErrInvalidStep indicates a malformed step token or a step leaving the grid.
var ErrInvalidStep = errors.New("agent: invalid step")

// distanceSep separates the direction code from the jump distance.
const distanceSep = "_"

// Step is one move of a path: a direction and the number of cells covered.
type Step struct {
	Direction grid.Direction
	Distance  int // 1 for a plain move
}

// String returns the direction code, with "_<N>" appended when N > 1.
func (s Step) String() string {
	if s.Distance > 1 {
		return s.Direction.String() + distanceSep + strconv.Itoa(s.Distance)
	}
	return s.Direction.String()
}

// ParseStep parses "up", "up_1", or "up_3".
func ParseStep(token string) (Step, error) {
	code, dist, hasDist := strings.Cut(strings.TrimSpace(token), distanceSep)
	d, err := grid.ParseDirection(code)
	if err != nil {
		return Step{}, fmt.Errorf("%w: %q: %v", ErrInvalidStep, token, err)
	}
	s := Step{Direction: d, Distance: 1}
	if hasDist {
		n, err := strconv.Atoi(dist)
		if err != nil || n < 1 {
			return Step{}, fmt.Errorf("%w: %q: bad distance", ErrInvalidStep, token)
		}
		s.Distance = n
	}
	return s, nil
}

// Path is an ordered list of steps.
type Path []Step

// Tokens returns the string form of every step.
func (p Path) Tokens() []string {
	out := make([]string, len(p))
	for i, s := range p {
		out[i] = s.String()
	}
	return out
}

// String formats the path as "[up, right_2, down]".
func (p Path) String() string {
	return "[" + strings.Join(p.Tokens(), ", ") + "]"
}

// Cells returns the number of cells covered by the path.
func (p Path) Cells() int {
	n := 0
	for _, s := range p {
		n += s.Distance
	}
	return n
}

// ParsePath parses a list of step tokens.
func ParsePath(tokens []string) (Path, error) {
	p := make(Path, 0, len(tokens))
	for i, tok := range tokens {
		s, err := ParseStep(tok)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		p = append(p, s)
	}
	return p, nil
}
