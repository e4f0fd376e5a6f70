// Package render draws grids as text: one character per cell, one row per
// line, with A for the start, G for goals, 1 for walls and 0 for free
// cells. A found path can be overlaid, marking every cell the agent lands
// on with '*'.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridnav/agent"
	"github.com/katalvlaran/gridnav/grid"
)

// Glyph classifies a cell for display.
type Glyph int

const (
	Free Glyph = iota
	Wall
	Start
	Goal
	Trail
)

// Rune returns the character drawn for g.
func (g Glyph) Rune() rune {
	switch g {
	case Wall:
		return '1'
	case Start:
		return 'A'
	case Goal:
		return 'G'
	case Trail:
		return '*'
	default:
		return '0'
	}
}

// Renderer writes grids. The zero value is not usable; use Plain or Styled.
type Renderer struct {
	paint func(Glyph, string) string
}

// Plain returns a renderer emitting bare characters.
func Plain() *Renderer {
	return &Renderer{paint: func(_ Glyph, s string) string { return s }}
}

// Styles maps glyphs to lipgloss styles.
type Styles map[Glyph]lipgloss.Style

// DefaultStyles is the palette used by Styled when none is given.
func DefaultStyles() Styles {
	return Styles{
		Free:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Wall:  lipgloss.NewStyle().Foreground(lipgloss.Color("167")).Bold(true),
		Start: lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Bold(true),
		Goal:  lipgloss.NewStyle().Foreground(lipgloss.Color("35")).Bold(true),
		Trail: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}

// Styled returns a renderer that wraps every glyph in its style.
// Glyphs missing from styles are drawn plain.
func Styled(styles Styles) *Renderer {
	if styles == nil {
		styles = DefaultStyles()
	}
	return &Renderer{paint: func(g Glyph, s string) string {
		if st, ok := styles[g]; ok {
			return st.Render(s)
		}
		return s
	}}
}

// Map writes the agent's grid with its start and goals.
func (r *Renderer) Map(w io.Writer, a *agent.Agent) error {
	return r.draw(w, a, nil)
}

// Path writes the agent's grid with path overlaid. The path is replayed
// from the agent's cell; a step leaving the grid is an error.
func (r *Renderer) Path(w io.Writer, a *agent.Agent, path agent.Path) error {
	g := a.Grid()
	trail := make(map[*grid.Cell]bool, len(path))
	cur := a.Cell()
	for i, s := range path {
		next := g.Neighbor(cur, s.Direction, max(s.Distance, 1))
		if next == nil {
			return fmt.Errorf("render: step %d %q leaves the grid: %w", i, s, agent.ErrInvalidStep)
		}
		trail[next] = true
		cur = next
	}
	return r.draw(w, a, trail)
}

func (r *Renderer) draw(w io.Writer, a *agent.Agent, trail map[*grid.Cell]bool) error {
	g := a.Grid()
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, _ := g.Cell(x, y)
			glyph := classify(a, c, trail[c])
			bw.WriteString(r.paint(glyph, string(glyph.Rune())))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// classify picks the glyph of c. Start and goals win over the trail.
func classify(a *agent.Agent, c *grid.Cell, onTrail bool) Glyph {
	switch {
	case c == a.Cell():
		return Start
	case a.IsGoal(c):
		return Goal
	case c.Blocked:
		return Wall
	case onTrail:
		return Trail
	default:
		return Free
	}
}

// Map writes the agent's grid with the plain renderer.
func Map(w io.Writer, a *agent.Agent) error {
	return Plain().Map(w, a)
}

// Path writes the agent's grid and path with the plain renderer.
func Path(w io.Writer, a *agent.Agent, path agent.Path) error {
	return Plain().Path(w, a, path)
}
