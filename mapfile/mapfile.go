package mapfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridnav/agent"
	"github.com/katalvlaran/gridnav/grid"
)

// ErrMalformedMap is returned when a map file cannot be decoded.
var ErrMalformedMap = errors.New("mapfile: malformed map")

// Map is a decoded map file.
type Map struct {
	Height int             `yaml:"height"`
	Width  int             `yaml:"width"`
	Start  grid.Location   `yaml:"start"`
	Goals  []grid.Location `yaml:"goals"`
	Walls  []grid.Wall     `yaml:"walls"`
}

// Build constructs the grid and an agent placed on it.
// Errors from grid.New and agent.New are returned wrapped.
func (m *Map) Build(canJump bool) (*grid.Grid, *agent.Agent, error) {
	g, err := grid.New(m.Height, m.Width, m.Walls)
	if err != nil {
		return nil, nil, fmt.Errorf("mapfile: build grid: %w", err)
	}
	a, err := agent.New(g, m.Start, m.Goals, canJump)
	if err != nil {
		return nil, nil, fmt.Errorf("mapfile: build agent: %w", err)
	}
	return g, a, nil
}

// Parse decodes the text format from r.
func Parse(r io.Reader) (*Map, error) {
	sc := bufio.NewScanner(r)
	m := &Map{}
	line, field := 0, 0

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(text, "#") {
			continue
		}
		if text == "" {
			if field < 3 {
				continue
			}
			break
		}

		var err error
		switch field {
		case 0:
			err = parseSize(text, m)
		case 1:
			m.Start, err = parseLocation(text)
		case 2:
			m.Goals, err = parseGoals(text)
		default:
			var w grid.Wall
			if w, err = parseWall(text); err == nil {
				m.Walls = append(m.Walls, w)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedMap, line, err)
		}
		field++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mapfile: read: %w", err)
	}
	if field < 3 {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedMap, [...]string{"size", "start", "goals"}[field])
	}
	return m, nil
}

// Write encodes m in the text format.
func Write(w io.Writer, m *Map) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "[%d,%d]\n", m.Height, m.Width)
	fmt.Fprintf(bw, "(%d,%d)\n", m.Start.X, m.Start.Y)
	goals := make([]string, len(m.Goals))
	for i, g := range m.Goals {
		goals[i] = fmt.Sprintf("(%d,%d)", g.X, g.Y)
	}
	fmt.Fprintln(bw, strings.Join(goals, " | "))
	for _, wl := range m.Walls {
		fmt.Fprintf(bw, "(%d,%d,%d,%d)\n", wl.X, wl.Y, wl.Width, wl.Height)
	}
	return bw.Flush()
}

// ParseYAML decodes the YAML rendition from r.
func ParseYAML(r io.Reader) (*Map, error) {
	m := &Map{}
	if err := yaml.NewDecoder(r).Decode(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMap, err)
	}
	if m.Height < 1 || m.Width < 1 {
		return nil, fmt.Errorf("%w: missing size", ErrMalformedMap)
	}
	return m, nil
}

// WriteYAML encodes m as YAML.
func WriteYAML(w io.Writer, m *Map) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("mapfile: encode yaml: %w", err)
	}
	return enc.Close()
}

// IsYAML reports whether path names a YAML map.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads the map at path, choosing the decoder by extension.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	defer f.Close()

	var m *Map
	if IsYAML(path) {
		m, err = ParseYAML(f)
	} else {
		m, err = Parse(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Save writes m to path, choosing the encoder by extension.
func Save(path string, m *Map) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mapfile: %w", err)
	}
	if IsYAML(path) {
		err = WriteYAML(f, m)
	} else {
		err = Write(f, m)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Resolve finds name as given, or inside dir when it is not a path to an
// existing file.
func Resolve(dir, name string) string {
	if _, err := os.Stat(name); err == nil || dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// List returns the names of the map files in dir, sorted.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".txt", ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

//----------------------------------------------------------------------------//
// text fields
//----------------------------------------------------------------------------//

func parseSize(text string, m *Map) error {
	v, err := tuple(text, '[', ']', 2)
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}
	m.Height, m.Width = v[0], v[1]
	return nil
}

func parseLocation(text string) (grid.Location, error) {
	v, err := tuple(text, '(', ')', 2)
	if err != nil {
		return grid.Location{}, fmt.Errorf("location: %w", err)
	}
	return grid.Location{X: v[0], Y: v[1]}, nil
}

func parseGoals(text string) ([]grid.Location, error) {
	parts := strings.Split(text, "|")
	goals := make([]grid.Location, 0, len(parts))
	for _, p := range parts {
		loc, err := parseLocation(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("goal %d: %w", len(goals), err)
		}
		goals = append(goals, loc)
	}
	return goals, nil
}

func parseWall(text string) (grid.Wall, error) {
	v, err := tuple(text, '(', ')', 4)
	if err != nil {
		return grid.Wall{}, fmt.Errorf("wall: %w", err)
	}
	return grid.Wall{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

// tuple parses "<open>a, b, ...<close>" holding exactly n integers.
func tuple(text string, open, close byte, n int) ([]int, error) {
	if len(text) < 2 || text[0] != open || text[len(text)-1] != close {
		return nil, fmt.Errorf("want %c...%c, got %q", open, close, text)
	}
	fields := strings.Split(text[1:len(text)-1], ",")
	if len(fields) != n {
		return nil, fmt.Errorf("want %d values, got %d in %q", n, len(fields), text)
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("value %d of %q: %w", i, text, err)
		}
		out[i] = v
	}
	return out, nil
}
