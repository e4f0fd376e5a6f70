package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/gridnav/agent"
)

// Algorithm is the uniform entry point every search exposes.
type Algorithm func(a *agent.Agent, opts ...Option) (*Result, error)

// registry maps canonical names to algorithms.
var registry = map[string]Algorithm{
	"bfs":      BFS,
	"dfs":      DFS,
	"iddfs":    IDDFS,
	"astar":    AStar,
	"greedy":   Greedy,
	"bi_astar": BiAStar,
}

// aliases maps alternative spellings to canonical names.
var aliases = map[string]string{
	"a*":            "astar",
	"gbfs":          "greedy",
	"bidirectional": "bi_astar",
	"biastar":       "bi_astar",
}

// informedNames lists the algorithms that use a heuristic.
var informedNames = map[string]bool{"astar": true, "greedy": true, "bi_astar": true}

// Canonical resolves name (case-insensitive, aliases allowed) to its
// registered name. Returns ErrUnknownAlgorithm if nothing matches.
func Canonical(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[n]; ok {
		n = alias
	}
	if _, ok := registry[n]; !ok {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
	}
	return n, nil
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	n, err := Canonical(name)
	if err != nil {
		return nil, err
	}
	return registry[n], nil
}

// Names returns the canonical algorithm names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Informed reports whether the named algorithm is heuristic-guided.
func Informed(name string) bool {
	n, err := Canonical(name)
	return err == nil && informedNames[n]
}
