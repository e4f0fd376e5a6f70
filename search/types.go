// Package search defines the shared result contract, options, and sentinel
// errors of the grid search algorithms.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridnav/agent"
	"github.com/katalvlaran/gridnav/grid"
)

// DefaultLimit is the IDDFS visit cap used when WithLimit is not given.
const DefaultLimit = 100_000

// Sentinel errors for misuse. Unreachable goals are not errors; they are
// reported through Result.Status.
var (
	// ErrNilAgent is returned if a nil agent is passed.
	ErrNilAgent = errors.New("search: agent is nil")

	// ErrNoGoals is returned if the agent has no goal cells.
	ErrNoGoals = errors.New("search: agent has no goals")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned by Lookup for an unregistered name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrNoGoalReachable is what Result.Err reports when no requested goal
	// could be reached.
	ErrNoGoalReachable = errors.New("search: no goal is reachable")

	// ErrSearchLimitExceeded is what Result.Err reports when the visit cap
	// stopped the search before it could decide reachability.
	ErrSearchLimitExceeded = errors.New("search: visit limit exceeded")
)

// Status tags the outcome of a search.
type Status int

const (
	// StatusNoGoalReachable means no goal was reached; Count is the number
	// of cells visited.
	StatusNoGoalReachable Status = iota
	// StatusSuccess means the nearest goal, or every goal in all-mode, was reached.
	StatusSuccess
	// StatusPartial means all-mode reached some goals and then found the
	// rest unreachable. Path and Goals hold what was reached.
	StatusPartial
	// StatusLimitExceeded means the IDDFS visit cap was hit. The outcome is
	// inconclusive; goals reached before the cap are kept.
	StatusLimitExceeded
)

// String returns a short label for s.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusPartial:
		return "partial"
	case StatusNoGoalReachable:
		return "no goal reachable"
	case StatusLimitExceeded:
		return "limit exceeded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one search run.
type Result struct {
	Status Status
	// Path is the concatenated step list from the start through every
	// reached goal.
	Path agent.Path
	// Goals are the reached goal cells in visitation order.
	Goals []*grid.Cell
	// Count is the number of cells visited, the start included.
	Count int
}

// Goal returns the first reached goal, or nil.
func (r *Result) Goal() *grid.Cell {
	if len(r.Goals) == 0 {
		return nil
	}
	return r.Goals[0]
}

// Found reports whether at least one goal was reached and the search
// concluded.
func (r *Result) Found() bool {
	return r.Status == StatusSuccess || r.Status == StatusPartial
}

// Err maps the status onto the error taxonomy: nil on success,
// ErrNoGoalReachable when some requested goal is unreachable, and
// ErrSearchLimitExceeded when the visit cap stopped the search.
func (r *Result) Err() error {
	switch r.Status {
	case StatusSuccess:
		return nil
	case StatusLimitExceeded:
		return ErrSearchLimitExceeded
	default:
		return ErrNoGoalReachable
	}
}

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. a negative limit), it is recorded and
// surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by every algorithm.
type Options struct {
	// Ctx allows cancellation. Checked once per expanded cell.
	Ctx context.Context

	// All asks for every goal in sequence instead of the nearest one.
	All bool

	// Limit caps the cells IDDFS may visit; 0 disables the cap.
	// Other algorithms ignore it.
	Limit int

	// Logger receives debug traces (goal hits, frontier resets).
	Logger *log.Logger

	// OnVisit is called for every newly counted cell.
	OnVisit func(c *grid.Cell)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - single-goal mode
//   - Limit = DefaultLimit
//   - a logger writing to io.Discard
//   - a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Limit:   DefaultLimit,
		Logger:  log.New(io.Discard),
		OnVisit: func(*grid.Cell) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAll selects all-goals mode.
func WithAll(all bool) Option {
	return func(o *Options) {
		o.All = all
	}
}

// WithLimit sets the IDDFS visit cap.
//
//	n > 0: stop once n cells were visited
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithLogger routes debug traces to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers a callback for every newly counted cell.
func WithOnVisit(fn func(c *grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
