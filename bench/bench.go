// Package bench measures search algorithms on a map: wall time per run,
// allocated bytes, and the search outcome, summarised over repeated runs
// and exportable as CSV.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gridnav/mapfile"
	"github.com/katalvlaran/gridnav/search"
)

// DefaultRuns is the number of repetitions when Case.Runs is 0.
const DefaultRuns = 1000

var (
	// ErrNilMap is returned when Case.Map is nil.
	ErrNilMap = errors.New("bench: map is nil")

	// ErrInvalidRuns is returned for a negative run count.
	ErrInvalidRuns = errors.New("bench: runs must be positive")
)

// Case describes one measurement.
type Case struct {
	Map       *mapfile.Map
	MapName   string
	Algorithm string
	All       bool
	Jump      bool
	Limit     int // visit cap for IDDFS; 0 means search.DefaultLimit
	Runs      int
	Logger    *log.Logger
}

// Report is the outcome of one measurement. Durations are in milliseconds.
type Report struct {
	ID         string  `csv:"id"`
	Map        string  `csv:"map"`
	Algorithm  string  `csv:"algorithm"`
	All        bool    `csv:"all"`
	Jump       bool    `csv:"jump"`
	Runs       int     `csv:"runs"`
	Status     string  `csv:"status"`
	Goals      int     `csv:"goals"`
	Steps      int     `csv:"steps"`
	Count      int     `csv:"count"`
	MeanMs     float64 `csv:"mean_ms"`
	StdDevMs   float64 `csv:"stddev_ms"`
	MinMs      float64 `csv:"min_ms"`
	MaxMs      float64 `csv:"max_ms"`
	AllocBytes uint64  `csv:"alloc_bytes_per_run"`
}

// Run builds the map once and searches it bc.Runs times.
// The search outcome of the last run is reported; every run sees the same
// map, so all runs agree.
func Run(ctx context.Context, bc Case) (*Report, error) {
	if bc.Map == nil {
		return nil, ErrNilMap
	}
	runs := bc.Runs
	if runs == 0 {
		runs = DefaultRuns
	}
	if runs < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRuns, runs)
	}
	logger := bc.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	name, err := search.Canonical(bc.Algorithm)
	if err != nil {
		return nil, err
	}
	fn, _ := search.Lookup(name)
	_, a, err := bc.Map.Build(bc.Jump)
	if err != nil {
		return nil, err
	}

	opts := []search.Option{search.WithContext(ctx), search.WithAll(bc.All)}
	if bc.Limit != 0 {
		opts = append(opts, search.WithLimit(bc.Limit))
	}

	logger.Debug("benchmark started", "map", bc.MapName, "algorithm", name, "runs", runs)
	times := make([]float64, runs)
	var res *search.Result

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	for i := 0; i < runs; i++ {
		start := time.Now()
		res, err = fn(a, opts...)
		if err != nil {
			return nil, fmt.Errorf("bench: run %d: %w", i, err)
		}
		times[i] = float64(time.Since(start)) / float64(time.Millisecond)
	}
	runtime.ReadMemStats(&after)

	mean, std := stat.MeanStdDev(times, nil)
	if runs == 1 {
		std = 0
	}
	r := &Report{
		ID:         uuid.NewString(),
		Map:        bc.MapName,
		Algorithm:  name,
		All:        bc.All,
		Jump:       bc.Jump,
		Runs:       runs,
		Status:     res.Status.String(),
		Goals:      len(res.Goals),
		Steps:      len(res.Path),
		Count:      res.Count,
		MeanMs:     mean,
		StdDevMs:   std,
		MinMs:      floats.Min(times),
		MaxMs:      floats.Max(times),
		AllocBytes: (after.TotalAlloc - before.TotalAlloc) / uint64(runs),
	}
	logger.Info("benchmark finished", "algorithm", name, "mean_ms", r.MeanMs, "status", r.Status)
	return r, nil
}

// Sweep runs base once per algorithm, in single-goal and all-goals mode.
// It stops at the first error.
func Sweep(ctx context.Context, base Case, algorithms []string) ([]*Report, error) {
	reports := make([]*Report, 0, 2*len(algorithms))
	for _, alg := range algorithms {
		for _, all := range []bool{false, true} {
			bc := base
			bc.Algorithm, bc.All = alg, all
			r, err := Run(ctx, bc)
			if err != nil {
				return reports, err
			}
			reports = append(reports, r)
		}
	}
	return reports, nil
}

// WriteCSV writes reports with a header row.
func WriteCSV(w io.Writer, reports []*Report) error {
	if err := gocsv.Marshal(reports, w); err != nil {
		return fmt.Errorf("bench: write csv: %w", err)
	}
	return nil
}
