// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted grids.
//
// Dijkstra computes the minimum-cost path from the grid's Start cell to
// its End cell, where entering a cell costs that cell's weight.
// The algorithm maintains a priority queue of cells to explore and
// relaxes neighbors in increasing order of distance from the start.
//
// Complexity:
//
//	– Time:  O(N log N)   where N = W×H cells (each cell has ≤ 4 neighbors)
//	– Space: O(N)
//	   • dist, prev and visited slices indexed by row-major cell index.
//	   • O(4N) heap entries in the worst case (lazy decrease-key).
//
// Options:
//
//	– MaxDistance: optional cap on distances to explore; cells beyond this are skipped.
//	– Logger:      receives diagnostics (missing end, unreachable end, run summary).
//
// Errors (sentinel):
//
//	– ErrGridNil        if the provided grid pointer is nil.
//	– ErrStartNotFound  if the grid has no Start cell.
//	– ErrEndNotFound    if the grid has no End cell.
//	– ErrNoPath         if the End cell is unreachable (or beyond MaxDistance).
//	– ErrBadMaxDistance if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/grid"
)

// Infinity is the distance of an unreached cell and the TotalWeight
// reported when no path exists.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGridNil indicates that a nil *grid.Grid was passed to Dijkstra.
	ErrGridNil = errors.New("dijkstra: grid is nil")

	// ErrStartNotFound indicates that the grid has no Start cell.
	ErrStartNotFound = errors.New("dijkstra: start point not found")

	// ErrEndNotFound indicates that the grid has no End cell.
	ErrEndNotFound = errors.New("dijkstra: end point not found")

	// ErrNoPath indicates that the End cell cannot be reached from the Start cell.
	ErrNoPath = errors.New("dijkstra: no path from start to end")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// Logger – destination for diagnostics. Default discards everything.
type Options struct {
	MaxDistance int64              // Maximum distance to explore
	Logger      logrus.FieldLogger // Diagnostics sink

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Negative values surface as ErrBadMaxDistance when Dijkstra runs.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// discard is the default Logger.
var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// DefaultOptions returns an Options struct initialized with sensible defaults:
//   - MaxDistance: Infinity (no distance limit; explore all reachable).
//   - Logger:      a logger that discards output.
func DefaultOptions() Options {
	return Options{
		MaxDistance: Infinity,
		Logger:      discard,
	}
}

// Result is the outcome of a search.
//
// On success Path leads from Start to End and TotalWeight is the sum of
// the weights of every entered cell. When no path exists Path is empty and
// TotalWeight is Infinity. Settled counts cells whose distance was finalized.
type Result struct {
	Path        grid.Path
	TotalWeight int64
	Settled     int
}

// Found reports whether the search produced a path.
func (r *Result) Found() bool {
	return r != nil && r.TotalWeight != Infinity
}

// notFound is the sentinel result returned with every error.
func notFound() *Result {
	return &Result{Path: grid.Path{}, TotalWeight: Infinity}
}
