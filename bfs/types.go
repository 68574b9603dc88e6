// Package bfs provides tunable options, result types and error definitions
// for breadth-first search over a grid.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartNotFound is returned when the grid has no Start cell.
	ErrStartNotFound = errors.New("bfs: start cell not found")

	// ErrEndNotFound is returned when the grid has no End cell.
	ErrEndNotFound = errors.New("bfs: end cell not found")

	// ErrNoPath is returned when the end cannot be reached from the start,
	// or only by a path longer than MaxDepth.
	ErrNoPath = errors.New("bfs: no path from start to end")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Strategy selects how the frontier is pruned.
type Strategy int

const (
	// Pruned queues cells and never enqueues a cell twice. O(W×H) time.
	Pruned Strategy = iota

	// Exhaustive queues complete move sequences with no visited set, so a
	// cell may be revisited through longer detours. The frontier grows
	// exponentially with path length; only use it on small grids.
	Exhaustive
)

// String returns "pruned" or "exhaustive".
func (s Strategy) String() string {
	switch s {
	case Pruned:
		return "pruned"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "pruned":
		return Pruned, nil
	case "exhaustive":
		return Exhaustive, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
	}
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Strategy selects Pruned (default) or Exhaustive search.
	Strategy Strategy

	// MaxDepth, if > 0, drops any path longer than MaxDepth moves.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnEnqueue is called when a frontier item is enqueued.
	// Receives the cell it ends on and its move count.
	OnEnqueue func(at grid.Point, depth int)

	// OnDequeue is called when a frontier item is taken off the queue,
	// before it is checked against the end cell.
	OnDequeue func(at grid.Point, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - Pruned strategy
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Strategy:  Pruned,
		MaxDepth:  0,
		OnEnqueue: func(grid.Point, int) {},
		OnDequeue: func(grid.Point, int) {},
		err:       nil,
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

// WithStrategy selects the search strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Pruned, Exhaustive:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithMaxDepth caps the number of moves in any explored path.
//
//	d > 0: limit to d moves
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(at grid.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(at grid.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a successful search:
//   - Path: shortest move sequence from Start to End.
//   - Expanded: frontier items dequeued before the end was reached.
//   - Enqueued: frontier items pushed in total, the start included.
type Result struct {
	Path       grid.Path
	Start, End grid.Point
	Strategy   Strategy
	Expanded   int
	Enqueued   int
}
