// Package bfs finds the shortest path, by move count, from the start cell
// to the end cell of a grid.Grid using breadth-first search.
//
// Directions are tried in grid.Directions order (Up, Down, Left, Right)
// and the queue is FIFO, so among equally short paths the one that is
// smallest in that order is returned.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	at    grid.Point
	depth int
}

// walker encapsulates mutable state of a Pruned search.
type walker struct {
	grid    *grid.Grid
	opts    Options
	ctx     context.Context
	end     grid.Point
	queue   []queueItem
	visited []bool
	parent  []int            // row-major index of the predecessor, -1 for the start
	move    []grid.Direction // move that entered each visited cell
	res     *Result
}

// FindShortestPath runs Search and returns only the path.
func FindShortestPath(g *grid.Grid, opts ...Option) (grid.Path, error) {
	res, err := Search(g, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search runs breadth-first search on g from its Start cell to its End
// cell, applying any number of functional Options.
// Returns ErrGridNil, ErrStartNotFound or ErrEndNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNoPath when the end cannot be
// reached, or the context error on cancellation.
func Search(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, ok := g.Start()
	if !ok {
		return nil, ErrStartNotFound
	}
	end, ok := g.End()
	if !ok {
		return nil, ErrEndNotFound
	}

	res := &Result{Start: start, End: end, Strategy: o.Strategy}
	var err error
	switch o.Strategy {
	case Exhaustive:
		// Without a visited set an unreachable end never drains the queue.
		if !g.Reachable(start, end) {
			return nil, fmt.Errorf("%w: %v is unreachable from %v", ErrNoPath, end, start)
		}
		err = newPathWalker(g, o, end, res).loop(start)
	default:
		err = newWalker(g, o, end, res).loop(start)
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

func newWalker(g *grid.Grid, o Options, end grid.Point, res *Result) *walker {
	n := g.Len()
	return &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		end:     end,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		parent:  make([]int, n),
		move:    make([]grid.Direction, n),
		res:     res,
	}
}

// loop seeds the queue with start and processes it until the end cell is
// dequeued, the queue drains, or the context is cancelled.
func (w *walker) loop(start grid.Point) error {
	w.enqueue(start, 0, -1, 0)
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if item.at == w.end {
			w.res.Path = w.pathTo(item)
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return fmt.Errorf("%w: %v not reached from %v", ErrNoPath, w.end, w.res.Start)
}

// enqueue marks p visited, records how it was entered, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(p grid.Point, d int, parent int, dir grid.Direction) {
	i := w.grid.Index(p)
	w.visited[i] = true
	w.parent[i] = parent
	w.move[i] = dir
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{at: p, depth: d})
	w.res.Enqueued++
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.at, item.depth)
	w.res.Expanded++
	return item
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen passable neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	from := w.grid.Index(item.at)
	for _, s := range w.grid.Neighbors(item.at) {
		if !w.visited[w.grid.Index(s.To)] {
			w.enqueue(s.To, nextDepth, from, s.Dir)
		}
	}
}

// pathTo follows parent links back from item to the start.
func (w *walker) pathTo(item queueItem) grid.Path {
	path := make(grid.Path, item.depth)
	i := w.grid.Index(item.at)
	for k := item.depth - 1; k >= 0; k-- {
		path[k] = w.move[i]
		i = w.parent[i]
	}

	return path
}
