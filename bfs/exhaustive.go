package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// pathItem is a full move sequence from the start and the cell it ends on.
type pathItem struct {
	path grid.Path
	at   grid.Point
}

// pathWalker holds the state of an Exhaustive search. Its queue stores
// whole paths and there is no visited set, so cells are re-explored.
type pathWalker struct {
	grid  *grid.Grid
	opts  Options
	ctx   context.Context
	end   grid.Point
	queue []pathItem
	res   *Result
}

func newPathWalker(g *grid.Grid, o Options, end grid.Point, res *Result) *pathWalker {
	return &pathWalker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		end:   end,
		queue: make([]pathItem, 0, g.Len()),
		res:   res,
	}
}

// loop starts from the empty path and dequeues until a path ending on the
// end cell comes off the queue. Paths leave the queue in non-decreasing
// length, so that path is a shortest one.
func (w *pathWalker) loop(start grid.Point) error {
	w.enqueue(pathItem{path: grid.Path{}, at: start})
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if item.at == w.end {
			w.res.Path = item.path
			return nil
		}
		if w.opts.MaxDepth > 0 && len(item.path)+1 > w.opts.MaxDepth {
			continue
		}
		for _, d := range grid.Directions {
			next := item.at.Move(d)
			if !w.grid.Passable(next) {
				continue
			}
			w.enqueue(pathItem{path: extend(item.path, d), at: next})
		}
	}

	return fmt.Errorf("%w: %v not reached from %v within %d moves", ErrNoPath, w.end, w.res.Start, w.opts.MaxDepth)
}

func (w *pathWalker) enqueue(item pathItem) {
	w.opts.OnEnqueue(item.at, len(item.path))
	w.queue = append(w.queue, item)
	w.res.Enqueued++
}

func (w *pathWalker) dequeue() pathItem {
	item := w.queue[0]
	w.queue[0] = pathItem{}
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.at, len(item.path))
	w.res.Expanded++
	return item
}

// extend returns a copy of p with d appended; queued paths never share storage.
func extend(p grid.Path, d grid.Direction) grid.Path {
	next := make(grid.Path, len(p)+1)
	copy(next, p)
	next[len(p)] = d

	return next
}
