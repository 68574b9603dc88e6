// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted grids.
//
// Moving onto a cell costs that cell's weight; walls are never entered.
// Cells are processed in order of increasing distance using a min-heap,
// relaxing the four orthogonal neighbors of each settled cell.
//
// Notes on implementation choices:
//
//   - Neighbors are relaxed in grid.Directions order (Up, Down, Left, Right).
//   - Heap ties are broken by insertion order, so results are deterministic.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and explicitly skipping entries for already-settled cells.
//   - The search stops as soon as the End cell is settled.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/grid"
)

// Dijkstra computes the minimum-weight path from the Start cell to the End
// cell of g. It accepts functional options (MaxDistance, Logger).
//
// The returned *Result is never nil. On any error it is the sentinel
// result: empty Path and TotalWeight == Infinity.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. g must be non-nil (ErrGridNil).
//  3. g must contain a Start cell (ErrStartNotFound).
//  4. g must contain an End cell (ErrEndNotFound).
//
// ErrNoPath is returned when the End cell is walled off, lies beyond
// MaxDistance, or costs more than Infinity to reach.
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H
//   - Space: O(N)
func Dijkstra(g *grid.Grid, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return notFound(), cfg.err
	}

	// 2) Validate grid is non-nil
	if g == nil {
		return notFound(), ErrGridNil
	}

	// 3) Locate start and end
	start, ok := g.Start()
	if !ok {
		cfg.Logger.Warn("start point 'S' not found")
		return notFound(), ErrStartNotFound
	}
	end, ok := g.End()
	if !ok {
		cfg.Logger.Warn("end point 'E' not found")
		return notFound(), ErrEndNotFound
	}
	cfg.Logger.Info("Starting Dijkstra's Algorithm...")

	log := cfg.Logger.WithFields(logrus.Fields{
		"start": start.String(),
		"end":   end.String(),
		"cells": g.Len(),
	})
	log.Debug("starting dijkstra search")

	// 4) Run the main loop
	r := newRunner(g, cfg, start, end)
	r.init()
	r.process()

	total := r.dist[r.end]
	if total == Infinity {
		log.WithField("settled", r.settled).Warn("end point unreachable")
		return notFound(), fmt.Errorf("%w: %v from %v", ErrNoPath, end, start)
	}

	path := r.pathTo(r.end)
	log.WithFields(logrus.Fields{
		"settled": r.settled,
		"weight":  total,
		"moves":   len(path),
	}).Debug("dijkstra search finished")

	return &Result{Path: path, TotalWeight: total, Settled: r.settled}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
// All slices are indexed by row-major cell index.
type runner struct {
	g       *grid.Grid // The input grid; read-only within Dijkstra.
	options Options    // Configuration options.
	start   int        // Index of the Start cell.
	end     int        // Index of the End cell.
	dist    []int64    // Current best distance from start.
	prev    []int      // Predecessor on the shortest path, -1 if none.
	visited []bool     // Whether a cell's distance is finalized.
	pq      nodePQ     // Min-heap of *nodeItem for lazy priority queue.
	seq     uint64     // Insertion counter for heap tie-breaking.
	settled int        // Number of cells finalized.
}

func newRunner(g *grid.Grid, cfg Options, start, end grid.Point) *runner {
	n := g.Len()
	return &runner{
		g:       g,
		options: cfg,
		start:   g.Index(start),
		end:     g.Index(end),
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// init sets dist to Infinity and prev to -1 everywhere, then pushes the start at distance 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Infinity
		r.prev[i] = -1
	}
	r.dist[r.start] = 0
	heap.Init(&r.pq)
	r.push(r.start, 0)
}

// process repeatedly extracts the closest unsettled cell and relaxes its
// neighbors. It stops when the End cell is settled, the heap drains, or
// the minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// Stale entry: u was already settled with a smaller distance.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.settled++
		if u == r.end {
			break
		}
		r.relax(u)
	}
}

// relax tries to improve the distance of each passable neighbor of u.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) {
	for _, s := range r.g.Neighbors(r.g.Point(u)) {
		v := r.g.Index(s.To)
		if r.visited[v] {
			continue
		}
		w := r.g.At(s.To).Weight
		// dist[u] + w would wrap past Infinity.
		if w > Infinity-r.dist[u] {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}
}

func (r *runner) push(idx int, dist int64) {
	heap.Push(&r.pq, &nodeItem{idx: idx, dist: dist, seq: r.seq})
	r.seq++
}

// pathTo walks predecessors back from idx to the start, infers each move
// from the coordinate delta, and reverses the result.
func (r *runner) pathTo(idx int) grid.Path {
	path := grid.Path{}
	for cur := idx; r.prev[cur] >= 0; cur = r.prev[cur] {
		d, _ := grid.DirectionBetween(r.g.Point(r.prev[cur]), r.g.Point(cur))
		path = append(path, d)
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem represents a cell and its tentative distance from the start.
type nodeItem struct {
	idx  int    // row-major cell index
	dist int64  // distance from start
	seq  uint64 // push order, breaks ties between equal distances
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority, then earlier push.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the underlying slice.
// Called by heap.Pop after moving the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
