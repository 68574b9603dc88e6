// Package bfs provides breadth-first shortest-path search over a grid.Grid,
// returning the move sequence from the Start cell to the End cell.
//
// What
//
//   - Explores paths in non-decreasing move count from the Start cell.
//   - Returns the first path whose last cell is the End cell, which is a
//     shortest path by number of moves.
//   - Two strategies:
//   - Pruned (default): queue of cells, visited set, parent links.
//   - Exhaustive: queue of full move sequences, no visited set; cells are
//     revisited through detours. Exponential, kept for parity with the
//     classic path-string formulation.
//   - Supports functional hooks OnEnqueue and OnDequeue.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are expanded in grid.Directions order (Up, Down, Left, Right)
//	and the queue is FIFO. Both strategies therefore return the same path:
//	the shortest path that is smallest in U<D<L<R order.
//
// Termination
//
//	Pruned stops when the queue drains. Exhaustive never drains on its own
//	once a cycle is reachable, so it first checks grid.Reachable and
//	reports ErrNoPath up front; MaxDepth and WithContext bound it further.
//
// Complexity (N = W×H cells, L = shortest path length)
//
//   - Pruned:     Time O(N), Memory O(N).
//   - Exhaustive: Time and Memory O(4^L) in the worst case.
//
// Usage
//
//	path, err := bfs.FindShortestPath(g)
//	if err != nil {
//		// ErrGridNil, ErrStartNotFound, ErrEndNotFound, ErrNoPath,
//		// ErrOptionViolation, or a context error
//	}
//	fmt.Println(path) // e.g. "RRDDRRDDRRD"
//
//	res, err := bfs.Search(
//		g,
//		bfs.WithStrategy(bfs.Exhaustive),
//		bfs.WithContext(ctx),
//		bfs.WithMaxDepth(20),
//	)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrStartNotFound    if the grid has no Start cell.
//   - ErrEndNotFound      if the grid has no End cell.
//   - ErrNoPath           if the end is unreachable or needs more than MaxDepth moves.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()           if the context is cancelled mid-search.
package bfs
