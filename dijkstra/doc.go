// Package dijkstra provides Dijkstra's shortest-path algorithm on weighted
// grids with positive cell weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from the Start cell to the End
//     cell of a grid.Grid in O(N log N) time, where N = W×H.
//   - Entering a cell costs its weight; the Start cell itself costs nothing.
//   - It relies on a min-heap (priority queue) to always expand the next-closest cell.
//   - The path is rebuilt from predecessor links and returned as grid moves.
//
// When to use:
//
//   - Terrain where some cells are more expensive to cross than others.
//   - Use package bfs instead when every move costs the same.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - Logger: a logrus.FieldLogger for diagnostics such as a missing End cell.
//   - Deterministic tie-breaking: direction order Up, Down, Left, Right and
//     heap insertion order.
//
// Error handling (sentinel errors):
//
//   - ErrGridNil:
//     Returned if you pass a nil *grid.Grid.
//   - ErrStartNotFound, ErrEndNotFound:
//     Returned if the grid lacks a Start or End cell. The End case is also
//     logged as a warning ("end point 'E' not found").
//   - ErrNoPath:
//     Returned if the End cell is unreachable.
//   - ErrBadMaxDistance:
//     Returned if you set MaxDistance to a negative value.
//
// Every error comes with the sentinel result: an empty Path and
// TotalWeight == Infinity. Callers can therefore check Result.Found
// (or len(Path) == 0) instead of inspecting the error.
//
// API reference:
//
//	func Dijkstra(g *grid.Grid, opts ...Option) (*Result, error)
package dijkstra
