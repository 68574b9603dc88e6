// Package mazepath finds shortest paths across small fixed grids.
//
// What is mazepath?
//
//	Two independent shortest-path searches over a shared grid model:
//		• grid/:     cells (Open, Wall, Start, End), weights, moves, path replay
//		• bfs/:      fewest moves on an unweighted maze (pruned or exhaustive)
//		• dijkstra/: least total weight on a weighted grid
//
// Both searches expand neighbors in the fixed order Up, Down, Left, Right,
// so equal-length (or equal-cost) ties always resolve the same way.
//
// Two demo programs live under cmd/:
//
//	cmd/bfs-maze:      solves a 7×7 maze, prints e.g. "Shortest Path: RRDDRRDDRRD"
//	cmd/dijkstra-grid: solves a 7×7 weight grid, prints the path and "Total Weight: 12"
//
// Quick ASCII example:
//
//	S . #
//	. # .
//	. . E
//
// BFS returns "DDRR": down twice, right twice.
//
//	go run github.com/katalvlaran/mazepath/cmd/bfs-maze -s exhaustive
package mazepath
