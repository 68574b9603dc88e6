// Package grid models the fixed 2D maps searched by the bfs and dijkstra
// packages.
//
// What:
//
//   - Grid wraps a rectangular [][]Cell; each Cell has a CellType
//     (Open, Wall, Start, End) and a positive Weight (cost of entering it).
//   - Parse builds a unit-weight grid from character rows ("S", "E", "#", " ").
//   - FromWeights builds a wall-free weighted grid and marks start and end.
//   - Path is a sequence of Directions rendered as "UDLR" characters.
//   - Walk and PathWeight replay a path to validate it and price it.
//   - Reachable and Region flood-fill the passable cells.
//
// Directions are always expanded in the order Up, Down, Left, Right.
// Both searches rely on that order to pick among equally short paths.
//
// Complexity:
//
//   - New, Parse, FromWeights: O(W×H) time and memory.
//   - Walk, PathWeight:        O(len(path)).
//   - Reachable, Region:       O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDuplicateStart, ErrDuplicateEnd: more than one Start or End cell.
//   - ErrBadWeight: a non-wall cell has weight ≤ 0.
//   - ErrUnknownCell, ErrUnknownMove: unparseable maze or path characters.
//   - ErrOutOfBounds, ErrHitWall: a replayed path leaves the grid or hits a wall.
package grid
