// Package grid defines the cell, coordinate and move types shared by the
// bfs and dijkstra subpackages of github.com/katalvlaran/mazepath.
package grid

import "fmt"

// CellType classifies a single grid cell.
type CellType uint8

const (
	// Open is a traversable cell with no special meaning.
	Open CellType = iota
	// Wall is impassable and never entered by a search.
	Wall
	// Start is the source cell of a search. A grid holds at most one.
	Start
	// End is the target cell of a search. A grid holds at most one.
	End
)

// String returns the maze character for t: ' ', '#', 'S' or 'E'.
func (t CellType) String() string {
	return string(t.Byte())
}

// Byte returns the maze character for t.
func (t CellType) Byte() byte {
	switch t {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	default:
		return ' '
	}
}

// Passable reports whether a search may step onto a cell of this type.
func (t CellType) Passable() bool { return t != Wall }

// Cell is one grid square: its type and the cost of entering it.
// Weight is ignored for walls and must be positive otherwise.
type Cell struct {
	Type   CellType
	Weight int64
}

// Point addresses a cell. X is the column and Y is the row, both zero-based.
type Point struct {
	X, Y int
}

// Move returns the point one step away from p in direction d.
// The result may lie outside any particular grid.
func (p Point) Move(d Direction) Point {
	off := d.Offset()
	return Point{X: p.X + off[0], Y: p.Y + off[1]}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a single orthogonal move.
type Direction uint8

const (
	// Up decreases Y by one.
	Up Direction = iota
	// Down increases Y by one.
	Down
	// Left decreases X by one.
	Left
	// Right increases X by one.
	Right
)

// Directions is the fixed expansion order used by every search in this
// module. It decides which of several equally short paths is returned.
var Directions = [4]Direction{Up, Down, Left, Right}

// offsets holds {dx, dy} per Direction, indexed by the Direction value.
var offsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Valid reports whether d is one of Up, Down, Left or Right.
func (d Direction) Valid() bool {
	return int(d) < len(offsets)
}

// Offset returns the {dx, dy} step for d. It panics if d is not Valid.
func (d Direction) Offset() [2]int {
	d.mustBeValid()
	return offsets[d]
}

// Byte returns the move character for d: 'U', 'D', 'L' or 'R'.
// It panics if d is not Valid.
func (d Direction) Byte() byte {
	d.mustBeValid()
	return "UDLR"[d]
}

func (d Direction) mustBeValid() {
	if !d.Valid() {
		panic(fmt.Sprintf("grid: invalid direction %d", uint8(d)))
	}
}

// String returns the move character for d as a string.
func (d Direction) String() string {
	return string(d.Byte())
}

// DirectionBetween infers the move that leads from one point to an
// orthogonally adjacent one. ok is false when the points are not adjacent.
func DirectionBetween(from, to Point) (d Direction, ok bool) {
	dx, dy := to.X-from.X, to.Y-from.Y
	for _, d = range Directions {
		if off := d.Offset(); off[0] == dx && off[1] == dy {
			return d, true
		}
	}

	return 0, false
}
