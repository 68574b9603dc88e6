// Package grid provides an immutable rectangular grid of typed, weighted
// cells that the bfs and dijkstra packages search over.
//
// Cells are Open, Wall, Start or End. Each non-wall cell carries a positive
// weight: the cost of stepping onto it. Unweighted mazes use weight 1.
package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular 2D arrangement of cells. It is immutable once built.
// Width and Height define dimensions; cells[y][x] holds the cell at (x, y).
// start and end are located once during construction.
type Grid struct {
	Width, Height int
	cells         [][]Cell
	start, end    Point
	hasStart      bool
	hasEnd        bool
}

// New constructs a Grid from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrDuplicateStart or
// ErrDuplicateEnd for a second Start/End, and ErrBadWeight for a
// non-wall cell whose weight is not positive.
// A grid without Start or End is valid; searches report it.
// Complexity: O(W×H) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	g := &Grid{Width: w, Height: h, cells: make([][]Cell, h)}
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		g.cells[y] = make([]Cell, w)
		copy(g.cells[y], row)
		for x, c := range row {
			p := Point{X: x, Y: y}
			if c.Type != Wall && c.Weight <= 0 {
				return nil, fmt.Errorf("%w: %v has weight %d", ErrBadWeight, p, c.Weight)
			}
			switch c.Type {
			case Start:
				if g.hasStart {
					return nil, fmt.Errorf("%w: %v and %v", ErrDuplicateStart, g.start, p)
				}
				g.start, g.hasStart = p, true
			case End:
				if g.hasEnd {
					return nil, fmt.Errorf("%w: %v and %v", ErrDuplicateEnd, g.end, p)
				}
				g.end, g.hasEnd = p, true
			}
		}
	}

	return g, nil
}

// Parse builds a unit-weight grid from maze rows where 'S' marks the start,
// 'E' the end, '#' a wall and ' ' or '.' an open cell.
func Parse(rows []string) (*Grid, error) {
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		cells[y] = make([]Cell, len(row))
		for x := 0; x < len(row); x++ {
			var t CellType
			switch row[x] {
			case 'S':
				t = Start
			case 'E':
				t = End
			case '#':
				t = Wall
			case ' ', '.':
				t = Open
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCell, row[x], x, y)
			}
			cells[y][x] = Cell{Type: t, Weight: 1}
		}
	}

	return New(cells)
}

// FromWeights builds a wall-free grid whose cell weights are taken from
// weights[y][x], then marks start and end. Both marked cells get weight 1.
// Returns ErrOutOfBounds if start or end lies outside weights, and
// ErrDuplicateEnd if they are the same cell.
func FromWeights(weights [][]int64, start, end Point) (*Grid, error) {
	if start == end {
		return nil, fmt.Errorf("%w: start and end coincide at %v", ErrDuplicateEnd, start)
	}
	cells := make([][]Cell, len(weights))
	for y, row := range weights {
		cells[y] = make([]Cell, len(row))
		for x, w := range row {
			cells[y][x] = Cell{Type: Open, Weight: w}
		}
	}
	for _, mark := range []struct {
		p Point
		t CellType
	}{{start, Start}, {end, End}} {
		if mark.p.Y < 0 || mark.p.Y >= len(cells) || mark.p.X < 0 || mark.p.X >= len(cells[mark.p.Y]) {
			return nil, fmt.Errorf("%w: %s cell %v", ErrOutOfBounds, mark.t.longName(), mark.p)
		}
		cells[mark.p.Y][mark.p.X] = Cell{Type: mark.t, Weight: 1}
	}

	return New(cells)
}

func (t CellType) longName() string {
	switch t {
	case Start:
		return "start"
	case End:
		return "end"
	case Wall:
		return "wall"
	default:
		return "open"
	}
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell at p. It panics if p is out of bounds.
func (g *Grid) At(p Point) Cell {
	return g.cells[p.Y][p.X]
}

// Passable reports whether p is inside the grid and not a wall.
func (g *Grid) Passable(p Point) bool {
	return g.InBounds(p) && g.cells[p.Y][p.X].Type.Passable()
}

// Start returns the start cell, if the grid has one.
func (g *Grid) Start() (Point, bool) { return g.start, g.hasStart }

// End returns the end cell, if the grid has one.
func (g *Grid) End() (Point, bool) { return g.end, g.hasEnd }

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return g.Width * g.Height }

// Index maps p to a row-major index: Y*Width + X.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Point converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Point(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// Step is one neighbor of a cell: the move taken and where it lands.
type Step struct {
	Dir Direction
	To  Point
}

// Neighbors returns the passable neighbors of p in Directions order.
// Complexity: O(1).
func (g *Grid) Neighbors(p Point) []Step {
	steps := make([]Step, 0, len(Directions))
	for _, d := range Directions {
		if q := p.Move(d); g.Passable(q) {
			steps = append(steps, Step{Dir: d, To: q})
		}
	}

	return steps
}

// String renders the grid in the maze form accepted by Parse,
// one line per row. Weights are not shown.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteByte(c.Type.Byte())
		}
	}

	return sb.String()
}
