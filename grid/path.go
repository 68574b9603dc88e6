package grid

import "fmt"

// Path is an ordered sequence of moves from a start cell.
// The empty path means "still at the start".
type Path []Direction

// String renders the path as move characters, e.g. "RRDDRR".
func (p Path) String() string {
	b := make([]byte, len(p))
	for i, d := range p {
		b[i] = d.Byte()
	}

	return string(b)
}

// ParsePath converts a string of 'U', 'D', 'L' and 'R' into a Path.
func ParsePath(s string) (Path, error) {
	p := make(Path, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'U':
			p[i] = Up
		case 'D':
			p[i] = Down
		case 'L':
			p[i] = Left
		case 'R':
			p[i] = Right
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownMove, s[i], i)
		}
	}

	return p, nil
}

// Walk replays path from start and returns the final position.
// It stops at the first move that leaves the grid (ErrOutOfBounds)
// or enters a wall (ErrHitWall).
func (g *Grid) Walk(start Point, path Path) (Point, error) {
	if !g.InBounds(start) {
		return start, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	at := start
	for i, d := range path {
		next := at.Move(d)
		if !g.InBounds(next) {
			return at, fmt.Errorf("%w: move %d (%s) from %v", ErrOutOfBounds, i, d, at)
		}
		if g.At(next).Type == Wall {
			return at, fmt.Errorf("%w: move %d (%s) from %v", ErrHitWall, i, d, at)
		}
		at = next
	}

	return at, nil
}

// PathWeight replays path from the grid's start cell and sums the weight
// of every cell entered. The start cell itself costs nothing.
func (g *Grid) PathWeight(path Path) (int64, error) {
	start, ok := g.Start()
	if !ok {
		return 0, fmt.Errorf("%w: grid has no start cell", ErrOutOfBounds)
	}
	var total int64
	at := start
	for i, d := range path {
		next := at.Move(d)
		if !g.Passable(next) {
			if !g.InBounds(next) {
				return 0, fmt.Errorf("%w: move %d (%s) from %v", ErrOutOfBounds, i, d, at)
			}
			return 0, fmt.Errorf("%w: move %d (%s) from %v", ErrHitWall, i, d, at)
		}
		total += g.At(next).Weight
		at = next
	}

	return total, nil
}
