package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
)

// randomMaze builds a w×h maze with walls at the given density and
// distinct random start and end cells.
func randomMaze(t testing.TB, rnd *rand.Rand, w, h int, density float64) *grid.Grid {
	t.Helper()
	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = make([]byte, w)
		for x := range rows[y] {
			rows[y][x] = ' '
			if rnd.Float64() < density {
				rows[y][x] = '#'
			}
		}
	}
	s := rnd.Intn(w * h)
	e := rnd.Intn(w*h - 1)
	if e >= s {
		e++
	}
	rows[s/w][s%w] = 'S'
	rows[e/w][e%w] = 'E'

	lines := make([]string, h)
	for y, r := range rows {
		lines[y] = string(r)
	}
	g, err := grid.Parse(lines)
	require.NoError(t, err)

	return g
}

// referenceDistance is a plain visited-set BFS over the grid's cells that
// returns the move count from start to end, or -1 if unreachable.
func referenceDistance(g *grid.Grid) int {
	start, _ := g.Start()
	end, _ := g.End()
	dist := make(map[grid.Point]int, g.Len())
	dist[start] = 0
	queue := []grid.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == end {
			return dist[p]
		}
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			q := grid.Point{X: p.X + d[0], Y: p.Y + d[1]}
			if !g.InBounds(q) || g.At(q).Type == grid.Wall {
				continue
			}
			if _, seen := dist[q]; !seen {
				dist[q] = dist[p] + 1
				queue = append(queue, q)
			}
		}
	}

	return -1
}

// assertReachesEnd replays path from the start and requires it to land on the end.
func assertReachesEnd(t testing.TB, g *grid.Grid, path grid.Path) {
	t.Helper()
	start, _ := g.Start()
	end, _ := g.End()
	at, err := g.Walk(start, path)
	require.NoError(t, err)
	require.Equal(t, end, at)
}
