package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/grid"
)

// randomWeighted builds a w×h grid with ~20% walls, weights in [1,9],
// and distinct random start and end cells.
func randomWeighted(t testing.TB, rnd *rand.Rand, w, h int) *grid.Grid {
	t.Helper()
	cells := make([][]grid.Cell, h)
	for y := range cells {
		cells[y] = make([]grid.Cell, w)
		for x := range cells[y] {
			cells[y][x] = grid.Cell{Type: grid.Open, Weight: 1 + rnd.Int63n(9)}
			if rnd.Intn(5) == 0 {
				cells[y][x].Type = grid.Wall
			}
		}
	}
	s := rnd.Intn(w * h)
	e := rnd.Intn(w*h - 1)
	if e >= s {
		e++
	}
	cells[s/w][s%w].Type = grid.Start
	cells[e/w][e%w].Type = grid.End

	g, err := grid.New(cells)
	require.NoError(t, err)

	return g
}

// referenceCost relaxes every cell against its neighbors until nothing
// changes (Bellman-Ford on the cell graph) and returns the end's cost,
// or dijkstra.Infinity if the end is never reached.
func referenceCost(g *grid.Grid) int64 {
	start, _ := g.Start()
	end, _ := g.End()
	cost := make([][]int64, g.Height)
	for y := range cost {
		cost[y] = make([]int64, g.Width)
		for x := range cost[y] {
			cost[y][x] = dijkstra.Infinity
		}
	}
	cost[start.Y][start.X] = 0

	for changed := true; changed; {
		changed = false
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if cost[y][x] == dijkstra.Infinity {
					continue
				}
				for _, d := range [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
					q := grid.Point{X: x + d[0], Y: y + d[1]}
					if !g.InBounds(q) || g.At(q).Type == grid.Wall {
						continue
					}
					if c := cost[y][x] + g.At(q).Weight; c < cost[q.Y][q.X] {
						cost[q.Y][q.X] = c
						changed = true
					}
				}
			}
		}
	}

	return cost[end.Y][end.X]
}
