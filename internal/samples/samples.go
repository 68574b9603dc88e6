// Package samples holds the two fixed 7×7 grids the programs search.
package samples

import "github.com/katalvlaran/mazepath/grid"

// mazeRows is the unweighted maze: S top-left, E on the right edge of row 5.
var mazeRows = []string{
	"S  #   ",
	"## # # ",
	"     # ",
	" ### # ",
	"   #   ",
	" #   #E",
	" ### # ",
}

// weights are the entry costs of the weighted grid, indexed [row][col].
var weights = [][]int64{
	{1, 1, 1, 2, 1, 3, 1},
	{1, 3, 2, 1, 1, 2, 1},
	{1, 1, 1, 1, 2, 1, 1},
	{3, 2, 1, 1, 1, 1, 3},
	{1, 1, 1, 2, 1, 3, 1},
	{1, 2, 1, 1, 1, 1, 1},
	{1, 1, 3, 2, 1, 1, 1},
}

// WeightedStart and WeightedEnd are the corners the weighted search runs between.
var (
	WeightedStart = grid.Point{X: 0, Y: 0}
	WeightedEnd   = grid.Point{X: 6, Y: 6}
)

// MazeRows returns a copy of the maze rows.
func MazeRows() []string {
	return append([]string(nil), mazeRows...)
}

// Maze returns the unweighted maze grid.
func Maze() *grid.Grid {
	g, err := grid.Parse(mazeRows)
	if err != nil {
		panic("samples: maze literal is invalid: " + err.Error())
	}

	return g
}

// Weighted returns the weighted grid with start and end in opposite corners.
func Weighted() *grid.Grid {
	g, err := grid.FromWeights(weights, WeightedStart, WeightedEnd)
	if err != nil {
		panic("samples: weight literal is invalid: " + err.Error())
	}

	return g
}
