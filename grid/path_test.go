package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
)

func TestParsePath(t *testing.T) {
	p, err := grid.ParsePath("UDLR")
	require.NoError(t, err)
	assert.Equal(t, grid.Path{grid.Up, grid.Down, grid.Left, grid.Right}, p)
	assert.Equal(t, "UDLR", p.String())

	empty, err := grid.ParsePath("")
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, "", grid.Path(nil).String())

	_, err = grid.ParsePath("RRX")
	assert.ErrorIs(t, err, grid.ErrUnknownMove)
}

func TestWalk(t *testing.T) {
	g, err := grid.Parse([]string{
		"S #",
		"  E",
	})
	require.NoError(t, err)
	start, _ := g.Start()

	cases := []struct {
		name string
		path string
		want grid.Point
		err  error
	}{
		{"Empty", "", grid.Point{X: 0, Y: 0}, nil},
		{"ToEnd", "DRR", grid.Point{X: 2, Y: 1}, nil},
		{"Detour", "RDR", grid.Point{X: 2, Y: 1}, nil},
		{"OffTop", "U", grid.Point{X: 0, Y: 0}, grid.ErrOutOfBounds},
		{"IntoWall", "RR", grid.Point{X: 1, Y: 0}, grid.ErrHitWall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := grid.ParsePath(tc.path)
			require.NoError(t, err)
			got, err := g.Walk(start, p)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPathWeight(t *testing.T) {
	g, err := grid.FromWeights([][]int64{
		{1, 4, 1},
		{2, 7, 3},
	}, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 1})
	require.NoError(t, err)

	// start costs nothing, end forced to weight 1
	w, err := g.PathWeight(grid.Path{grid.Right, grid.Right, grid.Down})
	require.NoError(t, err)
	assert.EqualValues(t, 4+1+1, w)

	w, err = g.PathWeight(grid.Path{grid.Down, grid.Right, grid.Right})
	require.NoError(t, err)
	assert.EqualValues(t, 2+7+1, w)

	w, err = g.PathWeight(nil)
	require.NoError(t, err)
	assert.Zero(t, w)

	_, err = g.PathWeight(grid.Path{grid.Left})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestPathWeight_Wall(t *testing.T) {
	g, err := grid.Parse([]string{"S#E"})
	require.NoError(t, err)
	_, err = g.PathWeight(grid.Path{grid.Right, grid.Right})
	assert.ErrorIs(t, err, grid.ErrHitWall)
}
