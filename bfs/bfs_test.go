package bfs_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/internal/samples"
)

// mazeShortest is the expected answer on samples.Maze for both strategies.
const mazeShortest = "RRDDRRDDRRD"

// BFSSuite exercises both strategies under various scenarios.
type BFSSuite struct {
	suite.Suite
}

func TestBFSSuite(t *testing.T) {
	suite.Run(t, new(BFSSuite))
}

func (s *BFSSuite) mustParse(rows ...string) *grid.Grid {
	g, err := grid.Parse(rows)
	require.NoError(s.T(), err)
	return g
}

// TestErrors verifies that invalid inputs and options are rejected.
func (s *BFSSuite) TestErrors() {
	require := require.New(s.T())

	_, err := bfs.FindShortestPath(nil)
	require.ErrorIs(err, bfs.ErrGridNil)

	_, err = bfs.FindShortestPath(s.mustParse("  E"))
	require.ErrorIs(err, bfs.ErrStartNotFound)

	_, err = bfs.FindShortestPath(s.mustParse("S  "))
	require.ErrorIs(err, bfs.ErrEndNotFound)

	g := s.mustParse("S E")
	_, err = bfs.FindShortestPath(g, bfs.WithMaxDepth(-1))
	require.ErrorIs(err, bfs.ErrOptionViolation)

	_, err = bfs.FindShortestPath(g, bfs.WithStrategy(bfs.Strategy(9)))
	require.ErrorIs(err, bfs.ErrOptionViolation)
}

// TestSampleMaze checks the fixed 7×7 maze under both strategies.
func (s *BFSSuite) TestSampleMaze() {
	for _, st := range []bfs.Strategy{bfs.Pruned, bfs.Exhaustive} {
		s.Run(st.String(), func() {
			res, err := bfs.Search(samples.Maze(), bfs.WithStrategy(st))
			require.NoError(s.T(), err)
			require.Equal(s.T(), mazeShortest, res.Path.String())
			require.Equal(s.T(), st, res.Strategy)
			require.Equal(s.T(), grid.Point{X: 6, Y: 5}, res.End)
		})
	}
}

// TestExhaustiveRevisits confirms the exhaustive frontier re-explores cells:
// it dequeues far more items than the maze has cells.
func (s *BFSSuite) TestExhaustiveRevisits() {
	g := samples.Maze()
	pruned, err := bfs.Search(g)
	require.NoError(s.T(), err)
	require.LessOrEqual(s.T(), pruned.Expanded, g.Len())

	exhaustive, err := bfs.Search(g, bfs.WithStrategy(bfs.Exhaustive))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1583, exhaustive.Expanded)
	require.Greater(s.T(), exhaustive.Enqueued, exhaustive.Expanded)
}

// TestAdjacent covers the one-move case and move-order tie-breaking.
func (s *BFSSuite) TestAdjacent() {
	path, err := bfs.FindShortestPath(s.mustParse("SE"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), "R", path.String())

	// Two equally short routes: down-then-right beats right-then-down.
	g := s.mustParse(
		"S ",
		" E",
	)
	for _, st := range []bfs.Strategy{bfs.Pruned, bfs.Exhaustive} {
		path, err = bfs.FindShortestPath(g, bfs.WithStrategy(st))
		require.NoError(s.T(), err)
		require.Equal(s.T(), "DR", path.String(), st.String())
	}
}

// TestUnreachable ensures neither strategy hangs when the end is walled off.
func (s *BFSSuite) TestUnreachable() {
	g := s.mustParse(
		"S #  ",
		"  # E",
	)
	for _, st := range []bfs.Strategy{bfs.Pruned, bfs.Exhaustive} {
		_, err := bfs.FindShortestPath(g, bfs.WithStrategy(st))
		require.ErrorIs(s.T(), err, bfs.ErrNoPath, st.String())
	}
}

// TestMaxDepth verifies a cap just below and at the shortest length.
func (s *BFSSuite) TestMaxDepth() {
	g := samples.Maze()
	n := len(mazeShortest)
	for _, st := range []bfs.Strategy{bfs.Pruned, bfs.Exhaustive} {
		_, err := bfs.FindShortestPath(g, bfs.WithStrategy(st), bfs.WithMaxDepth(n-1))
		require.ErrorIs(s.T(), err, bfs.ErrNoPath, st.String())

		path, err := bfs.FindShortestPath(g, bfs.WithStrategy(st), bfs.WithMaxDepth(n))
		require.NoError(s.T(), err, st.String())
		require.Equal(s.T(), mazeShortest, path.String())

		path, err = bfs.FindShortestPath(g, bfs.WithStrategy(st), bfs.WithMaxDepth(0))
		require.NoError(s.T(), err, st.String())
		require.Equal(s.T(), mazeShortest, path.String())
	}
}

// TestContextCancellation checks that a cancelled context aborts the search.
func (s *BFSSuite) TestContextCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, st := range []bfs.Strategy{bfs.Pruned, bfs.Exhaustive} {
		_, err := bfs.Search(samples.Maze(), bfs.WithStrategy(st), bfs.WithContext(ctx))
		require.ErrorIs(s.T(), err, context.Canceled, st.String())
	}
}

// TestHooks verifies enqueue/dequeue callbacks fire once per frontier item.
func (s *BFSSuite) TestHooks() {
	var enq, deq int
	var first grid.Point
	res, err := bfs.Search(samples.Maze(),
		bfs.WithOnEnqueue(func(grid.Point, int) { enq++ }),
		bfs.WithOnDequeue(func(p grid.Point, d int) {
			if deq == 0 {
				first = p
				require.Zero(s.T(), d)
			}
			deq++
		}),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), res.Enqueued, enq)
	require.Equal(s.T(), res.Expanded, deq)
	require.Equal(s.T(), res.Start, first)
}

// TestRandomGrids compares path length with a reference BFS and replays
// every returned path.
func (s *BFSSuite) TestRandomGrids() {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		w, h := 2+rnd.Intn(10), 2+rnd.Intn(10)
		g := randomMaze(s.T(), rnd, w, h, 0.3)
		want := referenceDistance(g)

		path, err := bfs.FindShortestPath(g)
		if want < 0 {
			require.ErrorIs(s.T(), err, bfs.ErrNoPath)
			continue
		}
		require.NoError(s.T(), err)
		require.Len(s.T(), path, want, "grid:\n%s", g)
		assertReachesEnd(s.T(), g, path)
	}
}

// TestStrategiesAgree checks that Exhaustive returns exactly the Pruned path
// on grids small enough for exhaustive search.
func (s *BFSSuite) TestStrategiesAgree() {
	rnd := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		g := randomMaze(s.T(), rnd, 4, 4, 0.25)
		pruned, errP := bfs.FindShortestPath(g)
		exhaustive, errE := bfs.FindShortestPath(g, bfs.WithStrategy(bfs.Exhaustive))
		if errP != nil {
			require.ErrorIs(s.T(), errP, bfs.ErrNoPath)
			require.ErrorIs(s.T(), errE, bfs.ErrNoPath)
			continue
		}
		require.NoError(s.T(), errE)
		require.Equal(s.T(), pruned.String(), exhaustive.String(), "grid:\n%s", g)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, st := range []bfs.Strategy{bfs.Pruned, bfs.Exhaustive} {
		got, err := bfs.ParseStrategy(st.String())
		require.NoError(t, err)
		require.Equal(t, st, got)
	}
	_, err := bfs.ParseStrategy("greedy")
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}
