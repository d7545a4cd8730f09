package gridpath_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var strategies = []gridpath.Strategy{gridpath.StrategyBFS, gridpath.StrategyAStar, gridpath.StrategyGenetic}

func params(w, h int, start, end gridpath.Point, xs, ys []int) gridpath.Params {
	return gridpath.Params{
		Start: start, End: end,
		Width: w, Height: h,
		BranchFactor:  20,
		MaxIterations: 1000,
		StepParam:     0.05,
		ObstacleXs:    xs,
		ObstacleYs:    ys,
	}
}

// walkTo replays moves and asserts they stay legal and finish on end.
func walkTo(t *testing.T, p gridpath.Params, moves []gridpath.Move) {
	t.Helper()
	g, err := gridgraph.New(p.Width, p.Height, p.ObstacleXs, p.ObstacleYs)
	require.NoError(t, err)
	trail, err := g.Walk(p.Start, moves)
	require.NoError(t, err)
	assert.Equal(t, p.End, trail[len(trail)-1])
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestFindPath_Validation(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*gridpath.Params)
		err  error
	}{
		{"Mismatched", func(p *gridpath.Params) { p.ObstacleXs = []int{1, 2} }, gridpath.ErrMismatchedObstacles},
		{"ZeroWidth", func(p *gridpath.Params) { p.Width = 0 }, gridpath.ErrBadDimensions},
		{"NegativeHeight", func(p *gridpath.Params) { p.Height = -3 }, gridpath.ErrBadDimensions},
		{"ZeroBranch", func(p *gridpath.Params) { p.BranchFactor = 0 }, gridpath.ErrBadBranchFactor},
		{"ZeroIterations", func(p *gridpath.Params) { p.MaxIterations = 0 }, gridpath.ErrBadIterations},
		{"StepTooLarge", func(p *gridpath.Params) { p.StepParam = 1.5 }, gridpath.ErrBadStepParam},
		{"StepNaN", func(p *gridpath.Params) { p.StepParam = math.NaN() }, gridpath.ErrBadStepParam},
		{"StartOutside", func(p *gridpath.Params) { p.Start = gridpath.Point{X: 5, Y: 0} }, gridpath.ErrOutOfBounds},
		{"EndNegative", func(p *gridpath.Params) { p.End = gridpath.Point{X: 0, Y: -1} }, gridpath.ErrOutOfBounds},
		{"ObstacleOutside", func(p *gridpath.Params) { p.ObstacleXs, p.ObstacleYs = []int{9}, []int{0} }, gridpath.ErrObstacleOutOfRange},
		{"AreaOverflows", func(p *gridpath.Params) { p.Width, p.Height = 1<<32, 1<<32 }, gridpath.ErrBadDimensions},
		{"AreaTooLarge", func(p *gridpath.Params) { p.Width, p.Height = 1<<20, 1<<20 }, gridpath.ErrBadDimensions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := params(5, 5, gridpath.Point{}, gridpath.Point{X: 4, Y: 4}, []int{2}, []int{2})
			tc.mut(&p)
			_, err := gridpath.Search(context.Background(), p)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, gridpath.ErrInvalidInput)
		})
	}

	_, err := gridpath.Search(context.Background(),
		params(3, 3, gridpath.Point{}, gridpath.Point{X: 2, Y: 2}, nil, nil),
		gridpath.WithStrategy(gridpath.Strategy(9)))
	assert.ErrorIs(t, err, gridpath.ErrUnknownStrategy)

	_, err = gridpath.Search(context.Background(),
		params(3, 3, gridpath.Point{}, gridpath.Point{X: 2, Y: 2}, nil, nil),
		gridpath.WithGenomeLength(-1))
	assert.ErrorIs(t, err, gridpath.ErrBadGenomeLength)

	assert.NotPanics(t, func() {
		moves, err := gridpath.FindPath(0, 0, 1, 0, 1<<32, 1<<32, 1, 10, 0, nil, nil)
		assert.ErrorIs(t, err, gridpath.ErrBadDimensions)
		assert.Nil(t, moves)
	})
}

//----------------------------------------------------------------------------//
// Testable properties
//----------------------------------------------------------------------------//

// TestFindPath_Reflexive: start == end yields no moves for every strategy.
func TestFindPath_Reflexive(t *testing.T) {
	for _, s := range strategies {
		p := params(4, 4, gridpath.Point{X: 2, Y: 1}, gridpath.Point{X: 2, Y: 1}, nil, nil)
		res, err := gridpath.Search(context.Background(), p, gridpath.WithStrategy(s))
		require.NoError(t, err, s.String())
		assert.Equal(t, gridpath.StatusSameCell, res.Status, s.String())
		assert.NotNil(t, res.Moves)
		assert.Empty(t, res.Moves)
	}
}

// TestFindPath_Corners: corner to corner on an open grid is Manhattan-long.
func TestFindPath_Corners(t *testing.T) {
	for _, s := range []gridpath.Strategy{gridpath.StrategyBFS, gridpath.StrategyAStar} {
		p := params(7, 4, gridpath.Point{}, gridpath.Point{X: 6, Y: 3}, nil, nil)
		res, err := gridpath.Search(context.Background(), p, gridpath.WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, gridpath.StatusFound, res.Status)
		assert.Len(t, res.Moves, 9, s.String())
		walkTo(t, p, res.Moves)

		back := params(7, 4, gridpath.Point{X: 6, Y: 3}, gridpath.Point{}, nil, nil)
		res, err = gridpath.Search(context.Background(), back, gridpath.WithStrategy(s))
		require.NoError(t, err)
		assert.Len(t, res.Moves, 9, s.String())
		walkTo(t, back, res.Moves)
	}
}

// TestFindPath_Detour: column 1 blocked on rows 0–3 forces a route via row 4.
// Down 4, across 4 and up 4 is the shortest possible: 12 moves.
func TestFindPath_Detour(t *testing.T) {
	xs, ys := []int{1, 1, 1, 1}, []int{0, 1, 2, 3}
	moves, err := gridpath.FindPath(0, 0, 4, 0, 5, 5, 20, 1000, 0.05, xs, ys)
	require.NoError(t, err)
	want := []gridpath.Move{
		gridpath.South, gridpath.South, gridpath.South, gridpath.South,
		gridpath.East, gridpath.East,
		gridpath.North, gridpath.North, gridpath.North, gridpath.North,
		gridpath.East, gridpath.East,
	}
	assert.Equal(t, want, moves)

	p := params(5, 5, gridpath.Point{}, gridpath.Point{X: 4, Y: 0}, xs, ys)
	walkTo(t, p, moves)
	for _, s := range strategies {
		res, err := gridpath.Search(context.Background(), p, gridpath.WithStrategy(s))
		require.NoError(t, err)
		if res.Status == gridpath.StatusFound {
			walkTo(t, p, res.Moves)
		}
		if s != gridpath.StrategyGenetic {
			assert.Len(t, res.Moves, 12, s.String())
		}
	}
}

// TestFindPath_NoPath: a fully blocked column separates start and end.
func TestFindPath_NoPath(t *testing.T) {
	xs, ys := []int{1, 1, 1}, []int{0, 1, 2}
	moves, err := gridpath.FindPath(0, 1, 2, 1, 3, 3, 20, 1000, 0.05, xs, ys)
	require.NoError(t, err)
	assert.NotNil(t, moves)
	assert.Empty(t, moves)

	for _, s := range strategies {
		res, err := gridpath.Search(context.Background(),
			params(3, 3, gridpath.Point{X: 0, Y: 1}, gridpath.Point{X: 2, Y: 1}, xs, ys),
			gridpath.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, gridpath.StatusUnreachable, res.Status, s.String())
		assert.Zero(t, res.Expanded, "region check short-circuits the search")
	}
}

func TestFindPath_BlockedEndpoint(t *testing.T) {
	res, err := gridpath.Search(context.Background(),
		params(4, 4, gridpath.Point{}, gridpath.Point{X: 3, Y: 3}, []int{3}, []int{3}))
	require.NoError(t, err)
	assert.Equal(t, gridpath.StatusBlockedEndpoint, res.Status)
	assert.Empty(t, res.Moves)

	res, err = gridpath.Search(context.Background(),
		params(4, 4, gridpath.Point{}, gridpath.Point{X: 3, Y: 3}, []int{0}, []int{0}))
	require.NoError(t, err)
	assert.Equal(t, gridpath.StatusBlockedEndpoint, res.Status)
}

// TestFindPath_Exhausted: a budget too small to reach the goal returns no
// moves and is distinguishable from unreachable.
func TestFindPath_Exhausted(t *testing.T) {
	p := params(40, 40, gridpath.Point{}, gridpath.Point{X: 39, Y: 39}, nil, nil)
	p.MaxIterations = 50
	for _, s := range []gridpath.Strategy{gridpath.StrategyBFS, gridpath.StrategyAStar} {
		res, err := gridpath.Search(context.Background(), p, gridpath.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, gridpath.StatusExhausted, res.Status, s.String())
		assert.Empty(t, res.Moves)
		assert.Equal(t, 50, res.Expanded)
	}
}

// TestFindPath_Deterministic: identical calls give identical results.
func TestFindPath_Deterministic(t *testing.T) {
	xs := []int{3, 3, 3, 3, 3, 6, 6, 6, 6, 6}
	ys := []int{0, 1, 2, 3, 4, 2, 3, 4, 5, 6}
	p := params(9, 7, gridpath.Point{X: 0, Y: 0}, gridpath.Point{X: 8, Y: 6}, xs, ys)
	for _, s := range strategies {
		first, err := gridpath.Search(context.Background(), p, gridpath.WithStrategy(s))
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			again, err := gridpath.Search(context.Background(), p, gridpath.WithStrategy(s))
			require.NoError(t, err)
			assert.Equal(t, first, again, s.String())
		}
	}
	assert.Equal(t, gridpath.DeriveSeed(p), gridpath.DeriveSeed(p))
	q := p
	q.StepParam = 0.06
	assert.NotEqual(t, gridpath.DeriveSeed(p), gridpath.DeriveSeed(q))
}

func TestSearch_GeneticSeed(t *testing.T) {
	p := params(6, 6, gridpath.Point{}, gridpath.Point{X: 3, Y: 2}, nil, nil)
	res, err := gridpath.Search(context.Background(), p,
		gridpath.WithStrategy(gridpath.StrategyGenetic), gridpath.WithSeed(7), gridpath.WithGenomeLength(16))
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.Seed)
	require.Equal(t, gridpath.StatusFound, res.Status)
	walkTo(t, p, res.Moves)
}

func TestSearch_OnVisit(t *testing.T) {
	p := params(3, 1, gridpath.Point{}, gridpath.Point{X: 2, Y: 0}, nil, nil)
	var seen []gridpath.Point
	res, err := gridpath.Search(context.Background(), p, gridpath.WithOnVisit(func(c gridpath.Point, _ int) {
		seen = append(seen, c)
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Expanded)
	assert.Equal(t, []gridpath.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, seen)
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := params(10, 10, gridpath.Point{}, gridpath.Point{X: 9, Y: 9}, nil, nil)
	for _, s := range strategies {
		_, err := gridpath.Search(ctx, p, gridpath.WithStrategy(s))
		assert.True(t, errors.Is(err, context.Canceled), "%s: %v", s, err)
	}
}

// TestFindPath_Concurrent: calls share no state.
func TestFindPath_Concurrent(t *testing.T) {
	xs, ys := []int{1, 1, 1, 1}, []int{0, 1, 2, 3}
	want, err := gridpath.FindPath(0, 0, 4, 0, 5, 5, 20, 1000, 0.05, xs, ys)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := gridpath.FindPath(0, 0, 4, 0, 5, 5, 20, 1000, 0.05, xs, ys)
			if err != nil {
				errs <- err
				return
			}
			if len(got) != len(want) {
				errs <- errors.New("length mismatch")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]gridpath.Strategy{
		"": gridpath.StrategyBFS, "BFS": gridpath.StrategyBFS,
		"astar": gridpath.StrategyAStar, "a*": gridpath.StrategyAStar,
		" genetic ": gridpath.StrategyGenetic, "ga": gridpath.StrategyGenetic,
	} {
		got, err := gridpath.ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := gridpath.ParseStrategy("dijkstra")
	assert.ErrorIs(t, err, gridpath.ErrUnknownStrategy)
	assert.Equal(t, "astar", gridpath.StrategyAStar.String())
	assert.Equal(t, "exhausted", gridpath.StatusExhausted.String())
}
