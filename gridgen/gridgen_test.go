package gridgen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgen"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestBuild_Validation(t *testing.T) {
	_, err := gridgen.Build(0, 3, nil)
	assert.ErrorIs(t, err, gridgen.ErrBadDimensions)

	_, err = gridgen.Build(3, 3, nil, nil)
	assert.ErrorIs(t, err, gridgen.ErrConstructFailed)

	_, err = gridgen.Build(3, 3, nil, gridgen.Column(3, 0, 1))
	assert.ErrorIs(t, err, gridgen.ErrOutOfRange)

	_, err = gridgen.Build(3, 3, nil, gridgen.Row(0, 2, 1))
	assert.ErrorIs(t, err, gridgen.ErrOutOfRange)

	_, err = gridgen.Build(3, 3, nil, gridgen.Ring(gridgraph.Point{X: 1, Y: 1}, 0))
	assert.ErrorIs(t, err, gridgen.ErrOutOfRange)

	_, err = gridgen.Build(3, 3, nil, gridgen.RandomSparse(1.5))
	assert.ErrorIs(t, err, gridgen.ErrInvalidProbability)

	_, err = gridgen.Build(3, 3, nil, gridgen.RandomSparse(math.NaN()))
	assert.ErrorIs(t, err, gridgen.ErrInvalidProbability)

	_, err = gridgen.Build(3, 3, nil, gridgen.RandomSparse(0.5))
	assert.ErrorIs(t, err, gridgen.ErrNeedRandSource)

	assert.Panics(t, func() { gridgen.WithRand(nil) })
}

func TestColumnAndRow(t *testing.T) {
	l, err := gridgen.Build(5, 5, nil, gridgen.Column(1, 0, 3), gridgen.Row(4, 3, 4))
	require.NoError(t, err)

	assert.Equal(t, 6, l.Count())
	assert.Equal(t, []int{1, 1, 1, 1, 3, 4}, l.Xs())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 4}, l.Ys())
	assert.True(t, l.Wall(1, 3))
	assert.False(t, l.Wall(1, 4))
	assert.False(t, l.Wall(-1, 0))
}

func TestRing_ClipsAndClears(t *testing.T) {
	c := gridgraph.Point{X: 0, Y: 0}
	l, err := gridgen.Build(4, 4, []gridgen.Option{gridgen.WithClear(gridgraph.Point{X: 1, Y: 1})},
		gridgen.Ring(c, 1))
	require.NoError(t, err)

	// Outline around the corner is (1,0), (0,1), (1,1); (1,1) is kept clear.
	assert.Equal(t, 2, l.Count())
	assert.True(t, l.Wall(1, 0))
	assert.True(t, l.Wall(0, 1))
	assert.False(t, l.Wall(1, 1))
	assert.False(t, l.Wall(0, 0))
}

func TestRandomSparse_Deterministic(t *testing.T) {
	keep := []gridgraph.Point{{X: 0, Y: 0}, {X: 19, Y: 19}}
	build := func() *gridgen.Layout {
		l, err := gridgen.Build(20, 20,
			[]gridgen.Option{gridgen.WithSeed(5), gridgen.WithClear(keep...)},
			gridgen.RandomSparse(0.3))
		require.NoError(t, err)
		return l
	}
	a, b := build(), build()
	assert.Equal(t, a.Xs(), b.Xs())
	assert.Equal(t, a.Ys(), b.Ys())
	assert.False(t, a.Wall(0, 0))
	assert.False(t, a.Wall(19, 19))
	assert.InDelta(t, 120, a.Count(), 60)

	full, err := gridgen.Build(3, 2, nil, gridgen.RandomSparse(1))
	require.NoError(t, err)
	assert.Equal(t, 6, full.Count())

	empty, err := gridgen.Build(3, 2, nil, gridgen.RandomSparse(0))
	require.NoError(t, err)
	assert.Zero(t, empty.Count())
}

func TestLayout_Grid(t *testing.T) {
	l, err := gridgen.Build(5, 5, nil, gridgen.Column(1, 0, 3))
	require.NoError(t, err)
	g, err := l.Grid()
	require.NoError(t, err)
	assert.Equal(t, 4, g.ObstacleCount())
	assert.True(t, g.Blocked(gridgraph.Point{X: 1, Y: 2}))
}
