package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestRegions_ColumnSplit verifies that a full obstacle column yields two regions.
func TestRegions_ColumnSplit(t *testing.T) {
	g, err := gridgraph.New(3, 3, []int{1, 1, 1}, []int{0, 1, 2})
	require.NoError(t, err)

	labels, count := g.Regions()
	assert.Equal(t, 2, count)
	left := labels[g.Index(gridgraph.Point{X: 0, Y: 0})]
	right := labels[g.Index(gridgraph.Point{X: 2, Y: 2})]
	assert.Equal(t, 0, left)
	assert.Equal(t, 1, right)
	assert.Equal(t, -1, labels[g.Index(gridgraph.Point{X: 1, Y: 1})])
}

// TestRegions_Empty verifies an obstacle-free grid is one region and a fully
// blocked grid has none.
func TestRegions_Empty(t *testing.T) {
	open, err := gridgraph.New(4, 2, nil, nil)
	require.NoError(t, err)
	_, count := open.Regions()
	assert.Equal(t, 1, count)

	full, err := gridgraph.New(2, 1, []int{0, 1}, []int{0, 0})
	require.NoError(t, err)
	_, count = full.Regions()
	assert.Equal(t, 0, count)
}

func TestConnected(t *testing.T) {
	g, err := gridgraph.New(5, 5, []int{1, 1, 1, 1}, []int{0, 1, 2, 3})
	require.NoError(t, err)

	assert.True(t, g.Connected(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 4, Y: 0}), "row 4 is open")
	assert.True(t, g.Connected(gridgraph.Point{X: 2, Y: 2}, gridgraph.Point{X: 2, Y: 2}))
	assert.False(t, g.Connected(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 1, Y: 0}), "blocked endpoint")
	assert.False(t, g.Connected(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 9, Y: 0}), "off grid")

	closed, err := gridgraph.New(3, 3, []int{1, 1, 1}, []int{0, 1, 2})
	require.NoError(t, err)
	assert.False(t, closed.Connected(gridgraph.Point{X: 0, Y: 1}, gridgraph.Point{X: 2, Y: 1}))
}
