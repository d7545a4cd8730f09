package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestStepper_StateMachine(t *testing.T) {
	g, err := gridgraph.New(3, 1, nil, nil)
	require.NoError(t, err)

	s, err := bfs.NewStepper(g, pt(0, 0), pt(2, 0))
	require.NoError(t, err)
	assert.Equal(t, bfs.StateInitialized, s.State())
	assert.Equal(t, []gridgraph.Point{pt(0, 0)}, s.Frontier())

	snap, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, bfs.StateExpanding, snap.State)
	assert.Equal(t, pt(0, 0), snap.Current)
	assert.Equal(t, 1, snap.Frontier)

	snap, err = s.Step()
	require.NoError(t, err)
	assert.Equal(t, pt(1, 0), snap.Current)
	assert.Equal(t, 1, snap.Depth)

	snap, err = s.Step()
	require.NoError(t, err)
	assert.Equal(t, bfs.StateFound, snap.State)
	assert.Equal(t, 3, snap.Expanded)
	assert.True(t, snap.State.Done())

	// terminal state is sticky
	again, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, bfs.StateFound, again.State)
	assert.Equal(t, 3, again.Expanded)

	moves, err := s.Result().Moves()
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Move{gridgraph.East, gridgraph.East}, moves)
}

func TestStepper_BudgetStop(t *testing.T) {
	g, err := gridgraph.New(5, 5, nil, nil)
	require.NoError(t, err)

	s, err := bfs.NewStepper(g, pt(0, 0), pt(4, 4), bfs.WithMaxIterations(2))
	require.NoError(t, err)

	var last bfs.Snapshot
	for !s.State().Done() {
		last, err = s.Step()
		require.NoError(t, err)
	}
	assert.Equal(t, bfs.StateExhausted, last.State)
	assert.True(t, last.BudgetSpent)
	assert.Equal(t, 2, last.Expanded)
	assert.Equal(t, "exhausted", last.State.String())
}
