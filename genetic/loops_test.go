package genetic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestCutLoops(t *testing.T) {
	p := func(x, y int) gridgraph.Point { return gridgraph.Point{X: x, Y: y} }

	// (0,0)→(1,0)→(1,1)→(0,1)→(0,0)→(0,1)→(0,2): both loops collapse
	in := []gridgraph.Point{p(0, 0), p(1, 0), p(1, 1), p(0, 1), p(0, 0), p(0, 1), p(0, 2)}
	assert.Equal(t, []gridgraph.Point{p(0, 0), p(0, 1), p(0, 2)}, cutLoops(in))

	// back-and-forth step
	in = []gridgraph.Point{p(2, 2), p(3, 2), p(2, 2), p(2, 3)}
	assert.Equal(t, []gridgraph.Point{p(2, 2), p(2, 3)}, cutLoops(in))

	straight := []gridgraph.Point{p(0, 0), p(1, 0), p(2, 0)}
	assert.Equal(t, straight, cutLoops(straight))
}
