package gridgraph

import "errors"

var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("gridgraph: width and height must be positive")
	// ErrMismatchedObstacles indicates obstacle x/y arrays of differing lengths.
	ErrMismatchedObstacles = errors.New("gridgraph: obstacle coordinate arrays differ in length")
	// ErrObstacleOutOfRange indicates an obstacle coordinate outside the grid.
	ErrObstacleOutOfRange = errors.New("gridgraph: obstacle outside grid")
	// ErrStepOutOfBounds indicates a walked move that leaves the grid.
	ErrStepOutOfBounds = errors.New("gridgraph: step leaves grid")
	// ErrStepBlocked indicates a walked move that lands on an obstacle.
	ErrStepBlocked = errors.New("gridgraph: step enters obstacle")
	// ErrBadMove indicates a move code outside West..South.
	ErrBadMove = errors.New("gridgraph: unknown move code")
	// ErrNoPath indicates no breach route exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
