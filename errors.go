package gridpath

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the root of every validation failure; all the sentinels
// below wrap it, so errors.Is(err, ErrInvalidInput) matches any of them.
var ErrInvalidInput = errors.New("gridpath: invalid input")

// Validation sentinels. Each is returned wrapped with the offending values.
var (
	ErrMismatchedObstacles = fmt.Errorf("%w: obstacle arrays differ in length", ErrInvalidInput)
	ErrBadDimensions       = fmt.Errorf("%w: width and height must be positive", ErrInvalidInput)
	ErrBadBranchFactor     = fmt.Errorf("%w: branch factor must be positive", ErrInvalidInput)
	ErrBadIterations       = fmt.Errorf("%w: max iterations must be positive", ErrInvalidInput)
	ErrBadStepParam        = fmt.Errorf("%w: step parameter must lie in [0,1]", ErrInvalidInput)
	ErrOutOfBounds         = fmt.Errorf("%w: start or end outside grid", ErrInvalidInput)
	ErrObstacleOutOfRange  = fmt.Errorf("%w: obstacle outside grid", ErrInvalidInput)
	ErrUnknownStrategy     = fmt.Errorf("%w: unknown strategy", ErrInvalidInput)
	ErrBadGenomeLength     = fmt.Errorf("%w: genome length must be positive", ErrInvalidInput)
)

// ErrInvalidPath reports a route that failed replay verification. It signals
// an engine defect and is never returned together with moves.
var ErrInvalidPath = errors.New("gridpath: engine produced an invalid path")
