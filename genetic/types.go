// SPDX-License-Identifier: MIT
// Package: gridpath/genetic
//
// types.go — configuration, options and sentinel errors.

package genetic

import (
	"context"
	"errors"
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrInvalidConfig indicates a Config field outside its domain.
var ErrInvalidConfig = errors.New("genetic: invalid config")

// ErrNeedRandSource indicates that no RNG was supplied (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("genetic: rng is required")

// ErrGridNil indicates a nil grid.
var ErrGridNil = errors.New("genetic: grid is nil")

// ErrOutOfBounds indicates a start or goal outside the grid.
var ErrOutOfBounds = errors.New("genetic: endpoint outside grid")

// Config holds the evolutionary parameters.
type Config struct {
	// PopulationSize is the number of units per generation (≥1).
	PopulationSize int
	// Generations is the number of evaluate-and-breed rounds (≥1).
	Generations int
	// MutationRate is the per-gene probability of replacement, in [0,1].
	MutationRate float64
	// GenomeLength is the number of moves per unit (≥1).
	GenomeLength int
}

// DefaultGenomeLength returns 2·(width+height), long enough to cross the grid
// along both axes with room for detours.
func DefaultGenomeLength(width, height int) int {
	return 2 * (width + height)
}

// Option configures a planning run.
type Option func(*options)

type options struct {
	ctx context.Context
	rng *rand.Rand
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("genetic: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithContext sets a context checked once per generation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Result is the outcome of Plan.
type Result struct {
	Moves []gridgraph.Move
	Found bool
	// Generation is the 1-based generation that produced Moves, 0 if none.
	Generation int
	// BestFitness is the highest fitness seen in the final generation.
	BestFitness float64
}
