package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrGridNil indicates that a nil *gridgraph.Grid was passed.
	ErrGridNil = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates that start or goal is outside the grid.
	ErrOutOfBounds = errors.New("astar: endpoint outside grid")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining step count from a cell to the goal.
type Heuristic func(from, goal gridgraph.Point) int

// Manhattan is the default heuristic.
func Manhattan(from, goal gridgraph.Point) int {
	return from.Manhattan(goal)
}

// Options configures a search.
type Options struct {
	Ctx           context.Context
	MaxIterations int
	Heuristic     Heuristic

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns background context, no budget and Manhattan.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: Manhattan,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIterations caps the number of expanded cells; 0 disables the cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithHeuristic replaces the Manhattan heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// Result contains the outcome of a search.
type Result struct {
	Moves       []gridgraph.Move
	Cost        int
	Expanded    int
	Found       bool
	BudgetSpent bool
}
