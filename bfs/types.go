// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOutOfBounds is returned when the start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("bfs: endpoint outside grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotFound is returned by Result.PathTo for cells the search never reached.
	ErrNotFound = errors.New("bfs: cell not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative budget), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// MaxIterations, if > 0, caps the number of dequeued cells.
	MaxIterations int

	// OnEnqueue is called when a cell is discovered, with its depth.
	OnEnqueue func(p gridgraph.Point, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(p gridgraph.Point, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p gridgraph.Point, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no iteration budget (MaxIterations == 0)
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(gridgraph.Point, int) {},
		OnDequeue: func(gridgraph.Point, int) {},
		OnVisit:   func(gridgraph.Point, int) error { return nil },
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

// WithMaxIterations caps the number of expansions.
//
//	n > 0: at most n cells are dequeued
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p gridgraph.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p gridgraph.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p gridgraph.Point, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// State is the lifecycle of a single search run.
type State int

const (
	// StateInitialized: start seeded, nothing expanded yet.
	StateInitialized State = iota
	// StateExpanding: at least one cell dequeued, goal not yet reached.
	StateExpanding
	// StateFound: the goal was dequeued.
	StateFound
	// StateExhausted: frontier empty or budget spent without reaching the goal.
	StateExhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateExpanding:
		return "expanding"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Done reports whether s is terminal.
func (s State) Done() bool {
	return s == StateFound || s == StateExhausted
}

// Result holds the outcome of a BFS run:
//   - Order: cells visited, in visit sequence.
//   - State: StateFound or StateExhausted.
//   - BudgetSpent: true when StateExhausted was caused by MaxIterations.
//   - Expanded: number of dequeued cells.
type Result struct {
	Start, Goal gridgraph.Point
	State       State
	BudgetSpent bool
	Expanded    int
	Order       []gridgraph.Point

	grid   *gridgraph.Grid
	depth  []int // -1 for undiscovered cells
	parent []int // -1 for start and undiscovered cells
}

// Found reports whether the goal was reached.
func (r *Result) Found() bool {
	return r.State == StateFound
}

// Depth returns the step distance from the start to p, if p was discovered.
func (r *Result) Depth(p gridgraph.Point) (int, bool) {
	if !r.grid.Contains(p) {
		return 0, false
	}
	d := r.depth[r.grid.Index(p)]
	return d, d >= 0
}

// PathTo reconstructs the cell route from the start to dest.
// Returns ErrNotFound if dest was not discovered.
func (r *Result) PathTo(dest gridgraph.Point) ([]gridgraph.Point, error) {
	if _, ok := r.Depth(dest); !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, dest)
	}
	// build reversed path
	path := []gridgraph.Point{}
	for at := r.grid.Index(dest); at >= 0; at = r.parent[at] {
		path = append(path, r.grid.PointAt(at))
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Moves returns the move sequence from the start to the goal.
// Returns ErrNotFound unless the goal was reached.
func (r *Result) Moves() ([]gridgraph.Move, error) {
	if !r.Found() {
		return nil, fmt.Errorf("%w: goal %v (%s)", ErrNotFound, r.Goal, r.State)
	}
	path, err := r.PathTo(r.Goal)
	if err != nil {
		return nil, err
	}
	moves, _ := gridgraph.MovesFromTrail(path)
	return moves, nil
}
