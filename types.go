package gridpath

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Move and Point are re-exported from gridgraph for callers of this package.
type (
	Move  = gridgraph.Move
	Point = gridgraph.Point
)

// Move codes.
const (
	West  = gridgraph.West
	North = gridgraph.North
	East  = gridgraph.East
	South = gridgraph.South
)

// Params is the full input of one search.
// ObstacleXs[i] pairs with ObstacleYs[i].
type Params struct {
	Start, End    Point
	Width, Height int
	BranchFactor  int
	MaxIterations int
	StepParam     float64
	ObstacleXs    []int
	ObstacleYs    []int
}

// Strategy selects the planner.
type Strategy int

const (
	// StrategyBFS is breadth-first search (default).
	StrategyBFS Strategy = iota
	// StrategyAStar is A* with a Manhattan heuristic.
	StrategyAStar
	// StrategyGenetic is the evolutionary planner.
	StrategyGenetic
)

// String returns the strategy's wire name.
func (s Strategy) String() string {
	switch s {
	case StrategyBFS:
		return "bfs"
	case StrategyAStar:
		return "astar"
	case StrategyGenetic:
		return "genetic"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a wire name (case-insensitive) to a Strategy.
// The empty string selects StrategyBFS.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bfs":
		return StrategyBFS, nil
	case "astar", "a*":
		return StrategyAStar, nil
	case "genetic", "ga":
		return StrategyGenetic, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Status classifies the outcome of a search. Only StatusFound carries moves.
type Status int

const (
	// StatusFound: Moves lead from Start to End.
	StatusFound Status = iota
	// StatusSameCell: Start equals End; zero moves are needed.
	StatusSameCell
	// StatusUnreachable: no route exists on this grid.
	StatusUnreachable
	// StatusExhausted: the iteration budget ran out before a route was found.
	StatusExhausted
	// StatusBlockedEndpoint: Start or End is itself an obstacle.
	StatusBlockedEndpoint
)

// String returns the status' wire name.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusSameCell:
		return "same_cell"
	case StatusUnreachable:
		return "unreachable"
	case StatusExhausted:
		return "exhausted"
	case StatusBlockedEndpoint:
		return "blocked_endpoint"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of Search.
type Result struct {
	// Moves is non-empty only for StatusFound; never nil.
	Moves    []Move
	Status   Status
	Strategy Strategy
	// Expanded counts dequeued cells for bfs/astar and generations run for genetic.
	Expanded int
	// Seed is the RNG seed used by the genetic strategy.
	Seed int64
}

// Option configures Search.
type Option func(*Options)

// Options holds Search configuration.
type Options struct {
	Strategy     Strategy
	Seed         int64
	HasSeed      bool
	GenomeLength int
	OnVisit      func(p Point, depth int)
}

// DefaultOptions returns BFS with a derived seed and default genome length.
func DefaultOptions() Options {
	return Options{Strategy: StrategyBFS}
}

// WithStrategy selects the planner.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithSeed fixes the genetic RNG seed instead of deriving it from the inputs.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.HasSeed = true
	}
}

// WithGenomeLength overrides the genetic genome length (default 2·(W+H)).
func WithGenomeLength(n int) Option {
	return func(o *Options) { o.GenomeLength = n }
}

// WithOnVisit registers a callback for every cell the BFS strategy expands.
// Other strategies ignore it.
func WithOnVisit(fn func(p Point, depth int)) Option {
	return func(o *Options) { o.OnVisit = fn }
}
