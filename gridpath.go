package gridpath

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/genetic"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// FindPath is the flat call contract: it searches with BFS and returns the
// move codes leading from (startX,startY) to (endX,endY).
//
// An empty, non-nil slice with a nil error means no moves: start equals end,
// an endpoint is an obstacle, the goal is unreachable, or maxIterations
// expansions were spent. Use Search to tell these apart.
// Invalid input returns an error wrapping ErrInvalidInput.
func FindPath(
	startX, startY, endX, endY int,
	width, height int,
	branchFactor, maxIterations int,
	stepParam float64,
	obstacleXs, obstacleYs []int,
) ([]Move, error) {
	res, err := Search(context.Background(), Params{
		Start:         Point{X: startX, Y: startY},
		End:           Point{X: endX, Y: endY},
		Width:         width,
		Height:        height,
		BranchFactor:  branchFactor,
		MaxIterations: maxIterations,
		StepParam:     stepParam,
		ObstacleXs:    obstacleXs,
		ObstacleYs:    obstacleYs,
	})
	if err != nil {
		return nil, err
	}
	return res.Moves, nil
}

// Search validates p, builds the grid and runs the selected strategy.
//
// Behavior:
//  1. Validate every parameter; fail with an ErrInvalidInput-wrapped error.
//  2. Start == End → StatusSameCell.
//  3. Start or End blocked → StatusBlockedEndpoint.
//  4. Start and End in different free regions → StatusUnreachable.
//  5. Run the strategy; a budget stop is StatusExhausted.
//  6. Replay the route; a failed replay is ErrInvalidPath.
//
// ctx is checked once per expansion (bfs/astar) or generation (genetic).
func Search(ctx context.Context, p Params, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	g, err := Validate(p, o)
	if err != nil {
		return Result{}, err
	}

	res := Result{Moves: []Move{}, Strategy: o.Strategy}
	switch {
	case p.Start == p.End:
		res.Status = StatusSameCell
		return res, nil
	case g.Blocked(p.Start) || g.Blocked(p.End):
		res.Status = StatusBlockedEndpoint
		return res, nil
	case !g.Connected(p.Start, p.End):
		res.Status = StatusUnreachable
		return res, nil
	}

	switch o.Strategy {
	case StrategyAStar:
		err = runAStar(ctx, g, p, &res)
	case StrategyGenetic:
		err = runGenetic(ctx, g, p, o, &res)
	default:
		err = runBFS(ctx, g, p, o, &res)
	}
	if err != nil {
		return Result{}, err
	}

	if res.Status == StatusFound {
		if err = verify(g, p.Start, p.End, res.Moves); err != nil {
			return Result{}, err
		}
	}
	return res, nil
}

// Validate checks p and o and returns the grid they describe.
// Checks run in a fixed order so the first failing rule is reported.
func Validate(p Params, o Options) (*gridgraph.Grid, error) {
	switch {
	case len(p.ObstacleXs) != len(p.ObstacleYs):
		return nil, fmt.Errorf("%w: %d xs, %d ys", ErrMismatchedObstacles, len(p.ObstacleXs), len(p.ObstacleYs))
	case p.Width <= 0 || p.Height <= 0:
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, p.Width, p.Height)
	case p.Width > gridgraph.MaxCells/p.Height:
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrBadDimensions, p.Width, p.Height, gridgraph.MaxCells)
	case p.BranchFactor <= 0:
		return nil, fmt.Errorf("%w: got %d", ErrBadBranchFactor, p.BranchFactor)
	case p.MaxIterations <= 0:
		return nil, fmt.Errorf("%w: got %d", ErrBadIterations, p.MaxIterations)
	case math.IsNaN(p.StepParam) || p.StepParam < 0 || p.StepParam > 1:
		return nil, fmt.Errorf("%w: got %v", ErrBadStepParam, p.StepParam)
	case o.Strategy < StrategyBFS || o.Strategy > StrategyGenetic:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, o.Strategy)
	case o.GenomeLength < 0:
		return nil, fmt.Errorf("%w: got %d", ErrBadGenomeLength, o.GenomeLength)
	}
	g, err := gridgraph.New(p.Width, p.Height, p.ObstacleXs, p.ObstacleYs)
	if err != nil {
		switch {
		case errors.Is(err, gridgraph.ErrObstacleOutOfRange):
			return nil, fmt.Errorf("%w: %v", ErrObstacleOutOfRange, err)
		case errors.Is(err, gridgraph.ErrBadDimensions):
			return nil, fmt.Errorf("%w: %v", ErrBadDimensions, err)
		}
		return nil, err
	}
	if !g.Contains(p.Start) || !g.Contains(p.End) {
		return nil, fmt.Errorf("%w: %v→%v in %dx%d", ErrOutOfBounds, p.Start, p.End, p.Width, p.Height)
	}
	return g, nil
}

func runBFS(ctx context.Context, g *gridgraph.Grid, p Params, o Options, res *Result) error {
	bopts := []bfs.Option{bfs.WithContext(ctx), bfs.WithMaxIterations(p.MaxIterations)}
	if o.OnVisit != nil {
		visit := o.OnVisit
		bopts = append(bopts, bfs.WithOnVisit(func(c gridgraph.Point, d int) error {
			visit(c, d)
			return nil
		}))
	}
	out, err := bfs.BFS(g, p.Start, p.End, bopts...)
	if err != nil {
		return err
	}
	res.Expanded = out.Expanded
	if !out.Found() {
		res.Status = exhaustedOrUnreachable(out.BudgetSpent)
		return nil
	}
	moves, err := out.Moves()
	if err != nil {
		return err
	}
	res.Moves = moves
	res.Status = StatusFound
	return nil
}

func runAStar(ctx context.Context, g *gridgraph.Grid, p Params, res *Result) error {
	out, err := astar.Search(g, p.Start, p.End, astar.WithContext(ctx), astar.WithMaxIterations(p.MaxIterations))
	if err != nil {
		return err
	}
	res.Expanded = out.Expanded
	if !out.Found {
		res.Status = exhaustedOrUnreachable(out.BudgetSpent)
		return nil
	}
	res.Moves = out.Moves
	res.Status = StatusFound
	return nil
}

func runGenetic(ctx context.Context, g *gridgraph.Grid, p Params, o Options, res *Result) error {
	seed := o.Seed
	if !o.HasSeed {
		seed = DeriveSeed(p)
	}
	genome := o.GenomeLength
	if genome == 0 {
		genome = genetic.DefaultGenomeLength(p.Width, p.Height)
	}
	cfg := genetic.Config{
		PopulationSize: p.BranchFactor,
		Generations:    p.MaxIterations,
		MutationRate:   p.StepParam,
		GenomeLength:   genome,
	}
	out, err := genetic.Plan(g, p.Start, p.End, cfg, genetic.WithSeed(seed), genetic.WithContext(ctx))
	if err != nil {
		return err
	}
	res.Seed = seed
	res.Expanded = p.MaxIterations
	if !out.Found {
		// region check already proved reachability; the population simply failed
		res.Status = StatusExhausted
		return nil
	}
	res.Moves = out.Moves
	res.Status = StatusFound
	return nil
}

func exhaustedOrUnreachable(budgetSpent bool) Status {
	if budgetSpent {
		return StatusExhausted
	}
	return StatusUnreachable
}

// verify replays moves and requires the walk to end on end.
func verify(g *gridgraph.Grid, start, end Point, moves []Move) error {
	trail, err := g.Walk(start, moves)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	if last := trail[len(trail)-1]; last != end {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, end)
	}
	return nil
}

// DeriveSeed hashes every input of p with FNV-1a so that identical inputs
// always seed the genetic planner identically.
func DeriveSeed(p Params) int64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	for _, v := range []int{p.Start.X, p.Start.Y, p.End.X, p.End.Y, p.Width, p.Height, p.BranchFactor, p.MaxIterations} {
		put(uint64(v))
	}
	put(math.Float64bits(p.StepParam))
	put(uint64(len(p.ObstacleXs)))
	for i := range p.ObstacleXs {
		put(uint64(p.ObstacleXs[i]))
		put(uint64(p.ObstacleYs[i]))
	}
	return int64(h.Sum64())
}
