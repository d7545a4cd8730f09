// SPDX-License-Identifier: MIT
// Package: gridpath/genetic
//
// genetic.go — population replay, selection, crossover and mutation.

package genetic

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// File-local constants (no magic literals).
const (
	fitnessScale   = 100.0
	rouletteSlack  = 0.0001
	mutationMin    = 0.0
	mutationMax    = 1.0
	moveAlphabetSz = 4
)

// unit is one member of the population.
type unit struct {
	genome []gridgraph.Move
	pos    gridgraph.Point
}

// population holds one planning run's mutable state.
type population struct {
	grid  *gridgraph.Grid
	start gridgraph.Point
	goal  gridgraph.Point
	cfg   Config
	rng   *rand.Rand
	units []unit

	best     []gridgraph.Move
	bestGen  int
	fits     []float64
	trail    []gridgraph.Point // scratch for the current replay
	nextGens [][]gridgraph.Move
}

// Plan evolves routes from start to goal on g.
// Returns ErrGridNil, ErrOutOfBounds, ErrInvalidConfig, ErrNeedRandSource,
// or the context error. Not finding a route is reported via Result.Found.
func Plan(g *gridgraph.Grid, start, goal gridgraph.Point, cfg Config, opts ...Option) (Result, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if g == nil {
		return Result{}, ErrGridNil
	}
	if !g.Contains(start) || !g.Contains(goal) {
		return Result{}, fmt.Errorf("%w: %v→%v", ErrOutOfBounds, start, goal)
	}
	if err := validate(cfg); err != nil {
		return Result{}, err
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		return Result{}, ErrNeedRandSource
	}

	// 2) Trivial route needs no evolution.
	if start == goal {
		return Result{Moves: []gridgraph.Move{}, Found: true}, nil
	}

	// 3) Random initial population.
	p := newPopulation(g, start, goal, cfg, o.rng)

	var res Result
	for gen := 1; gen <= cfg.Generations; gen++ {
		if o.ctx != nil {
			if err := o.ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		p.evaluate(gen)
		res.BestFitness = p.maxFitness()
		if gen < cfg.Generations {
			p.breed()
		}
	}

	if p.best != nil {
		res.Moves = p.best
		res.Found = true
		res.Generation = p.bestGen
	}
	return res, nil
}

func validate(cfg Config) error {
	switch {
	case cfg.PopulationSize < 1:
		return fmt.Errorf("%w: PopulationSize=%d < 1", ErrInvalidConfig, cfg.PopulationSize)
	case cfg.Generations < 1:
		return fmt.Errorf("%w: Generations=%d < 1", ErrInvalidConfig, cfg.Generations)
	case cfg.GenomeLength < 1:
		return fmt.Errorf("%w: GenomeLength=%d < 1", ErrInvalidConfig, cfg.GenomeLength)
	case math.IsNaN(cfg.MutationRate) || cfg.MutationRate < mutationMin || cfg.MutationRate > mutationMax:
		return fmt.Errorf("%w: MutationRate=%.6f not in [%.1f,%.1f]",
			ErrInvalidConfig, cfg.MutationRate, mutationMin, mutationMax)
	}
	return nil
}

func newPopulation(g *gridgraph.Grid, start, goal gridgraph.Point, cfg Config, rng *rand.Rand) *population {
	p := &population{
		grid:     g,
		start:    start,
		goal:     goal,
		cfg:      cfg,
		rng:      rng,
		units:    make([]unit, cfg.PopulationSize),
		fits:     make([]float64, cfg.PopulationSize),
		trail:    make([]gridgraph.Point, 0, cfg.GenomeLength+1),
		nextGens: make([][]gridgraph.Move, cfg.PopulationSize),
	}
	for i := range p.units {
		genome := make([]gridgraph.Move, cfg.GenomeLength)
		for j := range genome {
			genome[j] = p.randomMove()
		}
		p.units[i].genome = genome
	}
	return p
}

func (p *population) randomMove() gridgraph.Move {
	return gridgraph.Move(p.rng.Intn(moveAlphabetSz))
}

// evaluate replays every genome from the start, scores the final cells and
// records any route that reached the goal.
func (p *population) evaluate(gen int) {
	for i := range p.units {
		u := &p.units[i]
		u.pos = p.start
		p.trail = append(p.trail[:0], p.start)
		arrived := false
		for _, m := range u.genome {
			next := u.pos.Add(m)
			if !p.grid.Passable(next) {
				continue // blocked: stand still
			}
			u.pos = next
			if !arrived {
				p.trail = append(p.trail, next)
				arrived = next == p.goal
			}
		}
		if arrived {
			p.consider(gen)
		}
		dx := float64(u.pos.X - p.goal.X)
		dy := float64(u.pos.Y - p.goal.Y)
		p.fits[i] = fitnessScale / math.Sqrt(dx*dx+dy*dy+1)
	}
}

// consider keeps the loop-free version of p.trail if it beats the best route.
func (p *population) consider(gen int) {
	trail := cutLoops(p.trail)
	if p.best != nil && len(trail)-1 >= len(p.best) {
		return
	}
	moves, ok := gridgraph.MovesFromTrail(trail)
	if !ok {
		return
	}
	p.best = moves
	p.bestGen = gen
}

// cutLoops removes every segment between two visits of the same cell.
// The result is a fresh slice.
func cutLoops(trail []gridgraph.Point) []gridgraph.Point {
	out := make([]gridgraph.Point, 0, len(trail))
	at := make(map[gridgraph.Point]int, len(trail))
	for _, c := range trail {
		if k, seen := at[c]; seen {
			for _, dropped := range out[k+1:] {
				delete(at, dropped)
			}
			out = out[:k+1]
			continue
		}
		at[c] = len(out)
		out = append(out, c)
	}
	return out
}

func (p *population) maxFitness() float64 {
	best := 0.0
	for _, f := range p.fits {
		if f > best {
			best = f
		}
	}
	return best
}

// breed replaces the population with children of roulette-selected parents.
func (p *population) breed() {
	sum := 0.0
	for _, f := range p.fits {
		sum += f
	}
	for i := range p.nextGens {
		a := p.pick(sum)
		b := p.pick(sum)
		p.nextGens[i] = p.mutate(p.crossover(p.units[a].genome, p.units[b].genome))
	}
	for i := range p.units {
		p.units[i].genome = p.nextGens[i]
	}
}

// pick draws a unit index with probability proportional to its fitness.
func (p *population) pick(sum float64) int {
	r := p.rng.Float64() * sum
	for i, f := range p.fits {
		if f+rouletteSlack >= r {
			return i
		}
		r -= f
	}
	return len(p.fits) - 1
}

// crossover takes a's genes before a random cut and b's genes from it on.
func (p *population) crossover(a, b []gridgraph.Move) []gridgraph.Move {
	cut := p.rng.Intn(len(a))
	child := make([]gridgraph.Move, len(a))
	copy(child[:cut], a[:cut])
	copy(child[cut:], b[cut:])
	return child
}

// mutate replaces each gene with a random move with probability MutationRate.
func (p *population) mutate(genome []gridgraph.Move) []gridgraph.Move {
	for i := range genome {
		if p.rng.Float64() < p.cfg.MutationRate {
			genome[i] = p.randomMove()
		}
	}
	return genome
}
