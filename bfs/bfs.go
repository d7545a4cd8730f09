// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning unweighted shortest routes, parent links, and visit order.
//
// BFS explores cells in increasing distance from a start cell,
// with optional hooks and an expansion budget.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// BFS runs breadth-first search on g from start towards goal,
// applying any number of functional Options.
// Returns ErrGridNil or ErrOutOfBounds for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error. Not reaching the goal is not an error:
// the Result reports StateExhausted instead.
func BFS(g *gridgraph.Grid, start, goal gridgraph.Point, opts ...Option) (*Result, error) {
	s, err := NewStepper(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	for !s.state.Done() {
		if _, err = s.Step(); err != nil {
			return nil, err
		}
	}

	return s.Result(), nil
}

// Snapshot exposes the per-expansion state of a Stepper.
type Snapshot struct {
	State       State
	Current     gridgraph.Point // cell dequeued by this step; zero if none
	Depth       int             // depth of Current
	Expanded    int
	Frontier    int // cells discovered but not yet expanded
	BudgetSpent bool
}

// Stepper advances a BFS one expansion at a time.
// A Stepper is not safe for concurrent use; separate Steppers on the same
// grid are independent.
type Stepper struct {
	grid  *gridgraph.Grid
	opts  Options
	start gridgraph.Point
	goal  gridgraph.Point

	queue  []int
	head   int
	depth  []int
	parent []int
	order  []gridgraph.Point
	steps  []gridgraph.Step // neighbor scratch buffer

	state       State
	expanded    int
	budgetSpent bool
}

// NewStepper validates input, seeds the start cell and returns a Stepper in
// StateInitialized.
func NewStepper(g *gridgraph.Grid, start, goal gridgraph.Point, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.Contains(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}

	n := g.Cells()
	s := &Stepper{
		grid:   g,
		opts:   o,
		start:  start,
		goal:   goal,
		queue:  make([]int, 0, 64),
		depth:  make([]int, n),
		parent: make([]int, n),
		steps:  make([]gridgraph.Step, 0, 4),
		state:  StateInitialized,
	}
	for i := range s.depth {
		s.depth[i] = -1
		s.parent[i] = -1
	}
	// Seed queue with start cell (no parent)
	s.enqueue(g.Index(start), 0, -1)

	return s, nil
}

// State returns the current lifecycle state.
func (s *Stepper) State() State {
	return s.state
}

// Step dequeues and expands one cell. Once the run is terminal, further calls
// return the terminal snapshot unchanged.
func (s *Stepper) Step() (Snapshot, error) {
	if s.state.Done() {
		return s.snapshot(gridgraph.Point{}, 0), nil
	}
	// cancellation check (once per expansion)
	select {
	case <-s.opts.Ctx.Done():
		return s.snapshot(gridgraph.Point{}, 0), s.opts.Ctx.Err()
	default:
	}
	s.state = StateExpanding

	if s.head == len(s.queue) {
		s.state = StateExhausted
		return s.snapshot(gridgraph.Point{}, 0), nil
	}
	if s.opts.MaxIterations > 0 && s.expanded >= s.opts.MaxIterations {
		s.state = StateExhausted
		s.budgetSpent = true
		return s.snapshot(gridgraph.Point{}, 0), nil
	}

	u := s.dequeue()
	p, d := s.grid.PointAt(u), s.depth[u]
	if err := s.visit(p, d); err != nil {
		return s.snapshot(p, d), err
	}
	if p == s.goal {
		s.state = StateFound
		return s.snapshot(p, d), nil
	}
	s.enqueueNeighbors(u, p)

	return s.snapshot(p, d), nil
}

// Frontier returns the discovered-but-unexpanded cells in queue order.
func (s *Stepper) Frontier() []gridgraph.Point {
	out := make([]gridgraph.Point, 0, len(s.queue)-s.head)
	for _, i := range s.queue[s.head:] {
		out = append(out, s.grid.PointAt(i))
	}
	return out
}

// Result returns the search outcome so far. Tables are shared with the
// Stepper, so the Result should be taken once the Stepper is done.
func (s *Stepper) Result() *Result {
	return &Result{
		Start:       s.start,
		Goal:        s.goal,
		State:       s.state,
		BudgetSpent: s.budgetSpent,
		Expanded:    s.expanded,
		Order:       s.order,
		grid:        s.grid,
		depth:       s.depth,
		parent:      s.parent,
	}
}

func (s *Stepper) snapshot(cur gridgraph.Point, depth int) Snapshot {
	return Snapshot{
		State:       s.state,
		Current:     cur,
		Depth:       depth,
		Expanded:    s.expanded,
		Frontier:    len(s.queue) - s.head,
		BudgetSpent: s.budgetSpent,
	}
}

// enqueue marks idx discovered at depth d, records its parent,
// calls OnEnqueue and appends it to the queue.
func (s *Stepper) enqueue(idx, d, parent int) {
	s.depth[idx] = d
	s.parent[idx] = parent
	s.opts.OnEnqueue(s.grid.PointAt(idx), d)
	s.queue = append(s.queue, idx)
}

// dequeue pops the first item, counts the expansion and invokes OnDequeue.
func (s *Stepper) dequeue() int {
	u := s.queue[s.head]
	s.head++
	s.expanded++
	s.opts.OnDequeue(s.grid.PointAt(u), s.depth[u])
	return u
}

// visit records the cell in Order and calls OnVisit.
func (s *Stepper) visit(p gridgraph.Point, d int) error {
	s.order = append(s.order, p)
	if err := s.opts.OnVisit(p, d); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", p, err)
	}
	return nil
}

// enqueueNeighbors enqueues each passable, undiscovered neighbor of u in
// West, North, East, South order.
func (s *Stepper) enqueueNeighbors(u int, p gridgraph.Point) {
	s.steps = s.grid.Neighbors(p, s.steps[:0])
	for _, st := range s.steps {
		v := s.grid.Index(st.To)
		if s.depth[v] < 0 {
			s.enqueue(v, s.depth[u]+1, u)
		}
	}
}
