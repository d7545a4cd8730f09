package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Search runs A* from start to goal on g.
//
// Loop termination conditions:
//
//   - The goal is popped (Found).
//   - The heap becomes empty (goal unreachable).
//   - MaxIterations cells have been expanded (BudgetSpent).
//
// An unreachable goal is reported through Result, not as an error.
func Search(g *gridgraph.Grid, start, goal gridgraph.Point, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate grid and endpoints
	if g == nil {
		return Result{}, ErrGridNil
	}
	if !g.Contains(start) || !g.Contains(goal) {
		return Result{}, fmt.Errorf("%w: %v→%v", ErrOutOfBounds, start, goal)
	}

	// 3) Prepare per-cell tables; nothing is shared between calls.
	n := g.Cells()
	r := &runner{
		g:       g,
		options: cfg,
		goal:    goal,
		gScore:  make([]int, n),
		parent:  make([]int, n),
		closed:  make([]bool, n),
		pq:      make(nodePQ, 0, 64),
		steps:   make([]gridgraph.Step, 0, 4),
	}
	r.init(start)

	// 4) Main loop
	return r.process()
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       *gridgraph.Grid
	options Options
	goal    gridgraph.Point
	gScore  []int  // best known step count from start; -1 if unseen
	parent  []int  // predecessor index on the best route
	closed  []bool // finalized cells
	pq      nodePQ
	seq     int // insertion counter for deterministic ties
	steps   []gridgraph.Step
}

// init marks every cell unseen and pushes the start with g=0.
func (r *runner) init(start gridgraph.Point) {
	for i := range r.gScore {
		r.gScore[i] = -1
		r.parent[i] = -1
	}
	heap.Init(&r.pq)
	s := r.g.Index(start)
	r.gScore[s] = 0
	r.push(s, 0, r.options.Heuristic(start, r.goal))
}

func (r *runner) push(idx, g, h int) {
	heap.Push(&r.pq, &nodeItem{idx: idx, g: g, f: g + h, seq: r.seq})
	r.seq++
}

// process pops cells in f order and relaxes their neighbors.
func (r *runner) process() (Result, error) {
	var res Result
	goalIdx := r.g.Index(r.goal)
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return Result{}, r.options.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx
		// skip stale heap entry
		if r.closed[u] || item.g > r.gScore[u] {
			continue
		}
		if r.options.MaxIterations > 0 && res.Expanded >= r.options.MaxIterations {
			res.BudgetSpent = true
			return res, nil
		}
		r.closed[u] = true
		res.Expanded++

		if u == goalIdx {
			res.Found = true
			res.Cost = item.g
			res.Moves = r.moves(u)
			return res, nil
		}
		r.relax(u, item.g)
	}

	return res, nil
}

// relax pushes every passable neighbor whose step count improves.
func (r *runner) relax(u, gu int) {
	r.steps = r.g.Neighbors(r.g.PointAt(u), r.steps[:0])
	for _, st := range r.steps {
		v := r.g.Index(st.To)
		if r.closed[v] {
			continue
		}
		ng := gu + 1
		if r.gScore[v] >= 0 && ng >= r.gScore[v] {
			continue
		}
		r.gScore[v] = ng
		r.parent[v] = u
		r.push(v, ng, r.options.Heuristic(st.To, r.goal))
	}
}

// moves rebuilds the forward move sequence ending at idx.
func (r *runner) moves(idx int) []gridgraph.Move {
	var trail []gridgraph.Point
	for at := idx; at >= 0; at = r.parent[at] {
		trail = append(trail, r.g.PointAt(at))
	}
	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}
	moves, _ := gridgraph.MovesFromTrail(trail)
	return moves
}

// nodeItem is a heap entry: cell index, its g at push time and f = g + h.
type nodeItem struct {
	idx int
	g   int
	f   int
	seq int
}

// nodePQ is a min-heap of *nodeItem ordered by f, then deeper g first,
// then insertion order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g > pq[j].g
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
