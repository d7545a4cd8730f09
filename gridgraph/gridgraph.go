package gridgraph

import (
	"fmt"
	"math"
)

// MaxCells bounds Width×Height. Searches keep several per-cell tables, so
// larger grids cannot be allocated in practice.
const MaxCells = 1 << 30

// New builds a Grid of width×height cells whose obstacles are given as two
// parallel coordinate arrays; xs[i] pairs with ys[i]. Duplicate obstacles are
// allowed and collapse to one cell.
// Returns ErrBadDimensions (also for grids over MaxCells), ErrMismatchedObstacles or ErrObstacleOutOfRange
// (wrapped with the offending values) for invalid input.
// Complexity: O(W×H + K) time and memory.
func New(width, height int, xs, ys []int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}
	if width > math.MaxInt/height || width*height > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrBadDimensions, width, height, MaxCells)
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d xs, %d ys", ErrMismatchedObstacles, len(xs), len(ys))
	}
	g := &Grid{
		Width:   width,
		Height:  height,
		blocked: make([]bool, width*height),
	}
	for i := range xs {
		x, y := xs[i], ys[i]
		if !g.InBounds(x, y) {
			return nil, fmt.Errorf("%w: obstacle %d at (%d,%d) in %dx%d",
				ErrObstacleOutOfRange, i, x, y, width, height)
		}
		idx := g.index(x, y)
		if !g.blocked[idx] {
			g.blocked[idx] = true
			g.obstacles++
		}
	}

	return g, nil
}

// FromPoints is New for callers that already hold paired coordinates.
func FromPoints(width, height int, obstacles []Point) (*Grid, error) {
	xs := make([]int, len(obstacles))
	ys := make([]int, len(obstacles))
	for i, p := range obstacles {
		xs[i], ys[i] = p.X, p.Y
	}
	return New(width, height, xs, ys)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains is InBounds for a Point.
func (g *Grid) Contains(p Point) bool {
	return g.InBounds(p.X, p.Y)
}

// Blocked reports whether p is an obstacle. Out-of-range points are not blocked.
func (g *Grid) Blocked(p Point) bool {
	if !g.Contains(p) {
		return false
	}
	return g.blocked[g.index(p.X, p.Y)]
}

// Passable reports whether p is inside the grid and not an obstacle.
func (g *Grid) Passable(p Point) bool {
	return g.Contains(p) && !g.blocked[g.index(p.X, p.Y)]
}

// Cells returns Width×Height.
func (g *Grid) Cells() int {
	return g.Width * g.Height
}

// ObstacleCount returns the number of distinct obstacle cells.
func (g *Grid) ObstacleCount() int {
	return g.obstacles
}

// Obstacles returns the obstacle cells in row-major order.
func (g *Grid) Obstacles() []Point {
	out := make([]Point, 0, g.obstacles)
	for i, b := range g.blocked {
		if b {
			x, y := g.Coordinate(i)
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

// Neighbors appends to dst the passable neighbors of p in canonical move
// order (West, North, East, South) together with the move reaching each.
// Complexity: O(1).
func (g *Grid) Neighbors(p Point, dst []Step) []Step {
	for _, m := range Moves {
		q := p.Add(m)
		if g.Passable(q) {
			dst = append(dst, Step{Move: m, To: q})
		}
	}
	return dst
}

// Step pairs a move with the cell it lands on.
type Step struct {
	Move Move
	To   Point
}

// Walk replays moves from start and returns every visited cell, start
// included. It stops at the first move that is unknown, leaves the grid or
// enters an obstacle, returning the cells visited so far and an error
// wrapping ErrBadMove, ErrStepOutOfBounds or ErrStepBlocked.
// A start outside the grid or on an obstacle is reported as step 0.
// Complexity: O(len(moves)).
func (g *Grid) Walk(start Point, moves []Move) ([]Point, error) {
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: start %v", ErrStepOutOfBounds, start)
	}
	if g.Blocked(start) {
		return nil, fmt.Errorf("%w: start %v", ErrStepBlocked, start)
	}
	trail := make([]Point, 1, len(moves)+1)
	trail[0] = start
	cur := start
	for i, m := range moves {
		if !m.Valid() {
			return trail, fmt.Errorf("%w: step %d code %d", ErrBadMove, i+1, uint8(m))
		}
		next := cur.Add(m)
		if !g.Contains(next) {
			return trail, fmt.Errorf("%w: step %d %v from %v", ErrStepOutOfBounds, i+1, m, cur)
		}
		if g.Blocked(next) {
			return trail, fmt.Errorf("%w: step %d %v into %v", ErrStepBlocked, i+1, m, next)
		}
		cur = next
		trail = append(trail, cur)
	}

	return trail, nil
}

// MovesFromTrail converts a sequence of orthogonally adjacent cells into moves.
// ok is false if any consecutive pair is not adjacent.
func MovesFromTrail(trail []Point) (moves []Move, ok bool) {
	if len(trail) < 2 {
		return []Move{}, true
	}
	moves = make([]Move, 0, len(trail)-1)
	for i := 1; i < len(trail); i++ {
		m, adj := MoveBetween(trail[i-1], trail[i])
		if !adj {
			return nil, false
		}
		moves = append(moves, m)
	}
	return moves, true
}

// Index maps p to its row-major index y*Width + x. p must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return g.index(p.X, p.Y)
}

func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// PointAt is Coordinate returning a Point.
func (g *Grid) PointAt(idx int) Point {
	x, y := g.Coordinate(idx)
	return Point{X: x, Y: y}
}
