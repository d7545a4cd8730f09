package gridgraph

import "fmt"

// Point addresses a cell by column X and row Y; (0,0) is the top-left corner.
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p shifted by one step of m.
func (p Point) Add(m Move) Point {
	dx, dy := m.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Move is a unit cardinal step. The numeric values are the wire encoding.
type Move uint8

const (
	// West steps to (x-1, y).
	West Move = iota
	// North steps to (x, y-1).
	North
	// East steps to (x+1, y).
	East
	// South steps to (x, y+1).
	South
)

// Moves lists every move in canonical expansion order: West, North, East, South.
// Planners iterate neighbors in this order so that ties resolve identically.
var Moves = [...]Move{West, North, East, South}

var moveDeltas = [...][2]int{
	West:  {-1, 0},
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
}

// Valid reports whether m is one of the four defined codes.
func (m Move) Valid() bool {
	return m <= South
}

// Delta returns the (dx, dy) offset of m, or (0,0) for an unknown code.
func (m Move) Delta() (dx, dy int) {
	if !m.Valid() {
		return 0, 0
	}
	d := moveDeltas[m]
	return d[0], d[1]
}

// Opposite returns the move that undoes m.
func (m Move) Opposite() Move {
	return (m + 2) % 4
}

// String returns the compass name of m.
func (m Move) String() string {
	switch m {
	case West:
		return "W"
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	}
	return fmt.Sprintf("Move(%d)", uint8(m))
}

// MoveBetween returns the move leading from a to an orthogonally adjacent b.
// ok is false when a and b are not neighbors.
func MoveBetween(a, b Point) (m Move, ok bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	for _, mv := range Moves {
		ddx, ddy := mv.Delta()
		if ddx == dx && ddy == dy {
			return mv, true
		}
	}
	return 0, false
}

// Grid is an immutable Width×Height domain with a row-major blocked table.
// A Grid is safe for concurrent readers.
type Grid struct {
	Width, Height int
	blocked       []bool
	obstacles     int
}
