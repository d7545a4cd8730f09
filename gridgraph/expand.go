package gridgraph

import (
	"container/list"
	"fmt"
)

// Breach finds a route from start to end that crosses the fewest obstacle
// cells and returns those obstacle cells in route order together with the
// route itself (start and end included). A zero-length breach means the cells
// are already connected.
//
// Behavior:
//  1. Validate that both endpoints lie inside the grid.
//  2. 0–1 BFS from start:
//     • Moving into a free cell     → cost 0
//     • Moving into an obstacle     → cost 1
//  3. Stop when end is popped.
//  4. Reconstruct the route via the predecessor table.
//
// Endpoints that are themselves obstacles count toward the breach.
// Complexity: O(W·H·4), Memory: O(W·H) for distance and prev tables.
func (g *Grid) Breach(start, end Point) (walls []Point, route []Point, err error) {
	if !g.Contains(start) || !g.Contains(end) {
		return nil, nil, fmt.Errorf("%w: %v→%v outside %dx%d", ErrNoPath, start, end, g.Width, g.Height)
	}

	n := g.Cells()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.Index(start), g.Index(end)
	dist[src] = 0
	if g.blocked[src] {
		dist[src] = 1
	}
	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		ux, uy := g.Coordinate(u)
		for _, m := range Moves {
			dx, dy := m.Delta()
			vx, vy := ux+dx, uy+dy
			if !g.InBounds(vx, vy) {
				continue
			}
			v := g.index(vx, vy)
			step := 0
			if g.blocked[v] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// the grid is connected under 0-1 costs, so dst is always reached
	for at := dst; at >= 0; at = prev[at] {
		route = append(route, g.PointAt(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	walls = make([]Point, 0, dist[dst])
	for _, p := range route {
		if g.Blocked(p) {
			walls = append(walls, p)
		}
	}
	return walls, route, nil
}
