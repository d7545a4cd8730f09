// Package bfs provides a breadth-first search over a gridgraph.Grid,
// returning a shortest unit-step route, parent links and visit order under a
// fixed expansion budget.
//
// What
//
//   - Explore cells in non-decreasing step distance from a start cell.
//   - Neighbors are expanded in the fixed order West, North, East, South, so
//     ties between equal-length routes always resolve the same way.
//   - Stop when the goal is dequeued (StateFound), the frontier empties
//     (StateExhausted, BudgetSpent=false) or MaxIterations dequeues have
//     been made (StateExhausted, BudgetSpent=true).
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a cell is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Stepper exposes the same search one expansion at a time, so a UI can
//     animate the frontier; BFS simply drives a Stepper to completion.
//
// State machine
//
//	StateInitialized ──Step──▶ StateExpanding ──goal dequeued──▶ StateFound
//	                                   │
//	                                   └──frontier empty / budget spent──▶ StateExhausted
//
// Determinism
//
//	The queue is FIFO, neighbor order is fixed and no randomness is involved,
//	so identical inputs yield identical Order, parents and routes.
//
// Complexity (N = Width×Height)
//
//   - Time:   O(min(N, MaxIterations) × 4)
//   - Memory: O(N) for depth and parent tables and the queue.
//
// Usage
//
//	res, err := bfs.BFS(grid, start, goal, bfs.WithMaxIterations(1000))
//	if err != nil {
//	    // ErrGridNil, ErrOutOfBounds, ErrOptionViolation, ctx error or hook error
//	}
//	if res.Found() {
//	    moves, _ := res.Moves()
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no budget.
//   - WithContext(ctx):        set a custom context for cancellation.
//   - WithMaxIterations(n):    cap dequeues at n (>0); 0 means no cap.
//   - WithOnEnqueue(fn), WithOnDequeue(fn), WithOnVisit(fn): hooks.
package bfs
