// Package astar implements A* search over a gridgraph.Grid with unit step
// costs and a Manhattan-distance heuristic.
//
// The open set is a min-heap ordered by f = g + h, with ties broken toward
// the deeper entry and then by insertion order, and uses the "lazy decrease-key" pattern: improved entries
// are pushed again and stale ones are skipped when popped. Because the
// Manhattan heuristic is consistent on a 4-connected unit grid, the first time
// the goal is popped its route is shortest.
//
// Complexity (N = Width×Height):
//
//	– Time:  O(min(N, MaxIterations) · log N)
//	– Space: O(N) for g-scores, parents and closed flags; O(4N) heap entries worst case.
//
// Options:
//
//	– WithContext(ctx):       cancellation, checked once per expansion.
//	– WithMaxIterations(n):   cap on closed (expanded) cells; 0 = no cap.
//	– WithHeuristic(fn):      replace Manhattan; must stay admissible for shortest routes.
//
// Errors (sentinel):
//
//	– ErrGridNil          if the grid pointer is nil.
//	– ErrOutOfBounds      if start or goal is outside the grid.
//	– ErrOptionViolation  if an option is invalid.
package astar
