// Package gridgraph treats a rectangular grid of cells with sparse obstacles
// as an unweighted 4-connected graph, the shared model for every planner in
// github.com/katalvlaran/gridpath.
//
// What:
//
//   - Grid wraps a Width×Height domain and a dense blocked-cell table built
//     from two parallel obstacle coordinate arrays (re-paired on entry).
//   - Move encodes the four cardinal steps West=0, North=1, East=2, South=3.
//   - Walk replays a move sequence and reports the first invalid step.
//   - Regions labels 4-connected free regions; Connected answers reachability.
//   - Breach finds the fewest obstacle cells whose removal opens a route.
//
// Why:
//
//   - Planners share a single definition of "in bounds" and "passable",
//     so a path accepted by Walk is valid for every caller.
//   - Region labelling separates "unreachable" from "budget exhausted".
//
// Complexity:
//
//   - New:       O(W×H + K) time and memory (K = number of obstacles).
//   - Regions:   O(W×H×4), Memory: O(W×H).
//   - Breach:    O(W×H×4), Memory: O(W×H).
//   - Walk:      O(len(moves)).
//
// Errors:
//
//   - ErrBadDimensions:        width or height is not positive.
//   - ErrMismatchedObstacles:  obstacle arrays differ in length.
//   - ErrObstacleOutOfRange:   an obstacle lies outside the grid.
//   - ErrStepOutOfBounds:      Walk left the grid.
//   - ErrStepBlocked:          Walk entered an obstacle.
//   - ErrBadMove:              Walk met a code outside 0..3.
//   - ErrNoPath:               Breach endpoints are outside the grid.
package gridgraph
