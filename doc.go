// Package gridpath finds routes on a rectangular grid with impassable cells
// and returns them as a flat sequence of cardinal move codes:
//
//	0 = West (x-1)   1 = North (y-1)   2 = East (x+1)   3 = South (y+1)
//
// The engine is a pure, stateless function: every call builds its own grid
// from the caller's parallel obstacle arrays, searches, verifies the route
// by replaying it, and returns a fresh slice. Concurrent calls share nothing.
//
// Entry points:
//
//   - FindPath: the flat contract used by UI callers; breadth-first search.
//   - Search:   the same inputs as Params plus Options (strategy, seed, hooks)
//     and a Result that tells "found", "unreachable" and "budget exhausted"
//     apart.
//
// Strategies:
//
//	bfs/      — breadth-first, shortest route, deterministic tie-break W,N,E,S (default)
//	astar/    — A* with Manhattan heuristic, shortest route, fewer expansions
//	genetic/  — population of random move genomes evolved by roulette
//	            selection, crossover and mutation; valid but not always shortest
//	gridgraph/ — shared grid model, move walking, regions and breach search
//	gridgen/   — seeded obstacle layouts for tests, benchmarks and demos
//	server/    — POST /find and /ws transport for the browser UI (cmd/gridpathd)
//
// Parameters:
//
//	branchFactor  — genetic population size; validated (>0) for every strategy
//	maxIterations — expansion cap for bfs/astar; generation count for genetic
//	stepParam     — genetic mutation rate in [0,1]; validated for every strategy
//
// Quick example:
//
//	S # G        moves, _ := gridpath.FindPath(0, 0, 2, 0, 3, 3, 1, 100, 0, []int{1, 1}, []int{0, 1})
//	. # .        // [S S E E N N]
//	. . .
//
//	go get github.com/katalvlaran/gridpath
package gridpath
