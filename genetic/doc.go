// SPDX-License-Identifier: MIT
// Package: gridpath/genetic
//
// Package genetic plans grid routes with a population of random move genomes.
//
// Model:
//   - A genome is a fixed-length sequence of moves (West, North, East, South).
//   - Every generation each unit replays its genome from the start cell; a
//     move that would leave the grid or enter an obstacle leaves the unit in
//     place.
//   - Fitness of a unit is 100 / sqrt(dx² + dy² + 1), measured from its final
//     cell to the goal.
//   - The next generation is bred by fitness-proportional (roulette) selection
//     of two parents, one-point crossover at a random cut, and per-gene
//     mutation with probability MutationRate.
//
// Contract:
//   - A unit that steps onto the goal yields a candidate route: the moves it
//     actually made up to its first arrival, with revisited loops cut out.
//     The shortest candidate over all generations is returned, so a returned
//     route is always valid; it is not guaranteed to be shortest.
//   - No candidate after Generations rounds → Found=false and no moves.
//   - An RNG is mandatory: pass WithSeed or WithRand (else ErrNeedRandSource).
//
// Determinism:
//   - Fixed draw order: genomes in unit order, then per child: two roulette
//     draws, one cut draw, one mutation draw per gene (plus one replacement
//     draw per mutated gene). A fixed seed fixes the outcome.
//
// Complexity:
//   - Time:  O(Generations × PopulationSize × GenomeLength).
//   - Space: O(PopulationSize × GenomeLength).
package genetic
