// SPDX-License-Identifier: MIT
// Package: gridpath/gridgen
//
// Package gridgen assembles obstacle layouts for tests, benchmarks and demos.
//
// A Layout is built by Build(width, height, opts, cons...) which resolves the
// options once and applies each Constructor in order. Constructors only add
// walls; cells named by WithClear are never walled, so endpoints stay free.
//
// Determinism: the same size, options, seed and constructor order always
// produce the same Layout. Stochastic constructors (RandomSparse) require an
// RNG from WithSeed or WithRand and return ErrNeedRandSource otherwise.
//
// Layouts emit obstacles in row-major order as the parallel X/Y arrays the
// engine consumes:
//
//	l, _ := gridgen.Build(5, 5, nil, gridgen.Column(1, 0, 3))
//	moves, _ := gridpath.FindPath(0, 0, 4, 0, 5, 5, 1, 100, 0, l.Xs(), l.Ys())
package gridgen
