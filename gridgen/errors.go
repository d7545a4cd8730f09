// SPDX-License-Identifier: MIT
// Package: gridpath/gridgen
//
// errors.go — sentinel errors for the gridgen package.

package gridgen

import "errors"

// ErrBadDimensions indicates a non-positive width or height.
var ErrBadDimensions = errors.New("gridgen: width and height must be positive")

// ErrInvalidProbability indicates a density outside [0,1].
var ErrInvalidProbability = errors.New("gridgen: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG.
var ErrNeedRandSource = errors.New("gridgen: rng is required")

// ErrOutOfRange indicates a constructor argument that falls outside the grid.
var ErrOutOfRange = errors.New("gridgen: argument outside grid")

// ErrConstructFailed indicates a nil constructor.
var ErrConstructFailed = errors.New("gridgen: construction failed")
