// SPDX-License-Identifier: MIT
// Package: gridpath/gridgen
//
// gridgen.go — Layout, Build and the wall constructors.

package gridgen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Layout is a width×height wall map.
type Layout struct {
	Width, Height int
	walls         []bool
	clear         map[gridgraph.Point]struct{}
}

// Constructor adds walls to l. It must validate its arguments and leave l
// untouched on error.
type Constructor func(l *Layout, cfg config) error

// Build creates an empty Layout and applies cons in order.
func Build(width, height int, opts []Option, cons ...Constructor) (*Layout, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("Build: %dx%d: %w", width, height, ErrBadDimensions)
	}
	cfg := newConfig(opts...)
	l := &Layout{
		Width:  width,
		Height: height,
		walls:  make([]bool, width*height),
		clear:  cfg.clear,
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(l, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	return l, nil
}

// set walls (x,y) unless it is kept clear.
func (l *Layout) set(x, y int) {
	if _, ok := l.clear[gridgraph.Point{X: x, Y: y}]; ok {
		return
	}
	l.walls[y*l.Width+x] = true
}

func (l *Layout) inside(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// Wall reports whether (x,y) is walled.
func (l *Layout) Wall(x, y int) bool {
	return l.inside(x, y) && l.walls[y*l.Width+x]
}

// Count returns the number of walls.
func (l *Layout) Count() int {
	n := 0
	for _, w := range l.walls {
		if w {
			n++
		}
	}
	return n
}

// Xs returns the wall X coordinates in row-major order.
func (l *Layout) Xs() []int {
	out := make([]int, 0, l.Count())
	for i, w := range l.walls {
		if w {
			out = append(out, i%l.Width)
		}
	}
	return out
}

// Ys returns the wall Y coordinates, paired index-wise with Xs.
func (l *Layout) Ys() []int {
	out := make([]int, 0, l.Count())
	for i, w := range l.walls {
		if w {
			out = append(out, i/l.Width)
		}
	}
	return out
}

// Grid builds the immutable gridgraph.Grid for l.
func (l *Layout) Grid() (*gridgraph.Grid, error) {
	return gridgraph.New(l.Width, l.Height, l.Xs(), l.Ys())
}

// RandomSparse walls each cell independently with probability p, visiting
// cells in row-major order so a fixed seed gives a fixed map.
func RandomSparse(p float64) Constructor {
	return func(l *Layout, cfg config) error {
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		for y := 0; y < l.Height; y++ {
			for x := 0; x < l.Width; x++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					l.set(x, y)
				}
			}
		}
		return nil
	}
}

// Column walls column x from row y0 to row y1 inclusive.
func Column(x, y0, y1 int) Constructor {
	return func(l *Layout, _ config) error {
		if y0 > y1 || !l.inside(x, y0) || !l.inside(x, y1) {
			return fmt.Errorf("Column(%d,%d..%d): %w", x, y0, y1, ErrOutOfRange)
		}
		for y := y0; y <= y1; y++ {
			l.set(x, y)
		}
		return nil
	}
}

// Row walls row y from column x0 to column x1 inclusive.
func Row(y, x0, x1 int) Constructor {
	return func(l *Layout, _ config) error {
		if x0 > x1 || !l.inside(x0, y) || !l.inside(x1, y) {
			return fmt.Errorf("Row(%d,%d..%d): %w", y, x0, x1, ErrOutOfRange)
		}
		for x := x0; x <= x1; x++ {
			l.set(x, y)
		}
		return nil
	}
}

// Ring walls the square outline at Chebyshev distance r around c.
// Cells of the outline that fall off the grid are skipped.
func Ring(c gridgraph.Point, r int) Constructor {
	return func(l *Layout, _ config) error {
		if r < 1 || !l.inside(c.X, c.Y) {
			return fmt.Errorf("Ring(%v,%d): %w", c, r, ErrOutOfRange)
		}
		for y := c.Y - r; y <= c.Y+r; y++ {
			for x := c.X - r; x <= c.X+r; x++ {
				onEdge := x == c.X-r || x == c.X+r || y == c.Y-r || y == c.Y+r
				if onEdge && l.inside(x, y) {
					l.set(x, y)
				}
			}
		}
		return nil
	}
}
