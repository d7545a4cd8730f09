// SPDX-License-Identifier: MIT
// Package: gridpath/gridgen
//
// options.go — functional options for Build.

package gridgen

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Option configures Build.
type Option func(*config)

// config is resolved once per Build and passed to every Constructor.
type config struct {
	rng   *rand.Rand
	clear map[gridgraph.Point]struct{}
}

func newConfig(opts ...Option) config {
	c := config{clear: make(map[gridgraph.Point]struct{})}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r as the RNG. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gridgen: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithClear keeps the given cells free of walls whatever the constructors do.
func WithClear(points ...gridgraph.Point) Option {
	return func(c *config) {
		for _, p := range points {
			c.clear[p] = struct{}{}
		}
	}
}
