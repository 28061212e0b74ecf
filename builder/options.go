// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// options.go - functional options for BuildGraph.
//
// Option constructors panic on programmer errors (nil sources); constructors
// themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithSeed installs a fresh math/rand source seeded with seed. Two builds
// with the same seed draw the same sequence.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs r as the random source. The caller keeps ownership and
// must not share r across goroutines. Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSource installs any IntSource, e.g. a scripted sequence in tests.
// Panics if src is nil.
func WithSource(src IntSource) BuilderOption {
	if src == nil {
		panic("builder: WithSource(nil)")
	}
	return func(c *builderConfig) {
		c.rng = src
	}
}
