// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// config.go - resolved builder configuration.
//
// builderConfig is built once per BuildGraph call from BuilderOption values
// and passed by value to every Constructor. Only stochastic constructors
// read rng; a nil rng means "no randomness configured".

package builder

// IntSource is the random source consumed by stochastic constructors.
// *rand.Rand satisfies it; tests may supply a scripted sequence.
type IntSource interface {
	// Intn returns a value in [0, n). n > 0.
	Intn(n int) int
}

// builderConfig holds resolved options for one build.
type builderConfig struct {
	// rng drives RandomEdges and ParitySinglePass. nil unless set.
	rng IntSource
}

// newBuilderConfig applies opts over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng: nil, // no RNG unless explicitly set
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
