// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/shortpath/core"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value so constructors cannot leak changes into each other.
type builderConfig struct {
	// keyFn maps a constructor-local index to the node key.
	keyFn func(int) core.NodeKey
	// rng drives stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// weightFn yields the weight of every emitted edge.
	weightFn WeightFn
}

// newBuilderConfig starts from deterministic defaults (keys 0..n-1, no RNG,
// constant DefaultEdgeWeight) and applies opts in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		keyFn:    offsetKey(0),
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// offsetKey returns a key scheme producing base, base+1, base+2, ...
func offsetKey(base int64) func(int) core.NodeKey {
	return func(i int) core.NodeKey {
		return core.NodeKey(base + int64(i))
	}
}

// weight draws the next edge weight.
func (c builderConfig) weight() uint32 {
	return c.weightFn(c.rng)
}
