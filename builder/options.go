// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/shortpath/core"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins. Option constructors validate and panic on meaningless
// input; constructors themselves never panic.
type BuilderOption func(*builderConfig)

// WithKeyBase shifts generated keys to base, base+1, ... so several
// constructors can be composed on one graph through Extend. The highest
// generated key must stay within int64; the base itself must not be
// core.InvalidNodeKey.
func WithKeyBase(base int64) BuilderOption {
	if base == math.MinInt64 {
		panic("builder: WithKeyBase(InvalidNodeKey)")
	}

	return func(c *builderConfig) {
		c.keyFn = offsetKey(base)
	}
}

// WithKeyScheme sets an arbitrary index->key mapping. The mapping must be
// injective over the indices a constructor uses. Panics on nil.
func WithKeyScheme(fn func(int) core.NodeKey) BuilderOption {
	if fn == nil {
		panic("builder: WithKeyScheme(nil)")
	}

	return func(c *builderConfig) {
		c.keyFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors and weight
// functions. Panics on nil; prefer WithSeed for reproducible fixtures.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
