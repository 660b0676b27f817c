// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
const DefaultEdgeWeight uint32 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) uint32

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) uint32 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
func ConstantWeightFn(value uint32) WeightFn {
	return func(_ *rand.Rand) uint32 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly from [min, max]
// inclusive. With a nil RNG it yields min.
// Panics if max < min.
func UniformWeightFn(min, max uint32) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min <= max, got min=%d, max=%d", min, max))
	}
	span := int64(max-min) + 1

	return func(rng *rand.Rand) uint32 {
		if rng == nil || span == 1 {
			return min
		}

		return min + uint32(rng.Int63n(span))
	}
}
