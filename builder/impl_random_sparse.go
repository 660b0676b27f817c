// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/core"
)

const (
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed Erdős–Rényi-like
// graph: each ordered pair (i, j), i != j, becomes an edge independently with
// probability p. Trials run i ascending then j ascending, so a fixed seed
// yields a fixed graph.
//
// An RNG (WithSeed or WithRand) is required when 0 < p < 1; p = 0 and p = 1
// are deterministic and accept a nil RNG.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		keys, err := addNodes(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}
		for i := range keys {
			for j := range keys {
				if i == j || !trial(cfg, p) {
					continue
				}
				if err = addEdge(methodRandomSparse, g, cfg, keys[i], keys[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial reports whether a Bernoulli(p) draw succeeds. The degenerate
// probabilities never consume randomness.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
