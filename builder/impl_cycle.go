// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const minCycleNodes = 3

// Cycle returns a Constructor that builds the directed ring
// k0 -> k1 -> ... -> k(n-1) -> k0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		keys, err := addNodes(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, g, cfg, keys[i], keys[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
