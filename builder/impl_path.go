// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const minPathNodes = 2

// Path returns a Constructor that builds the directed path
// k0 -> k1 -> ... -> k(n-1). Edges are emitted in index order.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		keys, err := addNodes(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(methodPath, g, cfg, keys[i], keys[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
