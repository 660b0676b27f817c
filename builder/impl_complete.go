// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const minCompleteNodes = 1

// Complete returns a Constructor that builds the complete directed graph on n
// nodes: every ordered pair (i, j) with i != j, i ascending then j ascending.
// It emits n*(n-1) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		keys, err := addNodes(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := range keys {
			for j := range keys {
				if i == j {
					continue
				}
				if err = addEdge(methodComplete, g, cfg, keys[i], keys[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
