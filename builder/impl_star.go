// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const minStarNodes = 2

// Star returns a Constructor that builds a hub (index 0) with n-1 leaves.
// Every spoke is emitted as hub->leaf followed by leaf->hub, in leaf order.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		keys, err := addNodes(methodStar, g, cfg, n)
		if err != nil {
			return err
		}
		hub := keys[0]
		for _, leaf := range keys[1:] {
			if err = addBoth(methodStar, g, cfg, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
