// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const minWheelNodes = 4

// Wheel returns a Constructor that builds a hub (index 0) surrounded by a
// directed rim k1 -> k2 -> ... -> k(n-1) -> k1. The rim is emitted first,
// then two-way spokes in rim order.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		keys, err := addNodes(methodWheel, g, cfg, n)
		if err != nil {
			return err
		}
		hub, rim := keys[0], keys[1:]
		for i := range rim {
			if err = addEdge(methodWheel, g, cfg, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		for _, k := range rim {
			if err = addBoth(methodWheel, g, cfg, hub, k); err != nil {
				return err
			}
		}

		return nil
	}
}
