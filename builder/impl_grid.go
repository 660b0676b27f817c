// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const minGridDim = 1

// Grid returns a Constructor that builds a rows x cols 4-neighbourhood grid.
// Cell (r, c) has index r*cols+c. For every cell in row-major order the right
// link and then the bottom link are added, each in both directions.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		keys, err := addNodes(methodGrid, g, cfg, rows*cols)
		if err != nil {
			return err
		}
		at := func(r, c int) core.NodeKey { return keys[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = addBoth(methodGrid, g, cfg, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addBoth(methodGrid, g, cfg, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
