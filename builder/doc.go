// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures and loads graph
// documents from YAML or JSON.
//
// Two families live here:
//
//   - Topology constructors (Path, Cycle, Star, Wheel, Complete, Grid,
//     RandomSparse) composed through BuildGraph or Extend. Keys are the
//     integers base..base+n-1 where base defaults to 0 (see WithKeyBase).
//   - Document loading (FromYAML, FromJSON, FromFile, FromDocument) for the
//     on-disk fixture format:
//
//     nodes: [1, 2, 3]
//     edges:
//     - {from: 1, to: 2, weight: 7}
//
// Every edge is directed. Constructors that model a two-way link (Star, Wheel
// spokes, Grid) add both directions explicitly; Path and Cycle emit one
// direction only. Edges never create nodes implicitly.
//
// Determinism: the same options, seed and constructor order always produce the
// same node order, edge order and weights.
//
// Errors are sentinel values (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed, ErrUnsupportedFormat, ErrBadDocument)
// wrapped with the constructor name; branch with errors.Is. Option
// constructors panic on meaningless input.
package builder
