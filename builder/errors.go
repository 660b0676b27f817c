// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum the topology needs.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrInvalidProbability indicates an edge probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("builder: random source required")

// ErrConstructFailed indicates a constructor could not finish, e.g. a nil
// constructor or a graph that rejected an insertion.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnsupportedFormat indicates a graph file whose extension is neither
// .yaml, .yml nor .json.
var ErrUnsupportedFormat = errors.New("builder: unsupported document format")

// ErrBadDocument indicates a graph document that failed to decode or that
// describes an invalid graph (unknown field, duplicate node, dangling edge).
var ErrBadDocument = errors.New("builder: bad graph document")

// Method tags prefixing wrapped errors.
const (
	methodBuildGraph   = "BuildGraph"
	methodExtend       = "Extend"
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
	methodFromYAML     = "FromYAML"
	methodFromJSON     = "FromJSON"
	methodFromFile     = "FromFile"
	methodFromDocument = "FromDocument"
)
