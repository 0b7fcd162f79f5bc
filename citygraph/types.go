// SPDX-License-Identifier: MIT
// Package citygraph defines the immutable weighted city graph consumed by the
// shortest-path engine.
//
// A Graph is a dense, index-addressed weight matrix: cities are identified by
// their position 0..Order()-1, and weight[from][to] holds either an integer
// distance or the NoEdge sentinel. The diagonal is always zero.
//
// Invariants (enforced by New, never re-checked afterwards):
//
//   - MinCities ≤ Order() ≤ MaxCities.
//   - 0 ≤ Initial(), Destination() < Order().
//   - weight[i][i] == 0 for every i.
//   - for i != j: weight[i][j] == NoEdge or MinDistance ≤ weight[i][j] ≤ MaxDistance.
//
// Errors:
//
//	ErrOrderOutOfRange     - city count outside [MinCities, MaxCities].
//	ErrCityOutOfRange      - initial or destination index outside [0, Order()).
//	ErrDimensionMismatch   - matrix is not Order()×Order().
//	ErrNonZeroDiagonal     - weight[i][i] != 0.
//	ErrWeightOutOfRange    - off-diagonal weight neither NoEdge nor within range.
package citygraph

import "errors"

// Domain bounds.
const (
	// MinCities is the smallest accepted number of cities.
	MinCities = 5

	// MaxCities is the largest accepted number of cities.
	MaxCities = 50

	// MinDistance is the smallest weight of an existing road.
	MinDistance int64 = 1

	// MaxDistance is the largest weight of an existing road.
	MaxDistance int64 = 20

	// NoEdge marks the absence of a road between two cities.
	NoEdge int64 = -1
)

// Sentinel errors for graph construction.
var (
	// ErrOrderOutOfRange indicates a city count outside [MinCities, MaxCities].
	ErrOrderOutOfRange = errors.New("citygraph: number of cities out of range")

	// ErrCityOutOfRange indicates an initial or destination index outside the graph.
	ErrCityOutOfRange = errors.New("citygraph: city index out of range")

	// ErrDimensionMismatch indicates the weight matrix is not Order()×Order().
	ErrDimensionMismatch = errors.New("citygraph: matrix dimension mismatch")

	// ErrNonZeroDiagonal indicates weight[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("citygraph: diagonal not zero")

	// ErrWeightOutOfRange indicates an off-diagonal weight outside [MinDistance, MaxDistance]
	// that is not NoEdge.
	ErrWeightOutOfRange = errors.New("citygraph: weight out of range")
)

// Graph is an immutable dense weighted graph with a designated initial and
// destination city. The zero value is not usable; build graphs with New.
type Graph struct {
	order       int
	initial     int
	destination int

	// weights[from][to]; NoEdge where no road exists.
	weights [][]int64
}
