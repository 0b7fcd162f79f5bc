// SPDX-License-Identifier: MIT

package citygraph

import "fmt"

// New validates the inputs and returns an immutable Graph.
//
// The weight matrix is deep-copied, so later changes to weights by the caller
// do not affect the Graph. Validation order: order → initial → destination →
// matrix shape (row by row) → cell values (row-major).
//
// Complexity: O(n²) time and space.
func New(initial, destination int, weights [][]int64) (*Graph, error) {
	n := len(weights)
	if err := ValidateOrder(n); err != nil {
		return nil, err
	}
	if err := ValidateCity(initial, n); err != nil {
		return nil, fmt.Errorf("initial: %w", err)
	}
	if err := ValidateCity(destination, n); err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	rows := make([][]int64, n)
	for i, row := range weights {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
		for j, w := range row {
			if err := ValidateWeight(i, j, w); err != nil {
				return nil, err
			}
		}
		rows[i] = append([]int64(nil), row...)
	}

	return &Graph{
		order:       n,
		initial:     initial,
		destination: destination,
		weights:     rows,
	}, nil
}

// Order returns the number of cities.
func (g *Graph) Order() int { return g.order }

// Initial returns the index of the starting city.
func (g *Graph) Initial() int { return g.initial }

// Destination returns the index of the target city.
func (g *Graph) Destination() int { return g.destination }

// Weight returns weight[from][to], or NoEdge. Indices must be valid.
func (g *Graph) Weight(from, to int) int64 { return g.weights[from][to] }

// HasEdge reports whether a road leads from one distinct city to another.
// The zero diagonal is not a road.
func (g *Graph) HasEdge(from, to int) bool {
	return from != to && g.weights[from][to] != NoEdge
}

// Row returns a copy of the outgoing weights of city i.
func (g *Graph) Row(i int) []int64 {
	return append([]int64(nil), g.weights[i]...)
}

// PathWeight sums the weights along path.
// It returns false if any index is outside the graph or any consecutive pair
// is not connected by a road. A single-city path weighs zero.
func (g *Graph) PathWeight(path []int) (int64, bool) {
	if len(path) == 0 {
		return 0, false
	}
	var total int64
	for k, v := range path {
		if v < 0 || v >= g.order {
			return 0, false
		}
		if k == 0 {
			continue
		}
		u := path[k-1]
		if !g.HasEdge(u, v) {
			return 0, false
		}
		total += g.weights[u][v]
	}

	return total, true
}
