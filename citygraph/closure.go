// SPDX-License-Identifier: MIT
// Package: citygraph
//
// closure.go computes the all-pairs distance closure of a graph with a dense
// Floyd-Warshall pass. It is the brute-force reference the single-source
// engine is checked against; O(n³) is fine at n ≤ MaxCities.

package citygraph

// Closure returns d where d[i][j] is the minimal total weight of a route
// i→j under the row = source reading, or NoEdge when j is unreachable from i.
// The diagonal is 0.
//
// Loop order is fixed (k → i → j) and only strict improvements are applied.
func (g *Graph) Closure() [][]int64 {
	n := g.order
	d := make([][]int64, n)
	for i := range d {
		d[i] = make([]int64, n)
		copy(d[i], g.weights[i])
	}

	var k, i, j int
	var ik, kj int64
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			ik = d[i][k]
			if ik == NoEdge {
				continue
			}
			for j = 0; j < n; j++ {
				kj = d[k][j]
				if kj == NoEdge {
					continue
				}
				if d[i][j] == NoEdge || ik+kj < d[i][j] {
					d[i][j] = ik + kj
				}
			}
		}
	}

	return d
}
