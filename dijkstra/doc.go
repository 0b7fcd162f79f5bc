// SPDX-License-Identifier: MIT
// Package dijkstra computes single-source shortest distances on a
// *citygraph.Graph while keeping every tied predecessor of each city.
//
// Overview:
//
//   - Classic label-setting relaxation with positive weights: the source gets
//     distance 0, then the unsettled city with the smallest known distance is
//     repeatedly settled and its roads are relaxed.
//   - Instead of one parent pointer per city, every predecessor that reaches it
//     at the minimal distance is kept, in discovery order. The predecessor
//     relation is therefore a DAG of equal-cost routes, not a tree.
//   - Cities are addressed by index; per-city state lives in a flat slice
//     (Result.States), predecessor sets are []int.
//
// Determinism:
//
//   - The pivot is chosen by a linear scan in index order; among equal
//     distances the lowest index wins.
//   - Predecessors are appended in the order pivots are settled. A pivot is
//     recorded at most once per city.
//
// Edge direction:
//
//   - Forward (default): weight[from][to], i.e. row = source city.
//   - Transposed: weight[to][from]; relaxing city j from pivot p reads
//     weight[j][p]. Only differs from Forward on asymmetric matrices.
//
// Complexity:
//
//   - Time:  O(V²). At most V pivots, each found by an O(V) scan and relaxed
//     against O(V) matrix cells. Graphs hold at most citygraph.MaxCities cities.
//   - Space: O(V + P) where P is the total size of all predecessor sets.
//
// Errors (sentinel):
//
//   - ErrNilGraph: the graph pointer is nil.
//   - ErrNoPath:   the destination was never reached.
//
// Example usage:
//
//	res, err := dijkstra.AllShortest(g)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // cities are not connected
//	}
//	fmt.Println(res.Distance(), res.States[res.Target].Predecessors)
package dijkstra
