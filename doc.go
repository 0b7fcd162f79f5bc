// SPDX-License-Identifier: MIT
// Package cityways finds every minimum-distance route between two cities of a
// small road network described in a strict text format.
//
// A run is a straight pipeline, and any stage failure short-circuits the rest:
//
//	loader.Load        text → *citygraph.Graph, or one of seven input errors
//	dijkstra.AllShortest  distances with every tied predecessor kept
//	paths.Enumerate    predecessor DAG → all shortest routes, DFS order
//	report.Write       "The shortest path is D." + numbered routes
//
// Input format:
//
//	<cities> <initial> <destination>
//	<blank line>
//	<cities rows of cities tokens, each a distance in [1,20], '*' or the diagonal 0>
//
// Quick example:
//
//	sol, err := cityways.Solve(strings.NewReader(input))
//	if err != nil {
//		_ = report.WriteError(os.Stdout, err, report.FormatText)
//		return
//	}
//	_ = report.Write(os.Stdout, sol.Report(), report.FormatText)
//
// Subpackages can be used on their own; builder generates fixture graphs and
// their input text, metrics records run outcomes for Prometheus.
package cityways
