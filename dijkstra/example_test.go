// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/cityways/citygraph"
	"github.com/katalvlaran/cityways/dijkstra"
)

// ExampleAllShortest_diamond shows two equal-cost routes converging on city 3.
//
//	    1
//	  ↗   ↘
//	0       3 → 4
//	  ↘   ↗
//	    2
func ExampleAllShortest_diamond() {
	const x = citygraph.NoEdge
	g, err := citygraph.New(0, 4, [][]int64{
		{0, 2, 2, x, x},
		{x, 0, x, 3, x},
		{x, x, 0, 3, x},
		{x, x, x, 0, 1},
		{x, x, x, x, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dijkstra.AllShortest(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("distance=%d preds[3]=%v preds[4]=%v\n",
		res.Distance(), res.States[3].Predecessors, res.States[4].Predecessors)
	// Output: distance=6 preds[3]=[1 2] preds[4]=[3]
}

// ExampleAllShortest_notConnected shows the ErrNoPath outcome.
func ExampleAllShortest_notConnected() {
	const x = citygraph.NoEdge
	g, _ := citygraph.New(0, 4, [][]int64{
		{0, 1, x, x, x},
		{1, 0, x, x, x},
		{x, x, 0, x, x},
		{x, x, x, 0, 1},
		{x, x, x, 1, 0},
	})

	_, err := dijkstra.AllShortest(g)
	fmt.Println(err)
	// Output: dijkstra: initial and destination cities are not connected
}
