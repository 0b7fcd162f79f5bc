// SPDX-License-Identifier: MIT
package paths_test

import (
	"fmt"

	"github.com/katalvlaran/cityways/builder"
	"github.com/katalvlaran/cityways/dijkstra"
	"github.com/katalvlaran/cityways/paths"
)

// ExampleEnumerate lists the four tied routes through two chained diamonds.
func ExampleEnumerate() {
	g, _ := builder.BuildGraph(7, nil, builder.DiamondChain())
	res, _ := dijkstra.AllShortest(g)

	all, err := paths.Enumerate(res)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, p := range all {
		fmt.Printf("%d. %s\n", i+1, p)
	}
	// Output:
	// 1. 0 -> 1 -> 3 -> 4 -> 6
	// 2. 0 -> 2 -> 3 -> 4 -> 6
	// 3. 0 -> 1 -> 3 -> 5 -> 6
	// 4. 0 -> 2 -> 3 -> 5 -> 6
}
