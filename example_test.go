// SPDX-License-Identifier: MIT
package cityways_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/cityways"
	"github.com/katalvlaran/cityways/report"
)

// ExampleSolve runs the whole pipeline on a 5-city chain.
func ExampleSolve() {
	input := "5 0 4\n\n" +
		"0 1 * * *\n" +
		"1 0 1 * *\n" +
		"* 1 0 1 *\n" +
		"* * 1 0 1\n" +
		"* * * 1 0\n"

	sol, err := cityways.Solve(strings.NewReader(input))
	if err != nil {
		_ = report.WriteError(os.Stdout, err, report.FormatText)
		return
	}
	fmt.Println("distance:", sol.Distance)
	_ = report.Write(os.Stdout, sol.Report(), report.FormatText)
	// Output:
	// distance: 4
	// The shortest path is 4.
	// The number of shortest paths is 1:
	// 1. 0 -> 1 -> 2 -> 3 -> 4
}
