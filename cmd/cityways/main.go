// SPDX-License-Identifier: MIT

// Command cityways prints every shortest route between two cities of a road
// network read from a file (default "in") or stdin.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
