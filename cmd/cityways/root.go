// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

// defaultInput is the file read when no argument is given.
const defaultInput = "in"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cityways [FILE]",
		Short: "cityways finds every shortest route between two cities",
		Long: `cityways reads a road network in the strict cityways text format and prints
the minimal distance between the chosen cities with every route achieving it.
Invalid input is reported with a single fixed line.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level on stderr: debug, info, warn or error")
	rootCmd.PersistentFlags().String("config", "", "YAML config file; explicit flags override its values")

	solveCmd := newSolveCmd()
	rootCmd.AddCommand(solveCmd, newGenerateCmd(), newVersionCmd())

	// 'solve' is the default when no command is given.
	addSolveFlags(rootCmd)
	rootCmd.RunE = solveCmd.RunE

	return rootCmd
}
