// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cityways"
	"github.com/katalvlaran/cityways/dijkstra"
	"github.com/katalvlaran/cityways/internal/logging"
	"github.com/katalvlaran/cityways/loader"
	"github.com/katalvlaran/cityways/metrics"
	"github.com/katalvlaran/cityways/report"
)

// stdinName selects standard input as the source.
const stdinName = "-"

var errUnknownDirection = errors.New("unknown direction")

func newSolveCmd() *cobra.Command {
	solveCmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Print the shortest distance and every route achieving it",
		Long: `Reads FILE ("in" by default, "-" for stdin) and prints the report.
Input errors are part of the report: they print a fixed line and exit 0.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
	addSolveFlags(solveCmd)

	return solveCmd
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "text", "Output format: text, yaml or json")
	cmd.Flags().String("direction", "forward", "Matrix reading: forward (row = source) or transposed")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics of the run to this textfile")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	direction, err := parseDirection(cfg.Direction)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewWriter(cmd.ErrOrStderr(), level)

	var rec *metrics.Recorder
	if cfg.MetricsFile != "" {
		rec = metrics.NewRecorder()
	}

	opts := []cityways.Option{
		cityways.WithDirection(direction),
		cityways.WithLogger(logger.With("input", cfg.Input)),
		cityways.WithMetrics(rec),
	}
	var sol *cityways.Solution
	if cfg.Input == stdinName {
		sol, err = cityways.Solve(cmd.InOrStdin(), opts...)
	} else {
		sol, err = cityways.SolveFile(cfg.Input, opts...)
	}

	// An unreadable input is a failure of the run, not a report.
	if errors.Is(err, loader.ErrRead) {
		return errors.Join(err, writeMetrics(rec, cfg.MetricsFile))
	}

	out := cmd.OutOrStdout()
	if err != nil {
		err = report.WriteError(out, err, format)
	} else {
		err = report.Write(out, sol.Report(), format)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return writeMetrics(rec, cfg.MetricsFile)
}

func writeMetrics(rec *metrics.Recorder, path string) error {
	if rec == nil {
		return nil
	}

	return rec.WriteTextfile(path)
}

func parseDirection(s string) (dijkstra.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "":
		return dijkstra.Forward, nil
	case "transposed":
		return dijkstra.Transposed, nil
	}

	return dijkstra.Forward, fmt.Errorf("%w %q", errUnknownDirection, s)
}
