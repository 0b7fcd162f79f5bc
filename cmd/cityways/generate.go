// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cityways/builder"
	"github.com/katalvlaran/cityways/citygraph"
)

var (
	errUnknownKind = errors.New("unknown graph kind")
	errWeightRange = errors.New("--weight must be 0 or within [1,20]")
)

func newGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a generated road network in the input format",
		Long: `Generates a deterministic fixture graph. Kinds: path, diamond (chained
equal-cost diamonds), complete and random (roads kept with probability --p).
A --weight of 0 draws every road weight from the seeded source.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	generateCmd.Flags().String("kind", "path", "Graph kind: path, diamond, complete or random")
	generateCmd.Flags().Int("nodes", 5, "Number of cities")
	generateCmd.Flags().Int64("seed", 1, "Seed of the random source")
	generateCmd.Flags().Float64("p", 0.3, "Road probability for --kind random")
	generateCmd.Flags().Int64("weight", 1, "Weight of every road; 0 for random weights")
	generateCmd.Flags().Bool("one-way", false, "Emit only the from→to road of each pair")

	return generateCmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	kind, _ := flags.GetString("kind")
	nodes, _ := flags.GetInt("nodes")
	seed, _ := flags.GetInt64("seed")
	p, _ := flags.GetFloat64("p")
	weight, _ := flags.GetInt64("weight")
	oneWay, _ := flags.GetBool("one-way")

	var cons builder.Constructor
	switch kind {
	case "path":
		cons = builder.Path()
	case "diamond":
		cons = builder.DiamondChain()
	case "complete":
		cons = builder.Complete()
	case "random":
		cons = builder.RandomSparse(p)
	default:
		return fmt.Errorf("%w %q", errUnknownKind, kind)
	}

	opts := []builder.BuilderOption{builder.WithSeed(seed)}
	if weight == 0 {
		opts = append(opts, builder.WithRandomWeights())
	} else {
		if weight < citygraph.MinDistance || weight > citygraph.MaxDistance {
			return fmt.Errorf("%w: %d", errWeightRange, weight)
		}
		opts = append(opts, builder.WithWeight(weight))
	}
	if oneWay {
		opts = append(opts, builder.WithOneWay())
	}

	g, err := builder.BuildGraph(nodes, opts, cons)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), builder.Encode(g))

	return err
}
