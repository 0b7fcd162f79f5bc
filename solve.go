// SPDX-License-Identifier: MIT

package cityways

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/cityways/citygraph"
	"github.com/katalvlaran/cityways/dijkstra"
	"github.com/katalvlaran/cityways/loader"
	"github.com/katalvlaran/cityways/paths"
	"github.com/katalvlaran/cityways/report"
)

// ErrNilGraph is returned by SolveGraph for a nil graph.
var ErrNilGraph = errors.New("cityways: graph is nil")

// Solution is the outcome of a successful run.
type Solution struct {
	Graph    *citygraph.Graph
	Distance int64
	Paths    []paths.Path
}

// Report converts s into the formatter's input.
func (s *Solution) Report() report.Report {
	return report.Report{Distance: s.Distance, Paths: s.Paths}
}

// Solve loads a graph from r and computes all shortest routes between its
// initial and destination cities. Errors match the loader and dijkstra
// sentinels with errors.Is; report.Message maps them to their fixed line.
// A failing reader yields loader.ErrRead, which is not a verdict on the input.
func Solve(r io.Reader, opts ...Option) (*Solution, error) {
	cfg := buildOptions(opts)

	return run(cfg, func() (*citygraph.Graph, error) {
		return loader.Load(r, loader.WithLogger(cfg.Logger))
	})
}

// SolveFile is Solve on the content of path. Open failures wrap loader.ErrRead.
func SolveFile(path string, opts ...Option) (*Solution, error) {
	cfg := buildOptions(opts)

	return run(cfg, func() (*citygraph.Graph, error) {
		return loader.LoadFile(path, loader.WithLogger(cfg.Logger))
	})
}

// SolveGraph runs the engine and the enumerator on an already built graph.
func SolveGraph(g *citygraph.Graph, opts ...Option) (*Solution, error) {
	cfg := buildOptions(opts)

	return run(cfg, func() (*citygraph.Graph, error) {
		if g == nil {
			return nil, ErrNilGraph
		}

		return g, nil
	})
}

// run times load plus solve and records the outcome.
func run(cfg Options, load func() (*citygraph.Graph, error)) (*Solution, error) {
	start := time.Now()

	g, err := load()
	if err != nil {
		return nil, finish(cfg, start, nil, err)
	}

	sol, err := solve(cfg, g)

	return sol, finish(cfg, start, sol, err)
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func solve(cfg Options, g *citygraph.Graph) (*Solution, error) {
	res, err := dijkstra.AllShortest(g,
		dijkstra.WithDirection(cfg.Direction),
		dijkstra.WithLogger(cfg.Logger),
	)
	if err != nil {
		return nil, err
	}

	all, err := paths.Enumerate(res)
	if err != nil {
		return nil, fmt.Errorf("cityways: enumerate: %w", err)
	}

	return &Solution{Graph: g, Distance: res.Distance(), Paths: all}, nil
}

// finish logs and records the outcome, then hands err back unchanged.
func finish(cfg Options, start time.Time, sol *Solution, err error) error {
	elapsed := time.Since(start)
	if err != nil {
		kind := report.Kind(err)
		if report.IsDomain(err) {
			cfg.Logger.Info("run rejected", "kind", kind, "error", err)
		} else {
			cfg.Logger.Warn("run failed", "kind", kind, "error", err)
		}
		cfg.Metrics.ObserveFailure(kind, elapsed)

		return err
	}

	cfg.Logger.Info("run solved",
		"cities", sol.Graph.Order(),
		"distance", sol.Distance,
		"paths", len(sol.Paths),
		"elapsed", elapsed)
	cfg.Metrics.ObserveSuccess(len(sol.Paths), elapsed)

	return nil
}
