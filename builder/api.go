// SPDX-License-Identifier: MIT
// Package builder generates deterministic city graphs for tests, benchmarks
// and the "cityways generate" command.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). It starts from n cities
//     with no roads, resolves the config, runs the constructors in order and
//     freezes the result with citygraph.New.
//   - Constructors only add roads; later constructors overwrite the weight of a
//     road an earlier one already placed.
//   - Determinism: same n, options, seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; option constructors panic on meaningless input.
package builder

import (
	"fmt"

	"github.com/katalvlaran/cityways/citygraph"
)

// Constructor adds roads to the sketch using the resolved config.
type Constructor func(s *sketch, cfg builderConfig) error

// sketch is the mutable matrix constructors draw on.
type sketch struct {
	n       int
	weights [][]int64
}

func newSketch(n int) *sketch {
	w := make([][]int64, n)
	for i := range w {
		w[i] = make([]int64, n)
		for j := range w[i] {
			if i != j {
				w[i][j] = citygraph.NoEdge
			}
		}
	}

	return &sketch{n: n, weights: w}
}

// road places from→to, and to→from unless cfg.oneWay.
func (s *sketch) road(from, to int, w int64, cfg builderConfig) {
	s.weights[from][to] = w
	if !cfg.oneWay {
		s.weights[to][from] = w
	}
}

// BuildGraph creates an n-city graph and applies all constructors in order.
// Endpoints default to 0 and n-1 (see WithEndpoints).
//
// Errors: ErrTooFewVertices / ErrTooManyVertices for n outside the citygraph
// bounds, constructor errors wrapped with "BuildGraph: %w", and citygraph
// errors for invalid endpoints.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*citygraph.Graph, error) {
	if n < citygraph.MinCities {
		return nil, fmt.Errorf("BuildGraph: n=%d < min=%d: %w", n, citygraph.MinCities, ErrTooFewVertices)
	}
	if n > citygraph.MaxCities {
		return nil, fmt.Errorf("BuildGraph: n=%d > max=%d: %w", n, citygraph.MaxCities, ErrTooManyVertices)
	}

	cfg := newBuilderConfig(n, bopts...)
	s := newSketch(n)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := citygraph.New(cfg.initial, cfg.destination, s.weights)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
