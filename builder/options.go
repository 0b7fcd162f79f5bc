// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/cityways/citygraph"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value; constructors cannot leak changes.
type builderConfig struct {
	initial     int
	destination int
	endpointSet bool

	oneWay bool

	// rng is nil unless seeded; stochastic constructors require it.
	rng *rand.Rand

	// weightFn returns the weight of the next road.
	weightFn func(*rand.Rand) (int64, error)
}

const defaultWeight int64 = 1

// BuilderOption customizes the build before any constructor runs.
type BuilderOption func(*builderConfig)

func newBuilderConfig(n int, opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: constWeight(defaultWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.endpointSet {
		cfg.initial, cfg.destination = 0, n-1
	}

	return cfg
}

// WithEndpoints selects the initial and destination cities.
// They are validated by citygraph.New when the graph is frozen.
func WithEndpoints(initial, destination int) BuilderOption {
	return func(c *builderConfig) {
		c.initial, c.destination, c.endpointSet = initial, destination, true
	}
}

// WithOneWay makes constructors emit only the from→to road.
func WithOneWay() BuilderOption {
	return func(c *builderConfig) { c.oneWay = true }
}

// WithSeed attaches a deterministic RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches r. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithWeight makes every road weigh w.
// Panics if w is outside [citygraph.MinDistance, citygraph.MaxDistance].
func WithWeight(w int64) BuilderOption {
	if w < citygraph.MinDistance || w > citygraph.MaxDistance {
		panic("builder: WithWeight out of range")
	}

	return func(c *builderConfig) { c.weightFn = constWeight(w) }
}

// WithRandomWeights draws each road weight uniformly from
// [citygraph.MinDistance, citygraph.MaxDistance]. Requires an RNG.
func WithRandomWeights() BuilderOption {
	return func(c *builderConfig) { c.weightFn = randomWeight }
}

func constWeight(w int64) func(*rand.Rand) (int64, error) {
	return func(*rand.Rand) (int64, error) { return w, nil }
}

func randomWeight(r *rand.Rand) (int64, error) {
	if r == nil {
		return 0, ErrNeedRandSource
	}
	span := citygraph.MaxDistance - citygraph.MinDistance + 1

	return citygraph.MinDistance + r.Int63n(span), nil
}
