// SPDX-License-Identifier: MIT

package cityways

import (
	"log/slog"

	"github.com/katalvlaran/cityways/dijkstra"
	"github.com/katalvlaran/cityways/internal/logging"
	"github.com/katalvlaran/cityways/metrics"
)

// Options configures Solve.
type Options struct {
	// Direction selects how matrix cells are read as roads. Default Forward.
	Direction dijkstra.Direction

	// Logger receives stage logs; default discards everything.
	Logger *slog.Logger

	// Metrics, when non-nil, records the outcome of every run.
	Metrics *metrics.Recorder
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns forward reading, a discarding logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Direction: dijkstra.Forward,
		Logger:    logging.NewNop(),
	}
}

// WithDirection sets the matrix reading. Panics on an unknown direction.
func WithDirection(d dijkstra.Direction) Option {
	if d != dijkstra.Forward && d != dijkstra.Transposed {
		panic("cityways: WithDirection: unknown direction")
	}

	return func(o *Options) { o.Direction = d }
}

// WithLogger routes logs of every stage to l; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records run outcomes on rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = rec }
}
