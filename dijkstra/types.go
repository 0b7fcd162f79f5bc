// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/cityways/internal/logging"
)

// Sentinel errors returned by AllShortest.
var (
	// ErrNilGraph indicates that a nil *citygraph.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoPath indicates that the destination cannot be reached from the initial city.
	ErrNoPath = errors.New("dijkstra: initial and destination cities are not connected")
)

// Unreached is the distance of a city no relaxation has touched yet.
const Unreached int64 = math.MaxInt64

// Direction selects how the weight matrix is read during relaxation.
type Direction int

const (
	// Forward reads weight[pivot][neighbor]: rows are sources.
	Forward Direction = iota

	// Transposed reads weight[neighbor][pivot]: columns are sources.
	Transposed
)

// String returns "forward" or "transposed".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Transposed:
		return "transposed"
	}

	return "unknown"
}

// NodeState is the per-city bookkeeping of one run.
type NodeState struct {
	// Distance from the initial city, or Unreached.
	Distance int64

	// Predecessors lists every city through which Distance is achieved,
	// in the order they were settled. Empty for the initial city.
	Predecessors []int

	// Settled is true once the city has been chosen as a pivot.
	Settled bool
}

// Reached reports whether the city has a finite distance.
func (s NodeState) Reached() bool { return s.Distance != Unreached }

// Result is the outcome of a successful run. States is indexed by city.
type Result struct {
	Source int
	Target int
	States []NodeState
}

// Distance returns the minimal distance from Source to Target.
func (r *Result) Distance() int64 { return r.States[r.Target].Distance }

// Options configures AllShortest.
//
//   - Direction: matrix reading convention (default Forward).
//   - EarlyStop: stop as soon as the destination is settled. Its distance and
//     predecessors are final at that point; other cities may be partial.
//   - Logger: receives a debug record per settled pivot (default: discard).
type Options struct {
	Direction Direction
	EarlyStop bool
	Logger    *slog.Logger
}

// Option represents a functional option for configuring AllShortest.
type Option func(*Options)

// WithDirection sets the matrix reading convention.
// Panics on a value other than Forward or Transposed.
func WithDirection(d Direction) Option {
	if d != Forward && d != Transposed {
		panic("dijkstra: unknown Direction")
	}

	return func(o *Options) {
		o.Direction = d
	}
}

// WithEarlyStop ends the run once the destination is settled.
func WithEarlyStop() Option {
	return func(o *Options) {
		o.EarlyStop = true
	}
}

// WithLogger routes the pivot trace to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Forward direction, a full run and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Direction: Forward,
		EarlyStop: false,
		Logger:    logging.NewNop(),
	}
}
