// SPDX-License-Identifier: MIT
// Package metrics records per-run outcomes of the solver on a private
// Prometheus registry. A CLI run is short-lived, so instead of serving the
// registry over HTTP the recorder can dump it in the node_exporter textfile
// format with WriteTextfile.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutcomeOK labels a run that produced a report.
const OutcomeOK = "ok"

// ErrNilRecorder is returned by WriteTextfile on a nil receiver.
var ErrNilRecorder = errors.New("metrics: nil recorder")

// Recorder owns the collectors of one process. The zero value is not usable;
// build it with NewRecorder. A nil *Recorder ignores observations.
type Recorder struct {
	reg *prometheus.Registry

	runs     *prometheus.CounterVec
	paths    prometheus.Histogram
	duration prometheus.Histogram
}

// NewRecorder registers the cityways collectors on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{reg: prometheus.NewRegistry()}
	factory := promauto.With(r.reg)

	r.runs = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cityways",
		Name:      "runs_total",
		Help:      "Total number of solver runs, per outcome (ok or error kind)",
	}, []string{"outcome"})
	r.paths = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cityways",
		Name:      "shortest_paths",
		Help:      "Number of tied shortest paths reported per successful run",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})
	r.duration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cityways",
		Name:      "run_duration_seconds",
		Help:      "Wall time of a solver run, from first byte read to report",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})

	return r
}

// ObserveSuccess records a run that found pathCount shortest paths.
func (r *Recorder) ObserveSuccess(pathCount int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(OutcomeOK).Inc()
	r.paths.Observe(float64(pathCount))
	r.duration.Observe(elapsed.Seconds())
}

// ObserveFailure records a run rejected with the given error kind.
func (r *Recorder) ObserveFailure(kind string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(kind).Inc()
	r.duration.Observe(elapsed.Seconds())
}

// Gatherer exposes the private registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile atomically writes every collected metric to path.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return ErrNilRecorder
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
