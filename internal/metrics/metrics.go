// SPDX-License-Identifier: MIT

// Package metrics records per-trial counters for generated instances in a
// private Prometheus registry, which can be dumped in text format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder owns one registry and the collectors registered on it.
// Collectors are safe for concurrent use, so batch workers share a Recorder.
type Recorder struct {
	reg *prometheus.Registry

	// trials counts finished trials by outcome
	trials *prometheus.CounterVec
	// oddAfterRepair counts trials whose repair left an odd vertex
	oddAfterRepair prometheus.Counter
	edges          prometheus.Histogram
	duration       prometheus.Histogram
}

// New creates a Recorder with a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		trials: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "euler_trials_total",
			Help: "Finished trials by outcome",
		}, []string{"outcome"}),
		oddAfterRepair: factory.NewCounter(prometheus.CounterOpts{
			Name: "euler_odd_after_repair_total",
			Help: "Trials that still had an odd-degree vertex after parity repair",
		}),
		edges: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "euler_graph_edges",
			Help:    "Edge count of each generated graph after repair",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "euler_trial_duration_seconds",
			Help:    "Build plus solve time per trial",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs to ~40s
		}),
	}
}

// Observe records one finished trial.
func (r *Recorder) Observe(outcome string, edges int, oddRemaining bool, elapsed time.Duration) {
	r.trials.WithLabelValues(outcome).Inc()
	if oddRemaining {
		r.oddAfterRepair.Inc()
	}
	r.edges.Observe(float64(edges))
	r.duration.Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() prometheus.Gatherer { return r.reg }

// WriteFile dumps all metrics in Prometheus text format to path.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
