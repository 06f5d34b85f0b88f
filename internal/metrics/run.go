package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"

	apperrors "github.com/agbru/coinsim/internal/errors"
	"github.com/agbru/coinsim/internal/simulation"
)

// RunMetrics collects Prometheus metrics for a single simulation run.
// Each instance owns its registry so runs and tests never share global state.
type RunMetrics struct {
	registry      *prometheus.Registry
	trialsTotal   prometheus.Counter
	successes     prometheus.Counter
	batchesTotal  prometheus.Counter
	batchDuration prometheus.Histogram
	workers       prometheus.Gauge
}

// NewRunMetrics creates the run collectors and registers them, together with
// the Go runtime collector, on a fresh registry.
func NewRunMetrics(workers int) *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		trialsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coinsim_trials_total",
			Help: "Total number of simulated people.",
		}),
		successes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coinsim_successes_total",
			Help: "Total number of people who flipped only heads.",
		}),
		batchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coinsim_batches_total",
			Help: "Total number of completed batches.",
		}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "coinsim_batch_duration_seconds",
			Help:    "Wall time spent executing one batch.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "coinsim_workers",
			Help: "Size of the worker pool.",
		}),
	}
	m.registry.MustRegister(
		m.trialsTotal,
		m.successes,
		m.batchesTotal,
		m.batchDuration,
		m.workers,
		collectors.NewGoCollector(),
	)
	m.workers.Set(float64(workers))
	return m
}

// ObserveBatch records one completed batch.
func (m *RunMetrics) ObserveBatch(r simulation.BatchResult) {
	m.trialsTotal.Add(float64(r.Size))
	m.successes.Add(float64(r.Successes))
	m.batchesTotal.Inc()
	m.batchDuration.Observe(r.Duration.Seconds())
}

// Registry exposes the underlying registry.
func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (m *RunMetrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return apperrors.WrapError(err, "gathering metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return apperrors.WrapError(err, "writing metric %s", mf.GetName())
		}
	}
	return nil
}
