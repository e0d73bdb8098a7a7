package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	signals       *prometheus.CounterVec
	warnings      *prometheus.CounterVec
	skippedSizing prometheus.Counter
	errorsTotal   *prometheus.CounterVec
	lastZScore    *prometheus.GaugeVec
	latency       *prometheus.HistogramVec
}

// New creates a Prometheus metrics recorder registered on reg.
// A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Recorder{
		signals: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairscope_analyses_total",
				Help: "Completed pair analyses by trade signal",
			},
			[]string{"signal"},
		),
		warnings: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairscope_analysis_warnings_total",
				Help: "Non-fatal analysis warnings by kind",
			},
			[]string{"kind"},
		),
		skippedSizing: f.NewCounter(
			prometheus.CounterOpts{
				Name: "pairscope_positions_skipped_total",
				Help: "Analyses that could not size positions",
			},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairscope_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastZScore: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pairscope_last_zscore",
				Help: "Most recent spread z-score for a pair",
			},
			[]string{"pair"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pairscope_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"operation"},
		),
	}
}

// RecordSignal counts a completed analysis.
func (r *Recorder) RecordSignal(signal string) {
	r.signals.WithLabelValues(signal).Inc()
}

// RecordWarning counts a non-fatal warning.
func (r *Recorder) RecordWarning(kind string) {
	r.warnings.WithLabelValues(kind).Inc()
}

// RecordSkippedPositions counts an analysis returned without positions.
func (r *Recorder) RecordSkippedPositions() {
	r.skippedSizing.Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastZScore records the latest z-score for a pair.
func (r *Recorder) RecordLastZScore(pair string, z float64) {
	r.lastZScore.WithLabelValues(pair).Set(z)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
