// Package middleware provides cross-cutting concerns for dataset generation.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/go-tribunal/internal/ports"
)

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// PrometheusMetrics implements the MetricsCollector interface using Prometheus.
// It tracks how many students and rows a run produced and how often the
// rejection samplers had to redraw.
type PrometheusMetrics struct {
	studentsGenerated    prometheus.Counter
	rowsGenerated        *prometheus.CounterVec
	identifierCollisions prometheus.Counter
	selectionRetries     prometheus.Counter
	examsPerStudent      prometheus.Histogram
	executionLatency     *prometheus.HistogramVec
	observations         *prometheus.HistogramVec
	operationCounter     *prometheus.CounterVec
	systemGauges         *prometheus.GaugeVec
}

// NewPrometheusMetrics creates a PrometheusMetrics instance and registers all
// metrics with reg. Pass prometheus.DefaultRegisterer for the global registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		studentsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "tribunal_students_generated_total",
			Help: "Total number of synthetic students generated.",
		}),
		rowsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tribunal_rows_generated_total",
				Help: "Total number of student exam rows generated, by subject type.",
			},
			[]string{"kind"},
		),
		identifierCollisions: factory.NewCounter(prometheus.CounterOpts{
			Name: "tribunal_identifier_collisions_total",
			Help: "Identifier draws rejected because the NIF was already issued.",
		}),
		selectionRetries: factory.NewCounter(prometheus.CounterOpts{
			Name: "tribunal_selection_retries_total",
			Help: "Optional subject draws rejected as duplicates.",
		}),
		examsPerStudent: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tribunal_exams_per_student",
			Help:    "Distribution of exams assigned per student.",
			Buckets: prometheus.LinearBuckets(1, 1, 12),
		}),

		// General execution metrics.
		executionLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tribunal_execution_duration_seconds",
				Help:    "Execution time of dataset generation operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "status"},
		),
		observations: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tribunal_observations",
				Help:    "Values recorded under histogram names without a dedicated metric.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"metric"},
		),
		operationCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tribunal_operations_total",
				Help: "Counters recorded under names without a dedicated metric.",
			},
			[]string{"metric"},
		),
		systemGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tribunal_system_state",
				Help: "Current state values reported by the generator.",
			},
			[]string{"metric"},
		),
	}
}

// RecordLatency implements the MetricsCollector interface by recording
// execution latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string,
	duration time.Duration,
	labels map[string]string,
) {
	pm.executionLatency.WithLabelValues(operation, labelOr(labels, "status", "unknown")).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by incrementing
// Prometheus counters.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	switch metric {
	case "students_generated_total":
		pm.studentsGenerated.Add(value)
	case "rows_generated_total":
		pm.rowsGenerated.WithLabelValues(labelOr(labels, "kind", "unknown")).Add(value)
	case "identifier_collisions_total":
		pm.identifierCollisions.Add(value)
	case "selection_retries_total":
		pm.selectionRetries.Add(value)
	default:
		pm.operationCounter.WithLabelValues(metric).Add(value)
	}
}

// RecordGauge implements the MetricsCollector interface by setting
// Prometheus gauge values.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, _ map[string]string,
) {
	pm.systemGauges.WithLabelValues(metric).Set(value)
}

// RecordHistogram implements the MetricsCollector interface by recording
// values in Prometheus histograms.
func (pm *PrometheusMetrics) RecordHistogram(
	metric string, value float64, _ map[string]string,
) {
	switch metric {
	case "exams_per_student":
		pm.examsPerStudent.Observe(value)
	default:
		pm.observations.WithLabelValues(metric).Observe(value)
	}
}

// labelOr returns labels[key], or fallback when the label is missing or
// empty.
func labelOr(labels map[string]string, key, fallback string) string {
	if v := labels[key]; v != "" {
		return v
	}
	return fallback
}
