package middleware

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-tribunal/internal/ports"
)

// newTestMetrics registers a fresh instance with its own registry so tests
// never collide on metric names.
func newTestMetrics(t *testing.T) (*PrometheusMetrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewPrometheusMetrics(reg), reg
}

// TestNewPrometheusMetrics verifies that all internal metrics are initialized.
func TestNewPrometheusMetrics(t *testing.T) {
	pm, _ := newTestMetrics(t)

	assert.NotNil(t, pm.studentsGenerated, "studentsGenerated should be initialized")
	assert.NotNil(t, pm.rowsGenerated, "rowsGenerated should be initialized")
	assert.NotNil(t, pm.identifierCollisions, "identifierCollisions should be initialized")
	assert.NotNil(t, pm.selectionRetries, "selectionRetries should be initialized")
	assert.NotNil(t, pm.examsPerStudent, "examsPerStudent should be initialized")
	assert.NotNil(t, pm.executionLatency, "executionLatency should be initialized")
	assert.NotNil(t, pm.observations, "observations should be initialized")
	assert.NotNil(t, pm.operationCounter, "operationCounter should be initialized")
	assert.NotNil(t, pm.systemGauges, "systemGauges should be initialized")

	var _ ports.MetricsCollector = pm
}

func TestNewPrometheusMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusMetrics(reg)

	assert.Panics(t, func() { NewPrometheusMetrics(reg) })
}

// TestPrometheusMetrics_RecordCounter checks that named counters land in
// their dedicated metrics and unknown names in the generic counter.
func TestPrometheusMetrics_RecordCounter(t *testing.T) {
	pm, _ := newTestMetrics(t)

	pm.RecordCounter("students_generated_total", 1, nil)
	pm.RecordCounter("students_generated_total", 1, nil)
	pm.RecordCounter("rows_generated_total", 4, map[string]string{"kind": "Obligatoria"})
	pm.RecordCounter("rows_generated_total", 3, map[string]string{"kind": "Voluntaria"})
	pm.RecordCounter("rows_generated_total", 1, nil)
	pm.RecordCounter("identifier_collisions_total", 2, nil)
	pm.RecordCounter("selection_retries_total", 5, nil)
	pm.RecordCounter("custom_total", 9, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(pm.studentsGenerated))
	assert.Equal(t, 4.0, testutil.ToFloat64(pm.rowsGenerated.WithLabelValues("Obligatoria")))
	assert.Equal(t, 3.0, testutil.ToFloat64(pm.rowsGenerated.WithLabelValues("Voluntaria")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.rowsGenerated.WithLabelValues("unknown")))
	assert.Equal(t, 2.0, testutil.ToFloat64(pm.identifierCollisions))
	assert.Equal(t, 5.0, testutil.ToFloat64(pm.selectionRetries))
	assert.Equal(t, 9.0, testutil.ToFloat64(pm.operationCounter.WithLabelValues("custom_total")))
}

func TestPrometheusMetrics_RecordGauge(t *testing.T) {
	pm, _ := newTestMetrics(t)

	pm.RecordGauge("students_planned", 300, nil)
	pm.RecordGauge("students_planned", 310, nil)

	assert.Equal(t, 310.0, testutil.ToFloat64(pm.systemGauges.WithLabelValues("students_planned")))
}

func TestPrometheusMetrics_HistogramsAndLatency(t *testing.T) {
	pm, reg := newTestMetrics(t)

	pm.RecordHistogram("exams_per_student", 4, nil)
	pm.RecordHistogram("exams_per_student", 6, nil)
	pm.RecordLatency("dataset_generation", 150*time.Millisecond, map[string]string{"status": "success"})
	pm.RecordLatency("dataset_generation", 10*time.Millisecond, nil)

	assert.Equal(t, 1, testutil.CollectAndCount(pm.examsPerStudent))
	assert.Equal(t, 2, testutil.CollectAndCount(pm.executionLatency))

	count, err := testutil.GatherAndCount(reg, "tribunal_exams_per_student")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// TestPrometheusMetrics_UnknownHistogramKeepsLatencyClean checks that values
// under unknown histogram names never land in the seconds histogram.
func TestPrometheusMetrics_UnknownHistogramKeepsLatencyClean(t *testing.T) {
	pm, reg := newTestMetrics(t)

	pm.RecordHistogram("centres_per_run", 7, map[string]string{"status": "success"})
	pm.RecordHistogram("centres_per_run", 5, nil)

	assert.Equal(t, 0, testutil.CollectAndCount(pm.executionLatency))
	assert.Equal(t, 1, testutil.CollectAndCount(pm.observations))

	families, err := reg.Gather()
	require.NoError(t, err)
	found := false
	for _, mf := range families {
		if mf.GetName() != "tribunal_observations" {
			continue
		}
		found = true
		require.Len(t, mf.GetMetric(), 1)
		h := mf.GetMetric()[0].GetHistogram()
		assert.Equal(t, uint64(2), h.GetSampleCount())
		assert.Equal(t, 12.0, h.GetSampleSum())
	}
	assert.True(t, found, "tribunal_observations not gathered")
}

func TestPrometheusMetrics_WriteToTextfile(t *testing.T) {
	pm, reg := newTestMetrics(t)
	pm.RecordCounter("students_generated_total", 3, nil)

	path := filepath.Join(t.TempDir(), "tribunal.prom")
	require.NoError(t, prometheus.WriteToTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "tribunal_students_generated_total 3"))
}
