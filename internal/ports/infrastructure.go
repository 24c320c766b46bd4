package ports

import (
	"context"
	"time"
)

// NameSource produces fake personal names for generated students.
// Implementations are locale specific and treated as a black box by the
// generator.
type NameSource interface {
	// Name returns a first name and a last name.
	Name() (first, last string)

	// Locale returns the BCP 47 tag of the names produced.
	Locale() string
}

// RowSink receives the worksheet as an ordered, append-only sequence of
// rows and persists it once.
// Implementations could write XLSX, keep rows in memory for tests, or
// stream to another tabular store.
type RowSink interface {
	// WriteHeader writes the header row. It must be called before any
	// AppendRow call and at most once.
	WriteHeader(titles []string) error

	// AppendRow appends one data row after the last written row.
	AppendRow(values ...any) error

	// Rows returns the number of rows written so far, header included.
	Rows() int

	// Save persists the worksheet. A sink is saved exactly once; further
	// calls return ErrAlreadySaved.
	Save(ctx context.Context) error
}

// MetadataWriter is implemented by sinks that can store document properties
// alongside the rows.
type MetadataWriter interface {
	SetMetadata(meta DatasetMetadata) error
}

// DatasetMetadata describes a generated dataset.
type DatasetMetadata struct {
	// RunID uniquely identifies the run that produced the dataset.
	RunID string

	// Title is a human-readable dataset title.
	Title string

	// Locale is the BCP 47 tag of the generated names.
	Locale string

	// Created is the generation time.
	Created time.Time
}

// SheetData is one worksheet read back as a grid of strings.
type SheetData struct {
	// Name is the worksheet name.
	Name string

	// Values holds the cells row by row. Rows may have different lengths.
	Values [][]string
}

// MetricsCollector defines the interface for collecting operational metrics.
// Implementations should integrate with observability platforms like
// Prometheus,
// OpenTelemetry, or custom monitoring solutions.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	// The labels map provides additional context for the metric.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	// This is useful for tracking events like generated rows, retries, etc.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	RecordGauge(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a histogram.
	// This is useful for tracking distributions like exams per student.
	RecordHistogram(metric string, value float64, labels map[string]string)
}

// ConfigLoader defines the interface for loading configuration.
// Implementations could read from files, environment variables,
// remote configuration services, or a combination of sources.
type ConfigLoader interface {
	// Load reads configuration from the underlying source.
	// It should populate the provided configuration struct.
	// The config parameter should be a pointer to a struct.
	//
	// Example:
	//
	//	var config GeneratorConfig
	//	err := loader.Load(ctx, &config)
	Load(ctx context.Context, config any) error
}
