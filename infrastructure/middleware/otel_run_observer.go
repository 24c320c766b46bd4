package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahrav/go-tribunal/internal/application"
	"github.com/ahrav/go-tribunal/internal/domain"
	"github.com/ahrav/go-tribunal/internal/ports"
)

// TracerName identifies spans emitted by the run observer.
const TracerName = "dataset-generator"

var _ application.RunObserver = (*OTelRunObserver)(nil)

// OTelRunObserver implements observability for dataset runs using
// OpenTelemetry tracing. One span covers the run; every student adds an
// event to it. An observer serves a single run.
type OTelRunObserver struct {
	tracer  trace.Tracer
	metrics ports.MetricsCollector
	span    trace.Span
}

// NewOTelRunObserver creates a run observer. A nil provider uses the global
// one; metrics may be nil.
func NewOTelRunObserver(provider trace.TracerProvider, metrics ports.MetricsCollector) *OTelRunObserver {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &OTelRunObserver{
		tracer:  provider.Tracer(TracerName),
		metrics: metrics,
	}
}

// RunStarted implements application.RunObserver. It starts the run span and
// records the planned student count.
func (o *OTelRunObserver) RunStarted(ctx context.Context, runID string, students int) context.Context {
	ctx, o.span = o.tracer.Start(ctx, "DatasetGenerator.Run", trace.WithAttributes(
		attribute.String("dataset.run_id", runID),
		attribute.Int("dataset.students_planned", students),
	))

	if o.metrics != nil {
		o.metrics.RecordGauge("students_planned", float64(students), nil)
	}
	return ctx
}

// StudentBuilt implements application.RunObserver.
func (o *OTelRunObserver) StudentBuilt(_ context.Context, index int, rows []domain.StudentExamRow) {
	if o.span == nil || len(rows) == 0 {
		return
	}
	o.span.AddEvent("student.built", trace.WithAttributes(
		attribute.Int("student.index", index),
		attribute.Int("student.exams", len(rows)),
		attribute.String("student.centre", rows[0].Centre),
		attribute.String("student.origin", rows[0].Origin),
	))
}

// RunFinished implements application.RunObserver. It finalizes the span with
// the outcome of the run.
func (o *OTelRunObserver) RunFinished(_ context.Context, summary *application.RunSummary, err error) {
	if o.span == nil {
		return
	}
	defer o.span.End()

	if err != nil {
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, err.Error())
		if o.metrics != nil {
			o.metrics.RecordCounter("runs_failed_total", 1, nil)
		}
		return
	}

	if summary != nil {
		o.span.SetAttributes(
			attribute.Int("dataset.students", summary.Students),
			attribute.Int("dataset.rows", summary.Rows),
			attribute.Int64("dataset.seed", summary.Seed),
			attribute.Int("dataset.identifier_collisions", summary.IdentifierCollisions),
			attribute.Int("dataset.selection_retries", summary.SelectionRetries),
		)
	}
	o.span.SetStatus(codes.Ok, "dataset generated")
}
