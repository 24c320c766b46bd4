package application

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ahrav/go-tribunal/internal/domain"
	"github.com/ahrav/go-tribunal/internal/ports"
)

// DatasetTitle is stored in the workbook properties.
const DatasetTitle = "Synthetic exam tribunal assignments"

// RunObserver provides observability hooks for a dataset run.
// Implementations can add tracing and metrics without coupling them to the
// generation logic.
type RunObserver interface {
	// RunStarted is called once the student count is known. The returned
	// context is passed to the remaining hooks.
	RunStarted(ctx context.Context, runID string, students int) context.Context

	// StudentBuilt is called after each student's rows were appended.
	StudentBuilt(ctx context.Context, index int, rows []domain.StudentExamRow)

	// RunFinished is called exactly once, with a nil summary on early failure.
	RunFinished(ctx context.Context, summary *RunSummary, err error)
}

// Dependencies groups the collaborators of a DatasetGenerator. Sink and
// Names are required; the rest fall back to no-op implementations.
type Dependencies struct {
	Sink     ports.RowSink
	Names    ports.NameSource
	Metrics  ports.MetricsCollector
	Observer RunObserver
	Logger   logrus.FieldLogger
}

// RunSummary describes a finished run.
type RunSummary struct {
	RunID                string
	Seed                 int64
	Students             int
	Rows                 int
	IdentifierCollisions int
	SelectionRetries     int
	Duration             time.Duration
	Statistics           *DatasetStatistics
}

// DatasetGenerator orchestrates a whole run: header, students, single save.
type DatasetGenerator struct {
	cfg      GeneratorConfig
	rng      *rand.Rand
	sink     ports.RowSink
	metrics  ports.MetricsCollector
	observer RunObserver
	logger   logrus.FieldLogger

	ids      *IdentifierGenerator
	selector *ExamSelector
	builder  *StudentBuilder
}

// NewDatasetGenerator validates cfg against its catalog and wires the run
// components. A zero cfg.Seed is replaced by a time-based seed.
func NewDatasetGenerator(cfg GeneratorConfig, deps Dependencies) (*DatasetGenerator, error) {
	if deps.Sink == nil {
		return nil, fmt.Errorf("%w: sink is required", domain.ErrInvalidConfiguration)
	}
	if deps.Names == nil {
		return nil, fmt.Errorf("%w: name source is required", domain.ErrInvalidConfiguration)
	}
	if cfg.Students.Min < 0 || cfg.Students.Span() < 1 {
		return nil, ports.NewConfigError("students", fmt.Errorf("%w: invalid range %+v", domain.ErrInvalidConfiguration, cfg.Students))
	}
	if cfg.ExamsPerStudent.Min < 0 || cfg.ExamsPerStudent.Span() < 1 {
		return nil, ports.NewConfigError("exams_per_student", fmt.Errorf("%w: invalid range %+v", domain.ErrInvalidConfiguration, cfg.ExamsPerStudent))
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, ports.NewConfigError("subjects", err)
	}
	if err := checkExamRange(cfg.ExamsPerStudent, catalog.MandatoryCount(), catalog.OptionalCount()); err != nil {
		return nil, ports.NewConfigError("exams_per_student.max", err)
	}

	cfg.Seed = ResolveSeed(cfg.Seed)
	rng := rand.New(rand.NewSource(cfg.Seed))

	g := &DatasetGenerator{
		cfg:      cfg,
		rng:      rng,
		sink:     deps.Sink,
		metrics:  deps.Metrics,
		observer: deps.Observer,
		logger:   deps.Logger,
	}
	if g.metrics == nil {
		g.metrics = noopMetrics{}
	}
	if g.observer == nil {
		g.observer = noopObserver{}
	}
	if g.logger == nil {
		g.logger = logrus.StandardLogger()
	}

	g.ids = NewIdentifierGenerator(rng, cfg.MaxIdentifierAttempts)
	g.selector = NewExamSelector(rng, catalog, cfg.MaxSelectionAttempts)
	g.builder = NewStudentBuilder(rng, deps.Names, g.ids, g.selector, catalog, cfg.CourtNumber)

	return g, nil
}

// ResolveSeed returns seed, or a time-based seed when seed is zero.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// nameSeedMask separates the name stream from the generator stream.
const nameSeedMask = 0x5DEECE66D

// NameSeed derives the seed for a run's name source from the run seed, so
// names do not replay the generator's own draws.
func NameSeed(seed int64) int64 { return seed ^ nameSeedMask }

// Seed returns the seed the run draws from.
func (g *DatasetGenerator) Seed() int64 { return g.cfg.Seed }

// Run writes the header, generates a random number of students in the
// configured range, appends all their rows, and saves the sink once.
// Nothing is saved when generation fails. Failures are returned, not
// logged; the caller reports them.
func (g *DatasetGenerator) Run(ctx context.Context) (*RunSummary, error) {
	start := time.Now()
	runID := uuid.NewString()
	students := g.cfg.Students.Min + g.rng.Intn(g.cfg.Students.Span())

	ctx = g.observer.RunStarted(ctx, runID, students)
	log := g.logger.WithFields(logrus.Fields{
		"run_id":   runID,
		"seed":     g.cfg.Seed,
		"students": students,
	})
	log.Info("generating dataset")

	summary, err := g.run(ctx, runID, students)
	if summary != nil {
		summary.Duration = time.Since(start)
	}
	g.observer.RunFinished(ctx, summary, err)

	status := "success"
	if err != nil {
		status = "error"
	}
	g.metrics.RecordLatency("dataset_generation", time.Since(start), map[string]string{"status": status})

	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	log.WithFields(logrus.Fields{
		"rows":     summary.Rows,
		"duration": summary.Duration,
	}).Info("dataset saved")
	return summary, nil
}

func (g *DatasetGenerator) run(ctx context.Context, runID string, students int) (*RunSummary, error) {
	if ms, ok := g.sink.(ports.MetadataWriter); ok {
		if err := ms.SetMetadata(ports.DatasetMetadata{
			RunID:   runID,
			Title:   DatasetTitle,
			Locale:  g.cfg.Locale,
			Created: time.Now().UTC(),
		}); err != nil {
			return nil, fmt.Errorf("failed to set dataset metadata: %w", err)
		}
	}

	if err := g.sink.WriteHeader(domain.Header()); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	all := make([]domain.StudentExamRow, 0, students*g.cfg.ExamsPerStudent.Max)
	for i := range students {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		total := g.cfg.ExamsPerStudent.Min + g.rng.Intn(g.cfg.ExamsPerStudent.Span())
		rows, err := g.builder.Build(total)
		if err != nil {
			return nil, err
		}

		for _, row := range rows {
			if err := g.sink.AppendRow(row.Values()...); err != nil {
				return nil, fmt.Errorf("failed to append row for student %d: %w", i, err)
			}
			g.metrics.RecordCounter("rows_generated_total", 1, map[string]string{"kind": row.SubjectKind})
		}
		g.metrics.RecordCounter("students_generated_total", 1, nil)
		g.metrics.RecordHistogram("exams_per_student", float64(len(rows)), nil)
		g.observer.StudentBuilt(ctx, i, rows)

		all = append(all, rows...)
	}

	if err := g.sink.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to save dataset: %w", err)
	}

	g.metrics.RecordCounter("identifier_collisions_total", float64(g.ids.Collisions()), nil)
	g.metrics.RecordCounter("selection_retries_total", float64(g.selector.Retries()), nil)

	return &RunSummary{
		RunID:                runID,
		Seed:                 g.cfg.Seed,
		Students:             g.builder.Built(),
		Rows:                 len(all),
		IdentifierCollisions: g.ids.Collisions(),
		SelectionRetries:     g.selector.Retries(),
		Statistics:           ComputeDatasetStatistics(all),
	}, nil
}

// IsGenerationError reports whether err came from building a student rather
// than from the sink.
func IsGenerationError(err error) bool {
	var gerr *domain.GenerationError
	return errors.As(err, &gerr)
}

type noopMetrics struct{}

func (noopMetrics) RecordLatency(string, time.Duration, map[string]string) {}
func (noopMetrics) RecordCounter(string, float64, map[string]string)       {}
func (noopMetrics) RecordGauge(string, float64, map[string]string)         {}
func (noopMetrics) RecordHistogram(string, float64, map[string]string)     {}

type noopObserver struct{}

func (noopObserver) RunStarted(ctx context.Context, _ string, _ int) context.Context { return ctx }
func (noopObserver) StudentBuilt(context.Context, int, []domain.StudentExamRow)      {}
func (noopObserver) RunFinished(context.Context, *RunSummary, error)                 {}
