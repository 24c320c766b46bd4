// Command generate_exam_dataset writes a synthetic workbook of exam
// tribunal assignments: one row per (student, exam) pair.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/ahrav/go-tribunal/infrastructure/middleware"
	"github.com/ahrav/go-tribunal/infrastructure/names"
	"github.com/ahrav/go-tribunal/infrastructure/xlsx"
	"github.com/ahrav/go-tribunal/internal/application"
	"github.com/ahrav/go-tribunal/internal/ports"
)

// options holds the command-line flags. Flags left at their zero value do
// not override the configuration file.
type options struct {
	output      string
	configPath  string
	seed        int64
	logLevel    string
	metricsFile string
	verify      bool
}

func main() {
	var opts options
	flag.StringVar(&opts.output, "output", "", "Output workbook path (default "+application.DefaultOutputPath+")")
	flag.StringVar(&opts.configPath, "config", "", "Optional YAML configuration file")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed; 0 draws one from the clock")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile after the run")
	flag.BoolVar(&opts.verify, "verify", false, "Read the workbook back and check it after saving")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		logger.WithError(err).Fatal("invalid log level")
	}
	logger.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout, logger); err != nil {
		logger.WithError(err).Fatal("failed to generate dataset")
	}
}

func run(ctx context.Context, opts options, out io.Writer, logger logrus.FieldLogger) error {
	cfg, err := loadConfig(ctx, opts)
	if err != nil {
		return err
	}
	cfg.Seed = application.ResolveSeed(cfg.Seed)

	nameSource, err := names.NewSource(cfg.Locale, rand.New(rand.NewSource(application.NameSeed(cfg.Seed))))
	if err != nil {
		return fmt.Errorf("failed to create name source: %w", err)
	}

	writer, err := xlsx.NewWriter(cfg.OutputPath, cfg.SheetName)
	if err != nil {
		return fmt.Errorf("failed to create workbook: %w", err)
	}
	defer writer.Close()

	registry := prometheus.NewRegistry()
	metrics := middleware.NewPrometheusMetrics(registry)

	gen, err := application.NewDatasetGenerator(cfg, application.Dependencies{
		Sink:     writer,
		Names:    nameSource,
		Metrics:  metrics,
		Observer: middleware.NewOTelRunObserver(nil, metrics),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	summary, err := gen.Run(ctx)
	if err != nil {
		return err
	}
	printSummary(out, cfg, summary)

	if opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.metricsFile, registry); err != nil {
			return ports.NewMetricsError(opts.metricsFile, "WriteToTextfile", err)
		}
		logger.WithField("path", opts.metricsFile).Debug("metrics written")
	}

	if opts.verify {
		return verify(out, cfg)
	}
	return nil
}

// loadConfig starts from the defaults, overlays the YAML file when given,
// then applies explicit flags.
func loadConfig(ctx context.Context, opts options) (application.GeneratorConfig, error) {
	cfg := application.DefaultConfig()

	loader, err := application.NewConfigLoader(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if err := loader.Load(ctx, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.output == "" && opts.seed == 0 {
		return cfg, nil
	}
	if opts.output != "" {
		cfg.OutputPath = opts.output
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if err := loader.Validate(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func printSummary(out io.Writer, cfg application.GeneratorConfig, summary *application.RunSummary) {
	stats := summary.Statistics

	fmt.Fprintf(out, "Generated exam tribunal dataset:\n")
	fmt.Fprintf(out, "- Path: %s\n", cfg.OutputPath)
	fmt.Fprintf(out, "- Run ID: %s\n", summary.RunID)
	fmt.Fprintf(out, "- Seed: %d\n", summary.Seed)
	fmt.Fprintf(out, "- Students: %d\n", stats.TotalStudents)
	fmt.Fprintf(out, "- Rows: %d\n", stats.TotalRows)
	fmt.Fprintf(out, "- Exams per student: min %d, max %d, average %.2f\n",
		stats.MinExams, stats.MaxExams, stats.AvgExamsPerStudent)
	fmt.Fprintf(out, "- Centres: %v\n", stats.CentresCount)
	fmt.Fprintf(out, "- Origins: %v\n", stats.OriginsCount)
	fmt.Fprintf(out, "- Identifier collisions: %d, selection retries: %d\n",
		summary.IdentifierCollisions, summary.SelectionRetries)
	fmt.Fprintf(out, "\nDataset saved successfully!\n")
}

// verify reads the saved workbook back and checks it against the catalog.
func verify(out io.Writer, cfg application.GeneratorConfig) error {
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	sheet, err := xlsx.ReadSheet(cfg.OutputPath, cfg.SheetName)
	if err != nil {
		return err
	}
	report, err := application.VerifyDataset(sheet, catalog)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	meta, err := xlsx.ReadMetadata(cfg.OutputPath)
	if err != nil {
		return err
	}

	subjects := make(map[string]bool)
	for _, st := range report.Students {
		for _, row := range st.Rows {
			subjects[row.SubjectPrimary] = true
		}
	}

	fmt.Fprintf(out, "\nVerified %s (run %s): %d students, %d rows, %d distinct subjects\n",
		report.Sheet, meta.RunID, len(report.Students), report.Rows, len(subjects))
	return nil
}
