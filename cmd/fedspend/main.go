// Command fedspend consolidates raw federal award batches into a single
// deduplicated dataset, runs the analytics suite over it, and writes the
// consolidated table plus summary reports to the output directory.
//
// Raw batches are JSON files, each holding an array of flat key/value
// records as returned by the award-search collector. Batch provenance is
// inferred from the filename prefix: time periods ("awards_<period>.json"),
// program codes ("cfda_*.json") and keywords ("keyword_*.json").
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"fedspend/internal/config"
	"fedspend/internal/dataprocessing"
	"fedspend/internal/dataset"
	"fedspend/internal/exporter"
	"fedspend/pkg/contracts/domain"
)

func main() {
	configFile := flag.String("config", "", "optional YAML config file")
	inputDir := flag.String("input", "", "directory containing raw batch JSON files (defaults to <data_dir>/collected)")
	outputDir := flag.String("output", "", "directory for exported reports (defaults to <reports_dir>)")
	format := flag.String("format", "csv", "export format: csv | json | excel")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	if *inputDir == "" {
		*inputDir = filepath.Join(cfg.Paths.DataDir, "collected")
	}
	if *outputDir == "" {
		*outputDir = cfg.Paths.ReportsDir
	}

	logger.Info("Starting consolidation",
		slog.String("input_dir", *inputDir),
		slog.String("output_dir", *outputDir),
		slog.String("format", *format))

	batches, err := loadBatches(*inputDir)
	if err != nil {
		logger.Error("Failed to load batches", "error", err)
		os.Exit(1)
	}
	if len(batches) == 0 {
		logger.Error("No batch files found", slog.String("input_dir", *inputDir))
		os.Exit(1)
	}

	processor := dataprocessing.NewProcessor(logger, dataprocessing.ProcessorConfig{
		TopNRecipients:  cfg.Pipeline.TopNRecipients,
		ClusterCount:    cfg.Pipeline.ClusterCount,
		ClusterSeed:     cfg.Pipeline.ClusterSeed,
		PolicySplitDate: cfg.Pipeline.PolicySplitDate,
		CacheSize:       cfg.Pipeline.CacheSize,
		CacheTTL:        cfg.Pipeline.CacheTTL,
	})

	awards, duplicates, err := processor.Ingest(batches)
	if err != nil {
		logger.Error("Ingest failed", "error", err)
		os.Exit(1)
	}

	report, err := processor.ComprehensiveAnalysis(
		dataprocessing.AnalysisRequest{Source: *inputDir},
		awards, duplicates)
	if err != nil {
		logger.Error("Analysis failed", "error", err)
		os.Exit(1)
	}

	if err := export(*format, *outputDir, logger, awards, report); err != nil {
		logger.Error("Export failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Consolidation complete",
		slog.Int("records", len(awards)),
		slog.Int("duplicates_discarded", duplicates),
		slog.Int("insights", len(report.OverallInsights)))
}

// newLogger builds the slog handler from the logging configuration.
func newLogger(cfg config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

// loadBatches reads every *.json file in the input directory as one raw
// batch, inferring provenance from the filename.
func loadBatches(dir string) ([]dataprocessing.RawBatch, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	batches := make([]dataprocessing.RawBatch, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var records dataset.Table
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		name := strings.TrimSuffix(filepath.Base(path), ".json")
		batch := dataprocessing.RawBatch{Name: name, Records: records}
		switch {
		case strings.HasPrefix(name, "cfda_"):
			batch.Source = domain.SourceCFDA
		case strings.HasPrefix(name, "keyword_"):
			batch.Source = domain.SourceKeyword
			batch.Keyword = strings.ReplaceAll(strings.TrimPrefix(name, "keyword_"), "_", " ")
		default:
			batch.Source = domain.SourceTimePeriod
			batch.Period = periodCategory(name)
		}
		batches = append(batches, batch)
	}

	return batches, nil
}

// periodCategory extracts the named time period from a batch filename.
func periodCategory(name string) string {
	for period := range config.DateRanges {
		if strings.Contains(name, period) {
			return period
		}
	}
	return "unknown"
}

// export writes the consolidated dataset and report in the chosen format.
func export(format, outputDir string, logger *slog.Logger, awards []domain.Award, report *domain.ComprehensiveReport) error {
	switch strings.ToLower(format) {
	case "csv":
		w := exporter.NewCSVWriter(outputDir, logger)
		if err := w.WriteAwards("consolidated_awards.csv", awards); err != nil {
			return err
		}
		if err := w.WriteSummary("state_summary.csv", report.Geographic.StateSummary); err != nil {
			return err
		}
		if err := w.WriteSummary("technology_summary.csv", report.Technology.TechnologySummary); err != nil {
			return err
		}
		if err := w.WriteSummary("recipient_summary.csv", report.Recipients.RecipientSummary); err != nil {
			return err
		}
		return w.WriteTimeSeries("monthly_series.csv", report.Timeline.MonthlySeries)
	case "json":
		w := exporter.NewJSONWriter(outputDir, logger)
		if err := w.Write("consolidated_awards.json", awards); err != nil {
			return err
		}
		return w.Write("comprehensive_report.json", report)
	case "excel":
		w := exporter.NewExcelWriter(outputDir, logger)
		return w.WriteWorkbook("consolidated_awards.xlsx", awards,
			map[string][]domain.SummaryRow{
				"States":       report.Geographic.StateSummary,
				"Technologies": report.Technology.TechnologySummary,
				"Recipients":   report.Recipients.RecipientSummary,
			},
			map[string][]domain.PeriodRow{
				"Monthly":   report.Timeline.MonthlySeries,
				"Quarterly": report.Timeline.QuarterlySeries,
			})
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
