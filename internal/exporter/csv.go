package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fedspend/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	outputDir string
	logger    *slog.Logger
}

// NewCSVWriter creates a new CSV writer rooted at the given directory
func NewCSVWriter(outputDir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{outputDir: outputDir, logger: logger}
}

// WriteTable writes headers and records to a CSV file with a UTF-8 BOM.
func (w *CSVWriter) WriteTable(filename string, headers []string, records [][]string) error {
	fullPath := filepath.Join(w.outputDir, filename)

	w.logger.Info("Writing CSV file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	// UTF-8 BOM helps Excel recognize the encoding.
	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// WriteAwards exports the consolidated award table.
func (w *CSVWriter) WriteAwards(filename string, awards []domain.Award) error {
	records := make([][]string, len(awards))
	for i, award := range awards {
		records[i] = awardRecord(award)
	}
	return w.WriteTable(filename, awardHeaders, records)
}

// WriteSummary exports an aggregated summary table.
func (w *CSVWriter) WriteSummary(filename string, rows []domain.SummaryRow) error {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = summaryRecord(row)
	}
	return w.WriteTable(filename, summaryHeaders, records)
}

// WriteTimeSeries exports a time-series table.
func (w *CSVWriter) WriteTimeSeries(filename string, rows []domain.PeriodRow) error {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = timeSeriesRecord(row)
	}
	return w.WriteTable(filename, timeSeriesHeaders, records)
}
