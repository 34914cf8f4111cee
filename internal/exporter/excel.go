package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"fedspend/pkg/contracts/domain"
)

// ExcelWriter exports tables to a multi-sheet Excel workbook.
type ExcelWriter struct {
	outputDir string
	logger    *slog.Logger
}

// NewExcelWriter creates a new Excel writer rooted at the given directory
func NewExcelWriter(outputDir string, logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{outputDir: outputDir, logger: logger}
}

// WriteWorkbook writes the consolidated awards plus the summary and
// time-series tables, one sheet each.
func (w *ExcelWriter) WriteWorkbook(filename string, awards []domain.Award, summaries map[string][]domain.SummaryRow, series map[string][]domain.PeriodRow) error {
	fullPath := filepath.Join(w.outputDir, filename)

	w.logger.Info("Writing Excel workbook",
		slog.String("path", fullPath),
		slog.Int("award_count", len(awards)),
		slog.Int("summary_sheets", len(summaries)),
		slog.Int("series_sheets", len(series)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const awardsSheet = "Awards"
	if err := f.SetSheetName("Sheet1", awardsSheet); err != nil {
		return fmt.Errorf("failed to name awards sheet: %w", err)
	}
	if err := writeSheet(f, awardsSheet, awardHeaders, awardRows(awards)); err != nil {
		return err
	}

	for name, rows := range summaries {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
		records := make([][]string, len(rows))
		for i, row := range rows {
			records[i] = summaryRecord(row)
		}
		if err := writeSheet(f, name, summaryHeaders, records); err != nil {
			return err
		}
	}

	for name, rows := range series {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
		records := make([][]string, len(rows))
		for i, row := range rows {
			records[i] = timeSeriesRecord(row)
		}
		if err := writeSheet(f, name, timeSeriesHeaders, records); err != nil {
			return err
		}
	}

	if err := f.SaveAs(fullPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeSheet fills one sheet with the header row followed by records.
func writeSheet(f *excelize.File, sheet string, headers []string, records [][]string) error {
	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write headers on %s: %w", sheet, err)
	}

	for i, record := range records {
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell on %s: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d on %s: %w", i, sheet, err)
		}
	}
	return nil
}

// awardRows renders awards as string records.
func awardRows(awards []domain.Award) [][]string {
	records := make([][]string, len(awards))
	for i, award := range awards {
		records[i] = awardRecord(award)
	}
	return records
}
