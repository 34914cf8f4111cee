package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// JSONWriter exports structured results for web consumers.
type JSONWriter struct {
	outputDir string
	logger    *slog.Logger
}

// NewJSONWriter creates a new JSON writer rooted at the given directory
func NewJSONWriter(outputDir string, logger *slog.Logger) *JSONWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONWriter{outputDir: outputDir, logger: logger}
}

// Write serializes the payload with generation metadata, indented for
// readability.
func (w *JSONWriter) Write(filename string, payload interface{}) error {
	fullPath := filepath.Join(w.outputDir, filename)

	w.logger.Info("Writing JSON file", slog.String("path", fullPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	document := map[string]interface{}{
		"data":         payload,
		"generated_at": time.Now().Format(time.RFC3339),
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(document); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
