// Package exporter writes consolidated award tables and summary tables to
// CSV, JSON and Excel files for downstream consumers. CSV output carries a
// UTF-8 BOM so Excel opens it correctly.
package exporter
