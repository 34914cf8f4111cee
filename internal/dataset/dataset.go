// Package dataset provides the flat record representation exchanged with
// collaborators: an ordered sequence of uniformly-shaped key/value rows,
// plus value coercion helpers used during normalization and analytics.
package dataset

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Row is a single flat record mapping field names to values.
type Row map[string]interface{}

// Table is an ordered sequence of rows. Tables are treated as immutable:
// every transformation returns a new table.
type Table []Row

// Float extracts a numeric value from the row, coercing common encodings.
// String values may carry currency formatting ("$1,000,000.50").
func (r Row) Float(key string) (float64, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		cleaned := strings.TrimSpace(n)
		cleaned = strings.TrimPrefix(cleaned, "$")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// String extracts a trimmed string value from the row.
func (r Row) String(key string) (string, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// dateLayouts are the calendar encodings accepted from upstream batches.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// Time extracts a calendar date from the row. Unparsable values report false.
func (r Row) Time(key string) (time.Time, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return time.Time{}, false
	}
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// HasColumn reports whether any row carries the given column.
func (t Table) HasColumn(key string) bool {
	for _, row := range t {
		if _, ok := row[key]; ok {
			return true
		}
	}
	return false
}

// Column collects the numeric values of a column, skipping rows where the
// value is missing or non-numeric.
func (t Table) Column(key string) []float64 {
	values := make([]float64, 0, len(t))
	for _, row := range t {
		if f, ok := row.Float(key); ok {
			values = append(values, f)
		}
	}
	return values
}

// NumericColumns returns the sorted names of columns that hold a numeric
// value in at least one row and never hold a non-numeric, non-missing value.
func (t Table) NumericColumns() []string {
	numeric := make(map[string]bool)
	disqualified := make(map[string]bool)
	for _, row := range t {
		for key, v := range row {
			if v == nil {
				continue
			}
			if _, ok := row.Float(key); ok {
				numeric[key] = true
			} else {
				disqualified[key] = true
			}
		}
	}
	columns := make([]string, 0, len(numeric))
	for key := range numeric {
		if !disqualified[key] {
			columns = append(columns, key)
		}
	}
	sort.Strings(columns)
	return columns
}
