package dataprocessing

import (
	"log/slog"

	"fedspend/pkg/contracts/domain"
)

// Batch is one normalized batch together with the provenance describing
// which logical collection dimension produced it. Provenance is carried onto
// kept records for later filtering; it never affects the dedup decision.
type Batch struct {
	Name    string
	Source  domain.SourceKind
	Period  string // time-period category, for time_period batches
	Keyword string // primary keyword, for keyword_specific batches
	Awards  []domain.Award
}

// Deduplicator merges batches into a single table with unique award ids.
type Deduplicator struct {
	logger *slog.Logger
}

// NewDeduplicator creates a deduplicator
func NewDeduplicator(logger *slog.Logger) *Deduplicator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Deduplicator{logger: logger}
}

// Merge scans batches in the given order and keeps the first occurrence of
// every award id; later duplicates are discarded. Records with an empty id
// cannot be keyed and are always kept. Returns the consolidated table and
// the number of discarded duplicates.
func (d *Deduplicator) Merge(batches []Batch) ([]domain.Award, int) {
	total := 0
	for _, b := range batches {
		total += len(b.Awards)
	}

	seen := make(map[string]bool, total)
	merged := make([]domain.Award, 0, total)
	discarded := 0

	for _, batch := range batches {
		for _, award := range batch.Awards {
			if award.ID != "" {
				if seen[award.ID] {
					discarded++
					continue
				}
				seen[award.ID] = true
			}

			award.DataSource = batch.Source
			if batch.Name != "" {
				award.SourceBatch = batch.Name
			}
			award.TimePeriodCategory = batch.Period
			award.PrimaryKeyword = batch.Keyword

			merged = append(merged, award)
		}
	}

	d.logger.Info("consolidated batches",
		slog.Int("batches", len(batches)),
		slog.Int("input_records", total),
		slog.Int("unique_records", len(merged)),
		slog.Int("duplicates_discarded", discarded))

	return merged, discarded
}
