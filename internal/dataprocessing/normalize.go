package dataprocessing

import (
	"fmt"
	"log/slog"
	"time"

	"fedspend/internal/config"
	"fedspend/internal/dataset"
	pipeerr "fedspend/internal/errors"
	"fedspend/pkg/contracts/domain"
)

// Normalizer cleans and types raw award batches. Field names are renamed to
// canonical form, amounts coerced to numbers, dates to calendar dates, and
// free text trimmed. Records without a valid positive amount are dropped.
type Normalizer struct {
	logger  *slog.Logger
	renames map[string]string
}

// NewNormalizer creates a normalizer with the given field-rename table.
// A nil rename table uses the built-in upstream column mapping.
func NewNormalizer(logger *slog.Logger, renames map[string]string) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	if renames == nil {
		renames = config.ColumnMapping
	}
	return &Normalizer{logger: logger, renames: renames}
}

// Normalize converts a raw batch into award records. The batch name is used
// only for error reporting and provenance. Individual bad fields are repaired
// or dropped; only a batch that is not record-shaped fails the call.
func (n *Normalizer) Normalize(batch dataset.Table, batchName string) ([]domain.Award, error) {
	awards := make([]domain.Award, 0, len(batch))
	dropped := 0

	for i, raw := range batch {
		if raw == nil {
			return nil, pipeerr.InputFormatError(batchName, fmt.Errorf("row %d is not a mapping", i))
		}

		row := n.rename(raw)

		amount, ok := row.Float("award_amount")
		if !ok || amount <= 0 {
			dropped++
			continue
		}

		award := domain.Award{
			Amount:      amount,
			SourceBatch: batchName,
		}
		award.ID, _ = row.String("award_id")
		award.RecipientName, _ = row.String("recipient_name")
		award.Description, _ = row.String("description")
		award.AwardType, _ = row.String("award_type")
		award.AwardingAgency, _ = row.String("awarding_agency")
		award.StateCode, _ = row.String("state_code")
		award.StateName, _ = row.String("state_name")

		if start, ok := row.Time("start_date"); ok {
			award.StartDate = &start
			award.FiscalYear = start.Year()
			award.Quarter = int(start.Month()-1)/3 + 1
			award.Month = int(start.Month())
			award.YearMonth = start.Format("2006-01")
		}
		if end, ok := row.Time("end_date"); ok {
			award.EndDate = &end
		}

		award.SizeCategory = sizeCategory(amount)

		awards = append(awards, award)
	}

	n.logger.Info("normalized batch",
		slog.String("batch", batchName),
		slog.Int("input_records", len(batch)),
		slog.Int("kept", len(awards)),
		slog.Int("dropped", dropped))

	return awards, nil
}

// rename maps upstream field names to canonical ones, leaving already
// canonical fields untouched. Renamed fields win over raw fields that
// happen to carry a canonical name. The input row is not modified.
func (n *Normalizer) rename(raw dataset.Row) dataset.Row {
	row := make(dataset.Row, len(raw))
	for key, value := range raw {
		if _, mapped := n.renames[key]; !mapped {
			row[key] = value
		}
	}
	for key, value := range raw {
		if canonical, mapped := n.renames[key]; mapped {
			row[canonical] = value
		}
	}
	return row
}

// sizeCategory assigns the award-size bucket for an amount.
func sizeCategory(amount float64) string {
	for _, bucket := range config.SizeBuckets {
		if bucket.Upper == 0 || amount < bucket.Upper {
			return bucket.Label
		}
	}
	return config.SizeBuckets[len(config.SizeBuckets)-1].Label
}

// parseDate is a convenience wrapper for callers supplying dates as strings.
func parseDate(value string) (time.Time, bool) {
	return dataset.Row{"d": value}.Time("d")
}
