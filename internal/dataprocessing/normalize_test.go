package dataprocessing

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedspend/internal/dataset"
	pipeerr "fedspend/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNormalizerRenamesUpstreamColumns(t *testing.T) {
	n := NewNormalizer(testLogger(), nil)

	batch := dataset.Table{
		{
			"Award ID":                        "A-1",
			"Award Amount":                    "$1,500,000.00",
			"Recipient Name":                  "  Helios Solar Inc  ",
			"Description":                     "solar panel installation",
			"Start Date":                      "2010-06-15",
			"End Date":                        "2012-06-14",
			"Place of Performance State Code": "CA",
		},
	}

	awards, err := n.Normalize(batch, "awards_arra_period")
	require.NoError(t, err)
	require.Len(t, awards, 1)

	a := awards[0]
	assert.Equal(t, "A-1", a.ID)
	assert.Equal(t, 1500000.0, a.Amount)
	assert.Equal(t, "Helios Solar Inc", a.RecipientName)
	assert.Equal(t, "CA", a.StateCode)
	require.True(t, a.HasStartDate())
	assert.Equal(t, 2010, a.FiscalYear)
	assert.Equal(t, 2, a.Quarter)
	assert.Equal(t, 6, a.Month)
	assert.Equal(t, "2010-06", a.YearMonth)
	assert.Equal(t, "awards_arra_period", a.SourceBatch)
}

func TestNormalizerDropsInvalidAmounts(t *testing.T) {
	n := NewNormalizer(testLogger(), nil)

	batch := dataset.Table{
		{"award_id": "keep", "award_amount": 100.0},
		{"award_id": "zero", "award_amount": 0.0},
		{"award_id": "negative", "award_amount": -50.0},
		{"award_id": "missing"},
		{"award_id": "garbage", "award_amount": "not a number"},
	}

	awards, err := n.Normalize(batch, "batch")
	require.NoError(t, err)
	require.Len(t, awards, 1)
	assert.Equal(t, "keep", awards[0].ID)
}

func TestNormalizerAssignsSizeCategories(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"just under small cap", 99999, "Small (<$100K)"},
		{"small boundary goes medium", 100000, "Medium ($100K-$1M)"},
		{"medium boundary goes large", 1000000, "Large ($1M-$10M)"},
		{"large boundary goes very large", 10000000, "Very Large ($10M-$100M)"},
		{"very large boundary goes mega", 100000000, "Mega (>$100M)"},
		{"far above top bucket", 5e9, "Mega (>$100M)"},
	}

	n := NewNormalizer(testLogger(), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			awards, err := n.Normalize(dataset.Table{
				{"award_id": "x", "award_amount": tt.amount},
			}, "batch")
			require.NoError(t, err)
			require.Len(t, awards, 1)
			assert.Equal(t, tt.want, awards[0].SizeCategory)
		})
	}
}

func TestNormalizerMalformedDateLeavesRecord(t *testing.T) {
	n := NewNormalizer(testLogger(), nil)

	awards, err := n.Normalize(dataset.Table{
		{"award_id": "A-1", "award_amount": 500.0, "start_date": "not-a-date"},
	}, "batch")
	require.NoError(t, err)
	require.Len(t, awards, 1)
	assert.False(t, awards[0].HasStartDate())
	assert.Zero(t, awards[0].FiscalYear)
}

func TestNormalizerNilRowFailsBatch(t *testing.T) {
	n := NewNormalizer(testLogger(), nil)

	_, err := n.Normalize(dataset.Table{nil}, "bad_batch")
	require.Error(t, err)
	assert.True(t, pipeerr.IsCode(err, "INPUT_FORMAT"))
	assert.Contains(t, err.Error(), "bad_batch")
}

func TestNormalizerCanonicalNamesPassThrough(t *testing.T) {
	n := NewNormalizer(testLogger(), nil)

	awards, err := n.Normalize(dataset.Table{
		{"award_id": "A-1", "award_amount": 250.0, "recipient_name": "Acme"},
	}, "batch")
	require.NoError(t, err)
	require.Len(t, awards, 1)
	assert.Equal(t, "Acme", awards[0].RecipientName)
}
