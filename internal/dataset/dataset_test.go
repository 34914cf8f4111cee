package dataset

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRow_Float(t *testing.T) {
	tests := []struct {
		name   string
		row    Row
		key    string
		want   float64
		wantOK bool
	}{
		{name: "float64", row: Row{"amount": 1500.5}, key: "amount", want: 1500.5, wantOK: true},
		{name: "int", row: Row{"amount": 42}, key: "amount", want: 42, wantOK: true},
		{name: "json number", row: Row{"amount": json.Number("99.9")}, key: "amount", want: 99.9, wantOK: true},
		{name: "currency string", row: Row{"amount": "$1,000,000.50"}, key: "amount", want: 1000000.50, wantOK: true},
		{name: "plain string", row: Row{"amount": "250000"}, key: "amount", want: 250000, wantOK: true},
		{name: "non-numeric string", row: Row{"amount": "pending"}, key: "amount", wantOK: false},
		{name: "empty string", row: Row{"amount": ""}, key: "amount", wantOK: false},
		{name: "nil value", row: Row{"amount": nil}, key: "amount", wantOK: false},
		{name: "missing key", row: Row{}, key: "amount", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.row.Float(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestRow_Time(t *testing.T) {
	parsed, ok := Row{"start_date": "2022-08-16"}.Time("start_date")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2022, 8, 16, 0, 0, 0, 0, time.UTC), parsed)

	native := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	parsed, ok = Row{"start_date": native}.Time("start_date")
	assert.True(t, ok)
	assert.Equal(t, native, parsed)

	_, ok = Row{"start_date": "not-a-date"}.Time("start_date")
	assert.False(t, ok)

	_, ok = Row{}.Time("start_date")
	assert.False(t, ok)
}

func TestTable_NumericColumns(t *testing.T) {
	table := Table{
		{"amount": 100.0, "name": "Acme Inc", "count": 3},
		{"amount": 200.0, "name": "Besto LLC", "count": 5},
	}
	assert.Equal(t, []string{"amount", "count"}, table.NumericColumns())

	// A column that is numeric in one row but text in another is excluded.
	mixed := Table{
		{"amount": 100.0, "code": 81.041},
		{"amount": 200.0, "code": "pending"},
	}
	assert.Equal(t, []string{"amount"}, mixed.NumericColumns())
}

func TestTable_Column(t *testing.T) {
	table := Table{
		{"amount": 100.0},
		{"amount": "bad"},
		{"amount": 300.0},
	}
	assert.Equal(t, []float64{100, 300}, table.Column("amount"))
	assert.True(t, table.HasColumn("amount"))
	assert.False(t, table.HasColumn("missing"))
}
