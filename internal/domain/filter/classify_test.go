package filter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		t        Thresholds
		want     StockStatus
	}{
		{"empty bin", 0, Thresholds{Min: 10, Max: 50}, StockOut},
		{"empty bin ignores max", 0, Thresholds{Min: 10, Max: 0}, StockOut},
		{"below min", 75, Thresholds{Min: 100, Max: 500}, StockLow},
		{"above max", 2100, Thresholds{Min: 1000, Max: 2000}, StockOverstocked},
		{"within range", 1250, Thresholds{Min: 500, Max: 2000}, StockIn},
		{"at min", 500, Thresholds{Min: 500, Max: 2000}, StockIn},
		{"at max", 2000, Thresholds{Min: 500, Max: 2000}, StockIn},
		{"inverted thresholds keep priority", 20, Thresholds{Min: 50, Max: 10}, StockLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.quantity, tt.t))
		})
	}
}

func TestClassify_ExactlyOneStatus(t *testing.T) {
	thresholds := []Thresholds{{Min: 0, Max: 0}, {Min: 1, Max: 1}, {Min: 5, Max: 10}, {Min: 100, Max: 500}}

	for _, th := range thresholds {
		for q := -2.0; q <= 600; q += 0.5 {
			got := Classify(q, th)

			var hits int
			if q == 0 {
				hits++
			}
			if q != 0 && q < th.Min {
				hits++
			}
			if q != 0 && q >= th.Min && q > th.Max {
				hits++
			}
			if q != 0 && q >= th.Min && q <= th.Max {
				hits++
			}
			require.Equal(t, 1, hits, "conditions overlap for q=%v %+v", q, th)
			require.Contains(t, StockStatuses, got)
		}
	}
}

func TestThresholds_Validate(t *testing.T) {
	assert.NoError(t, Thresholds{Min: 1, Max: 1}.Validate())
	assert.NoError(t, Thresholds{}.Validate())

	err := Thresholds{Min: 10, Max: 5}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidThresholds)
}

func TestBandAccuracy(t *testing.T) {
	tests := []struct {
		pct  string
		want Band
	}{
		{"100", BandGood},
		{"99.76", BandGood},
		{"99", BandGood},
		{"98.99", BandWarning},
		{"98.92", BandWarning},
		{"95", BandWarning},
		{"94.999", BandCritical},
		{"80.00", BandCritical},
	}

	for _, tt := range tests {
		t.Run(tt.pct, func(t *testing.T) {
			assert.Equal(t, tt.want, BandAccuracy(decimal.RequireFromString(tt.pct)))
		})
	}
}

func TestBandFuel(t *testing.T) {
	tests := []struct {
		level float64
		want  Band
	}{
		{95, BandGood},
		{61, BandGood},
		{60, BandWarning},
		{45, BandWarning},
		{31, BandWarning},
		{30, BandCritical},
		{0, BandCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFuel(tt.level, DefaultFuelThresholds), "fuel %v", tt.level)
	}
}
