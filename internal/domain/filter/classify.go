package filter

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// StockStatus is the stock level derived from an item's quantity.
type StockStatus string

const (
	StockOut         StockStatus = "Out of Stock"
	StockLow         StockStatus = "Low Stock"
	StockOverstocked StockStatus = "Overstocked"
	StockIn          StockStatus = "In Stock"
)

// StockStatuses lists every value Classify can return, in priority order.
var StockStatuses = []StockStatus{StockOut, StockLow, StockOverstocked, StockIn}

// Band is a traffic-light grade used for display colouring.
type Band string

const (
	BandGood     Band = "good"
	BandWarning  Band = "warning"
	BandCritical Band = "critical"
)

// ErrInvalidThresholds is returned when a threshold pair has min above max.
var ErrInvalidThresholds = errors.New("threshold min exceeds max")

// Thresholds bounds a numeric measure.
type Thresholds struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Validate rejects inverted bounds.
func (t Thresholds) Validate() error {
	if t.Min > t.Max {
		return fmt.Errorf("%w: min=%v max=%v", ErrInvalidThresholds, t.Min, t.Max)
	}
	return nil
}

// DefaultFuelThresholds are the cut-offs used by the fleet view: above max is
// good, above min is a warning.
var DefaultFuelThresholds = Thresholds{Min: 30, Max: 60}

var (
	accuracyGood    = decimal.NewFromInt(99)
	accuracyWarning = decimal.NewFromInt(95)
)

// Classify maps a quantity onto exactly one stock status. Rules are checked
// in order and the first match wins, so the result stays total even when
// t.Min > t.Max.
func Classify(quantity float64, t Thresholds) StockStatus {
	switch {
	case quantity == 0:
		return StockOut
	case quantity < t.Min:
		return StockLow
	case quantity > t.Max:
		return StockOverstocked
	default:
		return StockIn
	}
}

// BandAccuracy grades an audit accuracy percentage.
func BandAccuracy(pct decimal.Decimal) Band {
	switch {
	case pct.GreaterThanOrEqual(accuracyGood):
		return BandGood
	case pct.GreaterThanOrEqual(accuracyWarning):
		return BandWarning
	default:
		return BandCritical
	}
}

// BandFuel grades a fuel level in percent.
func BandFuel(level float64, t Thresholds) Band {
	switch {
	case level > t.Max:
		return BandGood
	case level > t.Min:
		return BandWarning
	default:
		return BandCritical
	}
}
