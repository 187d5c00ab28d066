package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Audit statuses.
const (
	AuditCompleted     = "Completed"
	AuditInProgress    = "In Progress"
	AuditPendingReview = "Pending Review"
)

// Discrepancy statuses.
const (
	DiscrepancyResolved           = "Resolved"
	DiscrepancyUnderInvestigation = "Under Investigation"
)

// AuditReport summarizes one audit run at a warehouse.
type AuditReport struct {
	ID            string  `bson:"_id" json:"id"`
	Type          string  `bson:"type" json:"type"`
	Warehouse     string  `bson:"warehouse" json:"warehouse"`
	Auditor       string  `bson:"auditor" json:"auditor"`
	Date          string  `bson:"date" json:"date"`
	Status        string  `bson:"status" json:"status"`
	Discrepancies int     `bson:"discrepancies" json:"discrepancies"`
	TotalItems    int     `bson:"total_items" json:"totalItems"`
	Accuracy      Percent `bson:"accuracy" json:"accuracy"`
}

// Discrepancy is a count mismatch found during an audit.
type Discrepancy struct {
	ID         string `bson:"_id" json:"id"`
	AuditID    string `bson:"audit_id" json:"auditId"`
	Item       string `bson:"item" json:"item"`
	SKU        string `bson:"sku" json:"sku"`
	Expected   int    `bson:"expected" json:"expected"`
	Actual     int    `bson:"actual" json:"actual"`
	Difference int    `bson:"difference" json:"difference"`
	Reason     string `bson:"reason" json:"reason"`
	Status     string `bson:"status" json:"status"`
	ReportedBy string `bson:"reported_by" json:"reportedBy"`
}

// Percent is an exact percentage. It is stored in MongoDB as a string so
// that values like 99.76 survive a round trip unchanged.
type Percent struct {
	decimal.Decimal
}

// NewPercent wraps a decimal value.
func NewPercent(d decimal.Decimal) Percent {
	return Percent{Decimal: d}
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (p Percent) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(p.String())
}

// UnmarshalBSONValue accepts strings as well as numeric documents written by
// other tools.
func (p *Percent) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeString:
		parsed, err := ParseAccuracy(raw.StringValue())
		if err != nil {
			return err
		}
		*p = parsed
	case bson.TypeDouble:
		p.Decimal = decimal.NewFromFloat(raw.Double())
	case bson.TypeInt32:
		p.Decimal = decimal.NewFromInt32(raw.Int32())
	case bson.TypeInt64:
		p.Decimal = decimal.NewFromInt(raw.Int64())
	default:
		return fmt.Errorf("cannot decode %s into percent", t)
	}
	return nil
}

// ParseAccuracy reads a percentage such as "99.76%" or "100".
func ParseAccuracy(value string) (Percent, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "%"))
	if trimmed == "" {
		return Percent{}, fmt.Errorf("empty accuracy value")
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Percent{}, fmt.Errorf("parse accuracy %q: %w", value, err)
	}
	return NewPercent(d), nil
}

// MustAccuracy is ParseAccuracy for literal seed data.
func MustAccuracy(value string) Percent {
	p, err := ParseAccuracy(value)
	if err != nil {
		panic(err)
	}
	return p
}
