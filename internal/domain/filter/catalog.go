package filter

import (
	"fmt"
	"strconv"

	"github.com/mamadbah2/fleetboard/internal/domain/models"
)

// Kind names, used in profiles and URLs.
const (
	KindLoads         = "loads"
	KindInventory     = "inventory"
	KindAudits        = "audits"
	KindVehicles      = "vehicles"
	KindDiscrepancies = "discrepancies"
)

// KindNames lists every supported kind.
var KindNames = []string{KindLoads, KindInventory, KindAudits, KindVehicles, KindDiscrepancies}

// Catalog holds the configured kind for every record type.
type Catalog struct {
	Loads         Kind[models.Load]
	Inventory     Kind[models.InventoryItem]
	Audits        Kind[models.AuditReport]
	Vehicles      Kind[models.Vehicle]
	Discrepancies Kind[models.Discrepancy]
}

// DefaultCatalog returns the kinds as the dashboard ships them.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Loads:         loadKind(),
		Inventory:     inventoryKind(),
		Audits:        auditKind(),
		Vehicles:      vehicleKind(),
		Discrepancies: discrepancyKind(),
	}
}

// NewCatalog applies profiles on top of the defaults.
func NewCatalog(profiles map[string]Profile) (*Catalog, error) {
	c := DefaultCatalog()
	for name, p := range profiles {
		var err error
		switch name {
		case KindLoads:
			c.Loads, err = c.Loads.WithProfile(p)
		case KindInventory:
			c.Inventory, err = c.Inventory.WithProfile(p)
		case KindAudits:
			c.Audits, err = c.Audits.WithProfile(p)
		case KindVehicles:
			c.Vehicles, err = c.Vehicles.WithProfile(p)
		case KindDiscrepancies:
			c.Discrepancies, err = c.Discrepancies.WithProfile(p)
		default:
			err = fmt.Errorf("unknown record kind %q", name)
		}
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// StockStatus derives an item's status. The item's own levels win; items
// without any fall back to the inventory kind's thresholds.
func (c *Catalog) StockStatus(item models.InventoryItem) StockStatus {
	return stockStatus(item, c.Inventory.Thresholds)
}

// FuelBand grades a truck's fuel level.
func (c *Catalog) FuelBand(v models.Vehicle) Band {
	return BandFuel(float64(v.Fuel), c.Vehicles.Thresholds)
}

func stockStatus(item models.InventoryItem, fallback Thresholds) StockStatus {
	t := fallback
	if item.HasThresholds() {
		t = Thresholds{Min: float64(item.MinStock), Max: float64(item.MaxStock)}
	}
	return Classify(float64(item.Quantity), t)
}

func loadKind() Kind[models.Load] {
	return Kind[models.Load]{
		Name: KindLoads,
		Fields: map[string]Field[models.Load]{
			"id":          func(l models.Load) string { return l.ID },
			"pickup":      func(l models.Load) string { return l.Pickup },
			"destination": func(l models.Load) string { return l.Destination },
			"driver":      func(l models.Load) string { return l.Driver },
			"truck":       func(l models.Load) string { return l.Truck },
			"priority":    func(l models.Load) string { return l.Priority },
		},
		Searchable: []string{"id", "driver", "destination"},
		Status:     func(l models.Load, _ Thresholds) string { return l.Status },
		Aliases: map[string]string{
			"pending": models.LoadPendingAssignment,
		},
	}
}

func inventoryKind() Kind[models.InventoryItem] {
	return Kind[models.InventoryItem]{
		Name: KindInventory,
		Fields: map[string]Field[models.InventoryItem]{
			"id":        func(i models.InventoryItem) string { return i.ID },
			"sku":       func(i models.InventoryItem) string { return i.SKU },
			"name":      func(i models.InventoryItem) string { return i.Name },
			"category":  func(i models.InventoryItem) string { return i.Category },
			"location":  func(i models.InventoryItem) string { return i.Location },
			"warehouse": func(i models.InventoryItem) string { return i.Warehouse },
		},
		Searchable: []string{"name", "sku", "category"},
		Status: func(i models.InventoryItem, t Thresholds) string {
			return string(stockStatus(i, t))
		},
		Aliases: map[string]string{
			"low":  string(StockLow),
			"out":  string(StockOut),
			"over": string(StockOverstocked),
		},
	}
}

func auditKind() Kind[models.AuditReport] {
	return Kind[models.AuditReport]{
		Name: KindAudits,
		Fields: map[string]Field[models.AuditReport]{
			"id":        func(a models.AuditReport) string { return a.ID },
			"type":      func(a models.AuditReport) string { return a.Type },
			"warehouse": func(a models.AuditReport) string { return a.Warehouse },
			"auditor":   func(a models.AuditReport) string { return a.Auditor },
			"date":      func(a models.AuditReport) string { return a.Date },
		},
		Searchable: []string{"id", "type", "warehouse", "auditor"},
		Status:     func(a models.AuditReport, _ Thresholds) string { return a.Status },
		Aliases: map[string]string{
			"pending": models.AuditPendingReview,
		},
	}
}

func vehicleKind() Kind[models.Vehicle] {
	return Kind[models.Vehicle]{
		Name: KindVehicles,
		Fields: map[string]Field[models.Vehicle]{
			"id":          func(v models.Vehicle) string { return v.ID },
			"driver":      func(v models.Vehicle) string { return v.Driver },
			"location":    func(v models.Vehicle) string { return v.Location },
			"maintenance": func(v models.Vehicle) string { return v.Maintenance },
			"fuel":        func(v models.Vehicle) string { return strconv.Itoa(v.Fuel) },
		},
		Searchable: []string{"id", "driver", "location"},
		Status:     func(v models.Vehicle, _ Thresholds) string { return v.Status },
		Thresholds: DefaultFuelThresholds,
	}
}

func discrepancyKind() Kind[models.Discrepancy] {
	return Kind[models.Discrepancy]{
		Name: KindDiscrepancies,
		Fields: map[string]Field[models.Discrepancy]{
			"id":         func(d models.Discrepancy) string { return d.ID },
			"auditId":    func(d models.Discrepancy) string { return d.AuditID },
			"item":       func(d models.Discrepancy) string { return d.Item },
			"sku":        func(d models.Discrepancy) string { return d.SKU },
			"reason":     func(d models.Discrepancy) string { return d.Reason },
			"reportedBy": func(d models.Discrepancy) string { return d.ReportedBy },
		},
		Searchable: []string{"id", "item", "sku", "reason"},
		Status:     func(d models.Discrepancy, _ Thresholds) string { return d.Status },
		Aliases: map[string]string{
			"open": models.DiscrepancyUnderInvestigation,
		},
	}
}
