package models

import "time"

// IntentType enumerates the actions a dashboard user can submit.
type IntentType string

const (
	IntentNewLoad          IntentType = "new_load"
	IntentNewInventoryItem IntentType = "new_inventory_item"
	IntentNewAudit         IntentType = "new_audit"
	IntentWeighStation     IntentType = "weigh_station_report"
	IntentRecordAction     IntentType = "record_action"
)

// NewLoadRequest is the "Create New Load" form.
type NewLoadRequest struct {
	LoadNumber          string `json:"loadNumber" binding:"required"`
	CustomerName        string `json:"customerName" binding:"required"`
	PickupLocation      string `json:"pickupLocation" binding:"required"`
	DeliveryLocation    string `json:"deliveryLocation" binding:"required"`
	PickupDate          string `json:"pickupDate" binding:"required"`
	DeliveryDate        string `json:"deliveryDate" binding:"required"`
	Weight              string `json:"weight" binding:"required"`
	Commodity           string `json:"commodity" binding:"required"`
	SpecialInstructions string `json:"specialInstructions"`
	Priority            string `json:"priority"`
}

// NewInventoryItemRequest is the "Add Item" form.
type NewInventoryItemRequest struct {
	SKU         string `json:"sku" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	Quantity    string `json:"quantity" binding:"required"`
	MinStock    string `json:"minStock" binding:"required"`
	MaxStock    string `json:"maxStock" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Warehouse   string `json:"warehouse"`
	Description string `json:"description"`
	Supplier    string `json:"supplier"`
	UnitPrice   string `json:"unitPrice"`
}

// NewAuditRequest is the "Schedule Audit" form.
type NewAuditRequest struct {
	AuditType       string   `json:"auditType" binding:"required"`
	Warehouse       string   `json:"warehouse" binding:"required"`
	ScheduledDate   string   `json:"scheduledDate" binding:"required"`
	AssignedAuditor string   `json:"assignedAuditor"`
	Scope           string   `json:"scope"`
	Priority        string   `json:"priority"`
	Description     string   `json:"description"`
	Categories      []string `json:"categories"`
}

// AxleWeights holds the per-axle scale readings.
type AxleWeights struct {
	Steer   string `json:"steer"`
	Drive   string `json:"drive"`
	Trailer string `json:"trailer"`
}

// WeighStationReport is filed by a driver after a weigh station inspection.
type WeighStationReport struct {
	StationLocation   string      `json:"stationLocation" binding:"required"`
	InspectionType    string      `json:"inspectionType" binding:"required"`
	GrossWeight       string      `json:"grossWeight" binding:"required"`
	AxleWeights       AxleWeights `json:"axleWeights"`
	Violations        []string    `json:"violations"`
	Notes             string      `json:"notes"`
	InspectorName     string      `json:"inspectorName"`
	CertificateNumber string      `json:"certificateNumber"`
}

// HasViolations reports whether the inspection found anything.
func (r WeighStationReport) HasViolations() bool {
	return len(r.Violations) > 0
}

// RecordAction requests an action on an existing record, e.g. assigning a load.
type RecordAction struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Action string `json:"action"`
}

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID         string     `json:"id"`
	Intent     IntentType `json:"intent"`
	Summary    string     `json:"summary"`
	Notified   bool       `json:"notified"`
	ReceivedAt time.Time  `json:"receivedAt"`
}
