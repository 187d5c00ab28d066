package models

import "time"

// LoadStats counts loads per board status.
type LoadStats struct {
	Total             int `bson:"total" json:"total"`
	InTransit         int `bson:"in_transit" json:"inTransit"`
	PendingAssignment int `bson:"pending_assignment" json:"pendingAssignment"`
	Delivered         int `bson:"delivered" json:"delivered"`
}

// InventoryStats counts items per derived stock status. Buckets are mutually
// exclusive, so an empty bin counts as out of stock only.
type InventoryStats struct {
	Total       int `bson:"total" json:"total"`
	InStock     int `bson:"in_stock" json:"inStock"`
	LowStock    int `bson:"low_stock" json:"lowStock"`
	OutOfStock  int `bson:"out_of_stock" json:"outOfStock"`
	Overstocked int `bson:"overstocked" json:"overstocked"`
}

// AuditStats counts audits per status.
type AuditStats struct {
	Total         int `bson:"total" json:"total"`
	Completed     int `bson:"completed" json:"completed"`
	InProgress    int `bson:"in_progress" json:"inProgress"`
	PendingReview int `bson:"pending_review" json:"pendingReview"`
	Discrepancies int `bson:"discrepancies" json:"discrepancies"`
}

// FleetStats counts trucks per status.
type FleetStats struct {
	Total         int `bson:"total" json:"total"`
	InTransit     int `bson:"in_transit" json:"inTransit"`
	Available     int `bson:"available" json:"available"`
	Maintenance   int `bson:"maintenance" json:"maintenance"`
	NeedAttention int `bson:"need_attention" json:"needAttention"`
}

// DashboardStats is the summary strip shown above every manager view.
type DashboardStats struct {
	Loads     LoadStats      `bson:"loads" json:"loads"`
	Inventory InventoryStats `bson:"inventory" json:"inventory"`
	Audits    AuditStats     `bson:"audits" json:"audits"`
	Fleet     FleetStats     `bson:"fleet" json:"fleet"`
}

// DailyDigest represents the scheduled operations summary stored in MongoDB.
type DailyDigest struct {
	Date      time.Time      `bson:"date" json:"date"`
	Stats     DashboardStats `bson:"stats" json:"stats"`
	Restock   []string       `bson:"restock" json:"restock"`
	Attention []string       `bson:"attention" json:"attention"`
	Message   string         `bson:"message" json:"message"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
}
