package models

// InventoryItem is a SKU stocked at a warehouse location. It carries no stored
// status; stock status is always derived from quantity and the min/max levels.
type InventoryItem struct {
	ID          string `bson:"_id" json:"id"`
	SKU         string `bson:"sku" json:"sku"`
	Name        string `bson:"name" json:"name"`
	Category    string `bson:"category" json:"category"`
	Quantity    int    `bson:"quantity" json:"quantity"`
	MinStock    int    `bson:"min_stock" json:"minStock"`
	MaxStock    int    `bson:"max_stock" json:"maxStock"`
	Location    string `bson:"location" json:"location"`
	Warehouse   string `bson:"warehouse" json:"warehouse"`
	LastUpdated string `bson:"last_updated" json:"lastUpdated"`
}

// HasThresholds reports whether the item defines its own stock levels.
func (i InventoryItem) HasThresholds() bool {
	return i.MinStock != 0 || i.MaxStock != 0
}
