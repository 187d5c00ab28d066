package models

// Load statuses as shown on the load board.
const (
	LoadInTransit         = "In Transit"
	LoadPendingAssignment = "Pending Assignment"
	LoadDelivered         = "Delivered"
)

// Unassigned marks a load or truck without a driver.
const Unassigned = "Unassigned"

// Load is a shipment moving between a pickup and a destination.
type Load struct {
	ID          string `bson:"_id" json:"id"`
	Pickup      string `bson:"pickup" json:"pickup"`
	Destination string `bson:"destination" json:"destination"`
	Driver      string `bson:"driver" json:"driver"`
	Truck       string `bson:"truck" json:"truck"`
	Weight      string `bson:"weight" json:"weight"`
	Status      string `bson:"status" json:"status"`
	ETA         string `bson:"eta" json:"eta"`
	Priority    string `bson:"priority" json:"priority"`
	Progress    int    `bson:"progress" json:"progress"`
}

// IsAssigned reports whether a driver has been attached to the load.
func (l Load) IsAssigned() bool {
	return l.Driver != "" && l.Driver != Unassigned
}
