package models

// Vehicle statuses.
const (
	VehicleInTransit   = "In Transit"
	VehicleAvailable   = "Available"
	VehicleMaintenance = "Maintenance"
)

// Vehicle is a truck in the fleet.
type Vehicle struct {
	ID             string   `bson:"_id" json:"id"`
	Driver         string   `bson:"driver" json:"driver"`
	Location       string   `bson:"location" json:"location"`
	Status         string   `bson:"status" json:"status"`
	Fuel           int      `bson:"fuel" json:"fuel"`
	Mileage        string   `bson:"mileage" json:"mileage"`
	Maintenance    string   `bson:"maintenance" json:"maintenance"`
	LastInspection string   `bson:"last_inspection" json:"lastInspection"`
	Issues         []string `bson:"issues" json:"issues"`
}

// NeedsAttention reports whether the truck has open issues.
func (v Vehicle) NeedsAttention() bool {
	return len(v.Issues) > 0
}
