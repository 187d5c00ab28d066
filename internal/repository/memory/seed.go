package memory

import "github.com/mamadbah2/fleetboard/internal/domain/models"

// Seed returns the demo data the dashboard was designed around.
func Seed() Dataset {
	return Dataset{
		Loads: []models.Load{
			{ID: "TL-2024-003", Pickup: "Chicago, IL", Destination: "Los Angeles, CA", Driver: "Sarah Wilson", Truck: "TR-105", Weight: "34,200 lbs", Status: models.LoadInTransit, ETA: "Tomorrow 4:30 PM", Priority: "High", Progress: 85},
			{ID: "TL-2024-004", Pickup: "Houston, TX", Destination: "Phoenix, AZ", Driver: "David Brown", Truck: "TR-108", Weight: "28,900 lbs", Status: models.LoadInTransit, ETA: "Tomorrow 6:15 PM", Priority: "Normal", Progress: 60},
			{ID: "TL-2024-005", Pickup: "Atlanta, GA", Destination: "Denver, CO", Driver: "Lisa Garcia", Truck: "TR-112", Weight: "31,500 lbs", Status: models.LoadInTransit, ETA: "Tomorrow 9:00 AM", Priority: "Normal", Progress: 25},
			{ID: "TL-2024-006", Pickup: "Seattle, WA", Destination: "Portland, OR", Driver: models.Unassigned, Truck: models.Unassigned, Weight: "22,400 lbs", Status: models.LoadPendingAssignment, ETA: "TBD", Priority: "High", Progress: 0},
			{ID: "TL-2024-007", Pickup: "Miami, FL", Destination: "Jacksonville, FL", Driver: "Mike Johnson", Truck: "TR-103", Weight: "18,600 lbs", Status: models.LoadDelivered, ETA: "Completed", Priority: "Normal", Progress: 100},
		},
		Inventory: []models.InventoryItem{
			{ID: "INV-001", SKU: "SKU-12345", Name: "Electronic Components", Category: "Electronics", Quantity: 1250, MinStock: 500, MaxStock: 2000, Location: "A-12-03", Warehouse: "WH-001", LastUpdated: "2024-01-15 14:30"},
			{ID: "INV-002", SKU: "SKU-67890", Name: "Automotive Parts", Category: "Automotive", Quantity: 75, MinStock: 100, MaxStock: 500, Location: "B-08-15", Warehouse: "WH-001", LastUpdated: "2024-01-15 12:15"},
			{ID: "INV-003", SKU: "SKU-54321", Name: "Medical Supplies", Category: "Healthcare", Quantity: 2100, MinStock: 1000, MaxStock: 3000, Location: "C-05-22", Warehouse: "WH-001", LastUpdated: "2024-01-15 16:45"},
			{ID: "INV-004", SKU: "SKU-98765", Name: "Industrial Equipment", Category: "Industrial", Quantity: 0, MinStock: 10, MaxStock: 50, Location: "D-15-08", Warehouse: "WH-001", LastUpdated: "2024-01-14 09:20"},
		},
		Audits: []models.AuditReport{
			{ID: "AUD-001", Type: "Inventory Count", Warehouse: "Main Distribution Center", Auditor: "Sarah Johnson", Date: "2024-01-15", Status: models.AuditCompleted, Discrepancies: 3, TotalItems: 1250, Accuracy: models.MustAccuracy("99.76%")},
			{ID: "AUD-002", Type: "Compliance Check", Warehouse: "East Coast Hub", Auditor: "Mike Wilson", Date: "2024-01-14", Status: models.AuditInProgress, Discrepancies: 0, TotalItems: 890, Accuracy: models.MustAccuracy("100%")},
			{ID: "AUD-003", Type: "Security Audit", Warehouse: "Regional Depot", Auditor: "Lisa Garcia", Date: "2024-01-13", Status: models.AuditPendingReview, Discrepancies: 7, TotalItems: 650, Accuracy: models.MustAccuracy("98.92%")},
			{ID: "AUD-004", Type: "Quality Control", Warehouse: "Main Distribution Center", Auditor: "David Brown", Date: "2024-01-12", Status: models.AuditCompleted, Discrepancies: 1, TotalItems: 420, Accuracy: models.MustAccuracy("99.76%")},
		},
		Vehicles: []models.Vehicle{
			{ID: "TR-101", Driver: "John Smith", Location: "Denver, CO", Status: models.VehicleInTransit, Fuel: 75, Mileage: "487,234", Maintenance: "Due in 2,300 miles", LastInspection: "2 days ago"},
			{ID: "TR-105", Driver: "Sarah Wilson", Location: "Flagstaff, AZ", Status: models.VehicleInTransit, Fuel: 45, Mileage: "392,156", Maintenance: "Current", LastInspection: "1 week ago", Issues: []string{"Low fuel warning"}},
			{ID: "TR-108", Driver: "David Brown", Location: "Albuquerque, NM", Status: models.VehicleInTransit, Fuel: 85, Mileage: "234,567", Maintenance: "Current", LastInspection: "3 days ago"},
			{ID: "TR-112", Driver: "Lisa Garcia", Location: "Kansas City, MO", Status: models.VehicleInTransit, Fuel: 60, Mileage: "156,789", Maintenance: "Due in 1,200 miles", LastInspection: "5 days ago"},
			{ID: "TR-103", Driver: "Mike Johnson", Location: "Miami, FL", Status: models.VehicleAvailable, Fuel: 95, Mileage: "298,432", Maintenance: "Current", LastInspection: "Yesterday"},
			{ID: "TR-115", Driver: models.Unassigned, Location: "Phoenix, AZ", Status: models.VehicleMaintenance, Fuel: 30, Mileage: "445,123", Maintenance: "In Progress", LastInspection: "1 week ago", Issues: []string{"Engine service", "Brake inspection"}},
		},
		Discrepancies: []models.Discrepancy{
			{ID: "DISC-001", AuditID: "AUD-001", Item: "Electronic Components", SKU: "SKU-12345", Expected: 1250, Actual: 1247, Difference: -3, Reason: "Damaged items not logged", Status: models.DiscrepancyResolved, ReportedBy: "Sarah Johnson"},
			{ID: "DISC-002", AuditID: "AUD-003", Item: "Medical Supplies", SKU: "SKU-54321", Expected: 500, Actual: 507, Difference: 7, Reason: "Unreported delivery", Status: models.DiscrepancyUnderInvestigation, ReportedBy: "Lisa Garcia"},
		},
	}
}
