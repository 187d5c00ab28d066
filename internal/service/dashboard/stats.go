package dashboard

import (
	"context"
	"fmt"

	"github.com/mamadbah2/fleetboard/internal/domain/filter"
	"github.com/mamadbah2/fleetboard/internal/domain/models"
)

// Stats computes the summary counters over the full record set.
func (s *Service) Stats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats

	loads, err := s.source.Loads(ctx)
	if err != nil {
		return stats, fmt.Errorf("fetch loads: %w", err)
	}
	items, err := s.source.InventoryItems(ctx)
	if err != nil {
		return stats, fmt.Errorf("fetch inventory: %w", err)
	}
	audits, err := s.source.AuditReports(ctx)
	if err != nil {
		return stats, fmt.Errorf("fetch audits: %w", err)
	}
	vehicles, err := s.source.Vehicles(ctx)
	if err != nil {
		return stats, fmt.Errorf("fetch vehicles: %w", err)
	}

	stats.Loads = loadStats(loads)
	stats.Inventory = s.inventoryStats(items)
	stats.Audits = auditStats(audits)
	stats.Fleet = fleetStats(vehicles)
	return stats, nil
}

func loadStats(loads []models.Load) models.LoadStats {
	st := models.LoadStats{Total: len(loads)}
	for _, l := range loads {
		switch l.Status {
		case models.LoadInTransit:
			st.InTransit++
		case models.LoadPendingAssignment:
			st.PendingAssignment++
		case models.LoadDelivered:
			st.Delivered++
		}
	}
	return st
}

func (s *Service) inventoryStats(items []models.InventoryItem) models.InventoryStats {
	st := models.InventoryStats{Total: len(items)}
	for _, item := range items {
		switch s.catalog.StockStatus(item) {
		case filter.StockOut:
			st.OutOfStock++
		case filter.StockLow:
			st.LowStock++
		case filter.StockOverstocked:
			st.Overstocked++
		case filter.StockIn:
			st.InStock++
		}
	}
	return st
}

func auditStats(audits []models.AuditReport) models.AuditStats {
	st := models.AuditStats{Total: len(audits)}
	for _, a := range audits {
		st.Discrepancies += a.Discrepancies
		switch a.Status {
		case models.AuditCompleted:
			st.Completed++
		case models.AuditInProgress:
			st.InProgress++
		case models.AuditPendingReview:
			st.PendingReview++
		}
	}
	return st
}

func fleetStats(vehicles []models.Vehicle) models.FleetStats {
	st := models.FleetStats{Total: len(vehicles)}
	for _, v := range vehicles {
		if v.NeedsAttention() {
			st.NeedAttention++
		}
		switch v.Status {
		case models.VehicleInTransit:
			st.InTransit++
		case models.VehicleAvailable:
			st.Available++
		case models.VehicleMaintenance:
			st.Maintenance++
		}
	}
	return st
}
