package dashboard

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/fleetboard/internal/domain/filter"
	"github.com/mamadbah2/fleetboard/internal/domain/models"
	"github.com/mamadbah2/fleetboard/internal/repository"
)

// ErrUnknownKind indicates a kind name outside filter.KindNames.
var ErrUnknownKind = errors.New("unknown record kind")

// SearchObserver is notified after every search, e.g. to record metrics.
type SearchObserver interface {
	ObserveSearch(kind string, total, matched int)
}

// InventoryRow is an inventory item with its derived stock status.
type InventoryRow struct {
	models.InventoryItem
	Status filter.StockStatus `json:"status"`
}

// AuditRow is an audit report with its accuracy band.
type AuditRow struct {
	models.AuditReport
	AccuracyBand filter.Band `json:"accuracyBand"`
}

// VehicleRow is a truck with its fuel band.
type VehicleRow struct {
	models.Vehicle
	FuelBand  filter.Band `json:"fuelBand"`
	Attention bool        `json:"needsAttention"`
}

// Service answers the dashboard's list and summary queries.
type Service struct {
	source   repository.Source
	catalog  *filter.Catalog
	observer SearchObserver
	logger   *zap.Logger
}

// NewService wires a new dashboard service instance.
func NewService(source repository.Source, catalog *filter.Catalog, observer SearchObserver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if catalog == nil {
		catalog = filter.DefaultCatalog()
	}
	return &Service{source: source, catalog: catalog, observer: observer, logger: logger}
}

// Catalog exposes the configured kinds.
func (s *Service) Catalog() *filter.Catalog {
	return s.catalog
}

// SearchLoads filters the load board.
func (s *Service) SearchLoads(ctx context.Context, c filter.Criteria) ([]models.Load, error) {
	loads, err := s.source.Loads(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch loads: %w", err)
	}
	out := filter.Search(loads, s.catalog.Loads, c)
	s.observe(filter.KindLoads, c, len(loads), len(out))
	return out, nil
}

// SearchInventory filters inventory and attaches each item's stock status.
func (s *Service) SearchInventory(ctx context.Context, c filter.Criteria) ([]InventoryRow, error) {
	items, err := s.source.InventoryItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch inventory: %w", err)
	}
	matched := filter.Search(items, s.catalog.Inventory, c)
	s.observe(filter.KindInventory, c, len(items), len(matched))

	return s.inventoryRows(matched), nil
}

// InventoryRows returns every inventory item with its stock status. It is
// meant for internal readers such as reports and is not counted as a search.
func (s *Service) InventoryRows(ctx context.Context) ([]InventoryRow, error) {
	items, err := s.source.InventoryItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch inventory: %w", err)
	}
	return s.inventoryRows(items), nil
}

func (s *Service) inventoryRows(items []models.InventoryItem) []InventoryRow {
	out := make([]InventoryRow, 0, len(items))
	for _, item := range items {
		out = append(out, InventoryRow{InventoryItem: item, Status: s.catalog.StockStatus(item)})
	}
	return out
}

// SearchAudits filters audit reports and grades their accuracy.
func (s *Service) SearchAudits(ctx context.Context, c filter.Criteria) ([]AuditRow, error) {
	audits, err := s.source.AuditReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch audits: %w", err)
	}
	matched := filter.Search(audits, s.catalog.Audits, c)
	s.observe(filter.KindAudits, c, len(audits), len(matched))

	out := make([]AuditRow, 0, len(matched))
	for _, a := range matched {
		out = append(out, AuditRow{AuditReport: a, AccuracyBand: filter.BandAccuracy(a.Accuracy.Decimal)})
	}
	return out, nil
}

// SearchVehicles filters the fleet and grades fuel levels.
func (s *Service) SearchVehicles(ctx context.Context, c filter.Criteria) ([]VehicleRow, error) {
	vehicles, err := s.source.Vehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch vehicles: %w", err)
	}
	matched := filter.Search(vehicles, s.catalog.Vehicles, c)
	s.observe(filter.KindVehicles, c, len(vehicles), len(matched))

	return s.vehicleRows(matched), nil
}

// VehicleRows returns the whole fleet with fuel bands, without counting as a
// search.
func (s *Service) VehicleRows(ctx context.Context) ([]VehicleRow, error) {
	vehicles, err := s.source.Vehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch vehicles: %w", err)
	}
	return s.vehicleRows(vehicles), nil
}

func (s *Service) vehicleRows(vehicles []models.Vehicle) []VehicleRow {
	out := make([]VehicleRow, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, VehicleRow{Vehicle: v, FuelBand: s.catalog.FuelBand(v), Attention: v.NeedsAttention()})
	}
	return out
}

// SearchDiscrepancies filters audit discrepancies.
func (s *Service) SearchDiscrepancies(ctx context.Context, c filter.Criteria) ([]models.Discrepancy, error) {
	discrepancies, err := s.source.Discrepancies(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch discrepancies: %w", err)
	}
	out := filter.Search(discrepancies, s.catalog.Discrepancies, c)
	s.observe(filter.KindDiscrepancies, c, len(discrepancies), len(out))
	return out, nil
}

// Exists reports whether a record of the given kind has the given id.
func (s *Service) Exists(ctx context.Context, kind, id string) (bool, error) {
	var ids []string
	switch kind {
	case filter.KindLoads:
		loads, err := s.source.Loads(ctx)
		if err != nil {
			return false, fmt.Errorf("fetch loads: %w", err)
		}
		for _, l := range loads {
			ids = append(ids, l.ID)
		}
	case filter.KindInventory:
		items, err := s.source.InventoryItems(ctx)
		if err != nil {
			return false, fmt.Errorf("fetch inventory: %w", err)
		}
		for _, i := range items {
			ids = append(ids, i.ID)
		}
	case filter.KindAudits:
		audits, err := s.source.AuditReports(ctx)
		if err != nil {
			return false, fmt.Errorf("fetch audits: %w", err)
		}
		for _, a := range audits {
			ids = append(ids, a.ID)
		}
	case filter.KindVehicles:
		vehicles, err := s.source.Vehicles(ctx)
		if err != nil {
			return false, fmt.Errorf("fetch vehicles: %w", err)
		}
		for _, v := range vehicles {
			ids = append(ids, v.ID)
		}
	case filter.KindDiscrepancies:
		discrepancies, err := s.source.Discrepancies(ctx)
		if err != nil {
			return false, fmt.Errorf("fetch discrepancies: %w", err)
		}
		for _, d := range discrepancies {
			ids = append(ids, d.ID)
		}
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	for _, candidate := range ids {
		if candidate == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) observe(kind string, c filter.Criteria, total, matched int) {
	s.logger.Debug("search completed",
		zap.String("kind", kind),
		zap.String("q", c.SearchText),
		zap.String("status", c.StatusFilter),
		zap.Int("total", total),
		zap.Int("matched", matched))
	if s.observer != nil {
		s.observer.ObserveSearch(kind, total, matched)
	}
}
