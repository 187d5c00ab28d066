package sheets

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/fleetboard/internal/domain/models"
)

// Each tab keeps a header in row 1; data starts at row 2.
const (
	loadsDataRange         = "Loads!A2:J"
	inventoryDataRange     = "Inventory!A2:J"
	auditsDataRange        = "Audits!A2:I"
	fleetDataRange         = "Fleet!A2:I"
	discrepanciesDataRange = "Discrepancies!A2:J"
)

// Source reads dashboard records from spreadsheet tabs. Rows that cannot be
// parsed are skipped and a missing tab reads as no records.
type Source struct {
	repo   Repository
	logger *zap.Logger
}

// NewSource wraps a range reader.
func NewSource(repository Repository, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{repo: repository, logger: logger}
}

func (s *Source) Loads(ctx context.Context) ([]models.Load, error) {
	return readRows(ctx, s, loadsDataRange, parseLoad)
}

func (s *Source) InventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	return readRows(ctx, s, inventoryDataRange, parseInventoryItem)
}

func (s *Source) AuditReports(ctx context.Context) ([]models.AuditReport, error) {
	return readRows(ctx, s, auditsDataRange, parseAuditReport)
}

func (s *Source) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	return readRows(ctx, s, fleetDataRange, parseVehicle)
}

func (s *Source) Discrepancies(ctx context.Context) ([]models.Discrepancy, error) {
	return readRows(ctx, s, discrepanciesDataRange, parseDiscrepancy)
}

func readRows[T any](ctx context.Context, s *Source, sheetRange string, parse func([]interface{}) (T, error)) ([]T, error) {
	rows, err := s.repo.ReadRange(ctx, sheetRange)
	if errors.Is(err, ErrMissingTab) {
		s.logger.Warn("spreadsheet tab missing", zap.String("range", sheetRange))
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", sheetRange, err)
	}

	out := make([]T, 0, len(rows))
	for i, row := range rows {
		record, err := parse(row)
		if err != nil {
			s.logger.Debug("skip malformed row", zap.String("range", sheetRange), zap.Int("row", i+2), zap.Error(err))
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func parseLoad(row []interface{}) (models.Load, error) {
	id := cell(row, 0)
	if id == "" {
		return models.Load{}, fmt.Errorf("missing load id")
	}
	progress, err := optionalInt(cell(row, 9))
	if err != nil {
		return models.Load{}, fmt.Errorf("progress: %w", err)
	}
	return models.Load{
		ID:          id,
		Pickup:      cell(row, 1),
		Destination: cell(row, 2),
		Driver:      cell(row, 3),
		Truck:       cell(row, 4),
		Weight:      cell(row, 5),
		Status:      cell(row, 6),
		ETA:         cell(row, 7),
		Priority:    cell(row, 8),
		Progress:    progress,
	}, nil
}

func parseInventoryItem(row []interface{}) (models.InventoryItem, error) {
	id := cell(row, 0)
	if id == "" {
		return models.InventoryItem{}, fmt.Errorf("missing item id")
	}
	quantity, err := parseInt(cell(row, 4))
	if err != nil {
		return models.InventoryItem{}, fmt.Errorf("quantity: %w", err)
	}
	minStock, err := optionalInt(cell(row, 5))
	if err != nil {
		return models.InventoryItem{}, fmt.Errorf("min stock: %w", err)
	}
	maxStock, err := optionalInt(cell(row, 6))
	if err != nil {
		return models.InventoryItem{}, fmt.Errorf("max stock: %w", err)
	}
	return models.InventoryItem{
		ID:          id,
		SKU:         cell(row, 1),
		Name:        cell(row, 2),
		Category:    cell(row, 3),
		Quantity:    quantity,
		MinStock:    minStock,
		MaxStock:    maxStock,
		Location:    cell(row, 7),
		Warehouse:   cell(row, 8),
		LastUpdated: cell(row, 9),
	}, nil
}

func parseAuditReport(row []interface{}) (models.AuditReport, error) {
	id := cell(row, 0)
	if id == "" {
		return models.AuditReport{}, fmt.Errorf("missing audit id")
	}
	discrepancies, err := optionalInt(cell(row, 6))
	if err != nil {
		return models.AuditReport{}, fmt.Errorf("discrepancies: %w", err)
	}
	totalItems, err := optionalInt(cell(row, 7))
	if err != nil {
		return models.AuditReport{}, fmt.Errorf("total items: %w", err)
	}
	accuracy, err := models.ParseAccuracy(cell(row, 8))
	if err != nil {
		return models.AuditReport{}, err
	}
	return models.AuditReport{
		ID:            id,
		Type:          cell(row, 1),
		Warehouse:     cell(row, 2),
		Auditor:       cell(row, 3),
		Date:          cell(row, 4),
		Status:        cell(row, 5),
		Discrepancies: discrepancies,
		TotalItems:    totalItems,
		Accuracy:      accuracy,
	}, nil
}

func parseVehicle(row []interface{}) (models.Vehicle, error) {
	id := cell(row, 0)
	if id == "" {
		return models.Vehicle{}, fmt.Errorf("missing truck id")
	}
	fuel, err := optionalInt(strings.TrimSuffix(cell(row, 4), "%"))
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("fuel: %w", err)
	}
	return models.Vehicle{
		ID:             id,
		Driver:         cell(row, 1),
		Location:       cell(row, 2),
		Status:         cell(row, 3),
		Fuel:           fuel,
		Mileage:        cell(row, 5),
		Maintenance:    cell(row, 6),
		LastInspection: cell(row, 7),
		Issues:         splitList(cell(row, 8)),
	}, nil
}

func parseDiscrepancy(row []interface{}) (models.Discrepancy, error) {
	id := cell(row, 0)
	if id == "" {
		return models.Discrepancy{}, fmt.Errorf("missing discrepancy id")
	}
	var nums [3]int
	for i := range nums {
		v, err := optionalInt(cell(row, 4+i))
		if err != nil {
			return models.Discrepancy{}, fmt.Errorf("column %d: %w", 5+i, err)
		}
		nums[i] = v
	}
	return models.Discrepancy{
		ID:         id,
		AuditID:    cell(row, 1),
		Item:       cell(row, 2),
		SKU:        cell(row, 3),
		Expected:   nums[0],
		Actual:     nums[1],
		Difference: nums[2],
		Reason:     cell(row, 7),
		Status:     cell(row, 8),
		ReportedBy: cell(row, 9),
	}, nil
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[idx]))
}

// parseInt accepts sheet-formatted numbers such as "1,250".
func parseInt(value string) (int, error) {
	str := strings.ReplaceAll(value, ",", "")
	if str == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	return strconv.Atoi(str)
}

func optionalInt(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return parseInt(value)
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
