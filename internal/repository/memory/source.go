package memory

import (
	"context"

	"github.com/mamadbah2/fleetboard/internal/domain/models"
)

// Source serves a fixed data set. Callers receive copies, so nothing they do
// can change what later calls return.
type Source struct {
	data Dataset
}

// Dataset groups one slice per record kind.
type Dataset struct {
	Loads         []models.Load
	Inventory     []models.InventoryItem
	Audits        []models.AuditReport
	Vehicles      []models.Vehicle
	Discrepancies []models.Discrepancy
}

// New serves the provided data set.
func New(data Dataset) *Source {
	return &Source{data: data}
}

// NewSeeded serves the built-in demo data.
func NewSeeded() *Source {
	return New(Seed())
}

func (s *Source) Loads(ctx context.Context) ([]models.Load, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.Load(nil), s.data.Loads...), nil
}

func (s *Source) InventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.InventoryItem(nil), s.data.Inventory...), nil
}

func (s *Source) AuditReports(ctx context.Context) ([]models.AuditReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.AuditReport(nil), s.data.Audits...), nil
}

func (s *Source) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.Vehicle, len(s.data.Vehicles))
	for i, v := range s.data.Vehicles {
		v.Issues = append([]string(nil), v.Issues...)
		out[i] = v
	}
	return out, nil
}

func (s *Source) Discrepancies(ctx context.Context) ([]models.Discrepancy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.Discrepancy(nil), s.data.Discrepancies...), nil
}
