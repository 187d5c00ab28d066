package repository

import (
	"context"
	"errors"

	"github.com/mamadbah2/fleetboard/internal/domain/models"
)

// ErrUnknownSource is returned when RECORD_SOURCE names no backend.
var ErrUnknownSource = errors.New("unknown record source")

// Source is the read-only data access used by the dashboard. Every backend
// returns records in a stable order.
type Source interface {
	Loads(ctx context.Context) ([]models.Load, error)
	InventoryItems(ctx context.Context) ([]models.InventoryItem, error)
	AuditReports(ctx context.Context) ([]models.AuditReport, error)
	Vehicles(ctx context.Context) ([]models.Vehicle, error)
	Discrepancies(ctx context.Context) ([]models.Discrepancy, error)
}

// Backend names accepted by RECORD_SOURCE.
const (
	BackendMemory  = "memory"
	BackendMongoDB = "mongodb"
	BackendSheets  = "sheets"
	BackendSQLite  = "sqlite"
)
