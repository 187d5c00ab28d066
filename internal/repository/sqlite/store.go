package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/mamadbah2/fleetboard/internal/domain/filter"
	"github.com/mamadbah2/fleetboard/internal/domain/models"
	"github.com/mamadbah2/fleetboard/internal/repository/memory"
)

// Store keeps each record as a JSON payload keyed by kind and id, in the
// order it was imported.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "fleetboard.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS records (
  kind     TEXT NOT NULL,
  id       TEXT NOT NULL,
  position INTEGER NOT NULL,
  payload  BLOB NOT NULL,
  PRIMARY KEY (kind, id)
);
CREATE INDEX IF NOT EXISTS idx_records_order ON records(kind, position);
`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create records table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Empty reports whether no records have been imported yet.
func (s *Store) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return false, fmt.Errorf("count records: %w", err)
	}
	return n == 0, nil
}

// Import replaces every record of one kind.
func Import[T any](ctx context.Context, s *Store, kind string, records []T, id func(T) string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import %s: %w", kind, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM records WHERE kind = ?`, kind); err != nil {
		return fmt.Errorf("clear %s: %w", kind, err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (kind, id, position, payload) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert %s: %w", kind, err)
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range records {
		payload, mErr := json.Marshal(r)
		if mErr != nil {
			err = fmt.Errorf("encode %s %s: %w", kind, id(r), mErr)
			return err
		}
		if _, err = stmt.ExecContext(ctx, kind, id(r), i, payload); err != nil {
			return fmt.Errorf("insert %s %s: %w", kind, id(r), err)
		}
	}
	return tx.Commit()
}

// ImportDataset imports every kind of a data set.
func (s *Store) ImportDataset(ctx context.Context, data memory.Dataset) error {
	if err := Import(ctx, s, filter.KindLoads, data.Loads, func(l models.Load) string { return l.ID }); err != nil {
		return err
	}
	if err := Import(ctx, s, filter.KindInventory, data.Inventory, func(i models.InventoryItem) string { return i.ID }); err != nil {
		return err
	}
	if err := Import(ctx, s, filter.KindAudits, data.Audits, func(a models.AuditReport) string { return a.ID }); err != nil {
		return err
	}
	if err := Import(ctx, s, filter.KindVehicles, data.Vehicles, func(v models.Vehicle) string { return v.ID }); err != nil {
		return err
	}
	return Import(ctx, s, filter.KindDiscrepancies, data.Discrepancies, func(d models.Discrepancy) string { return d.ID })
}

func (s *Store) Loads(ctx context.Context) ([]models.Load, error) {
	return list[models.Load](ctx, s, filter.KindLoads)
}

func (s *Store) InventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	return list[models.InventoryItem](ctx, s, filter.KindInventory)
}

func (s *Store) AuditReports(ctx context.Context) ([]models.AuditReport, error) {
	return list[models.AuditReport](ctx, s, filter.KindAudits)
}

func (s *Store) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	return list[models.Vehicle](ctx, s, filter.KindVehicles)
}

func (s *Store) Discrepancies(ctx context.Context) ([]models.Discrepancy, error) {
	return list[models.Discrepancy](ctx, s, filter.KindDiscrepancies)
}

func list[T any](ctx context.Context, s *Store, kind string) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM records WHERE kind = ? ORDER BY position`, kind)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", kind, err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]T, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind, err)
		}
		var r T
		if err := json.Unmarshal(payload, &r); err != nil {
			return nil, fmt.Errorf("decode %s: %w", kind, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", kind, err)
	}
	return out, nil
}
