package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/fleetboard/internal/domain/filter"
	"github.com/mamadbah2/fleetboard/internal/domain/models"
	"github.com/mamadbah2/fleetboard/internal/service/dashboard"
)

const dateLayout = "2006-01-02"

// Dashboard is the read side the digest is computed from.
type Dashboard interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
	InventoryRows(ctx context.Context) ([]dashboard.InventoryRow, error)
	VehicleRows(ctx context.Context) ([]dashboard.VehicleRow, error)
}

// Service builds the daily operations digest.
type Service struct {
	dashboard Dashboard
	logger    *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(d Dashboard, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{dashboard: d, logger: logger}
}

// BuildDigest summarises the board as of now: headline counts, items that
// need restocking and trucks that need attention.
func (s *Service) BuildDigest(ctx context.Context, now time.Time) (models.DailyDigest, error) {
	stats, err := s.dashboard.Stats(ctx)
	if err != nil {
		return models.DailyDigest{}, fmt.Errorf("compute stats: %w", err)
	}

	items, err := s.dashboard.InventoryRows(ctx)
	if err != nil {
		return models.DailyDigest{}, fmt.Errorf("load inventory: %w", err)
	}

	vehicles, err := s.dashboard.VehicleRows(ctx)
	if err != nil {
		return models.DailyDigest{}, fmt.Errorf("load fleet: %w", err)
	}

	digest := models.DailyDigest{
		Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Stats:     stats,
		Restock:   restockLines(items),
		Attention: attentionLines(vehicles),
		CreatedAt: now.UTC(),
	}
	digest.Message = formatMessage(digest)

	s.logger.Debug("digest built",
		zap.String("date", digest.Date.Format(dateLayout)),
		zap.Int("restock", len(digest.Restock)),
		zap.Int("attention", len(digest.Attention)))
	return digest, nil
}

func restockLines(items []dashboard.InventoryRow) []string {
	lines := make([]string, 0)
	for _, item := range items {
		if item.Status != filter.StockOut && item.Status != filter.StockLow {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s: %s (%d on hand, min %d)", item.SKU, item.Name, item.Status, item.Quantity, item.MinStock))
	}
	return lines
}

func attentionLines(vehicles []dashboard.VehicleRow) []string {
	lines := make([]string, 0)
	for _, v := range vehicles {
		if !v.Attention && v.FuelBand != filter.BandCritical {
			continue
		}
		reasons := append([]string(nil), v.Issues...)
		if v.FuelBand == filter.BandCritical {
			reasons = append(reasons, fmt.Sprintf("fuel %d%%", v.Fuel))
		}
		lines = append(lines, fmt.Sprintf("%s (%s, %s): %s", v.ID, v.Driver, v.Status, strings.Join(reasons, ", ")))
	}
	return lines
}

func formatMessage(d models.DailyDigest) string {
	var b strings.Builder
	st := d.Stats

	fmt.Fprintf(&b, "Fleet digest %s\n", d.Date.Format(dateLayout))
	fmt.Fprintf(&b, "Loads: %d in transit, %d pending assignment, %d delivered.\n",
		st.Loads.InTransit, st.Loads.PendingAssignment, st.Loads.Delivered)
	fmt.Fprintf(&b, "Inventory: %d in stock, %d low, %d out, %d overstocked.\n",
		st.Inventory.InStock, st.Inventory.LowStock, st.Inventory.OutOfStock, st.Inventory.Overstocked)
	fmt.Fprintf(&b, "Audits: %d completed, %d in progress, %d pending review.\n",
		st.Audits.Completed, st.Audits.InProgress, st.Audits.PendingReview)
	fmt.Fprintf(&b, "Fleet: %d in transit, %d available, %d in maintenance.", st.Fleet.InTransit, st.Fleet.Available, st.Fleet.Maintenance)

	if len(d.Restock) > 0 {
		b.WriteString("\n\nRestock:")
		for _, line := range d.Restock {
			b.WriteString("\n- " + line)
		}
	}
	if len(d.Attention) > 0 {
		b.WriteString("\n\nNeeds attention:")
		for _, line := range d.Attention {
			b.WriteString("\n- " + line)
		}
	}
	return b.String()
}
