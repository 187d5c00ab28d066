package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/fleetboard/internal/domain/filter"
	"github.com/mamadbah2/fleetboard/internal/domain/models"
	"github.com/mamadbah2/fleetboard/internal/service/dashboard"
)

// DashboardService is the read side served by DashboardHandler.
type DashboardService interface {
	SearchLoads(ctx context.Context, c filter.Criteria) ([]models.Load, error)
	SearchInventory(ctx context.Context, c filter.Criteria) ([]dashboard.InventoryRow, error)
	SearchAudits(ctx context.Context, c filter.Criteria) ([]dashboard.AuditRow, error)
	SearchVehicles(ctx context.Context, c filter.Criteria) ([]dashboard.VehicleRow, error)
	SearchDiscrepancies(ctx context.Context, c filter.Criteria) ([]models.Discrepancy, error)
	Stats(ctx context.Context) (models.DashboardStats, error)
}

// DigestBuilder produces the daily digest on demand.
type DigestBuilder interface {
	BuildDigest(ctx context.Context, now time.Time) (models.DailyDigest, error)
}

// DashboardHandler serves the list, stats and digest endpoints.
type DashboardHandler struct {
	svc      DashboardService
	digest   DigestBuilder
	location *time.Location
	logger   *zap.Logger
}

// NewDashboardHandler constructs the HTTP handler adapter. Digests are dated
// in loc.
func NewDashboardHandler(svc DashboardService, digest DigestBuilder, loc *time.Location, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardHandler{svc: svc, digest: digest, location: loc, logger: logger}
}

// ListLoads handles GET /api/loads.
func (h *DashboardHandler) ListLoads(c *gin.Context) {
	list(c, h.logger, filter.KindLoads, h.svc.SearchLoads)
}

// ListInventory handles GET /api/inventory.
func (h *DashboardHandler) ListInventory(c *gin.Context) {
	list(c, h.logger, filter.KindInventory, h.svc.SearchInventory)
}

// ListAudits handles GET /api/audits.
func (h *DashboardHandler) ListAudits(c *gin.Context) {
	list(c, h.logger, filter.KindAudits, h.svc.SearchAudits)
}

// ListVehicles handles GET /api/vehicles.
func (h *DashboardHandler) ListVehicles(c *gin.Context) {
	list(c, h.logger, filter.KindVehicles, h.svc.SearchVehicles)
}

// ListDiscrepancies handles GET /api/discrepancies.
func (h *DashboardHandler) ListDiscrepancies(c *gin.Context) {
	list(c, h.logger, filter.KindDiscrepancies, h.svc.SearchDiscrepancies)
}

// Stats handles GET /api/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed computing stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load records"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Digest handles GET /api/reports/digest.
func (h *DashboardHandler) Digest(c *gin.Context) {
	digest, err := h.digest.BuildDigest(c.Request.Context(), time.Now().In(h.location))
	if err != nil {
		h.logger.Error("failed building digest", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to build digest"})
		return
	}
	c.JSON(http.StatusOK, digest)
}

func list[T any](c *gin.Context, logger *zap.Logger, kind string, search func(context.Context, filter.Criteria) ([]T, error)) {
	var criteria filter.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		logger.Warn("invalid search query", zap.String("kind", kind), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}

	items, err := search(c.Request.Context(), criteria)
	if err != nil {
		logger.Error("search failed", zap.String("kind", kind), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}
