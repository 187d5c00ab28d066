package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/fleetboard/internal/domain/models"
	"github.com/mamadbah2/fleetboard/internal/service/submission"
)

// SubmissionService accepts the dashboard's forms and record actions.
type SubmissionService interface {
	SubmitLoad(ctx context.Context, req models.NewLoadRequest) (models.Receipt, error)
	SubmitInventoryItem(ctx context.Context, req models.NewInventoryItemRequest) (models.Receipt, error)
	SubmitAudit(ctx context.Context, req models.NewAuditRequest) (models.Receipt, error)
	SubmitWeighStation(ctx context.Context, req models.WeighStationReport) (models.Receipt, error)
	SubmitAction(ctx context.Context, req models.RecordAction) (models.Receipt, error)
}

// SubmissionHandler serves the form and action endpoints.
type SubmissionHandler struct {
	svc    SubmissionService
	logger *zap.Logger
}

// NewSubmissionHandler constructs the HTTP handler adapter.
func NewSubmissionHandler(svc SubmissionService, logger *zap.Logger) *SubmissionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionHandler{svc: svc, logger: logger}
}

// CreateLoad handles POST /api/loads.
func (h *SubmissionHandler) CreateLoad(c *gin.Context) {
	submit(c, h, h.svc.SubmitLoad)
}

// CreateInventoryItem handles POST /api/inventory.
func (h *SubmissionHandler) CreateInventoryItem(c *gin.Context) {
	submit(c, h, h.svc.SubmitInventoryItem)
}

// ScheduleAudit handles POST /api/audits.
func (h *SubmissionHandler) ScheduleAudit(c *gin.Context) {
	submit(c, h, h.svc.SubmitAudit)
}

// ReportWeighStation handles POST /api/weigh-station.
func (h *SubmissionHandler) ReportWeighStation(c *gin.Context) {
	submit(c, h, h.svc.SubmitWeighStation)
}

// Act handles POST /api/:kind/:id/:action.
func (h *SubmissionHandler) Act(c *gin.Context) {
	req := models.RecordAction{
		Kind:   c.Param("kind"),
		ID:     c.Param("id"),
		Action: c.Param("action"),
	}
	receipt, err := h.svc.SubmitAction(c.Request.Context(), req)
	h.respond(c, receipt, err)
}

func submit[T any](c *gin.Context, h *SubmissionHandler, fn func(context.Context, T) (models.Receipt, error)) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submission payload", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	receipt, err := fn(c.Request.Context(), req)
	h.respond(c, receipt, err)
}

func (h *SubmissionHandler) respond(c *gin.Context, receipt models.Receipt, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusAccepted, receipt)
	case errors.Is(err, submission.ErrMissingField),
		errors.Is(err, submission.ErrInvalidField),
		errors.Is(err, submission.ErrUnsupportedAction):
		h.logger.Warn("submission rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, submission.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		h.logger.Warn("submission timed out", zap.Error(err))
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "submission timed out"})
	default:
		h.logger.Error("failed processing submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to process submission"})
	}
}
