package submission

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/fleetboard/internal/domain/filter"
	"github.com/mamadbah2/fleetboard/internal/domain/models"
	"github.com/mamadbah2/fleetboard/internal/service/notify"
)

// ErrMissingField indicates a required form field was left blank.
var ErrMissingField = errors.New("missing required field")

// ErrInvalidField indicates a form field could not be parsed.
var ErrInvalidField = errors.New("invalid field")

// ErrRecordNotFound indicates an action targeted an unknown record.
var ErrRecordNotFound = errors.New("record not found")

// ErrUnsupportedAction indicates the action is not offered for the record kind.
var ErrUnsupportedAction = errors.New("unsupported action")

// Actions a user can take on an existing record.
const (
	ActionView    = "view"
	ActionEdit    = "edit"
	ActionAssign  = "assign"
	ActionResolve = "resolve"
)

var allowedActions = map[string][]string{
	filter.KindLoads:         {ActionView, ActionEdit, ActionAssign},
	filter.KindInventory:     {ActionView, ActionEdit},
	filter.KindAudits:        {ActionView, ActionEdit},
	filter.KindVehicles:      {ActionView, ActionAssign},
	filter.KindDiscrepancies: {ActionView, ActionResolve},
}

// RecordFinder checks that an action targets an existing record.
type RecordFinder interface {
	Exists(ctx context.Context, kind, id string) (bool, error)
}

// Service accepts form submissions and record actions. Accepted intents are
// logged and optionally forwarded to dispatch; the record source is never
// modified.
type Service struct {
	finder   RecordFinder
	catalog  *filter.Catalog
	notifier notify.Notifier
	timeout  time.Duration
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

// NewService constructs a submission service. notifier may be nil and a nil
// catalog means the default kinds.
func NewService(finder RecordFinder, catalog *filter.Catalog, notifier notify.Notifier, timeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if catalog == nil {
		catalog = filter.DefaultCatalog()
	}
	return &Service{
		finder:   finder,
		catalog:  catalog,
		notifier: notifier,
		timeout:  timeout,
		logger:   logger,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

// SubmitLoad accepts a new load and alerts dispatch.
func (s *Service) SubmitLoad(ctx context.Context, req models.NewLoadRequest) (models.Receipt, error) {
	if err := requireFields(
		field{"loadNumber", req.LoadNumber},
		field{"customerName", req.CustomerName},
		field{"pickupLocation", req.PickupLocation},
		field{"deliveryLocation", req.DeliveryLocation},
		field{"pickupDate", req.PickupDate},
		field{"deliveryDate", req.DeliveryDate},
		field{"weight", req.Weight},
		field{"commodity", req.Commodity},
	); err != nil {
		return models.Receipt{}, err
	}

	summary := fmt.Sprintf("Load %s has been created successfully.", req.LoadNumber)
	alert := fmt.Sprintf("New load %s for %s: %s -> %s, pickup %s.", req.LoadNumber, req.CustomerName, req.PickupLocation, req.DeliveryLocation, req.PickupDate)
	if strings.EqualFold(req.Priority, "high") {
		alert = "[HIGH] " + alert
	}
	return s.accept(ctx, models.IntentNewLoad, summary, alert, zap.String("load", req.LoadNumber))
}

// SubmitInventoryItem accepts a new inventory item.
func (s *Service) SubmitInventoryItem(ctx context.Context, req models.NewInventoryItemRequest) (models.Receipt, error) {
	if err := requireFields(
		field{"sku", req.SKU},
		field{"name", req.Name},
		field{"quantity", req.Quantity},
		field{"minStock", req.MinStock},
		field{"maxStock", req.MaxStock},
		field{"location", req.Location},
	); err != nil {
		return models.Receipt{}, err
	}

	quantity, err := parseCount("quantity", req.Quantity)
	if err != nil {
		return models.Receipt{}, err
	}
	minStock, err := parseCount("minStock", req.MinStock)
	if err != nil {
		return models.Receipt{}, err
	}
	maxStock, err := parseCount("maxStock", req.MaxStock)
	if err != nil {
		return models.Receipt{}, err
	}
	thresholds := filter.Thresholds{Min: float64(minStock), Max: float64(maxStock)}
	if err := thresholds.Validate(); err != nil {
		return models.Receipt{}, fmt.Errorf("%w: %v", ErrInvalidField, err)
	}

	status := s.catalog.StockStatus(models.InventoryItem{
		SKU:      req.SKU,
		Name:     req.Name,
		Quantity: quantity,
		MinStock: minStock,
		MaxStock: maxStock,
	})
	summary := fmt.Sprintf("%s (%s) has been added to inventory as %s.", req.Name, req.SKU, status)
	return s.accept(ctx, models.IntentNewInventoryItem, summary, "", zap.String("sku", req.SKU), zap.String("status", string(status)))
}

// SubmitAudit schedules an audit.
func (s *Service) SubmitAudit(ctx context.Context, req models.NewAuditRequest) (models.Receipt, error) {
	if err := requireFields(
		field{"auditType", req.AuditType},
		field{"warehouse", req.Warehouse},
		field{"scheduledDate", req.ScheduledDate},
	); err != nil {
		return models.Receipt{}, err
	}

	summary := fmt.Sprintf("%s audit has been scheduled for %s.", req.AuditType, req.ScheduledDate)
	return s.accept(ctx, models.IntentNewAudit, summary, "", zap.String("warehouse", req.Warehouse), zap.Strings("categories", req.Categories))
}

// SubmitWeighStation files a weigh station report. Reports with violations
// are forwarded to dispatch.
func (s *Service) SubmitWeighStation(ctx context.Context, req models.WeighStationReport) (models.Receipt, error) {
	if err := requireFields(
		field{"stationLocation", req.StationLocation},
		field{"inspectionType", req.InspectionType},
		field{"grossWeight", req.GrossWeight},
	); err != nil {
		return models.Receipt{}, err
	}

	summary := "Your inspection report has been successfully submitted to dispatch."
	var alert string
	if req.HasViolations() {
		alert = fmt.Sprintf("Weigh station %s (%s) reported %d violation(s): %s.",
			req.StationLocation, req.InspectionType, len(req.Violations), strings.Join(req.Violations, "; "))
	}
	return s.accept(ctx, models.IntentWeighStation, summary, alert,
		zap.String("station", req.StationLocation), zap.Int("violations", len(req.Violations)))
}

// SubmitAction records an action against an existing record.
func (s *Service) SubmitAction(ctx context.Context, req models.RecordAction) (models.Receipt, error) {
	if err := requireFields(field{"kind", req.Kind}, field{"id", req.ID}, field{"action", req.Action}); err != nil {
		return models.Receipt{}, err
	}

	action := strings.ToLower(req.Action)
	allowed, ok := allowedActions[req.Kind]
	if !ok || !contains(allowed, action) {
		return models.Receipt{}, fmt.Errorf("%w: %s on %s", ErrUnsupportedAction, req.Action, req.Kind)
	}

	if s.finder != nil {
		found, err := s.finder.Exists(ctx, req.Kind, req.ID)
		if err != nil {
			return models.Receipt{}, fmt.Errorf("lookup %s %s: %w", req.Kind, req.ID, err)
		}
		if !found {
			return models.Receipt{}, fmt.Errorf("%w: %s %s", ErrRecordNotFound, req.Kind, req.ID)
		}
	}

	var alert string
	switch action {
	case ActionAssign:
		alert = fmt.Sprintf("Assignment requested for %s %s.", req.Kind, req.ID)
	case ActionResolve:
		alert = fmt.Sprintf("Discrepancy %s marked for resolution.", req.ID)
	}

	summary := fmt.Sprintf("%s requested for %s.", capitalize(action), req.ID)
	return s.accept(ctx, models.IntentRecordAction, summary, alert,
		zap.String("kind", req.Kind), zap.String("id", req.ID), zap.String("action", action))
}

func (s *Service) accept(ctx context.Context, intent models.IntentType, summary, alert string, fields ...zap.Field) (models.Receipt, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return models.Receipt{}, fmt.Errorf("submit %s: %w", intent, err)
	}

	receipt := models.Receipt{
		ID:         s.newID(),
		Intent:     intent,
		Summary:    summary,
		ReceivedAt: s.now().UTC(),
	}

	if alert != "" && s.notifier != nil {
		if err := s.notifier.Notify(ctx, alert); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return models.Receipt{}, fmt.Errorf("submit %s: %w", intent, ctxErr)
			}
			s.logger.Warn("dispatch notification failed", zap.String("intent", string(intent)), zap.Error(err))
		} else {
			receipt.Notified = true
		}
	}

	s.logger.Info("submission accepted",
		append([]zap.Field{zap.String("intent", string(intent)), zap.String("receipt", receipt.ID), zap.Bool("notified", receipt.Notified)}, fields...)...)
	return receipt, nil
}

type field struct {
	name  string
	value string
}

func requireFields(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}

func parseCount(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(value), ",", ""))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative whole number", ErrInvalidField, name)
	}
	return n, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
