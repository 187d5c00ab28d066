package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/fleetboard/internal/domain/filter"
	"github.com/mamadbah2/fleetboard/internal/domain/models"
	"github.com/mamadbah2/fleetboard/internal/repository/memory"
	"github.com/mamadbah2/fleetboard/internal/service/dashboard"
)

type recordingNotifier struct {
	messages []string
	err      error
}

func (n *recordingNotifier) Notify(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.err != nil {
		return n.err
	}
	n.messages = append(n.messages, message)
	return nil
}

type finderFunc func(ctx context.Context, kind, id string) (bool, error)

func (f finderFunc) Exists(ctx context.Context, kind, id string) (bool, error) {
	return f(ctx, kind, id)
}

func newTestService(n *recordingNotifier) *Service {
	finder := dashboard.NewService(memory.NewSeeded(), nil, nil, nil)
	var svc *Service
	if n == nil {
		svc = NewService(finder, nil, nil, time.Second, nil)
	} else {
		svc = NewService(finder, nil, n, time.Second, nil)
	}
	svc.newID = func() string { return "receipt-1" }
	svc.now = func() time.Time { return time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC) }
	return svc
}

func validLoad() models.NewLoadRequest {
	return models.NewLoadRequest{
		LoadNumber:       "TL-2024-010",
		CustomerName:     "Acme Freight",
		PickupLocation:   "Dallas, TX",
		DeliveryLocation: "Memphis, TN",
		PickupDate:       "2024-01-20",
		DeliveryDate:     "2024-01-22",
		Weight:           "30,000 lbs",
		Commodity:        "Paper goods",
		Priority:         "high",
	}
}

func TestSubmitLoad(t *testing.T) {
	n := &recordingNotifier{}
	svc := newTestService(n)

	receipt, err := svc.SubmitLoad(context.Background(), validLoad())
	require.NoError(t, err)

	assert.Equal(t, "receipt-1", receipt.ID)
	assert.Equal(t, models.IntentNewLoad, receipt.Intent)
	assert.Equal(t, "Load TL-2024-010 has been created successfully.", receipt.Summary)
	assert.True(t, receipt.Notified)
	require.Len(t, n.messages, 1)
	assert.Contains(t, n.messages[0], "[HIGH]")
	assert.Contains(t, n.messages[0], "Dallas, TX -> Memphis, TN")
}

func TestSubmitLoad_MissingField(t *testing.T) {
	n := &recordingNotifier{}
	svc := newTestService(n)

	req := validLoad()
	req.Commodity = "   "
	_, err := svc.SubmitLoad(context.Background(), req)

	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "commodity")
	assert.Empty(t, n.messages)
}

func TestSubmitLoad_WithoutNotifier(t *testing.T) {
	svc := newTestService(nil)

	receipt, err := svc.SubmitLoad(context.Background(), validLoad())
	require.NoError(t, err)
	assert.False(t, receipt.Notified)
}

func TestSubmitLoad_NotifierFailureIsNotFatal(t *testing.T) {
	svc := newTestService(&recordingNotifier{err: errors.New("whatsapp down")})

	receipt, err := svc.SubmitLoad(context.Background(), validLoad())
	require.NoError(t, err)
	assert.False(t, receipt.Notified)
}

func TestSubmit_CancelledContext(t *testing.T) {
	svc := newTestService(&recordingNotifier{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.SubmitLoad(ctx, validLoad())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSubmitInventoryItem(t *testing.T) {
	svc := newTestService(nil)
	req := models.NewInventoryItemRequest{
		SKU: "SKU-11111", Name: "Pallet Wrap", Quantity: "40", MinStock: "50", MaxStock: "1,000", Location: "E-01-01",
	}

	receipt, err := svc.SubmitInventoryItem(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.IntentNewInventoryItem, receipt.Intent)
	assert.Equal(t, "Pallet Wrap (SKU-11111) has been added to inventory as Low Stock.", receipt.Summary)
}

func TestSubmitInventoryItem_FallsBackToProfileThresholds(t *testing.T) {
	catalog, err := filter.NewCatalog(map[string]filter.Profile{
		filter.KindInventory: {StatusThresholds: &filter.Thresholds{Min: 10, Max: 500}},
	})
	require.NoError(t, err)
	svc := NewService(dashboard.NewService(memory.NewSeeded(), catalog, nil, nil), catalog, nil, time.Second, nil)

	req := models.NewInventoryItemRequest{
		SKU: "SKU-22222", Name: "Stretch Film", Quantity: "5", MinStock: "0", MaxStock: "0", Location: "E-02-01",
	}
	receipt, err := svc.SubmitInventoryItem(context.Background(), req)
	require.NoError(t, err)

	want := catalog.StockStatus(models.InventoryItem{Quantity: 5})
	assert.Equal(t, filter.StockLow, want)
	assert.Equal(t, "Stretch Film (SKU-22222) has been added to inventory as Low Stock.", receipt.Summary)
}

func TestSubmitInventoryItem_Invalid(t *testing.T) {
	base := models.NewInventoryItemRequest{
		SKU: "SKU-1", Name: "Wrap", Quantity: "10", MinStock: "5", MaxStock: "20", Location: "A",
	}
	tests := []struct {
		name    string
		mutate  func(*models.NewInventoryItemRequest)
		wantErr error
	}{
		{"missing sku", func(r *models.NewInventoryItemRequest) { r.SKU = "" }, ErrMissingField},
		{"missing location", func(r *models.NewInventoryItemRequest) { r.Location = "" }, ErrMissingField},
		{"non-numeric quantity", func(r *models.NewInventoryItemRequest) { r.Quantity = "lots" }, ErrInvalidField},
		{"negative min", func(r *models.NewInventoryItemRequest) { r.MinStock = "-1" }, ErrInvalidField},
		{"min above max", func(r *models.NewInventoryItemRequest) { r.MinStock = "30" }, ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			_, err := newTestService(nil).SubmitInventoryItem(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitAudit(t *testing.T) {
	svc := newTestService(nil)

	receipt, err := svc.SubmitAudit(context.Background(), models.NewAuditRequest{
		AuditType: "Cycle Count", Warehouse: "WH-001", ScheduledDate: "2024-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cycle Count audit has been scheduled for 2024-02-01.", receipt.Summary)

	_, err = svc.SubmitAudit(context.Background(), models.NewAuditRequest{AuditType: "Cycle Count"})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestSubmitWeighStation(t *testing.T) {
	t.Run("clean report is not forwarded", func(t *testing.T) {
		n := &recordingNotifier{}
		receipt, err := newTestService(n).SubmitWeighStation(context.Background(), models.WeighStationReport{
			StationLocation: "I-40 Flagstaff", InspectionType: "Level 3", GrossWeight: "78,000",
		})
		require.NoError(t, err)
		assert.False(t, receipt.Notified)
		assert.Empty(t, n.messages)
	})

	t.Run("violations are forwarded", func(t *testing.T) {
		n := &recordingNotifier{}
		receipt, err := newTestService(n).SubmitWeighStation(context.Background(), models.WeighStationReport{
			StationLocation: "I-40 Flagstaff", InspectionType: "Level 1", GrossWeight: "82,400",
			Violations: []string{"Overweight drive axle", "Brake adjustment"},
		})
		require.NoError(t, err)
		assert.True(t, receipt.Notified)
		require.Len(t, n.messages, 1)
		assert.Contains(t, n.messages[0], "2 violation(s)")
	})
}

func TestSubmitAction(t *testing.T) {
	tests := []struct {
		name       string
		action     models.RecordAction
		wantErr    error
		wantNotify bool
	}{
		{"assign load", models.RecordAction{Kind: "loads", ID: "TL-2024-006", Action: "assign"}, nil, true},
		{"view vehicle", models.RecordAction{Kind: "vehicles", ID: "TR-101", Action: "View"}, nil, false},
		{"resolve discrepancy", models.RecordAction{Kind: "discrepancies", ID: "DISC-002", Action: "resolve"}, nil, true},
		{"unknown record", models.RecordAction{Kind: "loads", ID: "TL-9999", Action: "view"}, ErrRecordNotFound, false},
		{"resolve on a load", models.RecordAction{Kind: "loads", ID: "TL-2024-003", Action: "resolve"}, ErrUnsupportedAction, false},
		{"unknown kind", models.RecordAction{Kind: "drivers", ID: "D-1", Action: "view"}, ErrUnsupportedAction, false},
		{"missing id", models.RecordAction{Kind: "loads", Action: "view"}, ErrMissingField, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &recordingNotifier{}
			receipt, err := newTestService(n).SubmitAction(context.Background(), tt.action)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, n.messages)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.IntentRecordAction, receipt.Intent)
			assert.Equal(t, tt.wantNotify, receipt.Notified)
		})
	}
}

func TestSubmitAction_LookupError(t *testing.T) {
	finder := finderFunc(func(context.Context, string, string) (bool, error) {
		return false, errors.New("mongo unavailable")
	})
	svc := NewService(finder, nil, nil, time.Second, nil)

	_, err := svc.SubmitAction(context.Background(), models.RecordAction{Kind: "loads", ID: "TL-1", Action: "view"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo unavailable")
	assert.NotErrorIs(t, err, ErrRecordNotFound)
}
