package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/fleetboard/internal/repository/memory"
	"github.com/mamadbah2/fleetboard/internal/server/handlers"
	"github.com/mamadbah2/fleetboard/internal/server/metrics"
	"github.com/mamadbah2/fleetboard/internal/service/dashboard"
	"github.com/mamadbah2/fleetboard/internal/service/reporting"
	"github.com/mamadbah2/fleetboard/internal/service/submission"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	m := metrics.New()
	dash := dashboard.NewService(memory.NewSeeded(), nil, m, nil)
	sub := submission.NewService(dash, dash.Catalog(), nil, time.Second, nil)
	return New(
		handlers.NewDashboardHandler(dash, reporting.NewService(dash, nil), time.UTC, nil),
		handlers.NewSubmissionHandler(sub, nil),
		m,
		nil,
	)
}

type listResponse struct {
	Items []map[string]any `json:"items"`
	Count int              `json:"count"`
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func post(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	return rec
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) listResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	rec := get(t, newEngine(t), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListEndpoints(t *testing.T) {
	r := newEngine(t)

	tests := []struct {
		path  string
		count int
	}{
		{"/api/loads", 5},
		{"/api/loads?status=in-transit", 3},
		{"/api/loads?q=sarah", 1},
		{"/api/inventory?q=sku-12345", 1},
		{"/api/inventory?status=low", 1},
		{"/api/inventory?status=out", 1},
		{"/api/audits?status=completed", 2},
		{"/api/vehicles?q=TR-1", 6},
		{"/api/vehicles?status=maintenance", 1},
		{"/api/discrepancies?status=open", 1},
		{"/api/loads?q=nobody", 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			out := decodeList(t, get(t, r, tt.path))
			assert.Equal(t, tt.count, out.Count)
			assert.Len(t, out.Items, tt.count)
		})
	}
}

func TestListInventory_EmptyResultIsArray(t *testing.T) {
	rec := get(t, newEngine(t), "/api/inventory?q=zzz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"count":0}`, rec.Body.String())
}

func TestListInventory_CarriesStatus(t *testing.T) {
	out := decodeList(t, get(t, newEngine(t), "/api/inventory?q=SKU-98765"))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Out of Stock", out.Items[0]["status"])
}

func TestStatsAndDigest(t *testing.T) {
	r := newEngine(t)

	rec := get(t, r, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pendingAssignment":1`)

	rec = get(t, r, "/api/reports/digest")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fleet digest")
}

func TestSubmissions(t *testing.T) {
	r := newEngine(t)

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"new load", "/api/loads", `{"loadNumber":"TL-9","customerName":"Acme","pickupLocation":"A","deliveryLocation":"B","pickupDate":"2024-01-20","deliveryDate":"2024-01-21","weight":"10,000 lbs","commodity":"Paper"}`, http.StatusAccepted},
		{"load missing commodity", "/api/loads", `{"loadNumber":"TL-9","customerName":"Acme"}`, http.StatusBadRequest},
		{"blank load field", "/api/loads", `{"loadNumber":" ","customerName":"Acme","pickupLocation":"A","deliveryLocation":"B","pickupDate":"d","deliveryDate":"d","weight":"1","commodity":"c"}`, http.StatusBadRequest},
		{"new item", "/api/inventory", `{"sku":"SKU-1","name":"Tape","quantity":"5","minStock":"1","maxStock":"10","location":"A-1"}`, http.StatusAccepted},
		{"item bad numbers", "/api/inventory", `{"sku":"SKU-1","name":"Tape","quantity":"five","minStock":"1","maxStock":"10","location":"A-1"}`, http.StatusBadRequest},
		{"audit", "/api/audits", `{"auditType":"Cycle Count","warehouse":"WH-001","scheduledDate":"2024-02-01"}`, http.StatusAccepted},
		{"weigh station", "/api/weigh-station", `{"stationLocation":"I-40","inspectionType":"Level 1","grossWeight":"80,000","violations":["Brakes"]}`, http.StatusAccepted},
		{"malformed json", "/api/audits", `{`, http.StatusBadRequest},
		{"assign load", "/api/loads/TL-2024-006/assign", ``, http.StatusAccepted},
		{"resolve discrepancy", "/api/discrepancies/DISC-002/resolve", ``, http.StatusAccepted},
		{"unknown record", "/api/loads/TL-0000/view", ``, http.StatusNotFound},
		{"unsupported action", "/api/inventory/INV-001/assign", ``, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, r, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestSubmission_ReceiptBody(t *testing.T) {
	rec := post(t, newEngine(t), "/api/vehicles/TR-103/assign", "")
	require.Equal(t, http.StatusAccepted, rec.Code)

	var receipt map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.Equal(t, "record_action", receipt["intent"])
	assert.NotEmpty(t, receipt["id"])
	assert.Equal(t, "Assign requested for TR-103.", receipt["summary"])
}

func TestMetricsEndpoint(t *testing.T) {
	r := newEngine(t)
	get(t, r, "/api/loads")

	rec := get(t, r, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fleetboard_searches_total{kind="loads"} 1`)
	assert.Contains(t, rec.Body.String(), `fleetboard_http_requests_total{method="GET",route="/api/loads",status="200"} 1`)
}
