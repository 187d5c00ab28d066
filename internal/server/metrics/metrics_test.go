package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSearch(t *testing.T) {
	m := New()
	m.ObserveSearch("inventory", 4, 1)
	m.ObserveSearch("inventory", 0, 0)
	m.ObserveSearch("loads", 5, 5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.searches.WithLabelValues("inventory")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("loads")))
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/:kind", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/loads", "/api/inventory", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/:kind", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveSearch("audits", 4, 2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fleetboard_searches_total{kind="audits"} 1`)
}
