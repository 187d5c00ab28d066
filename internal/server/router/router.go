package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/fleetboard/internal/server/handlers"
	"github.com/mamadbah2/fleetboard/internal/server/metrics"
)

// New wires the Gin engine with required routes and middlewares. m may be nil.
func New(dash *handlers.DashboardHandler, sub *handlers.SubmissionHandler, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	if m != nil {
		r.Use(m.Middleware())
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/loads", dash.ListLoads)
		api.GET("/inventory", dash.ListInventory)
		api.GET("/audits", dash.ListAudits)
		api.GET("/vehicles", dash.ListVehicles)
		api.GET("/discrepancies", dash.ListDiscrepancies)
		api.GET("/stats", dash.Stats)
		api.GET("/reports/digest", dash.Digest)

		api.POST("/loads", sub.CreateLoad)
		api.POST("/inventory", sub.CreateInventoryItem)
		api.POST("/audits", sub.ScheduleAudit)
		api.POST("/weigh-station", sub.ReportWeighStation)
		api.POST("/:kind/:id/:action", sub.Act)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
