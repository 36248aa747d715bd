package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Document kinds used as label values.
const (
	KindResume      = "resume"
	KindCoverLetter = "cover_letter"
)

var (
	documentsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "documents_generated_total",
		Help: "Total PDFs generated",
	}, []string{"kind", "template"})

	documentsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "document_generation_failed_total",
		Help: "Total PDF generations that failed",
	}, []string{"kind"})

	generationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "document_generation_duration_seconds",
		Help:    "Time spent rendering a PDF",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"kind"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"method", "path", "status_code"})
)

// ObserveGenerated records a successful render.
func ObserveGenerated(kind, template string, elapsed time.Duration) {
	documentsGenerated.WithLabelValues(kind, template).Inc()
	generationDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// ObserveFailed records a failed render.
func ObserveFailed(kind string) {
	documentsFailed.WithLabelValues(kind).Inc()
}

// Middleware counts requests by matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
