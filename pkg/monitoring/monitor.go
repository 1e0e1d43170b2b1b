package monitoring

import (
	"strconv"
	"sync"
	"time"

	"level_tracker_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	CatalogLevels = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_levels",
			Help: "Number of levels in the moderator catalog",
		},
	)

	CatalogCopies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_copies",
			Help: "Number of copies in the moderator catalog by status",
		},
		[]string{"status"},
	)

	CatalogMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_mutations_total",
			Help: "Catalog write operations by operation and result",
		},
		[]string{"op", "result"},
	)

	SourceLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_source_loads_total",
			Help: "Catalog source loads by result",
		},
		[]string{"result"},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry. Repeat calls are no-ops.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(CatalogLevels)
		prometheus.MustRegister(CatalogCopies)
		prometheus.MustRegister(CatalogMutations)
		prometheus.MustRegister(SourceLoads)
	})
}

// ObserveCatalog updates the catalog gauges from a snapshot.
func ObserveCatalog(levels []model.Level) {
	var counts model.StatusCounts
	for _, l := range levels {
		c := l.Counts()
		counts.Approved += c.Approved
		counts.Pending += c.Pending
		counts.Rejected += c.Rejected
	}
	CatalogLevels.Set(float64(len(levels)))
	CatalogCopies.WithLabelValues(string(model.CopyStatusApproved)).Set(float64(counts.Approved))
	CatalogCopies.WithLabelValues(string(model.CopyStatusPending)).Set(float64(counts.Pending))
	CatalogCopies.WithLabelValues(string(model.CopyStatusRejected)).Set(float64(counts.Rejected))
}

func ObserveMutation(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	CatalogMutations.WithLabelValues(op, result).Inc()
}

func ObserveLoad(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	SourceLoads.WithLabelValues(result).Inc()
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
