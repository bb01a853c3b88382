package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	ProspectsCreated prometheus.Counter
	VisitsRecorded   prometheus.Counter
	ToursStarted     prometheus.Counter
	ToursCompleted   prometheus.Counter
	EnrichmentJobs   *prometheus.CounterVec
	LoginAttempts    *prometheus.CounterVec
	ExportsGenerated *prometheus.CounterVec

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		ProspectsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "prospects_created_total",
			Help: "Total number of prospects created",
		}),
		VisitsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "visits_recorded_total",
			Help: "Total number of visits recorded",
		}),
		ToursStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tours_started_total",
			Help: "Total number of tours started",
		}),
		ToursCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tours_completed_total",
			Help: "Total number of tours completed",
		}),
		EnrichmentJobs: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enrichment_jobs_total",
				Help: "Total number of AI enrichment jobs processed",
			},
			[]string{"status"}, // success, failed
		),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),
		ExportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exports_generated_total",
				Help: "Total number of prospect exports generated",
			},
			[]string{"format"}, // csv, xlsx
		),

		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // route pattern, not actual path

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordLoginAttempt increments login attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}

// RecordEnrichment increments the enrichment jobs counter
func (m *Metrics) RecordEnrichment(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.EnrichmentJobs.WithLabelValues(status).Inc()
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}
