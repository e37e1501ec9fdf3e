package monitoring

import (
	"strconv"
	"sync"
	"time"

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
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	EngineDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "learner_engine_operation_duration_seconds",
			Help:    "Duration of learner engine operations, storage included",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		},
		[]string{"operation"},
	)

	AchievementsUnlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learner_achievements_unlocked_total",
			Help: "Achievements unlocked and persisted",
		},
		[]string{"achievement"},
	)

	InsightsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learner_insights_generated_total",
			Help: "Insights returned to learners",
		},
		[]string{"type"},
	)

	ReferenceReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learner_reference_reloads_total",
			Help: "Reference dataset reload attempts",
		},
		[]string{"result"},
	)

	initOnce sync.Once
)

// Init 注册全部指标，可重复调用
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			EngineDuration,
			AchievementsUnlocked,
			InsightsGenerated,
			ReferenceReloads,
		)
	})
}

// ObserveEngine 用法: defer monitoring.ObserveEngine("evaluate")()
func ObserveEngine(operation string) func() {
	start := time.Now()
	return func() {
		EngineDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
