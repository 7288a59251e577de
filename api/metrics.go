package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

// Metrics holds the collectors of the server in a private registry
type Metrics struct {
	registry *prometheus.Registry

	assessments *prometheus.CounterVec
	failures    *prometheus.CounterVec
	probability prometheus.Histogram

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: reg,
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diabetaku_assessments_total",
			Help: "Completed risk assessments",
		}, []string{"risk_level", "capability"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diabetaku_assessment_failures_total",
			Help: "Rejected or failed risk assessments by error kind",
		}, []string{"kind"}),
		probability: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "diabetaku_positive_probability",
			Help:    "Positive class probability of completed assessments",
			Buckets: []float64{0.25, 0.5, 0.75, 1},
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diabetaku_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "diabetaku_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	reg.MustRegister(m.assessments, m.failures, m.probability, m.requests, m.duration)
	return m
}

// Handler exposes the registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeOutcome(o *schema.Outcome) {
	m.assessments.WithLabelValues(string(o.Assessment.RiskLevel), string(o.Prediction.Capability)).Inc()
	m.probability.Observe(o.Prediction.PositiveProbability)
}

var failureKinds = []struct {
	err   error
	label string
}{
	{schema.ErrValidation, "validation"},
	{schema.ErrModel, "model"},
	{schema.ErrData, "data"},
	{schema.ErrLoad, "load"},
}

func (m *Metrics) observeFailure(err error) {
	kind := "other"
	for _, k := range failureKinds {
		if errors.Is(err, k.err) {
			kind = k.label
			break
		}
	}
	m.failures.WithLabelValues(kind).Inc()
}

func (m *Metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		start := time.Now()
		c.Next()

		m.requests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
