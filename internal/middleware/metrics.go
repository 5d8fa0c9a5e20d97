package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsBuilder builds a middleware observing request latency per route
type MetricsBuilder struct {
	Namespace string
	Subsystem string
	Name      string
	Help      string

	// Registry receives the collectors; a fresh one is created when nil
	Registry *prometheus.Registry
}

// Build registers the latency summary and returns the middleware
func (m *MetricsBuilder) Build() gin.HandlerFunc {
	if m.Registry == nil {
		m.Registry = prometheus.NewRegistry()
	}

	vector := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: m.Namespace,
		Subsystem: m.Subsystem,
		Name:      m.Name,
		Help:      m.Help,
		Objectives: map[float64]float64{
			0.5:   0.01,
			0.75:  0.01,
			0.90:  0.01,
			0.99:  0.001,
			0.999: 0.0001,
		},
	}, []string{"pattern", "method", "status"})

	m.Registry.MustRegister(vector)

	return func(c *gin.Context) {
		startTime := time.Now()
		defer func() {
			pattern := c.FullPath()
			if pattern == "" {
				pattern = "unknown"
			}
			vector.WithLabelValues(pattern, c.Request.Method,
				strconv.Itoa(c.Writer.Status())).Observe(float64(time.Since(startTime).Milliseconds()))
		}()
		c.Next()
	}
}

// Handler exposes the builder's registry in the Prometheus text format
func (m *MetricsBuilder) Handler() gin.HandlerFunc {
	if m.Registry == nil {
		m.Registry = prometheus.NewRegistry()
	}
	return gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}

// GaugeFunc registers a gauge whose value is read from fn at scrape time
func (m *MetricsBuilder) GaugeFunc(name, help string, fn func() float64) {
	if m.Registry == nil {
		m.Registry = prometheus.NewRegistry()
	}
	m.Registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: m.Namespace,
		Subsystem: m.Subsystem,
		Name:      name,
		Help:      help,
	}, fn))
}
