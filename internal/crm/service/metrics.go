package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricPrefix = "crm"

// Metrics 分析计算指标
type Metrics struct {
	computations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	reloads      *prometheus.CounterVec
	datasetRows  *prometheus.GaugeVec
}

// NewMetrics registers the service metrics on reg. A nil reg uses a private
// registry, which keeps tests from colliding on the default one.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)
	return &Metrics{
		computations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: metricPrefix + "_analytics_requests_total",
			Help: "Analytics lookups by kind and cache outcome",
		}, []string{"kind", "cache"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricPrefix + "_analytics_compute_duration_seconds",
			Help:    "Time spent computing analytics on a cache miss",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: metricPrefix + "_dataset_reloads_total",
			Help: "Dataset reload attempts by result",
		}, []string{"result"}),
		datasetRows: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: metricPrefix + "_dataset_rows",
			Help: "Rows per collection in the active dataset",
		}, []string{"collection"}),
	}
}

func (m *Metrics) recordLookup(kind, outcome string) {
	m.computations.WithLabelValues(kind, outcome).Inc()
}

// trackCompute returns a function that records the duration of one computation.
func (m *Metrics) trackCompute(kind string) func() {
	start := time.Now()
	return func() {
		m.duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) recordReload(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.reloads.WithLabelValues(result).Inc()
}

func (m *Metrics) setRows(collection string, n int) {
	m.datasetRows.WithLabelValues(collection).Set(float64(n))
}
