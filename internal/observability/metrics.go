package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "road_risk"

// Metrics - счётчики и гистограммы Prometheus для импорта, хранилища и геокодера
type Metrics struct {
	ImportRows     *prometheus.CounterVec // labels: outcome={accepted,rejected}
	ImportJobs     *prometheus.CounterVec // labels: status={done,failed}
	ImportDuration prometheus.Histogram

	StoreErrors *prometheus.CounterVec // labels: operation

	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,not_found,error}
	GeocodeCache    *prometheus.CounterVec // labels: result={hit,miss}

	PageLoadsSuperseded prometheus.Counter
}

// NewMetrics создает метрики и регистрирует их в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ImportRows,
		m.ImportJobs,
		m.ImportDuration,
		m.StoreErrors,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.PageLoadsSuperseded,
	)
	return m
}

// NewMetricsForTesting создает метрики без регистрации, чтобы тесты не падали
// с "duplicate metrics collector registration".
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ImportRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_rows_total",
			Help:      "Feed rows processed by the importer, by outcome.",
		}, []string{"outcome"}),
		ImportJobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_jobs_total",
			Help:      "Background import jobs by final status.",
		}, []string{"status"}),
		ImportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "import_duration_seconds",
			Help:      "Duration of a complete import job.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		StoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Storage failures degraded to empty results, by operation.",
		}, []string{"operation"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Geocoding requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_total",
			Help:      "Geocode cache lookups by result.",
		}, []string{"result"}),
		PageLoadsSuperseded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_loads_superseded_total",
			Help:      "Page loads discarded because a newer load for the same view was issued.",
		}),
	}
}
