package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	EstimatesProcessed *prometheus.CounterVec
	IrradianceResolved *prometheus.CounterVec
	ResolveSeconds     *prometheus.HistogramVec
	SaveFailures       prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		EstimatesProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "helios_estimates_processed_total",
			Help: "Total number of processed solar estimation requests.",
		}, []string{"status"}),
		IrradianceResolved: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "helios_irradiance_resolved_total",
			Help: "Total number of irradiance resolutions by data source.",
		}, []string{"source"}),
		ResolveSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "helios_irradiance_resolve_duration_seconds",
			Help:    "Duration of irradiance resolution, including remote attempts.",
			Buckets: prometheus.DefBuckets,
		}, []string{"source"}),
		SaveFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "helios_estimate_save_failures_total",
			Help: "Total number of estimate summaries that failed to persist.",
		}),
	}
}
