package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "courtside"
)

var (
	PipelineStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "pipeline", "stage_duration_seconds"),
		Help:    "Duration of a single dashboard pipeline stage in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
	}, []string{"stage"})
	DashboardCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "dashboard", "cache_lookups_total"),
		Help: "Dashboard cache lookups by layer and result",
	}, []string{"layer", "result"})
	DatasetRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "dataset", "records"),
		Help: "Number of game records loaded from the dataset source",
	})
	DatasetLoadDuration = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "dataset", "load_duration_seconds"),
		Help: "Duration of the last dataset load in seconds",
	})
	ChartRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "chart", "render_duration_seconds"),
		Help:    "Duration of SVG chart rendering in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
	}, []string{"chart"})
	WorkerWarmDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "worker", "warm_duration_seconds"),
		Help: "Duration of the last cache warm batch in seconds",
	}, []string{"worker"})
)
