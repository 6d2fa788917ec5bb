package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PhotoReadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_photo_reads_total",
			Help: "Total number of photo reads by result",
		},
		[]string{"result"},
	)

	PhotoReadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inventory_photo_read_duration_seconds",
			Help:    "Photo read and encode duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_notifications_total",
			Help: "Total number of notifications shown to the user",
		},
		[]string{"kind"},
	)
)

// RegisterInventoryMetrics exposes the current product count as a gauge.
func RegisterInventoryMetrics(reg prometheus.Registerer, count func() int) error {
	return reg.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "inventory_products",
		Help: "Number of products currently in the inventory view",
	}, func() float64 {
		return float64(count())
	}))
}

// Handler serves /metrics for the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
