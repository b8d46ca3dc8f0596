package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// Catalog API metrics - using explicit registration
var (
	// HTTP request counters
	RequestsTotal *prometheus.CounterVec

	// HTTP request latency
	RequestDuration *prometheus.HistogramVec

	// Applied call charges in minor currency units
	ChargesTotal *prometheus.CounterVec

	// Upstream catalog fetch latency
	UpstreamFetchDuration prometheus.Histogram

	// Cache refresh outcomes (ok / error / stale_fallback)
	CacheRefreshesTotal *prometheus.CounterVec
)

func init() {
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "modelscout",
			Subsystem: "catalog",
			Name:      "requests_total",
			Help:      "Total number of catalog API requests",
		},
		[]string{"operation", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "modelscout",
			Subsystem: "catalog",
			Name:      "request_duration_seconds",
			Help:      "Catalog API request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	ChargesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "modelscout",
			Subsystem: "catalog",
			Name:      "charges_minor_units_total",
			Help:      "Total charges applied, in minor currency units",
		},
		[]string{"operation"},
	)

	UpstreamFetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "modelscout",
			Subsystem: "catalog",
			Name:      "upstream_fetch_duration_seconds",
			Help:      "Latency of upstream catalog fetches",
			Buckets:   prometheus.DefBuckets,
		},
	)

	CacheRefreshesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "modelscout",
			Subsystem: "catalog",
			Name:      "cache_refreshes_total",
			Help:      "Catalog cache refresh attempts by outcome",
		},
		[]string{"outcome"},
	)

	for _, collector := range []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		ChargesTotal,
		UpstreamFetchDuration,
		CacheRefreshesTotal,
	} {
		if err := prometheus.Register(collector); err != nil {
			log.Warn().Err(err).Msg("metric registration failed")
		}
	}
}
