package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportsReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gctrack_reports_received_total",
		Help: "Total terminal check-ins received over HTTP",
	})
	ReportsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gctrack_reports_rejected_total",
		Help: "Reports rejected for unknown device or bad source IP",
	})
	ParseErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gctrack_parse_errors_total",
		Help: "Reports with an unparseable $GPRMC sentence",
	})
	EventsInserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gctrack_events_inserted_total",
		Help: "Location/status events persisted",
	})
	GeozoneEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gctrack_geozone_events_total",
		Help: "Synthetic geozone arrive/depart events persisted",
	})
	DecodeLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gctrack_decode_latency_seconds",
		Help:    "Latency of decoding one report",
		Buckets: prometheus.DefBuckets,
	})
)

func ObserveDecodeLatency(start time.Time) {
	DecodeLatency.Observe(time.Since(start).Seconds())
}
