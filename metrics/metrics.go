package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RideRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autodispatch_ride_requests_total",
			Help: "Total number of ride requests by outcome",
		},
		[]string{"outcome"},
	)
	RideRequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "autodispatch_ride_request_duration_seconds",
		Help:    "Time spent loading the snapshot and planning a ride",
		Buckets: prometheus.DefBuckets,
	})
	RideETA = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "autodispatch_ride_eta",
		Help:    "Estimated travel cost of successfully planned rides",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
	SnapshotNodes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "autodispatch_snapshot_nodes",
		Help: "Number of nodes in the most recently loaded map snapshot",
	})
)

func init() {
	prometheus.MustRegister(RideRequestsTotal)
	prometheus.MustRegister(RideRequestDuration)
	prometheus.MustRegister(RideETA)
	prometheus.MustRegister(SnapshotNodes)
}
