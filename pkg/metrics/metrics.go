package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	APIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rms_api_requests_total",
			Help: "Requests issued to the remote REST API",
		},
		[]string{"entity", "op", "outcome"}, // outcome: ok|error
	)
	CacheMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rms_cache_mutations_total",
			Help: "Confirmed mutations applied to a cached collection",
		},
		[]string{"entity", "op"}, // op: create|update|delete
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rms_cache_size",
			Help: "Number of entities currently held by a cached collection",
		},
		[]string{"entity"},
	)
	Notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rms_subscriber_notifications_total",
			Help: "Subscriber callbacks invoked by cache fan-out",
		},
		[]string{"entity"},
	)
)

func MustRegister() {
	prometheus.MustRegister(APIRequests, CacheMutations, CacheSize, Notifications)
}
