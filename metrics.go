package patternroute

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// connectionsTotal counts finished connection searches by final state
	connectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "patternroute_connections_total",
		Help: "Connection searches by final state",
	}, []string{"state"})

	// searchIterations tracks how many nodes a search popped
	searchIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "patternroute_search_iterations",
		Help:    "Nodes popped per connection search",
		Buckets: prometheus.ExponentialBuckets(1, 2, 11), // 1 to 1024
	})

	// searchNodes tracks the size of the node arena at the end of a search
	searchNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "patternroute_search_nodes",
		Help:    "Nodes created per connection search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "patternroute_search_duration_seconds",
		Help:    "Connection search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	})
)

func observeResult(res Result) {
	connectionsTotal.WithLabelValues(res.State.String()).Inc()
	searchIterations.Observe(float64(res.Iterations))
	searchNodes.Observe(float64(len(res.Nodes)))
	searchDuration.Observe(res.Duration.Seconds())
}
