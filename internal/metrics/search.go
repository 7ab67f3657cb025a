package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storesearch",
			Name:      "searches_total",
			Help:      "Total number of product searches by branch",
		},
		[]string{"type"},
	)

	scoredCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storesearch",
			Name:      "scored_candidates",
			Help:      "Number of candidates scored per hybrid search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 150, 200},
		},
	)
)

func init() {
	prometheus.MustRegister(searchesTotal)
	prometheus.MustRegister(scoredCandidates)
}

// ObserveSearch records a completed search by branch type. For hybrid
// searches, total is the scored candidate count.
func ObserveSearch(searchType string, total int) {
	searchesTotal.WithLabelValues(searchType).Inc()
	if searchType == "hybrid" {
		scoredCandidates.Observe(float64(total))
	}
}
