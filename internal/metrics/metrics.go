package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "research_connect_match_requests_total",
			Help: "Total number of recommendation searches by kind",
		},
		[]string{"kind"},
	)

	MatchResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "research_connect_match_results",
			Help:    "Number of ranked candidates returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
		[]string{"kind"},
	)

	MatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "research_connect_match_duration_seconds",
			Help: "Duration of recommendation searches in seconds",
		},
		[]string{"kind"},
	)

	CollaborationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "research_connect_collaboration_requests_total",
			Help: "Collaboration request actions by outcome",
		},
		[]string{"action", "outcome"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "research_connect_http_requests_total",
			Help: "HTTP API requests by route and status code",
		},
		[]string{"route", "code"},
	)
)
