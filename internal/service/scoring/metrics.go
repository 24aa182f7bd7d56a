package scoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindText = "text"
	kindWord = "word"
)

var (
	// scoreRequests counts scoring calls by kind and outcome.
	scoreRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "golf_score_requests_total",
		Help: "Total scoring requests by kind and result",
	}, []string{"kind", "result"})

	// scoredTokens counts priced tokens by lookup status.
	scoredTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "golf_scored_tokens_total",
		Help: "Total scored tokens by status",
	}, []string{"status"})

	// scoreDuration tracks scoring latency.
	scoreDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "golf_score_duration_seconds",
		Help:    "Scoring duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"kind"})
)

func observeResult(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	scoreRequests.WithLabelValues(kind, result).Inc()
}
