package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers every endpoint on a fresh ServeMux.
func NewRouter(health *HealthHandler, score *ScoreHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/v1/score", score.Score)
	mux.HandleFunc("POST /api/v1/score-word", score.ScoreWord)
	mux.HandleFunc("GET /api/v1/proper-nouns", score.ListProperNouns)
	mux.HandleFunc("POST /api/v1/proper-nouns", score.RegisterProperNoun)
	mux.HandleFunc("DELETE /api/v1/proper-nouns/{word}", score.RemoveProperNoun)

	return mux
}
