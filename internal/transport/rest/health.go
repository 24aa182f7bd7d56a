package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"
)

// corpusReadiness reports whether the frequency store has loaded.
type corpusReadiness interface {
	Loaded() bool
}

// Pinger is a dependency health check, such as a database or Redis ping.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	corpus  corpusReadiness
	pingers map[string]Pinger
	version string
}

// NewHealthHandler creates a HealthHandler. pingers are optional named
// dependencies reported by /health.
func NewHealthHandler(corpus corpusReadiness, version string, pingers map[string]Pinger) *HealthHandler {
	return &HealthHandler{corpus: corpus, pingers: pingers, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 once the corpus has loaded, 503 before.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.corpus.Loaded() {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "loading",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. It reports the corpus and pings every
// dependency with latency measurement.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus, len(h.pingers)+1)
	overallStatus := "ok"

	if h.corpus.Loaded() {
		components["corpus"] = CompStatus{Status: "ok"}
	} else {
		components["corpus"] = CompStatus{Status: "loading"}
		overallStatus = "down"
	}

	names := make([]string, 0, len(h.pingers))
	for name := range h.pingers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		start := time.Now()
		err := h.pingers[name].Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components[name] = CompStatus{Status: "down"}
			overallStatus = "down"
			continue
		}
		components[name] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
