package handler

import (
	"fmt"
	"net/http"

	"github.com/pawhaven/pawhaven/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "pawhaven_users_registered_total %d\n", snap.UsersRegistered)
	writeMetric(w, "pawhaven_logins_total{status=\"success\"} %d\n", snap.LoginsSucceeded)
	writeMetric(w, "pawhaven_logins_total{status=\"failed\"} %d\n", snap.LoginsFailed)
	writeMetric(w, "pawhaven_adoptions_created_total %d\n", snap.AdoptionsCreated)
	writeMetric(w, "pawhaven_adoptions_completed_total %d\n", snap.AdoptionsCompleted)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
