package web

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON serialises v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write_json_failed", "error", err.Error())
	}
}

// errorJSON returns a {success: false, error: msg} body.
func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

// clientIP extracts the remote IP for audit logging.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// actorName reads the acting staff member from the X-Staff-Name header.
// The reverse proxy in front of the dashboard authenticates staff and
// stamps this header; an empty value falls back to "staff".
func actorName(r *http.Request) string {
	if name := r.Header.Get("X-Staff-Name"); name != "" {
		return name
	}
	return "staff"
}

// registerRoutes attaches all API handlers to the mux.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/perf", handlePerf)
	mux.HandleFunc("/api/dashboard", handleDashboard)

	mux.HandleFunc("/api/schedule/activities", handleScheduleActivities)
	mux.HandleFunc("/api/schedule/bulk-edit", handleScheduleBulkEdit)
	mux.HandleFunc("/api/schedule/current", handleScheduleCurrent)

	mux.HandleFunc("/api/clients", handleClients)
	mux.HandleFunc("/api/clients/", handleClientSubresource)
	mux.HandleFunc("/api/check-ins", handleCheckIns)
	mux.HandleFunc("/api/interventions", handleInterventions)
	mux.HandleFunc("/api/interventions/", handleInterventionSubresource)
	mux.HandleFunc("/api/notes", handleNotes)

	mux.HandleFunc("/api/activity-log", handleActivityLog)
	mux.HandleFunc("/api/activity-log/export", handleActivityLogExport)
	mux.HandleFunc("/api/reports/weekly", handleWeeklyReport)
	mux.HandleFunc("/api/reports/weekly.xlsx", handleWeeklyReportXLSX)
}

// handleHealth reports liveness.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": "ok"})
}

// handlePerf returns aggregated request/query timings for the ops view.
func handlePerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if perfCollector == nil {
		errorJSON(w, http.StatusServiceUnavailable, "perf collection disabled")
		return
	}
	snap := perfCollector.Snapshot(timeNow().Add(-15*time.Minute), 10)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "snapshot": snap})
}
