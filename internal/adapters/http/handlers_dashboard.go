package web

import (
	"net/http"

	"caseboard/internal/application/projections"
)

// handleDashboard serves the landing-page aggregate view.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view, err := projections.GetDashboard(r.Context(), projections.GetDashboardDeps{
		ClientStore:       stores.ClientStore,
		CheckInStore:      stores.CheckInStore,
		InterventionStore: stores.InterventionStore,
		ScheduleStore:     stores.ScheduleStore,
		Now:               timeNow,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "dashboard": view})
}
