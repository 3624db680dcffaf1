package web

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	activityLogStore "caseboard/internal/adapters/storage/activitylog"
	"caseboard/internal/application/listutil"
)

// parseLogFilter builds a store filter from the shared query parameters.
func parseLogFilter(r *http.Request) activityLogStore.Filter {
	q := r.URL.Query()
	return activityLogStore.Filter{
		Actor:  q.Get("actor"),
		Action: q.Get("action"),
		Day:    q.Get("day"),
	}
}

// handleActivityLog lists the staff audit trail, paginated, newest first.
func handleActivityLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := parseLogFilter(r)
	page := listutil.ParsePageParams(r.URL.Query())

	total, err := stores.ActivityLogStore.Count(r.Context(), filter)
	if err != nil {
		internalError(w, err)
		return
	}
	info := listutil.NewPageInfo(page.Page, page.PerPage, total)

	filter.Limit = info.PerPage
	filter.Offset = info.Offset()
	entries, err := stores.ActivityLogStore.List(r.Context(), filter)
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"entries":  entries,
		"pageInfo": info,
	})
}

// handleActivityLogExport streams the filtered audit trail as CSV.
func handleActivityLogExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entries, err := stores.ActivityLogStore.List(r.Context(), parseLogFilter(r))
	if err != nil {
		internalError(w, err)
		return
	}

	filename := fmt.Sprintf("activity-log-%s.csv", timeNow().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"occurred_at", "actor", "action", "details", "target", "ip_address"})
	for _, e := range entries {
		_ = cw.Write([]string{
			e.OccurredAt.Format(time.RFC3339),
			e.Actor,
			e.Action,
			e.Details,
			e.Target,
			e.IPAddress,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		// Headers are already sent; nothing more can reach the client.
		slog.Error("csv_export_failed", "error", err.Error())
	}
}
