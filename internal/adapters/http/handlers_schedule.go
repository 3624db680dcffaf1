package web

import (
	"errors"
	"net/http"

	"caseboard/internal/application/orchestrators"
	grid "caseboard/internal/domain/schedulegrid"
)

// scheduleActivityView is one grid record plus its classifier tag.
type scheduleActivityView struct {
	grid.Record
	Category string `json:"category"`
}

// handleScheduleActivities serves the week grid as a flat activity list
// (GET) and replaces it wholesale (POST). GET supports ?type= category
// filtering and ?q= free-text search over activity text.
func handleScheduleActivities(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		getScheduleActivities(w, r)
	case http.MethodPost:
		postScheduleActivities(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func getScheduleActivities(w http.ResponseWriter, r *http.Request) {
	g, err := grid.BuildHouseWeekGrid()
	if err != nil {
		internalError(w, err)
		return
	}
	records, err := stores.ScheduleStore.ListRecords(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	grid.Import(g, records)

	typeFilter := r.URL.Query().Get("type")
	if typeFilter == "" {
		typeFilter = grid.CategoryAll
	}
	query := r.URL.Query().Get("q")

	activities := make([]scheduleActivityView, 0)
	for _, rec := range grid.Export(g) {
		if !grid.MatchesTypeFilter(rec.Text, typeFilter) || !grid.MatchesSearch(rec.Text, query) {
			continue
		}
		activities = append(activities, scheduleActivityView{
			Record:   rec,
			Category: string(grid.Classify(rec.Text)),
		})
	}

	timeLabels := make([]string, 0, g.NumRows())
	for _, slot := range g.Slots() {
		timeLabels = append(timeLabels, slot.Label)
	}
	dayLabels := make([]string, 0, g.NumDays())
	for _, day := range g.Days() {
		dayLabels = append(dayLabels, day.Label)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"timeLabels": timeLabels,
		"dayLabels":  dayLabels,
		"activities": activities,
	})
}

func postScheduleActivities(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Activities []grid.Record `json:"activities"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := orchestrators.ExecuteSaveSchedule(r.Context(), orchestrators.SaveScheduleInput{
		Records:   req.Activities,
		Actor:     actorName(r),
		IPAddress: clientIP(r),
	}, orchestrators.SaveScheduleDeps{
		ScheduleStore:    stores.ScheduleStore,
		ActivityLogStore: stores.ActivityLogStore,
		Now:              timeNow,
		GenerateID:       generateID,
	})
	if err != nil {
		if errors.Is(err, orchestrators.ErrNoActivities) {
			errorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"savedCount":   result.SavedCount,
		"droppedCount": result.DroppedCount,
	})
}

// handleScheduleBulkEdit writes one activity into a time range across the
// selected days.
func handleScheduleBulkEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		StartLabel string   `json:"startLabel"`
		EndLabel   string   `json:"endLabel"`
		Days       []string `json:"days"`
		Text       string   `json:"text"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := orchestrators.ExecuteBulkEditSchedule(r.Context(), orchestrators.BulkEditScheduleInput{
		StartLabel: req.StartLabel,
		EndLabel:   req.EndLabel,
		Days:       req.Days,
		Text:       req.Text,
		Actor:      actorName(r),
		IPAddress:  clientIP(r),
	}, orchestrators.BulkEditScheduleDeps{
		ScheduleStore:    stores.ScheduleStore,
		ActivityLogStore: stores.ActivityLogStore,
		Now:              timeNow,
		GenerateID:       generateID,
	})
	if err != nil {
		if errors.Is(err, grid.ErrUnknownTimeSlot) || errors.Is(err, grid.ErrEditSessionClosed) {
			errorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		internalError(w, err)
		return
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"updatedCount": result.UpdatedCount,
		"warnings":     warnings,
	})
}

// handleScheduleCurrent reports the schedule row happening right now.
func handleScheduleCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	g, err := grid.BuildHouseWeekGrid()
	if err != nil {
		internalError(w, err)
		return
	}
	records, err := stores.ScheduleStore.ListRecords(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	grid.Import(g, records)

	now := timeNow()
	nowMinutes := now.Hour()*60 + now.Minute()
	row, found := grid.LocateCurrentRow(nowMinutes, g)
	if !found {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "found": false})
		return
	}

	activities := make([]map[string]any, 0, g.NumDays())
	for _, day := range g.Days() {
		cell, err := g.GetCell(row, day.Index)
		if err != nil || cell.IsPlaceholder {
			continue
		}
		leader, err := g.GetCell(row, cell.LeaderCol)
		if err != nil || leader.Text == "" {
			continue
		}
		activities = append(activities, map[string]any{
			"day":      day.Label,
			"text":     leader.Text,
			"category": string(grid.Classify(leader.Text)),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"found":      true,
		"rowIndex":   row,
		"timeLabel":  g.Slots()[row].Label,
		"activities": activities,
	})
}
