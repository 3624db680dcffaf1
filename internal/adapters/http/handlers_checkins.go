package web

import (
	"errors"
	"net/http"
	"strings"

	"caseboard/internal/application/orchestrators"
	checkinDomain "caseboard/internal/domain/checkin"
)

// handleCheckIns records a daily check-in (POST) or lists a day's
// check-ins (GET ?day=YYYY-MM-DD, defaulting to today).
func handleCheckIns(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		day := r.URL.Query().Get("day")
		if day == "" {
			day = timeNow().Format("2006-01-02")
		}
		checkins, err := stores.CheckInStore.ListByDay(r.Context(), day)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "day": day, "checkIns": checkins})

	case http.MethodPost:
		var req struct {
			ClientID string `json:"clientId"`
			Mood     int    `json:"mood"`
			Note     string `json:"note"`
		}
		if err := strictDecode(r, &req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := orchestrators.ExecuteCheckInClient(r.Context(), orchestrators.CheckInClientInput{
			ClientID:  req.ClientID,
			Mood:      req.Mood,
			Note:      req.Note,
			Actor:     actorName(r),
			IPAddress: clientIP(r),
		}, orchestrators.CheckInClientDeps{
			ClientStore:      stores.ClientStore,
			CheckInStore:     stores.CheckInStore,
			ActivityLogStore: stores.ActivityLogStore,
			Now:              timeNow,
			GenerateID:       generateID,
		})
		if err != nil {
			switch {
			case errors.Is(err, orchestrators.ErrAlreadyCheckedIn):
				errorJSON(w, http.StatusConflict, err.Error())
			case errors.Is(err, orchestrators.ErrNotInResidence),
				errors.Is(err, checkinDomain.ErrMoodOutOfRange),
				errors.Is(err, checkinDomain.ErrEmptyClientID):
				errorJSON(w, http.StatusBadRequest, err.Error())
			case strings.Contains(err.Error(), "load client"):
				errorJSON(w, http.StatusNotFound, "client not found")
			default:
				internalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "checkIn": result.CheckIn})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
