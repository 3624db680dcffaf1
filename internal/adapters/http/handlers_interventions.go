package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"caseboard/internal/application/orchestrators"
	interventionDomain "caseboard/internal/domain/intervention"
)

// handleInterventions books a new session (POST) or lists sessions by
// status (GET ?status=scheduled).
func handleInterventions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		status := r.URL.Query().Get("status")
		if status == "" {
			status = interventionDomain.StatusScheduled
		}
		interventions, err := stores.InterventionStore.ListByStatus(r.Context(), status)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "interventions": interventions})

	case http.MethodPost:
		var req struct {
			ClientID     string    `json:"clientId"`
			Kind         string    `json:"kind"`
			ScheduledFor time.Time `json:"scheduledFor"`
			Notes        string    `json:"notes"`
			NotifyEmail  string    `json:"notifyEmail"`
		}
		if err := strictDecode(r, &req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := orchestrators.ExecuteScheduleIntervention(r.Context(), orchestrators.ScheduleInterventionInput{
			ClientID:     req.ClientID,
			Kind:         req.Kind,
			ScheduledFor: req.ScheduledFor,
			Notes:        req.Notes,
			NotifyEmail:  req.NotifyEmail,
			Actor:        actorName(r),
			IPAddress:    clientIP(r),
		}, orchestrators.ScheduleInterventionDeps{
			ClientStore:       stores.ClientStore,
			InterventionStore: stores.InterventionStore,
			ActivityLogStore:  stores.ActivityLogStore,
			EmailSender:       emailSender,
			Now:               timeNow,
			GenerateID:        generateID,
		})
		if err != nil {
			switch {
			case errors.Is(err, interventionDomain.ErrInvalidKind),
				errors.Is(err, interventionDomain.ErrZeroSchedule),
				errors.Is(err, interventionDomain.ErrEmptyClientID):
				errorJSON(w, http.StatusBadRequest, err.Error())
			case strings.Contains(err.Error(), "load client"):
				errorJSON(w, http.StatusNotFound, "client not found")
			default:
				internalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"success":      true,
			"intervention": result.Intervention,
			"emailSent":    result.EmailSent,
		})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleInterventionSubresource routes /api/interventions/{id}/complete
// and /api/interventions/{id}/cancel.
func handleInterventionSubresource(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/interventions/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" || (action != "complete" && action != "cancel") {
		http.NotFound(w, r)
		return
	}

	iv, err := stores.InterventionStore.GetByID(r.Context(), id)
	if err != nil {
		errorJSON(w, http.StatusNotFound, "intervention not found")
		return
	}

	if action == "complete" {
		err = iv.Complete()
	} else {
		err = iv.Cancel()
	}
	if err != nil {
		errorJSON(w, http.StatusConflict, err.Error())
		return
	}

	if err := stores.InterventionStore.Save(r.Context(), iv); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "intervention": iv})
}
