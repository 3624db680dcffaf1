package web

import (
	"errors"
	"net/http"
	"strings"

	"caseboard/internal/application/listutil"
	"caseboard/internal/application/orchestrators"
	"caseboard/internal/application/projections"
	clientDomain "caseboard/internal/domain/client"
)

// clientSortColumns are the roster columns the list view may sort by.
var clientSortColumns = []string{"name", "status", "admitted_at"}

// handleClients lists the roster (GET) and admits a new client (POST).
func handleClients(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		params := listutil.ParseListParams(r.URL.Query(), clientSortColumns, []string{"status"})
		view, err := projections.GetClientList(r.Context(), params, projections.GetClientListDeps{
			ClientStore: stores.ClientStore,
		})
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"clients":  view.Clients,
			"pageInfo": view.PageInfo,
		})

	case http.MethodPost:
		var req struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Phone    string `json:"phone"`
			Address  string `json:"address"`
			Guardian string `json:"guardian"`
		}
		if err := strictDecode(r, &req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := orchestrators.ExecuteAdmitClient(r.Context(), orchestrators.AdmitClientInput{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
			Guardian:  req.Guardian,
			Actor:     actorName(r),
			IPAddress: clientIP(r),
		}, orchestrators.AdmitClientDeps{
			ClientStore:      stores.ClientStore,
			ActivityLogStore: stores.ActivityLogStore,
			Now:              timeNow,
			GenerateID:       generateID,
		})
		if err != nil {
			if errors.Is(err, clientDomain.ErrEmptyName) || errors.Is(err, clientDomain.ErrNameTooLong) {
				errorJSON(w, http.StatusBadRequest, err.Error())
				return
			}
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "client": result.Client})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleClientSubresource routes /api/clients/{id} and its nested
// collections: /status, /check-ins, /interventions, /notes.
func handleClientSubresource(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/clients/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	switch sub {
	case "":
		getClient(w, r, id)
	case "status":
		postClientStatus(w, r, id)
	case "check-ins":
		getClientCheckIns(w, r, id)
	case "interventions":
		getClientInterventions(w, r, id)
	case "notes":
		getClientNotes(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func getClient(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	cl, err := stores.ClientStore.GetByID(r.Context(), id)
	if err != nil {
		errorJSON(w, http.StatusNotFound, "client not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "client": cl})
}

func postClientStatus(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := orchestrators.ExecuteTransitionClient(r.Context(), orchestrators.TransitionClientInput{
		ClientID:  id,
		ToStatus:  req.Status,
		Reason:    req.Reason,
		Actor:     actorName(r),
		IPAddress: clientIP(r),
	}, orchestrators.TransitionClientDeps{
		ClientStore:      stores.ClientStore,
		ActivityLogStore: stores.ActivityLogStore,
		Now:              timeNow,
		GenerateID:       generateID,
	})
	if err != nil {
		switch {
		case errors.Is(err, clientDomain.ErrInvalidStatus),
			errors.Is(err, clientDomain.ErrInvalidTransition),
			errors.Is(err, clientDomain.ErrEmptyFlagReason):
			errorJSON(w, http.StatusBadRequest, err.Error())
		case strings.Contains(err.Error(), "load client"):
			errorJSON(w, http.StatusNotFound, "client not found")
		default:
			internalError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "client": result.Client})
}

func getClientCheckIns(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	checkins, err := stores.CheckInStore.ListByClientID(r.Context(), id)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "checkIns": checkins})
}

func getClientInterventions(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	interventions, err := stores.InterventionStore.ListByClientID(r.Context(), id)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "interventions": interventions})
}
