package web

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"caseboard/internal/application/orchestrators"
	noteDomain "caseboard/internal/domain/note"
)

// noteView is a stored note plus its rendered HTML body.
type noteView struct {
	ID        string `json:"id"`
	ClientID  string `json:"clientId"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	BodyHTML  string `json:"bodyHtml"`
	CreatedAt string `json:"createdAt"`
}

// renderNoteBody converts markdown to HTML; on renderer failure the raw
// text is returned escaped rather than dropped.
func renderNoteBody(body string) string {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(body), &buf); err != nil {
		return body
	}
	return buf.String()
}

// handleNotes records a new progress note.
func handleNotes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ClientID string `json:"clientId"`
		Body     string `json:"body"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := orchestrators.ExecuteAddProgressNote(r.Context(), orchestrators.AddProgressNoteInput{
		ClientID:  req.ClientID,
		Body:      req.Body,
		Actor:     actorName(r),
		IPAddress: clientIP(r),
	}, orchestrators.AddProgressNoteDeps{
		ClientStore:      stores.ClientStore,
		NoteStore:        stores.NoteStore,
		ActivityLogStore: stores.ActivityLogStore,
		Now:              timeNow,
		GenerateID:       generateID,
	})
	if err != nil {
		switch {
		case errors.Is(err, noteDomain.ErrEmptyBody),
			errors.Is(err, noteDomain.ErrBodyTooLong),
			errors.Is(err, noteDomain.ErrEmptyClientID):
			errorJSON(w, http.StatusBadRequest, err.Error())
		case strings.Contains(err.Error(), "load client"):
			errorJSON(w, http.StatusNotFound, "client not found")
		default:
			internalError(w, err)
		}
		return
	}

	n := result.Note
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "note": noteView{
		ID:        n.ID,
		ClientID:  n.ClientID,
		Author:    n.Author,
		Body:      n.Body,
		BodyHTML:  renderNoteBody(n.Body),
		CreatedAt: n.CreatedAt.Format("2006-01-02 15:04"),
	}})
}

// getClientNotes lists a client's notes, newest first, with rendered HTML.
func getClientNotes(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	notes, err := stores.NoteStore.ListByClientID(r.Context(), id)
	if err != nil {
		internalError(w, err)
		return
	}

	views := make([]noteView, 0, len(notes))
	for _, n := range notes {
		views = append(views, noteView{
			ID:        n.ID,
			ClientID:  n.ClientID,
			Author:    n.Author,
			Body:      n.Body,
			BodyHTML:  renderNoteBody(n.Body),
			CreatedAt: n.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "notes": views})
}
