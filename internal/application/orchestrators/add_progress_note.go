package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	activitylogStore "caseboard/internal/adapters/storage/activitylog"
	clientStore "caseboard/internal/adapters/storage/client"
	noteStore "caseboard/internal/adapters/storage/note"
	"caseboard/internal/domain/activitylog"
	"caseboard/internal/domain/note"
)

// AddProgressNoteInput records a markdown progress note against a client.
type AddProgressNoteInput struct {
	ClientID  string
	Body      string
	Actor     string
	IPAddress string
}

// AddProgressNoteDeps declares the collaborators needed to add a note.
type AddProgressNoteDeps struct {
	ClientStore      clientStore.Store
	NoteStore        noteStore.Store
	ActivityLogStore activitylogStore.Store
	Now              func() time.Time
	GenerateID       func() string
}

// AddProgressNoteResult carries the stored note.
type AddProgressNoteResult struct {
	Note note.Note
}

// ExecuteAddProgressNote validates and stores a progress note. The body is
// stored as raw markdown; rendering happens at read time.
// PRE: input.ClientID names an existing client
// POST: note persisted; action logged
func ExecuteAddProgressNote(ctx context.Context, input AddProgressNoteInput, deps AddProgressNoteDeps) (AddProgressNoteResult, error) {
	cl, err := deps.ClientStore.GetByID(ctx, input.ClientID)
	if err != nil {
		return AddProgressNoteResult{}, fmt.Errorf("load client: %w", err)
	}

	n := note.Note{
		ID:        deps.GenerateID(),
		ClientID:  input.ClientID,
		Author:    input.Actor,
		Body:      input.Body,
		CreatedAt: deps.Now(),
	}
	if err := n.Validate(); err != nil {
		return AddProgressNoteResult{}, err
	}

	if err := deps.NoteStore.Save(ctx, n); err != nil {
		return AddProgressNoteResult{}, fmt.Errorf("save note: %w", err)
	}

	entry := activitylog.Entry{
		ID:         deps.GenerateID(),
		Actor:      input.Actor,
		Action:     activitylog.ActionAddProgressNote,
		Details:    fmt.Sprintf("added progress note for %s", cl.Name),
		Target:     cl.ID,
		IPAddress:  input.IPAddress,
		OccurredAt: deps.Now(),
	}
	if err := deps.ActivityLogStore.Save(ctx, entry); err != nil {
		slog.Error("activity_log_save_failed", "error", err, "action", entry.Action)
	}

	slog.Info("progress_note_added", "client_id", cl.ID, "actor", input.Actor)
	return AddProgressNoteResult{Note: n}, nil
}
