package orchestrators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"caseboard/internal/domain/activitylog"
	"caseboard/internal/domain/client"
	"caseboard/internal/domain/note"
)

func TestExecuteAddProgressNote_StoresMarkdown(t *testing.T) {
	clients := newMockClientStore(client.Client{ID: "c-1", Name: "Juan Dela Cruz", Status: client.StatusActive})
	notes := &mockNoteStore{}
	log := &mockActivityLogStore{}
	deps := AddProgressNoteDeps{
		ClientStore:      clients,
		NoteStore:        notes,
		ActivityLogStore: log,
		Now:              fixedNow,
		GenerateID:       newFixedID(),
	}

	input := AddProgressNoteInput{
		ClientID: "c-1",
		Body:     "Attended **group therapy** and participated well.",
		Actor:    "staff-ana",
	}
	result, err := ExecuteAddProgressNote(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("ExecuteAddProgressNote() error = %v", err)
	}

	if result.Note.Author != "staff-ana" {
		t.Errorf("Author = %q, want staff-ana", result.Note.Author)
	}
	if len(notes.saved) != 1 || notes.saved[0].Body != input.Body {
		t.Errorf("saved notes = %+v, want raw markdown body", notes.saved)
	}
	if len(log.entries) != 1 || log.entries[0].Action != activitylog.ActionAddProgressNote {
		t.Errorf("expected add_progress_note log entry, got %+v", log.entries)
	}
}

func TestExecuteAddProgressNote_RejectsEmptyAndOversized(t *testing.T) {
	clients := newMockClientStore(client.Client{ID: "c-1", Name: "Juan Dela Cruz", Status: client.StatusActive})
	deps := AddProgressNoteDeps{
		ClientStore:      clients,
		NoteStore:        &mockNoteStore{},
		ActivityLogStore: &mockActivityLogStore{},
		Now:              fixedNow,
		GenerateID:       newFixedID(),
	}

	input := AddProgressNoteInput{ClientID: "c-1", Body: "   ", Actor: "staff-ana"}
	if _, err := ExecuteAddProgressNote(context.Background(), input, deps); !errors.Is(err, note.ErrEmptyBody) {
		t.Errorf("blank body: error = %v, want ErrEmptyBody", err)
	}

	input.Body = strings.Repeat("a", note.MaxBodyLength+1)
	if _, err := ExecuteAddProgressNote(context.Background(), input, deps); !errors.Is(err, note.ErrBodyTooLong) {
		t.Errorf("oversized body: error = %v, want ErrBodyTooLong", err)
	}
}

func TestExecuteAddProgressNote_UnknownClient(t *testing.T) {
	deps := AddProgressNoteDeps{
		ClientStore:      newMockClientStore(),
		NoteStore:        &mockNoteStore{},
		ActivityLogStore: &mockActivityLogStore{},
		Now:              fixedNow,
		GenerateID:       newFixedID(),
	}

	input := AddProgressNoteInput{ClientID: "missing", Body: "note", Actor: "staff-ana"}
	if _, err := ExecuteAddProgressNote(context.Background(), input, deps); err == nil {
		t.Error("expected error for unknown client, got nil")
	}
}
