package orchestrators

import (
	"context"
	"errors"
	"testing"

	"caseboard/internal/domain/activitylog"
	"caseboard/internal/domain/checkin"
	"caseboard/internal/domain/client"
)

func newCheckInDeps(clients *mockClientStore, checkins *mockCheckInStore, log *mockActivityLogStore) CheckInClientDeps {
	return CheckInClientDeps{
		ClientStore:      clients,
		CheckInStore:     checkins,
		ActivityLogStore: log,
		Now:              fixedNow,
		GenerateID:       newFixedID(),
	}
}

func TestExecuteCheckInClient_RecordsCheckIn(t *testing.T) {
	clients := newMockClientStore(client.Client{ID: "c-1", Name: "Juan Dela Cruz", Status: client.StatusActive})
	checkins := &mockCheckInStore{}
	log := &mockActivityLogStore{}

	input := CheckInClientInput{ClientID: "c-1", Mood: 4, Note: "good spirits", Actor: "staff-ana"}
	result, err := ExecuteCheckInClient(context.Background(), input, newCheckInDeps(clients, checkins, log))
	if err != nil {
		t.Fatalf("ExecuteCheckInClient() error = %v", err)
	}

	if result.CheckIn.Mood != 4 {
		t.Errorf("Mood = %d, want 4", result.CheckIn.Mood)
	}
	if result.CheckIn.Day() != "2026-08-24" {
		t.Errorf("Day() = %q, want 2026-08-24", result.CheckIn.Day())
	}
	if len(checkins.saved) != 1 {
		t.Fatalf("saved %d check-ins, want 1", len(checkins.saved))
	}
	if len(log.entries) != 1 || log.entries[0].Action != activitylog.ActionCheckInClient {
		t.Errorf("expected check_in_client log entry, got %+v", log.entries)
	}
}

func TestExecuteCheckInClient_OnePerDay(t *testing.T) {
	clients := newMockClientStore(client.Client{ID: "c-1", Name: "Juan Dela Cruz", Status: client.StatusActive})
	checkins := &mockCheckInStore{exists: true}

	input := CheckInClientInput{ClientID: "c-1", Mood: 3, Actor: "staff-ana"}
	_, err := ExecuteCheckInClient(context.Background(), input, newCheckInDeps(clients, checkins, &mockActivityLogStore{}))
	if !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Errorf("error = %v, want ErrAlreadyCheckedIn", err)
	}
	if len(checkins.saved) != 0 {
		t.Errorf("saved %d check-ins, want 0", len(checkins.saved))
	}
}

func TestExecuteCheckInClient_OnlyResidents(t *testing.T) {
	for _, status := range []string{client.StatusPending, client.StatusCompleted, client.StatusArchived} {
		clients := newMockClientStore(client.Client{ID: "c-1", Name: "Juan Dela Cruz", Status: status})
		input := CheckInClientInput{ClientID: "c-1", Mood: 3, Actor: "staff-ana"}
		_, err := ExecuteCheckInClient(context.Background(), input, newCheckInDeps(clients, &mockCheckInStore{}, &mockActivityLogStore{}))
		if !errors.Is(err, ErrNotInResidence) {
			t.Errorf("status %s: error = %v, want ErrNotInResidence", status, err)
		}
	}
}

func TestExecuteCheckInClient_MoodOutOfRange(t *testing.T) {
	clients := newMockClientStore(client.Client{ID: "c-1", Name: "Juan Dela Cruz", Status: client.StatusActive})
	for _, mood := range []int{0, 6, -1} {
		input := CheckInClientInput{ClientID: "c-1", Mood: mood, Actor: "staff-ana"}
		_, err := ExecuteCheckInClient(context.Background(), input, newCheckInDeps(clients, &mockCheckInStore{}, &mockActivityLogStore{}))
		if !errors.Is(err, checkin.ErrMoodOutOfRange) {
			t.Errorf("mood %d: error = %v, want ErrMoodOutOfRange", mood, err)
		}
	}
}

func TestExecuteCheckInClient_FlaggedResidentAllowed(t *testing.T) {
	clients := newMockClientStore(client.Client{
		ID: "c-1", Name: "Juan Dela Cruz", Status: client.StatusFlagged, FlagReason: "missed curfew",
	})
	input := CheckInClientInput{ClientID: "c-1", Mood: 2, Actor: "staff-ana"}
	if _, err := ExecuteCheckInClient(context.Background(), input, newCheckInDeps(clients, &mockCheckInStore{}, &mockActivityLogStore{})); err != nil {
		t.Errorf("flagged resident check-in error = %v, want nil", err)
	}
}
