package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	activitylogStore "caseboard/internal/adapters/storage/activitylog"
	checkinStore "caseboard/internal/adapters/storage/checkin"
	clientStore "caseboard/internal/adapters/storage/client"
	"caseboard/internal/domain/activitylog"
	"caseboard/internal/domain/checkin"
)

// Check-in orchestration errors
var (
	ErrAlreadyCheckedIn = errors.New("client already checked in today")
	ErrNotInResidence   = errors.New("only residents can be checked in")
)

// CheckInClientInput records a daily mood check-in for a resident.
type CheckInClientInput struct {
	ClientID  string
	Mood      int
	Note      string
	Actor     string
	IPAddress string
}

// CheckInClientDeps declares the collaborators needed for a check-in.
type CheckInClientDeps struct {
	ClientStore      clientStore.Store
	CheckInStore     checkinStore.Store
	ActivityLogStore activitylogStore.Store
	Now              func() time.Time
	GenerateID       func() string
}

// CheckInClientResult carries the recorded check-in.
type CheckInClientResult struct {
	CheckIn checkin.CheckIn
}

// ExecuteCheckInClient validates and records a check-in, enforcing one
// check-in per client per calendar day.
// PRE: input.ClientID names an existing client
// POST: check-in persisted; action logged
func ExecuteCheckInClient(ctx context.Context, input CheckInClientInput, deps CheckInClientDeps) (CheckInClientResult, error) {
	cl, err := deps.ClientStore.GetByID(ctx, input.ClientID)
	if err != nil {
		return CheckInClientResult{}, fmt.Errorf("load client: %w", err)
	}
	if !cl.IsInResidence() {
		return CheckInClientResult{}, ErrNotInResidence
	}

	ci := checkin.CheckIn{
		ID:          deps.GenerateID(),
		ClientID:    input.ClientID,
		Mood:        input.Mood,
		Note:        input.Note,
		RecordedBy:  input.Actor,
		CheckedInAt: deps.Now(),
	}
	if err := ci.Validate(); err != nil {
		return CheckInClientResult{}, err
	}

	exists, err := deps.CheckInStore.ExistsForClientOnDay(ctx, input.ClientID, ci.Day())
	if err != nil {
		return CheckInClientResult{}, fmt.Errorf("check existing check-in: %w", err)
	}
	if exists {
		return CheckInClientResult{}, ErrAlreadyCheckedIn
	}

	if err := deps.CheckInStore.Save(ctx, ci); err != nil {
		return CheckInClientResult{}, fmt.Errorf("save check-in: %w", err)
	}

	entry := activitylog.Entry{
		ID:         deps.GenerateID(),
		Actor:      input.Actor,
		Action:     activitylog.ActionCheckInClient,
		Details:    fmt.Sprintf("checked in %s (mood %d)", cl.Name, input.Mood),
		Target:     cl.ID,
		IPAddress:  input.IPAddress,
		OccurredAt: deps.Now(),
	}
	if err := deps.ActivityLogStore.Save(ctx, entry); err != nil {
		slog.Error("activity_log_save_failed", "error", err, "action", entry.Action)
	}

	slog.Info("client_checked_in", "client_id", cl.ID, "mood", input.Mood, "actor", input.Actor)
	return CheckInClientResult{CheckIn: ci}, nil
}
