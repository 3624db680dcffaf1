// Package orchestrators contains application use-cases that coordinate
// domain logic with storage and external side effects. Each orchestrator
// is a pure function over an explicit Deps struct so tests can inject
// fakes, fixed clocks, and deterministic IDs.
package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	activitylogStore "caseboard/internal/adapters/storage/activitylog"
	scheduleStore "caseboard/internal/adapters/storage/schedulegrid"
	"caseboard/internal/domain/activitylog"
	grid "caseboard/internal/domain/schedulegrid"
)

// ErrNoActivities is returned when a save request carries no records at all.
var ErrNoActivities = errors.New("no activities to save")

// SaveScheduleInput is the request to replace the stored week schedule.
type SaveScheduleInput struct {
	Records   []grid.Record
	Actor     string
	IPAddress string
}

// SaveScheduleDeps declares the collaborators needed to save a schedule.
type SaveScheduleDeps struct {
	ScheduleStore    scheduleStore.Store
	ActivityLogStore activitylogStore.Store
	Now              func() time.Time
	GenerateID       func() string
}

// SaveScheduleResult reports what was persisted.
type SaveScheduleResult struct {
	SavedCount   int
	DroppedCount int
	Dropped      []grid.Record
}

// ExecuteSaveSchedule validates incoming records against the house week
// template and replaces the stored overrides in one transaction. Records
// that reference unknown time slots or day columns are dropped, not fatal.
// PRE: input.Actor is non-empty
// POST: the override table holds exactly the applied records
func ExecuteSaveSchedule(ctx context.Context, input SaveScheduleInput, deps SaveScheduleDeps) (SaveScheduleResult, error) {
	if len(input.Records) == 0 {
		return SaveScheduleResult{}, ErrNoActivities
	}

	g, err := grid.BuildHouseWeekGrid()
	if err != nil {
		return SaveScheduleResult{}, fmt.Errorf("build week grid: %w", err)
	}

	imported := grid.Import(g, input.Records)
	applied := grid.Export(g)

	if err := deps.ScheduleStore.ReplaceAll(ctx, applied); err != nil {
		return SaveScheduleResult{}, fmt.Errorf("replace schedule: %w", err)
	}

	entry := activitylog.Entry{
		ID:         deps.GenerateID(),
		Actor:      input.Actor,
		Action:     activitylog.ActionSaveSchedule,
		Details:    fmt.Sprintf("saved %d activities (%d dropped)", imported.Applied, len(imported.Dropped)),
		IPAddress:  input.IPAddress,
		OccurredAt: deps.Now(),
	}
	if err := deps.ActivityLogStore.Save(ctx, entry); err != nil {
		// The schedule is already saved; a missing audit row is not worth a 500.
		slog.Error("activity_log_save_failed", "error", err, "action", entry.Action)
	}

	slog.Info("schedule_saved", "actor", input.Actor, "applied", imported.Applied, "dropped", len(imported.Dropped))
	return SaveScheduleResult{
		SavedCount:   imported.Applied,
		DroppedCount: len(imported.Dropped),
		Dropped:      imported.Dropped,
	}, nil
}
