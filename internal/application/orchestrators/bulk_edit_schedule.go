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

// BulkEditScheduleInput is a request to write one activity text into a
// rectangular selection of the week grid.
type BulkEditScheduleInput struct {
	StartLabel string
	EndLabel   string
	Days       []string
	Text       string
	Actor      string
	IPAddress  string
}

// BulkEditScheduleDeps declares the collaborators needed for a bulk edit.
type BulkEditScheduleDeps struct {
	ScheduleStore    scheduleStore.Store
	ActivityLogStore activitylogStore.Store
	Now              func() time.Time
	GenerateID       func() string
}

// BulkEditScheduleResult reports how many cells were written and any
// per-day warnings (unknown day labels are skipped, not fatal).
type BulkEditScheduleResult struct {
	UpdatedCount int
	Warnings     []string
}

// ExecuteBulkEditSchedule loads the stored schedule, applies the edit to
// the in-memory grid, and persists the full result transactionally.
// PRE: input.Actor is non-empty
// POST: on success the stored overrides reflect the edited grid
func ExecuteBulkEditSchedule(ctx context.Context, input BulkEditScheduleInput, deps BulkEditScheduleDeps) (BulkEditScheduleResult, error) {
	g, err := grid.BuildHouseWeekGrid()
	if err != nil {
		return BulkEditScheduleResult{}, fmt.Errorf("build week grid: %w", err)
	}

	stored, err := deps.ScheduleStore.ListRecords(ctx)
	if err != nil {
		return BulkEditScheduleResult{}, fmt.Errorf("load schedule: %w", err)
	}
	grid.Import(g, stored)

	session := grid.EditSession{Active: true, Actor: input.Actor}
	sel := grid.Selection{
		StartLabel: input.StartLabel,
		EndLabel:   input.EndLabel,
		Days:       input.Days,
	}
	edit, err := grid.Apply(g, session, sel, input.Text)
	if err != nil {
		return BulkEditScheduleResult{}, err
	}

	// An unresolved time-slot bound means no cell was touched; surface it
	// as the call's failure. Unknown days are skipped rows, reported as
	// warnings alongside the applied edit.
	result := BulkEditScheduleResult{UpdatedCount: edit.UpdatedCount}
	for _, e := range edit.Errs {
		if errors.Is(e, grid.ErrUnknownTimeSlot) {
			return BulkEditScheduleResult{}, e
		}
		result.Warnings = append(result.Warnings, e.Error())
	}

	if err := deps.ScheduleStore.ReplaceAll(ctx, grid.Export(g)); err != nil {
		return BulkEditScheduleResult{}, fmt.Errorf("replace schedule: %w", err)
	}

	entry := activitylog.Entry{
		ID:         deps.GenerateID(),
		Actor:      input.Actor,
		Action:     activitylog.ActionBulkEditSchedule,
		Details:    fmt.Sprintf("set %q on %s-%s across %d days (%d cells)", input.Text, input.StartLabel, input.EndLabel, len(input.Days), edit.UpdatedCount),
		IPAddress:  input.IPAddress,
		OccurredAt: deps.Now(),
	}
	if err := deps.ActivityLogStore.Save(ctx, entry); err != nil {
		slog.Error("activity_log_save_failed", "error", err, "action", entry.Action)
	}

	slog.Info("schedule_bulk_edited", "actor", input.Actor, "updated", edit.UpdatedCount, "warnings", len(result.Warnings))
	return result, nil
}
