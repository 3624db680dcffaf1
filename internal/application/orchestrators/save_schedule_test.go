package orchestrators

import (
	"context"
	"errors"
	"testing"

	"caseboard/internal/domain/activitylog"
	grid "caseboard/internal/domain/schedulegrid"
)

func TestExecuteSaveSchedule_AppliesValidRecords(t *testing.T) {
	schedule := &mockScheduleStore{}
	log := &mockActivityLogStore{}
	deps := SaveScheduleDeps{
		ScheduleStore:    schedule,
		ActivityLogStore: log,
		Now:              fixedNow,
		GenerateID:       newFixedID(),
	}

	input := SaveScheduleInput{
		Records: []grid.Record{
			{TimeLabel: "8:00AM-8:15AM", DayLabel: "MONDAY", Text: "GROUP THERAPY", ColumnIndex: 1, SpanWidth: 1},
			{TimeLabel: "8:00AM-8:15AM", DayLabel: "TUESDAY", Text: "GARDENING", ColumnIndex: 2, SpanWidth: 1},
		},
		Actor: "staff-ana",
	}

	result, err := ExecuteSaveSchedule(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("ExecuteSaveSchedule() error = %v", err)
	}
	if result.SavedCount != 2 {
		t.Errorf("SavedCount = %d, want 2", result.SavedCount)
	}
	if result.DroppedCount != 0 {
		t.Errorf("DroppedCount = %d, want 0", result.DroppedCount)
	}

	// The template's own seeded blocks are exported alongside the new records.
	found := 0
	for _, rec := range schedule.records {
		if rec.Text == "GROUP THERAPY" || rec.Text == "GARDENING" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("stored records contain %d of the new activities, want 2", found)
	}

	if len(log.entries) != 1 || log.entries[0].Action != activitylog.ActionSaveSchedule {
		t.Errorf("expected one save_schedule log entry, got %+v", log.entries)
	}
}

func TestExecuteSaveSchedule_DropsUnknownLabels(t *testing.T) {
	schedule := &mockScheduleStore{}
	deps := SaveScheduleDeps{
		ScheduleStore:    schedule,
		ActivityLogStore: &mockActivityLogStore{},
		Now:              fixedNow,
		GenerateID:       newFixedID(),
	}

	input := SaveScheduleInput{
		Records: []grid.Record{
			{TimeLabel: "8:00AM-8:15AM", DayLabel: "MONDAY", Text: "GROUP THERAPY", ColumnIndex: 1, SpanWidth: 1},
			{TimeLabel: "3:00AM-3:15AM", DayLabel: "MONDAY", Text: "GHOST SLOT", ColumnIndex: 1, SpanWidth: 1},
		},
		Actor: "staff-ana",
	}

	result, err := ExecuteSaveSchedule(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("ExecuteSaveSchedule() error = %v", err)
	}
	if result.SavedCount != 1 {
		t.Errorf("SavedCount = %d, want 1", result.SavedCount)
	}
	if result.DroppedCount != 1 {
		t.Errorf("DroppedCount = %d, want 1", result.DroppedCount)
	}
	if len(result.Dropped) != 1 || result.Dropped[0].Text != "GHOST SLOT" {
		t.Errorf("Dropped = %+v, want the ghost slot record", result.Dropped)
	}
}

func TestExecuteSaveSchedule_EmptyInput(t *testing.T) {
	deps := SaveScheduleDeps{
		ScheduleStore:    &mockScheduleStore{},
		ActivityLogStore: &mockActivityLogStore{},
		Now:              fixedNow,
		GenerateID:       newFixedID(),
	}

	_, err := ExecuteSaveSchedule(context.Background(), SaveScheduleInput{Actor: "staff-ana"}, deps)
	if !errors.Is(err, ErrNoActivities) {
		t.Errorf("error = %v, want ErrNoActivities", err)
	}
}

func TestExecuteSaveSchedule_StoreFailure(t *testing.T) {
	boom := errors.New("disk full")
	deps := SaveScheduleDeps{
		ScheduleStore:    &mockScheduleStore{replaceErr: boom},
		ActivityLogStore: &mockActivityLogStore{},
		Now:              fixedNow,
		GenerateID:       newFixedID(),
	}

	input := SaveScheduleInput{
		Records: []grid.Record{
			{TimeLabel: "8:00AM-8:15AM", DayLabel: "MONDAY", Text: "GROUP THERAPY", ColumnIndex: 1, SpanWidth: 1},
		},
		Actor: "staff-ana",
	}
	if _, err := ExecuteSaveSchedule(context.Background(), input, deps); !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped store failure", err)
	}
}
