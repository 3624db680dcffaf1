package schedulegrid_test

import (
	"errors"
	"testing"

	"caseboard/internal/domain/schedulegrid"
)

var activeSession = schedulegrid.EditSession{Active: true, Actor: "staff-1"}

// TestApply_SingleCell tests a one-row one-day selection hitting a plain
// leader cell.
func TestApply_SingleCell(t *testing.T) {
	g := newTestGrid(t)

	result, err := schedulegrid.Apply(g, activeSession, schedulegrid.Selection{
		StartLabel: "5:00AM-5:15AM",
		EndLabel:   "5:00AM-5:15AM",
		Days:       []string{"MONDAY"},
	}, "WAKE UP")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if result.UpdatedCount != 1 || len(result.Errs) != 0 {
		t.Errorf("Apply() = %+v, want 1 update and no errors", result)
	}

	cell, _ := g.GetCell(0, 0)
	if cell.Text != "WAKE UP" {
		t.Errorf("cell text = %q, want WAKE UP", cell.Text)
	}
}

// TestApply_ReversedBounds tests that start/end labels are accepted in either
// order.
func TestApply_ReversedBounds(t *testing.T) {
	g := newTestGrid(t)

	result, err := schedulegrid.Apply(g, activeSession, schedulegrid.Selection{
		StartLabel: "5:15AM-5:30AM",
		EndLabel:   "5:00AM-5:15AM",
		Days:       []string{"MONDAY"},
	}, "STRETCHING")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if result.UpdatedCount != 2 {
		t.Errorf("Apply() updated = %d, want 2", result.UpdatedCount)
	}
}

// TestApply_FollowerAddressesLeader tests that a selection landing on a
// follower writes the whole block through its leader.
func TestApply_FollowerAddressesLeader(t *testing.T) {
	g := newTestGrid(t)

	// THURSDAY is column 3, a follower of the span-3 block led from column 2.
	result, err := schedulegrid.Apply(g, activeSession, schedulegrid.Selection{
		StartLabel: "5:15AM-5:30AM",
		EndLabel:   "5:15AM-5:30AM",
		Days:       []string{"THURSDAY"},
	}, "FAMILY VISIT")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if result.UpdatedCount != 3 {
		t.Errorf("Apply() updated = %d, want the whole span-3 block", result.UpdatedCount)
	}
	leader, _ := g.GetCell(1, 2)
	if leader.Text != "FAMILY VISIT" {
		t.Errorf("leader text = %q, want FAMILY VISIT", leader.Text)
	}
}

// TestApply_PlaceholderSkippedSilently tests that placeholders count toward
// neither success nor error.
func TestApply_PlaceholderSkippedSilently(t *testing.T) {
	g := newTestGrid(t)

	result, err := schedulegrid.Apply(g, activeSession, schedulegrid.Selection{
		StartLabel: "5:30AM-5:45AM",
		EndLabel:   "5:30AM-5:45AM",
		Days:       []string{"MONDAY"},
	}, "X")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if result.UpdatedCount != 0 || len(result.Errs) != 0 {
		t.Errorf("Apply() = %+v, want zero-count success", result)
	}
}

// TestApply_UnknownTimeSlotAborts tests the all-or-nothing resolution stage.
func TestApply_UnknownTimeSlotAborts(t *testing.T) {
	g := newTestGrid(t)

	result, err := schedulegrid.Apply(g, activeSession, schedulegrid.Selection{
		StartLabel: "5:00AM-5:15AM",
		EndLabel:   "8:00AM-8:15AM",
		Days:       []string{"MONDAY"},
	}, "X")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if result.UpdatedCount != 0 {
		t.Errorf("Apply() updated = %d, want 0 (no cells touched)", result.UpdatedCount)
	}
	if len(result.Errs) != 1 || !errors.Is(result.Errs[0], schedulegrid.ErrUnknownTimeSlot) {
		t.Errorf("Apply() errs = %v, want one ErrUnknownTimeSlot", result.Errs)
	}

	cell, _ := g.GetCell(0, 0)
	if cell.Text != "" {
		t.Errorf("cell mutated despite aborted resolution: %+v", cell)
	}
}

// TestApply_UnknownDayContinues tests that a bad day is reported without
// aborting the remaining days.
func TestApply_UnknownDayContinues(t *testing.T) {
	g := newTestGrid(t)

	result, err := schedulegrid.Apply(g, activeSession, schedulegrid.Selection{
		StartLabel: "5:00AM-5:15AM",
		EndLabel:   "5:00AM-5:15AM",
		Days:       []string{"SUNDAY", "monday", "Tuesday"},
	}, "CHORES")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if result.UpdatedCount != 2 {
		t.Errorf("Apply() updated = %d, want 2 (bad day skipped)", result.UpdatedCount)
	}
	if len(result.Errs) != 1 || !errors.Is(result.Errs[0], schedulegrid.ErrUnknownDay) {
		t.Errorf("Apply() errs = %v, want one ErrUnknownDay", result.Errs)
	}
}

// TestApply_InactiveSession tests the explicit edit-mode gate.
func TestApply_InactiveSession(t *testing.T) {
	g := newTestGrid(t)

	_, err := schedulegrid.Apply(g, schedulegrid.EditSession{}, schedulegrid.Selection{
		StartLabel: "5:00AM-5:15AM",
		EndLabel:   "5:00AM-5:15AM",
		Days:       []string{"MONDAY"},
	}, "X")
	if !errors.Is(err, schedulegrid.ErrEditSessionClosed) {
		t.Errorf("Apply() error = %v, want ErrEditSessionClosed", err)
	}
}
