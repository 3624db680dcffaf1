package activitylog

import (
	"errors"
	"time"
)

// Action names recorded by the mutating paths. The set is open: callers may
// log actions outside this list, these are just the well-known ones.
const (
	ActionAdmitClient          = "admit_client"
	ActionApproveClient        = "approve_client"
	ActionRejectClient         = "reject_client"
	ActionFlagClient           = "flag_client"
	ActionUnflagClient         = "unflag_client"
	ActionArchiveClient        = "archive_client"
	ActionSendToAftercare      = "send_to_aftercare"
	ActionApproveAftercare     = "approve_aftercare"
	ActionRejectAftercare      = "reject_aftercare"
	ActionCompleteTreatment    = "complete_treatment"
	ActionCheckInClient        = "check_in_client"
	ActionScheduleIntervention = "schedule_intervention"
	ActionAddProgressNote      = "add_progress_note"
	ActionSaveSchedule         = "save_schedule"
	ActionBulkEditSchedule     = "bulk_edit_schedule"
)

// Domain errors
var (
	ErrEmptyActor  = errors.New("activity entry must name an actor")
	ErrEmptyAction = errors.New("activity entry must name an action")
	ErrZeroTime    = errors.New("activity entry must have a timestamp")
)

// Entry is one row of the staff activity log.
type Entry struct {
	ID         string
	Actor      string // staff member performing the action
	Action     string
	Details    string
	Target     string // affected client/schedule identifier, if any
	IPAddress  string
	OccurredAt time.Time
}

// Validate checks if the Entry has valid data.
// PRE: Entry struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (e *Entry) Validate() error {
	if e.Actor == "" {
		return ErrEmptyActor
	}
	if e.Action == "" {
		return ErrEmptyAction
	}
	if e.OccurredAt.IsZero() {
		return ErrZeroTime
	}
	return nil
}
