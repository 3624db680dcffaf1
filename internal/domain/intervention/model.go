package intervention

import (
	"errors"
	"time"
)

// Intervention kinds
const (
	KindCounseling    = "counseling"
	KindMedical       = "medical"
	KindFamilySession = "family_session"
	KindDisciplinary  = "disciplinary"
)

// Intervention statuses
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidKinds contains all valid intervention kinds.
var ValidKinds = []string{KindCounseling, KindMedical, KindFamilySession, KindDisciplinary}

// ValidStatuses contains all valid intervention statuses.
var ValidStatuses = []string{StatusScheduled, StatusCompleted, StatusCancelled}

// Domain errors
var (
	ErrEmptyClientID = errors.New("intervention must be associated with a client")
	ErrInvalidKind   = errors.New("intervention kind must be one of: counseling, medical, family_session, disciplinary")
	ErrInvalidStatus = errors.New("intervention status must be one of: scheduled, completed, cancelled")
	ErrZeroSchedule  = errors.New("intervention must have a scheduled time")
	ErrNotScheduled  = errors.New("only scheduled interventions can change state")
)

// Intervention is a planned one-on-one session with a client.
type Intervention struct {
	ID           string
	ClientID     string
	Kind         string
	Status       string
	ScheduledFor time.Time
	Notes        string
	CreatedBy    string
	CreatedAt    time.Time
}

// Validate checks if the Intervention has valid data.
// PRE: Intervention struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (iv *Intervention) Validate() error {
	if iv.ClientID == "" {
		return ErrEmptyClientID
	}
	if !contains(ValidKinds, iv.Kind) {
		return ErrInvalidKind
	}
	if !contains(ValidStatuses, iv.Status) {
		return ErrInvalidStatus
	}
	if iv.ScheduledFor.IsZero() {
		return ErrZeroSchedule
	}
	return nil
}

// Complete marks a scheduled intervention as held.
// PRE: intervention is scheduled
// POST: Status is completed
func (iv *Intervention) Complete() error {
	if iv.Status != StatusScheduled {
		return ErrNotScheduled
	}
	iv.Status = StatusCompleted
	return nil
}

// Cancel calls off a scheduled intervention.
// PRE: intervention is scheduled
// POST: Status is cancelled
func (iv *Intervention) Cancel() error {
	if iv.Status != StatusScheduled {
		return ErrNotScheduled
	}
	iv.Status = StatusCancelled
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
