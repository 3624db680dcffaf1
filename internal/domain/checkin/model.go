package checkin

import (
	"errors"
	"time"
)

// Mood scale bounds (1 = struggling, 5 = great).
const (
	MinMood = 1
	MaxMood = 5
)

// Domain errors
var (
	ErrEmptyClientID  = errors.New("check-in must be associated with a client")
	ErrZeroTime       = errors.New("check-in time must be set")
	ErrMoodOutOfRange = errors.New("mood must be between 1 and 5")
)

// CheckIn is one client's daily check-in with the house staff.
type CheckIn struct {
	ID          string
	ClientID    string
	Mood        int    // 1-5 scale
	Note        string // optional staff remark
	RecordedBy  string
	CheckedInAt time.Time
}

// Validate checks if the CheckIn has valid data.
// PRE: CheckIn struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (c *CheckIn) Validate() error {
	if c.ClientID == "" {
		return ErrEmptyClientID
	}
	if c.CheckedInAt.IsZero() {
		return ErrZeroTime
	}
	if c.Mood < MinMood || c.Mood > MaxMood {
		return ErrMoodOutOfRange
	}
	return nil
}

// Day returns the check-in's calendar date in YYYY-MM-DD form, used to
// enforce one check-in per client per day.
func (c *CheckIn) Day() string {
	return c.CheckedInAt.Format("2006-01-02")
}
