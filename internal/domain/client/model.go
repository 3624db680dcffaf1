package client

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Residency statuses, covering the full treatment lifecycle.
const (
	StatusPending          = "pending"           // admitted, awaiting approval
	StatusActive           = "active"            // in residence
	StatusFlagged          = "flagged"           // in residence, flagged for attention
	StatusRejected         = "rejected"          // admission declined
	StatusAftercarePending = "aftercare_pending" // proposed for aftercare transfer
	StatusAftercare        = "aftercare"         // transferred to aftercare
	StatusCompleted        = "completed"         // finished the program
	StatusArchived         = "archived"          // removed from the active roster
)

// ValidStatuses contains all valid residency statuses.
var ValidStatuses = []string{
	StatusPending, StatusActive, StatusFlagged, StatusRejected,
	StatusAftercarePending, StatusAftercare, StatusCompleted, StatusArchived,
}

// Domain errors
var (
	ErrEmptyName         = errors.New("client name cannot be empty")
	ErrNameTooLong       = errors.New("client name cannot exceed 100 characters")
	ErrInvalidStatus     = errors.New("invalid residency status")
	ErrInvalidTransition = errors.New("invalid residency status transition")
	ErrEmptyFlagReason   = errors.New("flag reason cannot be empty")
)

// transitions maps each status to the statuses it may move to. Archival is
// terminal and allowed from anywhere, so it is handled separately.
var transitions = map[string][]string{
	StatusPending:          {StatusActive, StatusRejected},
	StatusActive:           {StatusFlagged, StatusAftercarePending, StatusCompleted},
	StatusFlagged:          {StatusActive},
	StatusAftercarePending: {StatusAftercare, StatusActive},
}

// Client is one resident of the treatment program.
type Client struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Address    string
	Guardian   string // emergency contact / guardian name
	Status     string
	FlagReason string // set while Status == flagged
	AdmittedAt string // YYYY-MM-DD
	UpdatedAt  string // YYYY-MM-DD
}

// Validate checks if the Client has valid data.
// PRE: Client struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if len(c.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if !isValidStatus(c.Status) {
		return ErrInvalidStatus
	}
	if c.Status == StatusFlagged && strings.TrimSpace(c.FlagReason) == "" {
		return ErrEmptyFlagReason
	}
	return nil
}

// CanTransition reports whether the client may move to the given status.
// PRE: to is a valid status
// POST: Client is not mutated
func (c *Client) CanTransition(to string) bool {
	if to == StatusArchived {
		return c.Status != StatusArchived
	}
	for _, allowed := range transitions[c.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition moves the client to the given status.
// PRE: the move is allowed by the lifecycle
// POST: Status updated; FlagReason cleared when leaving flagged
func (c *Client) Transition(to string) error {
	if !isValidStatus(to) {
		return ErrInvalidStatus
	}
	if !c.CanTransition(to) {
		return ErrInvalidTransition
	}
	if c.Status == StatusFlagged {
		c.FlagReason = ""
	}
	c.Status = to
	return nil
}

// Flag marks an active client for staff attention.
// PRE: client is active; reason is non-empty
// POST: Status is flagged and FlagReason is set
func (c *Client) Flag(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyFlagReason
	}
	if err := c.Transition(StatusFlagged); err != nil {
		return err
	}
	c.FlagReason = reason
	return nil
}

// IsInResidence returns true while the client lives at the house.
func (c *Client) IsInResidence() bool {
	return c.Status == StatusActive || c.Status == StatusFlagged
}

func isValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}
