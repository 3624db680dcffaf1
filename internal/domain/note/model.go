package note

import (
	"errors"
	"strings"
	"time"
)

// MaxBodyLength bounds a single progress note.
const MaxBodyLength = 10000

// Domain errors
var (
	ErrEmptyClientID = errors.New("progress note must be associated with a client")
	ErrEmptyBody     = errors.New("progress note body cannot be empty")
	ErrBodyTooLong   = errors.New("progress note body cannot exceed 10000 characters")
	ErrEmptyAuthor   = errors.New("progress note author cannot be empty")
)

// Note is a dated staff observation about a client. Body supports Markdown
// formatting; rendering happens at the HTTP layer.
type Note struct {
	ID        string
	ClientID  string
	Author    string
	Body      string // Markdown content
	CreatedAt time.Time
}

// Validate checks if the Note has valid data.
// PRE: Note struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (n *Note) Validate() error {
	if n.ClientID == "" {
		return ErrEmptyClientID
	}
	if strings.TrimSpace(n.Author) == "" {
		return ErrEmptyAuthor
	}
	if strings.TrimSpace(n.Body) == "" {
		return ErrEmptyBody
	}
	if len(n.Body) > MaxBodyLength {
		return ErrBodyTooLong
	}
	return nil
}
