package activitylog

import (
	"context"

	domain "caseboard/internal/domain/activitylog"
)

// Filter narrows activity-log listings. Zero values mean "no constraint".
type Filter struct {
	Actor  string
	Action string
	Day    string // YYYY-MM-DD
	Limit  int
	Offset int
}

// Store persists activity-log entries.
type Store interface {
	Save(ctx context.Context, value domain.Entry) error
	List(ctx context.Context, filter Filter) ([]domain.Entry, error)
	Count(ctx context.Context, filter Filter) (int, error)
}
